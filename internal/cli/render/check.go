package render

import (
	"fmt"
	"io"

	"github.com/regup-org/regup/internal/usecase"
)

// CheckRenderer renders registry check results.
type CheckRenderer struct {
	out io.Writer
}

// NewCheckRenderer creates a new check renderer
func NewCheckRenderer(out io.Writer) *CheckRenderer {
	return &CheckRenderer{out: out}
}

func (r *CheckRenderer) Render(result *usecase.CheckRecordsResult) error {
	for _, v := range result.Violations {
		fmt.Fprintln(r.out, FormatError(fmt.Sprintf("v%s/%s: %s", v.Version, v.Record, v.Message)))
	}

	if len(result.Violations) == 0 {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%d record(s) checked, no violations", result.Checked)))
	} else {
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("%d record(s) checked, %d violation(s)",
			result.Checked, len(result.Violations))))
	}
	return nil
}

var _ Renderer[*usecase.CheckRecordsResult] = (*CheckRenderer)(nil)

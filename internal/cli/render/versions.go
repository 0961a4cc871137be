package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/regup-org/regup/internal/usecase"
)

// VersionsRenderer renders the tracked versions table.
type VersionsRenderer struct {
	out io.Writer
}

// NewVersionsRenderer creates a new versions renderer
func NewVersionsRenderer(out io.Writer) *VersionsRenderer {
	return &VersionsRenderer{out: out}
}

func (r *VersionsRenderer) Render(result *usecase.ListVersionsResult) error {
	if len(result.Versions) == 0 {
		fmt.Fprintln(r.out, "No versions found")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Version", "Records"})
	for _, v := range result.Versions {
		t.AppendRow(table.Row{"v" + v.Version, v.Records})
	}
	t.Render()
	return nil
}

var _ Renderer[*usecase.ListVersionsResult] = (*VersionsRenderer)(nil)

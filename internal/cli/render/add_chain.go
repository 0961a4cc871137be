package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/regup-org/regup/internal/usecase"
)

var (
	updatedStyle = color.New(color.FgGreen)
	skippedStyle = color.New(color.Faint)
)

// AddChainRenderer renders the result of an add-chain batch.
type AddChainRenderer struct {
	out     io.Writer
	verbose bool
}

// NewAddChainRenderer creates a new add-chain renderer
func NewAddChainRenderer(out io.Writer, verbose bool) *AddChainRenderer {
	return &AddChainRenderer{
		out:     out,
		verbose: verbose,
	}
}

// Render prints per-file status in verbose mode and the summary count.
func (r *AddChainRenderer) Render(result *usecase.AddChainResult) error {
	if r.verbose {
		for _, file := range result.Files {
			if file.Updated {
				updatedStyle.Fprintf(r.out, "  updated  %s\n", file.Name)
			} else {
				skippedStyle.Fprintf(r.out, "  skipped  %s (already up to date)\n", file.Name)
			}
		}
	}

	summary := fmt.Sprintf("Updated %d record(s) for v%s with chain %s (%s)",
		result.Updated, result.Version, result.ChainID, result.Variant)
	if result.Skipped > 0 {
		summary += fmt.Sprintf(", %d skipped", result.Skipped)
	}
	fmt.Fprintln(r.out, FormatSuccess(summary))
	return nil
}

var _ Renderer[*usecase.AddChainResult] = (*AddChainRenderer)(nil)

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"

	"github.com/regup-org/regup/internal/domain/models"
	"github.com/regup-org/regup/internal/usecase"
)

// RecordsRenderer renders record listings and single-record network tables.
type RecordsRenderer struct {
	out io.Writer
}

// NewRecordsRenderer creates a new records renderer
func NewRecordsRenderer(out io.Writer) *RecordsRenderer {
	return &RecordsRenderer{out: out}
}

// RenderList renders the records of a version with their chain coverage.
func (r *RecordsRenderer) RenderList(result *usecase.ListRecordsResult) error {
	if len(result.Records) == 0 {
		fmt.Fprintln(r.out, "No records found")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Record", "Networks", "Chains"})

	for _, rec := range result.Records {
		coverage := "-"
		if rec.Networks == 1 {
			coverage = rec.First
		} else if rec.Networks > 1 {
			coverage = fmt.Sprintf("%s … %s", rec.First, rec.Last)
		}
		t.AppendRow(table.Row{rec.Name, rec.Networks, coverage})
	}

	fmt.Fprintf(r.out, "Records for v%s:\n", result.Version)
	t.Render()
	return nil
}

// RenderShow renders one record's network table.
func (r *RecordsRenderer) RenderShow(result *usecase.ShowRecordResult) error {
	fmt.Fprintf(r.out, "%s (v%s)\n", result.Name, result.Version)
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks recorded")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Chain ID", "Network", "Variants"})

	for _, row := range result.Networks {
		name := row.ChainName
		if name == "" {
			name = "-"
		}
		variants := strings.Join(lo.Map(row.Variants, func(v models.Variant, _ int) string {
			return string(v)
		}), ", ")
		t.AppendRow(table.Row{row.ChainID, name, variants})
	}

	t.Render()
	return nil
}

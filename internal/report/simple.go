package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/chvotes/chvotes/internal/aggregate"
)

// SimpleWriter outputs a plain text table, the default for terminal
// use. Counts are right-aligned via tabwriter; MISSING cantons show a
// dash in the percentage column.
type SimpleWriter struct {
	baseWriter
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the result as an aligned text table.
func (w *SimpleWriter) Write(title string, result *aggregate.Result) (int, error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Referendum: %s\n", title)
	exact, recovered, missing := result.CountBySource()
	fmt.Fprintf(&sb, "Cantons: %d exact, %d recovered, %d missing\n\n", exact, recovered, missing)

	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "CANTON\tYES\tNO\tTOTAL\tYES %\tSOURCE\t")
	for _, rec := range result.Records {
		pct, ok := rec.YesPct()
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t%s\t\n",
			rec.Canton.Name(), rec.Yes, rec.No, rec.Total, pctCell(pct, ok), rec.Source)
	}
	if err := tw.Flush(); err != nil {
		return 0, err
	}

	for _, warn := range result.Warnings {
		fmt.Fprintf(&sb, "\nwarning: %s", warn)
	}
	if len(result.Warnings) > 0 {
		sb.WriteString("\n")
	}

	return io.WriteString(w.output, sb.String())
}

// formatPct renders a percentage with two decimals, e.g. "66.67".
func formatPct(pct float64) string {
	return strconv.FormatFloat(pct, 'f', 2, 64)
}

package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/chvotes/chvotes/internal/aggregate"
	"github.com/chvotes/chvotes/internal/model"
)

// MarkdownWriter outputs results as GitHub Flavored Markdown, designed
// for sharing and documentation: a summary table, a mermaid pie chart
// of the record sources, and the full per-canton table.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the full result in Markdown format.
func (w *MarkdownWriter) Write(title string, result *aggregate.Result) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, title, result)
	w.writeSourceChart(md, result)
	w.writeRecords(md, result)
	w.writeWarnings(md, result)

	return len(md.String()), md.Build()
}

// writeHeader writes the title and the completeness summary.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, title string, result *aggregate.Result) {
	md.H1("Referendum Results by Canton")
	md.PlainText("")
	md.PlainText("**" + title + "**")
	md.PlainText("")

	exact, recovered, missing := result.CountBySource()
	md.Table(markdown.TableSet{
		Header: []string{"Source", "Cantons"},
		Rows: [][]string{
			{"Exact canton rows", strconv.Itoa(exact)},
			{"Recovered from sub-areas", strconv.Itoa(recovered)},
			{"Missing", strconv.Itoa(missing)},
		},
	})
	md.PlainText("")
}

// writeSourceChart writes a mermaid pie chart of the source distribution.
func (w *MarkdownWriter) writeSourceChart(md *markdown.Markdown, result *aggregate.Result) {
	exact, recovered, missing := result.CountBySource()

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Record sources"),
		piechart.WithShowData(true),
	)
	if exact > 0 {
		chart.LabelAndIntValue("Exact", uint64(exact))
	}
	if recovered > 0 {
		chart.LabelAndIntValue("Recovered", uint64(recovered))
	}
	if missing > 0 {
		chart.LabelAndIntValue("Missing", uint64(missing))
	}

	md.H2("Coverage")
	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeRecords writes the per-canton table.
func (w *MarkdownWriter) writeRecords(md *markdown.Markdown, result *aggregate.Result) {
	rows := make([][]string, 0, len(result.Records))
	for _, rec := range result.Records {
		pct, ok := rec.YesPct()
		rows = append(rows, []string{
			rec.Canton.Name(),
			strconv.Itoa(rec.Yes),
			strconv.Itoa(rec.No),
			strconv.Itoa(rec.Total),
			pctCell(pct, ok),
			sourceBadge(rec.Source),
		})
	}

	md.H2("Cantons")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Canton", "Yes", "No", "Total", "Yes %", "Source"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeWarnings writes data quality warnings as a GitHub alert.
func (w *MarkdownWriter) writeWarnings(md *markdown.Markdown, result *aggregate.Result) {
	if len(result.Warnings) == 0 {
		return
	}
	for _, warn := range result.Warnings {
		md.Warningf("%s", warn)
		md.PlainText("")
	}
}

// sourceBadge decorates the source value for quick scanning.
func sourceBadge(s model.Source) string {
	switch s {
	case model.SourceExact:
		return "✅ EXACT"
	case model.SourceRecovered:
		return "🔶 RECOVERED"
	default:
		return "⚪ MISSING"
	}
}

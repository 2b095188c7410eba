package report

import (
	"encoding/json"
	"io"

	"github.com/chvotes/chvotes/internal/aggregate"
)

// JSONWriter outputs results as JSON for tool integration.
type JSONWriter struct {
	baseWriter

	indent bool
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithPrettyPrint enables two-space indented output.
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// jsonRecord is the serialized form of one canton record. The field
// names match the GeoJSON export properties so the two surfaces agree.
type jsonRecord struct {
	Canton string   `json:"NAME"`
	Yes    int      `json:"YES"`
	No     int      `json:"NO"`
	Total  int      `json:"TOTAL"`
	YesPct *float64 `json:"YES_PCT,omitempty"`
	Source string   `json:"SOURCE"`
}

type jsonReport struct {
	Title     string       `json:"title"`
	Exact     int          `json:"exact"`
	Recovered int          `json:"recovered"`
	Missing   int          `json:"missing"`
	Warnings  []string     `json:"warnings,omitempty"`
	Records   []jsonRecord `json:"records"`
}

// Write outputs the result as a JSON document.
func (w *JSONWriter) Write(title string, result *aggregate.Result) (int, error) {
	exact, recovered, missing := result.CountBySource()
	doc := jsonReport{
		Title:     title,
		Exact:     exact,
		Recovered: recovered,
		Missing:   missing,
		Records:   make([]jsonRecord, 0, len(result.Records)),
	}
	for _, warn := range result.Warnings {
		doc.Warnings = append(doc.Warnings, warn.String())
	}
	for _, rec := range result.Records {
		jr := jsonRecord{
			Canton: rec.Canton.Name(),
			Yes:    rec.Yes,
			No:     rec.No,
			Total:  rec.Total,
			Source: rec.Source.String(),
		}
		if pct, ok := rec.YesPct(); ok {
			jr.YesPct = &pct
		}
		doc.Records = append(doc.Records, jr)
	}

	var (
		data []byte
		err  error
	)
	if w.indent {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return 0, err
	}
	data = append(data, '\n')
	return w.output.Write(data)
}

package report

import (
	"io"

	"github.com/chvotes/chvotes/internal/aggregate"
)

// Writer renders one referendum's aggregation result.
type Writer interface {
	// Write outputs the result for the named referendum.
	// Returns the number of bytes written and any error encountered.
	Write(title string, result *aggregate.Result) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously, typically the
// terminal and a report file. It is a separate type rather than
// io.MultiWriter because the Writer interface carries structured
// results, not raw bytes.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the result to all configured Writers.
// Returns the total bytes written; stops on the first error.
func (m *MultiWriter) Write(title string, result *aggregate.Result) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(title, result)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides the shared output destination.
type baseWriter struct {
	output io.Writer
}

func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// pctCell formats a record's YES percentage for table output, using a
// dash for the undefined case so "no data" never reads as a number.
func pctCell(pct float64, ok bool) string {
	if !ok {
		return "-"
	}
	return formatPct(pct)
}

package aggregate

import (
	"github.com/chvotes/chvotes/internal/canton"
	"github.com/chvotes/chvotes/internal/model"
)

// Options configures a single aggregation run.
type Options struct {
	// RecoverMissing enables reconstruction of cantons that lack a
	// canton-level row by summing matching sub-area rows. Enabled by
	// default; disable to see exactly what the dataset reports.
	RecoverMissing bool
}

// DefaultOptions returns the default aggregation options.
func DefaultOptions() Options {
	return Options{RecoverMissing: true}
}

// Result is the outcome of aggregating one referendum: exactly one
// record per canton, in the official canton order, plus the data
// quality warnings collected along the way.
type Result struct {
	// Records holds one entry per canton, ordered by canton.All().
	Records []model.Record

	// Warnings lists duplicate canton-level rows that were ignored.
	Warnings []Warning
}

// Record returns the record for the given canton.
// The coverage invariant guarantees every canton is present.
func (r *Result) Record(c canton.Canton) model.Record {
	for _, rec := range r.Records {
		if rec.Canton == c {
			return rec
		}
	}
	return model.Record{Canton: c, Source: model.SourceMissing}
}

// CountBySource returns how many records carry each source value.
func (r *Result) CountBySource() (exact, recovered, missing int) {
	for _, rec := range r.Records {
		switch rec.Source {
		case model.SourceExact:
			exact++
		case model.SourceRecovered:
			recovered++
		default:
			missing++
		}
	}
	return exact, recovered, missing
}

// Build aggregates the raw rows of one referendum into per-canton vote
// records. For every canton: an exact canton-level row wins; otherwise,
// when recovery is enabled, sub-area rows are summed via Recover; when
// both fail the canton is emitted as MISSING with zero counts. The
// output is freshly allocated on every call and aggregating the same
// input twice yields identical results.
func Build(rows []model.Row, opts Options) *Result {
	exact, candidates, warns := Classify(rows)

	records := make([]model.Record, 0, canton.Count)
	for _, c := range canton.All() {
		if row, ok := exact[c]; ok {
			records = append(records, newRecord(c, row, model.SourceExact))
			continue
		}
		if opts.RecoverMissing {
			if row, ok := Recover(c, candidates); ok {
				records = append(records, newRecord(c, row, model.SourceRecovered))
				continue
			}
		}
		records = append(records, model.Record{Canton: c, Source: model.SourceMissing})
	}
	return &Result{Records: records, Warnings: warns}
}

// newRecord derives a record from a raw or synthesized row.
func newRecord(c canton.Canton, row model.Row, src model.Source) model.Record {
	return model.Record{
		Canton: c,
		Yes:    row.Yes,
		No:     row.No,
		Total:  row.Yes + row.No,
		Source: src,
	}
}

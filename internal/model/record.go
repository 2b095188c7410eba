package model

import "github.com/chvotes/chvotes/internal/canton"

// Source describes how a canton vote record was obtained.
type Source int

const (
	// SourceMissing means the dataset had neither a canton-level row nor
	// recoverable sub-area rows. The record carries zero counts and an
	// undefined YES percentage; this is a displayable state, not an error.
	SourceMissing Source = iota

	// SourceExact means the counts come from a canton-level row.
	SourceExact

	// SourceRecovered means the counts were reconstructed by summing
	// sub-area rows whose names matched the canton's recovery prefix.
	SourceRecovered
)

// String returns the wire/report representation of the source.
func (s Source) String() string {
	switch s {
	case SourceExact:
		return "EXACT"
	case SourceRecovered:
		return "RECOVERED"
	case SourceMissing:
		return "MISSING"
	default:
		return "UNKNOWN"
	}
}

// ParseSource converts a stored string back into a Source.
// Unknown strings map to SourceMissing.
func ParseSource(s string) Source {
	switch s {
	case "EXACT":
		return SourceExact
	case "RECOVERED":
		return SourceRecovered
	default:
		return SourceMissing
	}
}

// Record is the final per-canton result for one referendum.
// Records are immutable once built and recomputed from scratch on every
// selection, so holding on to one across a dataset reload is safe.
type Record struct {
	Canton canton.Canton
	Yes    int
	No     int
	Total  int
	Source Source
}

// YesPct returns the YES percentage in [0,100] and whether it is
// defined. It is undefined exactly when Total is zero; consumers must
// render "no data" in that case rather than a number.
func (r Record) YesPct() (float64, bool) {
	if r.Total == 0 {
		return 0, false
	}
	return 100 * float64(r.Yes) / float64(r.Total), true
}

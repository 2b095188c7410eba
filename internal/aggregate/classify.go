package aggregate

import (
	"fmt"

	"github.com/chvotes/chvotes/internal/canton"
	"github.com/chvotes/chvotes/internal/model"
)

// Warning is a non-fatal data quality finding produced during
// classification. Warnings are surfaced to the caller for logging but
// never abort aggregation; source data quality varies and sparse or
// duplicated rows are expected.
type Warning struct {
	// Canton is the canton the duplicate row resolved to.
	Canton canton.Canton

	// Row is the ignored duplicate row.
	Row model.Row
}

// String renders the warning for log output.
func (w Warning) String() string {
	return fmt.Sprintf("duplicate canton-level row for %s: %q (%d/%d) ignored, first occurrence kept",
		w.Canton, w.Row.Area, w.Row.Yes, w.Row.No)
}

// Classify partitions raw rows into canton-level rows and sub-area
// candidates. A row whose area name normalizes to a canton becomes that
// canton's exact row; the first occurrence wins and later duplicates
// are reported as warnings and dropped. Rows that normalize to nothing
// are retained verbatim as candidates for recovery; they are presumed
// districts or municipalities, never silently discarded.
func Classify(rows []model.Row) (exact map[canton.Canton]model.Row, candidates []model.Row, warns []Warning) {
	exact = make(map[canton.Canton]model.Row, canton.Count)
	for _, row := range rows {
		c, ok := canton.Normalize(row.Area)
		if !ok {
			candidates = append(candidates, row)
			continue
		}
		if _, dup := exact[c]; dup {
			warns = append(warns, Warning{Canton: c, Row: row})
			continue
		}
		exact[c] = row
	}
	return exact, candidates, warns
}

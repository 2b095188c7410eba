package aggregate

import (
	"strings"

	"github.com/chvotes/chvotes/internal/canton"
	"github.com/chvotes/chvotes/internal/model"
)

// Recover reconstructs a canton total from sub-area rows. It sums the
// YES/NO counts of every candidate whose folded area name contains the
// canton's four-character recovery prefix as a substring, and reports
// false when no candidate matches.
//
// The substring containment is deliberately loose: the source data
// sometimes reports a canton only through rows like "Bezirk Berner
// Jura" or ">> Verwaltungskreis Seeland", and a short prefix match
// trades precision for coverage. False positives against unrelated
// areas sharing the prefix are an accepted risk; do not tighten this to
// a prefix or whole-word match without revisiting the datasets that
// rely on it.
func Recover(c canton.Canton, candidates []model.Row) (model.Row, bool) {
	prefix := c.RecoveryPrefix()

	var yes, no int
	matched := false
	for _, row := range candidates {
		if !strings.Contains(canton.Fold(row.Area), prefix) {
			continue
		}
		matched = true
		yes += row.Yes
		no += row.No
	}
	if !matched {
		return model.Row{}, false
	}
	return model.Row{Area: c.Name(), Yes: yes, No: no}, true
}

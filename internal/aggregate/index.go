package aggregate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chvotes/chvotes/internal/model"
)

// ErrSelectionNotFound is returned when a referendum selection cannot
// be resolved: no title matched the filter, an explicit title is
// unknown, or an index is out of range. This is the one condition that
// should abort the calling workflow; everything else the engine absorbs
// into MISSING records and warnings.
var ErrSelectionNotFound = errors.New("referendum selection not found")

// Index provides lookup and selection over the referendums of a loaded
// dataset. It holds no mutable state beyond the dataset reference: no
// result cache, no selection memory. Wrapping it with memoization is a
// caller concern.
type Index struct {
	ds *model.Dataset
}

// NewIndex creates an index over the dataset.
func NewIndex(ds *model.Dataset) *Index {
	return &Index{ds: ds}
}

// Titles returns the referendum titles matching the filter, preserving
// source order. The filter is a case-insensitive substring; an empty
// filter returns all titles.
func (idx *Index) Titles(filter string) []string {
	all := idx.ds.Titles()
	if filter == "" {
		return all
	}
	needle := strings.ToLower(filter)
	var out []string
	for _, t := range all {
		if strings.Contains(strings.ToLower(t), needle) {
			out = append(out, t)
		}
	}
	return out
}

// Select resolves a filter string to a referendum: the first title (in
// source order) containing the filter case-insensitively. An exact
// title is its own first match, so passing a full title selects it.
func (idx *Index) Select(filter string) (model.Referendum, error) {
	matches := idx.Titles(filter)
	if len(matches) == 0 {
		return model.Referendum{}, fmt.Errorf("no title matches %q: %w", filter, ErrSelectionNotFound)
	}
	title := matches[0]
	return model.Referendum{Title: title, Rows: idx.ds.Rows(title)}, nil
}

// SelectAt resolves a zero-based index into the full title list.
func (idx *Index) SelectAt(i int) (model.Referendum, error) {
	titles := idx.ds.Titles()
	if i < 0 || i >= len(titles) {
		return model.Referendum{}, fmt.Errorf("index %d out of range [0,%d): %w", i, len(titles), ErrSelectionNotFound)
	}
	return model.Referendum{Title: titles[i], Rows: idx.ds.Rows(titles[i])}, nil
}

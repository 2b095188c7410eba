package model

// Dataset is the fully loaded vote table: every referendum title in
// source order, with the raw rows grouped per title. It is built once
// by the dataset loader and read-only afterwards.
type Dataset struct {
	titles  []string
	byTitle map[string][]Row
}

// NewDataset groups rows by referendum title, preserving the order in
// which titles first appear in the input. Duplicate titles merge into
// one referendum, keeping row order.
func NewDataset(rows []Row) *Dataset {
	ds := &Dataset{byTitle: make(map[string][]Row)}
	for _, row := range rows {
		if _, seen := ds.byTitle[row.Title]; !seen {
			ds.titles = append(ds.titles, row.Title)
		}
		ds.byTitle[row.Title] = append(ds.byTitle[row.Title], row)
	}
	return ds
}

// Titles returns all referendum titles in source order.
// The returned slice is shared; callers must not modify it.
func (ds *Dataset) Titles() []string {
	return ds.titles
}

// Rows returns the rows of the named referendum, or nil if the title
// is unknown.
func (ds *Dataset) Rows(title string) []Row {
	return ds.byTitle[title]
}

// Len returns the number of distinct referendums.
func (ds *Dataset) Len() int {
	return len(ds.titles)
}

package model

// Row is one raw observation from the source dataset: the YES and NO
// counts reported for one geographic area within one referendum. The
// area name is kept exactly as the source spells it (after basic
// whitespace/hierarchy-marker cleanup by the loader) because recovery
// matching operates on the raw multilingual names.
type Row struct {
	// Title is the referendum this row belongs to.
	Title string

	// Area is the raw area name: a canton, district, or municipality.
	Area string

	// Yes is the number of YES votes. Never negative.
	Yes int

	// No is the number of NO votes. Never negative.
	No int
}

// Referendum groups the rows of a single ballot. Identity is the title
// string; titles are assumed unique within a dataset and the index
// resolves duplicates by first occurrence.
type Referendum struct {
	Title string
	Rows  []Row
}

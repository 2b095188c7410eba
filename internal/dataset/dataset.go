package dataset

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/chvotes/chvotes/internal/model"
	"github.com/chvotes/chvotes/internal/pcaxis"
)

// ErrUnknownLayout is returned when the PX table does not carry the
// dimensions the vote layout requires. Like a malformed PX file, this
// indicates the wrong input file rather than sparse data, so it
// propagates to the caller.
var ErrUnknownLayout = errors.New("px table does not match the vote dataset layout")

// Dimension name fragments and result categories of the BFS
// "Volksabstimmungen" cube (German default language). The area
// dimension is named after its hierarchy markers: cantons are plain,
// districts are prefixed ">>", municipalities "......".
const (
	titleDimFragment  = "Vorlage"
	areaDimFragment   = "Kanton"
	resultDimFragment = "Ergebnis"

	categoryYes = "Ja"
	categoryNo  = "Nein"
)

// hierarchyMarkers strips the leading list markers the source uses to
// indent districts and municipalities ("- ", ">> ", "......").
var hierarchyMarkers = regexp.MustCompile(`^(-\s*|>+\s*|\.+)`)

// whitespaceRuns collapses internal whitespace runs to single spaces.
var whitespaceRuns = regexp.MustCompile(`\s+`)

// CleanAreaName removes hierarchy markers and normalizes whitespace in
// a raw area name. It does not fold case or accents; classification
// and recovery fold on their own because they need the cleaned spelling
// for synthesized rows.
func CleanAreaName(s string) string {
	s = strings.TrimSpace(s)
	s = hierarchyMarkers.ReplaceAllString(s, "")
	return strings.TrimSpace(whitespaceRuns.ReplaceAllString(s, " "))
}

// FromTable extracts vote rows from a parsed PX table. Rows whose YES
// or NO cell is a missing-value marker are dropped; an area that never
// reports both counts simply does not appear, which downstream shows
// as MISSING or recovers from sub-areas.
func FromTable(table *pcaxis.Table) (*model.Dataset, error) {
	titleDim, err := findDimension(table, titleDimFragment)
	if err != nil {
		return nil, err
	}
	areaDim, err := findDimension(table, areaDimFragment)
	if err != nil {
		return nil, err
	}
	resultDim, err := findDimension(table, resultDimFragment)
	if err != nil {
		return nil, err
	}
	if !hasValue(resultDim, categoryYes) || !hasValue(resultDim, categoryNo) {
		return nil, fmt.Errorf("%w: result dimension %q lacks %q/%q categories",
			ErrUnknownLayout, resultDim.Name, categoryYes, categoryNo)
	}

	var rows []model.Row
	for _, title := range titleDim.Values {
		for _, area := range areaDim.Values {
			coords := map[string]string{
				titleDim.Name:  title,
				areaDim.Name:   area,
				resultDim.Name: categoryYes,
			}
			yes, yesOK, err := table.Value(coords)
			if err != nil {
				return nil, err
			}
			coords[resultDim.Name] = categoryNo
			no, noOK, err := table.Value(coords)
			if err != nil {
				return nil, err
			}
			if !yesOK || !noOK {
				continue
			}
			rows = append(rows, model.Row{
				Title: title,
				Area:  CleanAreaName(area),
				Yes:   int(yes),
				No:    int(no),
			})
		}
	}
	return model.NewDataset(rows), nil
}

// LoadFile parses a .px file and maps it into the row model.
func LoadFile(path, lang string) (*model.Dataset, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided dataset path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close() //nolint:errcheck // Read-only file

	table, err := pcaxis.Parse(f, lang)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return FromTable(table)
}

// findDimension locates a dimension whose name contains the fragment.
func findDimension(table *pcaxis.Table, fragment string) (pcaxis.Dimension, error) {
	for _, d := range table.Dimensions() {
		if strings.Contains(d.Name, fragment) {
			return d, nil
		}
	}
	return pcaxis.Dimension{}, fmt.Errorf("%w: no dimension matching %q", ErrUnknownLayout, fragment)
}

func hasValue(d pcaxis.Dimension, v string) bool {
	for _, value := range d.Values {
		if value == v {
			return true
		}
	}
	return false
}

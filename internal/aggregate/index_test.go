package aggregate

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/chvotes/chvotes/internal/model"
)

func testDataset() *model.Dataset {
	return model.NewDataset([]model.Row{
		{Title: "Energiegesetz vom 30. September 2016", Area: "Bern", Yes: 1, No: 2},
		{Title: "Änderung des Jagdgesetzes", Area: "Bern", Yes: 3, No: 4},
		{Title: "Energie-Initiative", Area: "Bern", Yes: 5, No: 6},
	})
}

// TestIndexTitles tests the case-insensitive substring filter.
func TestIndexTitles(t *testing.T) {
	t.Parallel()

	idx := NewIndex(testDataset())

	testCases := []struct {
		name     string
		filter   string
		expected []string
	}{
		{"empty filter returns all", "", []string{
			"Energiegesetz vom 30. September 2016",
			"Änderung des Jagdgesetzes",
			"Energie-Initiative",
		}},
		{"substring", "energie", []string{
			"Energiegesetz vom 30. September 2016",
			"Energie-Initiative",
		}},
		{"case insensitive", "JAGD", []string{"Änderung des Jagdgesetzes"}},
		{"no match", "Nonexistent", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := idx.Titles(tc.filter)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Titles(%q) = %v, expected %v", tc.filter, got, tc.expected)
			}
		})
	}
}

// TestIndexSelect tests selection by filter string.
func TestIndexSelect(t *testing.T) {
	t.Parallel()

	idx := NewIndex(testDataset())

	ref, err := idx.Select("energie")
	if err != nil {
		t.Fatalf("Select returned unexpected error: %v", err)
	}
	// First match in source order wins.
	if ref.Title != "Energiegesetz vom 30. September 2016" {
		t.Errorf("Select picked %q, expected the first matching title", ref.Title)
	}
	if len(ref.Rows) != 1 || ref.Rows[0].Yes != 1 {
		t.Errorf("Select rows = %v, expected the title's rows", ref.Rows)
	}

	if _, err := idx.Select("Nonexistent"); !errors.Is(err, ErrSelectionNotFound) {
		t.Errorf("Select for unknown title returned %v, expected ErrSelectionNotFound", err)
	}
}

// TestIndexSelectAt tests selection by position.
func TestIndexSelectAt(t *testing.T) {
	t.Parallel()

	idx := NewIndex(testDataset())

	ref, err := idx.SelectAt(1)
	if err != nil {
		t.Fatalf("SelectAt returned unexpected error: %v", err)
	}
	if ref.Title != "Änderung des Jagdgesetzes" {
		t.Errorf("SelectAt(1) = %q, expected the second title", ref.Title)
	}

	for _, i := range []int{-1, 3, 999} {
		t.Run(fmt.Sprintf("out of range %d", i), func(t *testing.T) {
			t.Parallel()
			if _, err := idx.SelectAt(i); !errors.Is(err, ErrSelectionNotFound) {
				t.Errorf("SelectAt(%d) returned %v, expected ErrSelectionNotFound", i, err)
			}
		})
	}
}

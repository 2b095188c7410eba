package export

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/chvotes/chvotes/internal/aggregate"
	"github.com/chvotes/chvotes/internal/canton"
	"github.com/chvotes/chvotes/internal/geometry"
	"github.com/chvotes/chvotes/internal/model"
)

// TestWriteGeoJSON tests the export schema: 26 features, exact
// property names, YES_PCT omitted when undefined, geometry omitted
// when unavailable.
func TestWriteGeoJSON(t *testing.T) {
	t.Parallel()

	rows := []model.Row{
		{Title: "Vote X", Area: "Genève", Yes: 100, No: 50},
	}
	result := aggregate.Build(rows, aggregate.DefaultOptions())

	boundaries := geometry.Source{
		canton.Geneve: json.RawMessage(`{"type":"Polygon","coordinates":[]}`),
	}

	var buf bytes.Buffer
	if err := WriteGeoJSON(&buf, result, boundaries); err != nil {
		t.Fatalf("WriteGeoJSON returned unexpected error: %v", err)
	}

	var doc struct {
		Type     string `json:"type"`
		Features []struct {
			Type       string                     `json:"type"`
			Properties map[string]json.RawMessage `json:"properties"`
			Geometry   json.RawMessage            `json:"geometry"`
		} `json:"features"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if doc.Type != "FeatureCollection" {
		t.Errorf("type = %q, expected FeatureCollection", doc.Type)
	}
	if len(doc.Features) != canton.Count {
		t.Fatalf("got %d features, expected %d", len(doc.Features), canton.Count)
	}

	var geneve, uri *struct {
		Type       string                     `json:"type"`
		Properties map[string]json.RawMessage `json:"properties"`
		Geometry   json.RawMessage            `json:"geometry"`
	}
	for i := range doc.Features {
		var name string
		if err := json.Unmarshal(doc.Features[i].Properties["NAME"], &name); err != nil {
			t.Fatalf("feature %d has no NAME: %v", i, err)
		}
		switch name {
		case "Genève":
			geneve = &doc.Features[i]
		case "Uri":
			uri = &doc.Features[i]
		}
	}
	if geneve == nil || uri == nil {
		t.Fatal("expected features for Genève and Uri")
	}

	// Genève: full data and geometry.
	var yes, total int
	var pct float64
	mustUnmarshal(t, geneve.Properties["YES"], &yes)
	mustUnmarshal(t, geneve.Properties["TOTAL"], &total)
	mustUnmarshal(t, geneve.Properties["YES_PCT"], &pct)
	if yes != 100 || total != 150 || math.Abs(pct-200.0/3.0) > 0.01 {
		t.Errorf("Genève properties = yes %d total %d pct %f", yes, total, pct)
	}
	if len(geneve.Geometry) == 0 {
		t.Error("Genève feature has no geometry")
	}

	// Uri: missing canton keeps zero counts, omits YES_PCT and geometry.
	var uriTotal int
	mustUnmarshal(t, uri.Properties["TOTAL"], &uriTotal)
	if uriTotal != 0 {
		t.Errorf("Uri TOTAL = %d, expected 0", uriTotal)
	}
	if _, present := uri.Properties["YES_PCT"]; present {
		t.Error("Uri has YES_PCT, expected it omitted for zero total")
	}
	if len(uri.Geometry) != 0 {
		t.Error("Uri has geometry, expected it omitted")
	}
}

// TestWriteGeoJSONNoBoundaries tests export without a geometry source.
func TestWriteGeoJSONNoBoundaries(t *testing.T) {
	t.Parallel()

	result := aggregate.Build(nil, aggregate.DefaultOptions())

	var buf bytes.Buffer
	if err := WriteGeoJSON(&buf, result, nil); err != nil {
		t.Fatalf("WriteGeoJSON returned unexpected error: %v", err)
	}
	if bytes.Contains(buf.Bytes(), []byte(`"geometry"`)) {
		t.Error("output contains geometry without a boundaries source")
	}
}

func mustUnmarshal(t *testing.T, data json.RawMessage, v any) {
	t.Helper()
	if data == nil {
		t.Fatal("expected property is missing")
	}
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatal(err)
	}
}

package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/chvotes/chvotes/internal/aggregate"
	"github.com/chvotes/chvotes/internal/geometry"
)

// feature is one canton in the exported FeatureCollection.
type feature struct {
	Type       string          `json:"type"`
	Properties properties      `json:"properties"`
	Geometry   json.RawMessage `json:"geometry,omitempty"`
}

// properties is the fixed export schema. YesPct is a pointer so that
// undefined percentages (zero total) disappear from the output instead
// of rendering as 0, which would be a legitimate value.
type properties struct {
	Name   string   `json:"NAME"`
	Yes    int      `json:"YES"`
	No     int      `json:"NO"`
	Total  int      `json:"TOTAL"`
	YesPct *float64 `json:"YES_PCT,omitempty"`
}

type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

// WriteGeoJSON writes the aggregation result as a GeoJSON
// FeatureCollection. Every canton appears, including MISSING ones
// (with zero counts and no YES_PCT), so consumers can always render
// the full map and style "no data" explicitly.
func WriteGeoJSON(w io.Writer, result *aggregate.Result, boundaries geometry.Source) error {
	fc := featureCollection{
		Type:     "FeatureCollection",
		Features: make([]feature, 0, len(result.Records)),
	}
	for _, rec := range result.Records {
		props := properties{
			Name:  rec.Canton.Name(),
			Yes:   rec.Yes,
			No:    rec.No,
			Total: rec.Total,
		}
		if pct, ok := rec.YesPct(); ok {
			props.YesPct = &pct
		}
		f := feature{Type: "Feature", Properties: props}
		if boundaries != nil {
			f.Geometry = boundaries[rec.Canton]
		}
		fc.Features = append(fc.Features, f)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fc); err != nil {
		return fmt.Errorf("failed to encode GeoJSON: %w", err)
	}
	return nil
}

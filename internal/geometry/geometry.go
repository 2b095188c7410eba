package geometry

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/chvotes/chvotes/internal/canton"
)

// Source maps cantons to their boundary geometry. Cantons without a
// boundary in the source file are simply absent; the export layer
// omits geometry for them rather than failing.
type Source map[canton.Canton]json.RawMessage

// featureCollection mirrors the subset of GeoJSON we read.
type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

type feature struct {
	Type       string          `json:"type"`
	Properties map[string]any  `json:"properties"`
	Geometry   json.RawMessage `json:"geometry"`
}

// Load reads a GeoJSON FeatureCollection of canton boundaries. Feature
// names are matched through the canton alias table, so both canonical
// and translated NAME properties resolve. Features whose name matches
// no canton are skipped; duplicate features for a canton keep the
// first occurrence.
func Load(path string) (Source, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided boundaries path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to read boundaries: %w", err)
	}

	var fc featureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse boundaries GeoJSON: %w", err)
	}
	if fc.Type != "FeatureCollection" {
		return nil, fmt.Errorf("boundaries file is %q, expected a FeatureCollection", fc.Type)
	}

	src := make(Source, canton.Count)
	for _, f := range fc.Features {
		name, _ := f.Properties["NAME"].(string)
		if name == "" {
			name, _ = f.Properties["name"].(string)
		}
		c, ok := canton.Normalize(name)
		if !ok {
			continue
		}
		if _, dup := src[c]; dup {
			continue
		}
		src[c] = f.Geometry
	}
	return src, nil
}

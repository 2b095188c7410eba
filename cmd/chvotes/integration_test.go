package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fixturePx is a small vote table in the Federal Statistical Office
// layout: two referendums over a canton row, a district row, and a
// turnout column that aggregation ignores.
const fixturePx = `CHARSET="ANSI";
LANGUAGE="de";
STUB="Datum und Vorlage","Kanton (-) / Bezirk (>>) / Gemeinde (......)";
HEADING="Ergebnis";
VALUES("Datum und Vorlage")="2017-05-21 Energiegesetz","2016-06-05 Asylgesetz";
VALUES("Kanton (-) / Bezirk (>>) / Gemeinde (......)")="- Bern",">> Bezirk Bern-Mittelland";
VALUES("Ergebnis")="Ja","Nein","Beteiligung in %";
DATA=
200 100 42.9 10 5 39.0
"..." "..." "..." 7 3 44.1;
`

// writeFixtureDataset writes the fixture table to a temporary file and
// returns its path.
func writeFixtureDataset(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "votes.px")
	if err := os.WriteFile(path, []byte(fixturePx), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// runCommand executes the root command with the given args and returns
// its stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// TestTitlesCommand tests listing and filtering titles end to end.
func TestTitlesCommand(t *testing.T) {
	t.Parallel()

	dataset := writeFixtureDataset(t)

	t.Run("lists all titles", func(t *testing.T) {
		t.Parallel()

		out, err := runCommand(t, "titles", "--dataset", dataset)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "0  2017-05-21 Energiegesetz") {
			t.Errorf("expected indexed first title, got %q", out)
		}
		if !strings.Contains(out, "1  2016-06-05 Asylgesetz") {
			t.Errorf("expected indexed second title, got %q", out)
		}
	})

	t.Run("filter keeps source index", func(t *testing.T) {
		t.Parallel()

		out, err := runCommand(t, "titles", "--dataset", dataset, "--filter", "asyl")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(out, "Energiegesetz") {
			t.Errorf("expected filtered output, got %q", out)
		}
		if !strings.Contains(out, "1  2016-06-05 Asylgesetz") {
			t.Errorf("expected the unfiltered index 1, got %q", out)
		}
	})

	t.Run("no match", func(t *testing.T) {
		t.Parallel()

		_, err := runCommand(t, "titles", "--dataset", dataset, "--filter", "Bundesgericht")
		if err == nil {
			t.Fatal("expected error for unmatched filter")
		}
	})
}

// TestAggregateCommand tests aggregation end to end.
func TestAggregateCommand(t *testing.T) {
	t.Parallel()

	dataset := writeFixtureDataset(t)

	t.Run("default report covers every canton", func(t *testing.T) {
		t.Parallel()

		out, err := runCommand(t, "aggregate", "--dataset", dataset)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "2017-05-21 Energiegesetz") {
			t.Errorf("expected default selection of the first title, got %q", out)
		}
		// Bern has a canton row (200/100); the district row stays an
		// unused candidate because the canton row already matched.
		if !strings.Contains(out, "Bern") || !strings.Contains(out, "EXACT") {
			t.Errorf("expected an exact Bern record, got %q", out)
		}
		if !strings.Contains(out, "1 exact, 0 recovered, 25 missing") {
			t.Errorf("expected the source summary, got %q", out)
		}
	})

	t.Run("recovers canton from district rows", func(t *testing.T) {
		t.Parallel()

		out, err := runCommand(t, "aggregate", "--dataset", dataset, "--filter", "asyl")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "RECOVERED") {
			t.Errorf("expected a recovered record, got %q", out)
		}
		if !strings.Contains(out, "0 exact, 1 recovered, 25 missing") {
			t.Errorf("expected the source summary, got %q", out)
		}
	})

	t.Run("recovery disabled", func(t *testing.T) {
		t.Parallel()

		out, err := runCommand(t, "aggregate", "--dataset", dataset, "--filter", "asyl", "--recover=false")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(out, "RECOVERED") {
			t.Errorf("expected no recovered records, got %q", out)
		}
		if !strings.Contains(out, "0 exact, 0 recovered, 26 missing") {
			t.Errorf("expected the source summary, got %q", out)
		}
	})

	t.Run("json report", func(t *testing.T) {
		t.Parallel()

		out, err := runCommand(t, "aggregate", "--dataset", dataset, "--json")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var report struct {
			Title   string `json:"title"`
			Exact   int    `json:"exact"`
			Records []struct {
				Name  string `json:"NAME"`
				Total int    `json:"TOTAL"`
			} `json:"records"`
		}
		if err := json.Unmarshal([]byte(out), &report); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if report.Title != "2017-05-21 Energiegesetz" {
			t.Errorf("title = %q, expected the first referendum", report.Title)
		}
		if report.Exact != 1 {
			t.Errorf("exact = %d, expected 1", report.Exact)
		}
		if len(report.Records) != 26 {
			t.Errorf("records = %d, expected 26", len(report.Records))
		}
	})

	t.Run("report file alongside stdout", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "reports", "out.md")
		out, err := runCommand(t, "aggregate", "--dataset", dataset, "--markdown", "--output", path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("report file not written: %v", err)
		}
		if string(data) != out {
			t.Error("file report differs from stdout report")
		}
		if !strings.Contains(out, "# Referendum Results by Canton") {
			t.Errorf("expected the markdown heading, got %q", out)
		}
	})

	t.Run("conflicting selection", func(t *testing.T) {
		t.Parallel()

		_, err := runCommand(t, "aggregate", "--dataset", dataset, "--filter", "asyl", "--index", "0")
		if err == nil {
			t.Fatal("expected error for filter and index together")
		}
	})

	t.Run("index out of range", func(t *testing.T) {
		t.Parallel()

		_, err := runCommand(t, "aggregate", "--dataset", dataset, "--index", "99")
		if err == nil {
			t.Fatal("expected error for out-of-range index")
		}
	})

	t.Run("cached result matches fresh run", func(t *testing.T) {
		t.Parallel()

		cacheDir := t.TempDir()
		first, err := runCommand(t, "aggregate", "--dataset", dataset, "--json", "--cache-dir", cacheDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := runCommand(t, "aggregate", "--dataset", dataset, "--json", "--cache-dir", cacheDir)
		if err != nil {
			t.Fatalf("unexpected error on cached run: %v", err)
		}

		// Warnings are not cached, so compare the records only.
		var a, b struct {
			Records json.RawMessage `json:"records"`
		}
		if err := json.Unmarshal([]byte(first), &a); err != nil {
			t.Fatal(err)
		}
		if err := json.Unmarshal([]byte(second), &b); err != nil {
			t.Fatal(err)
		}
		if string(a.Records) != string(b.Records) {
			t.Error("cached records differ from freshly computed records")
		}
	})
}

// TestExportCommand tests the GeoJSON export end to end.
func TestExportCommand(t *testing.T) {
	t.Parallel()

	dataset := writeFixtureDataset(t)

	boundaries := filepath.Join(t.TempDir(), "kantone.geojson")
	boundariesJSON := `{"type":"FeatureCollection","features":[
		{"type":"Feature","properties":{"NAME":"Bern"},"geometry":{"type":"Point","coordinates":[7.44,46.95]}}
	]}`
	if err := os.WriteFile(boundaries, []byte(boundariesJSON), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Run("writes feature collection", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "votes.geojson")
		_, err := runCommand(t, "export", "--dataset", dataset, "--boundaries", boundaries, "--out", out)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(out)
		if err != nil {
			t.Fatal(err)
		}
		var fc struct {
			Type     string `json:"type"`
			Features []struct {
				Properties map[string]any  `json:"properties"`
				Geometry   json.RawMessage `json:"geometry"`
			} `json:"features"`
		}
		if err := json.Unmarshal(data, &fc); err != nil {
			t.Fatalf("output is not valid GeoJSON: %v", err)
		}
		if fc.Type != "FeatureCollection" {
			t.Errorf("type = %q, expected FeatureCollection", fc.Type)
		}
		if len(fc.Features) != 26 {
			t.Fatalf("features = %d, expected 26", len(fc.Features))
		}

		var bernSeen bool
		for _, f := range fc.Features {
			if f.Properties["NAME"] == "Bern" {
				bernSeen = true
				if f.Properties["TOTAL"] != float64(300) {
					t.Errorf("Bern TOTAL = %v, expected 300", f.Properties["TOTAL"])
				}
				if len(f.Geometry) == 0 {
					t.Error("Bern has no geometry despite a boundaries entry")
				}
			}
		}
		if !bernSeen {
			t.Error("no Bern feature in export")
		}
	})

	t.Run("without boundaries", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "votes.geojson")
		_, err := runCommand(t, "export", "--dataset", dataset, "--boundaries", "none", "--out", out)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		data, err := os.ReadFile(out)
		if err != nil {
			t.Fatal(err)
		}
		if strings.Contains(string(data), `"geometry"`) {
			t.Error("expected no geometry members without a boundaries file")
		}
	})
}

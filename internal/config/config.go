package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "chvotes"

	// DefaultVotesURL is the BFS asset for the referendum results cube
	// ("Volksabstimmungen" .px file, canton/district/municipality level).
	DefaultVotesURL = "https://dam-api.bfs.admin.ch/hub/api/dam/assets/34787122/master"

	// DefaultBoundariesURL is the canton boundaries GeoJSON. A .zip URL
	// also works; the fetcher extracts the first GeoJSON member.
	DefaultBoundariesURL = "https://data.geo.admin.ch/ch.swisstopo.swissboundaries3d/kantonsgebiet.geojson"

	// DefaultLanguage selects the PX keyword language. The BFS cube's
	// default language is German, which is also where the "Ja"/"Nein"
	// result categories live.
	DefaultLanguage = "de"

	// DefaultFetchTimeout bounds each asset download. The vote cube is
	// tens of megabytes, so this is generous rather than snappy.
	DefaultFetchTimeout = 5 * time.Minute

	// VotesFileName is the local name of the downloaded vote table.
	VotesFileName = "volksabstimmungen.px"

	// BoundariesFileName is the local name of the boundaries GeoJSON.
	BoundariesFileName = "kantone.geojson"
)

// Config holds all settings for a CLI run. It is populated from
// defaults, then the optional config file, then flags, and passed by
// value through the commands rather than via globals.
type Config struct {
	// DatasetPath is the .px vote table to load. Empty means the
	// downloaded copy in the XDG data directory.
	DatasetPath string

	// BoundariesPath is the canton boundaries GeoJSON. Empty means the
	// downloaded copy in the XDG data directory.
	BoundariesPath string

	// VotesURL and BoundariesURL are the download sources for fetch.
	VotesURL      string
	BoundariesURL string

	// Language selects the PX keyword language variant.
	Language string

	// Filter is the case-insensitive substring selecting a referendum.
	Filter string

	// Index selects a referendum by position when Filter is empty.
	// Negative means unset (use index 0, the first referendum).
	Index int

	// RecoverMissing enables reconstruction of missing canton totals
	// from sub-area rows.
	RecoverMissing bool

	// CacheDir enables the SQLite result cache when non-empty.
	CacheDir string

	// Refresh invalidates the cached result for the selection before
	// aggregating.
	Refresh bool

	// FetchTimeout bounds each download request.
	FetchTimeout time.Duration

	// Verbose enables debug-level logging.
	Verbose bool

	// JSONReport and MarkdownReport select the report format; both
	// false means the plain text report. Mutually exclusive.
	JSONReport     bool
	MarkdownReport bool

	// ReportFile writes the report to a file instead of stdout.
	ReportFile string
}

// NewConfig creates a Config with default values. Defaults are
// collected here rather than spread over flag definitions so the
// config file loader and the commands agree on them.
func NewConfig() *Config {
	return &Config{
		VotesURL:       DefaultVotesURL,
		BoundariesURL:  DefaultBoundariesURL,
		Language:       DefaultLanguage,
		Index:          -1,
		RecoverMissing: true,
		FetchTimeout:   DefaultFetchTimeout,
	}
}

// XDGDataDir returns the XDG data directory for chvotes.
// On Linux: ~/.local/share/chvotes
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGCacheDir returns the XDG cache directory for chvotes.
// On Linux: ~/.cache/chvotes
func XDGCacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName)
}

// DatasetFile resolves the dataset path, falling back to the
// downloaded copy.
func (c *Config) DatasetFile() string {
	if c.DatasetPath != "" {
		return c.DatasetPath
	}
	return filepath.Join(XDGDataDir(), VotesFileName)
}

// BoundariesFile resolves the boundaries path, falling back to the
// downloaded copy.
func (c *Config) BoundariesFile() string {
	if c.BoundariesPath != "" {
		return c.BoundariesPath
	}
	return filepath.Join(XDGDataDir(), BoundariesFileName)
}

// Validate checks the configuration and returns the first problem
// found. It runs once after flag parsing, before any work starts.
func (c *Config) Validate() error {
	if c.Filter != "" && c.Index >= 0 {
		return ErrConflictingSelection
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	if c.FetchTimeout <= 0 {
		return ErrInvalidFetchTimeout
	}
	if c.Language == "" {
		return ErrNoLanguage
	}
	return nil
}

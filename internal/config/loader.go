package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/chvotes/chvotes/internal/canton"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".chvotes"

// ErrConfigNotFound is returned when the configuration file does not
// exist. Callers decide whether that matters: an explicitly given path
// must exist, the implicit search may come up empty.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the YAML configuration file schema.
type File struct {
	// Dataset and Boundaries override the data file locations.
	Dataset    string `yaml:"dataset"`
	Boundaries string `yaml:"boundaries"`

	// VotesURL and BoundariesURL override the fetch sources.
	VotesURL      string `yaml:"votes_url"`
	BoundariesURL string `yaml:"boundaries_url"`

	// Language overrides the PX keyword language.
	Language string `yaml:"language"`

	// Aliases maps extra area-name spellings to canonical canton
	// names, for datasets whose spellings the built-in table misses.
	// Example: {"Basel-Town": "Basel-Stadt"}.
	Aliases map[string]string `yaml:"aliases"`
}

// LoadConfigFile loads settings from a YAML file.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file:
// an explicit path wins, then .chvotes in the current directory, then
// in the home directory. Returns "" when nothing is found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		candidate := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// Apply merges the file into the config. Non-empty file values
// overwrite the config, and extra canton aliases are registered.
// Alias collisions are errors because a silently rebound alias would
// corrupt every later aggregation.
func (f *File) Apply(cfg *Config) error {
	if f.Dataset != "" {
		cfg.DatasetPath = f.Dataset
	}
	if f.Boundaries != "" {
		cfg.BoundariesPath = f.Boundaries
	}
	if f.VotesURL != "" {
		cfg.VotesURL = f.VotesURL
	}
	if f.BoundariesURL != "" {
		cfg.BoundariesURL = f.BoundariesURL
	}
	if f.Language != "" {
		cfg.Language = f.Language
	}

	for alias, name := range f.Aliases {
		c, ok := canton.Normalize(name)
		if !ok {
			return fmt.Errorf("alias %q maps to unknown canton %q", alias, name)
		}
		if err := canton.Register(alias, c); err != nil {
			return err
		}
	}
	return nil
}

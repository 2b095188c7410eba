// Package config holds runtime configuration for the chvotes CLI:
// defaults, CLI-derived settings, XDG directory helpers, and the
// optional YAML configuration file (.chvotes) that carries data file
// locations, source URLs, and extra canton name aliases for datasets
// with unusual spellings.
package config

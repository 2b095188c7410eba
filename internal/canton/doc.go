// Package canton defines the fixed set of Swiss cantons and the
// multilingual name normalization used to match raw area names from
// statistical datasets against them.
//
// The alias table covers German, French, Italian, and Romansh spellings
// plus the official two-letter abbreviations. Lookup keys are folded
// (accent-stripped, case-folded, trimmed) so "GENEVE", "Genève", and
// "genève" all resolve to the same canton.
//
// The table is built once at package initialization and is read-only
// afterwards; Register exists only so a configuration file can add
// dataset-specific spellings during startup.
package canton

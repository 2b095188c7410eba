// Package log configures structured logging for the CLI on top of the
// standard slog package: a single constructor that picks the level
// from the verbose flag and trims record noise (timestamps) that only
// clutters interactive output.
//
// Data-quality findings from aggregation (unmatched area names,
// duplicate canton rows) are logged at warn level here rather than
// returned as errors, so sparse source data never aborts a run.
package log

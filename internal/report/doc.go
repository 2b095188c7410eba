// Package report renders aggregation results for humans and tools.
// Three writers share one interface: a plain text table for the
// terminal, JSON for programmatic consumers, and GitHub Flavored
// Markdown (tables plus a source-distribution pie chart) for
// documentation. MultiWriter fans one result out to several
// destinations, typically terminal and file.
package report

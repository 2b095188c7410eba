// Package dataset turns a parsed PC-Axis vote table into the flat row
// model the aggregation engine consumes. It locates the referendum,
// area, and result dimensions of the BFS "Volksabstimmungen" layout,
// extracts the YES/NO counts per (referendum, area) pair, and cleans
// the hierarchy markers the source embeds in area names.
package dataset

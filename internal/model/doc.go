// Package model defines the immutable data types passed between the
// dataset loader, the aggregation engine, and the report/export layers:
// raw vote rows, referendums, the loaded dataset, and the per-canton
// vote records that aggregation produces.
//
// All types are plain values with no back-references or shared mutable
// state; a Dataset is built once by the loader and treated as read-only
// for the rest of the process.
package model

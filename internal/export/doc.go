// Package export writes aggregation results as a GeoJSON
// FeatureCollection, one feature per canton, for rendering in mapping
// tools. The properties schema is fixed: NAME, YES, NO, TOTAL, and
// YES_PCT, with YES_PCT omitted when undefined (zero total) and
// geometry omitted when the boundaries source has none for a canton.
// Consumers depend on this exact schema; do not rename fields.
package export

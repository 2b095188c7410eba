// Package geometry supplies canton boundary geometries for the export
// layer. Boundaries are read from a GeoJSON FeatureCollection whose
// features carry the canonical canton name in the NAME property; the
// geometries themselves are kept as raw JSON since the engine never
// interprets coordinates, it only joins them back into the export.
package geometry

// Package aggregate implements the vote aggregation engine: it
// classifies raw dataset rows into canton-level rows and sub-area
// candidates, reconstructs totals for cantons the dataset only reports
// at district or municipality level, and merges everything into exactly
// one record per canton per referendum.
//
// Everything here is synchronous and purely functional over immutable
// inputs. Aggregation is cheap (bounded by dataset size) and is meant
// to be recomputed on every selection; callers that want memoization
// wrap the engine with the cache package, keyed by referendum title.
package aggregate

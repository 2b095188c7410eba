// Package fetch downloads the source data assets: the referendum vote
// table (.px) published by the Federal Statistical Office and the
// canton boundaries GeoJSON. Downloads are idempotent (present files
// are skipped unless forced) and run concurrently with a shared
// context so an interrupt cancels both.
//
// The aggregation engine never fetches anything itself; this package
// is wiring for the CLI's fetch command.
package fetch

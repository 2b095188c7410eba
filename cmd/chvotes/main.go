// Package main provides the entry point for the chvotes CLI.
//
// chvotes aggregates Swiss referendum results into canonical per-canton
// YES/NO/TOTAL records, recovering cantons that the source dataset only
// reports at district or municipality level.
//
// Usage:
//
//	chvotes fetch
//	chvotes titles --filter <substring>
//	chvotes aggregate --filter <substring>
//	chvotes export --filter <substring> --out kantone_votes.geojson
//
// See --help for all available options.
package main

// main is the entry point for chvotes.
func main() {
	Execute()
}

// Package pcaxis reads PC-Axis (.px) files, the tabular statistics
// format published by the Swiss Federal Statistical Office and other
// national statistics agencies.
//
// The reader covers the subset of the format the vote datasets use:
// keyword records ("KEY[lang]("subkey")=value;"), quoted value lists,
// CODEPAGE-driven legacy encodings, and a DATA matrix laid out as the
// cartesian product of the STUB and HEADING dimension values. Quoted
// tokens inside DATA ("...", "-") are missing-value markers.
//
// It is deliberately not a full implementation of the PX specification;
// keywords it does not understand are retained as opaque strings.
package pcaxis

// Package clat builds a chunked linear approximation table for m-bit
// addition masks (every (v, incoming-carry-bit) bucket's reachable
// (u, w) output-mask pairs and their correlation weights) and runs the
// Splitting-Lookup-Recombination search that chains m-bit buckets into
// full 32-bit mask transitions, as an alternative front end to package
// search's heuristic top-K linear candidate shortlist.
//
// Build constructs the table once; LookupAndRecombine and SLRSearch
// treat it as immutable and read-only, safe to share across concurrent
// searches.
package clat

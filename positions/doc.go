// Package positions parses and holds the fixed set of 3-D integer points
// (junction boxes) a circuit puzzle is played on.
//
// Each input record has the form "x,y,z" with signed decimal integers.
// A point's identity is its index of first appearance in the input, never its
// coordinates: two records with identical coordinates are two distinct points.
//
// The Store is immutable once built and is safe to share between goroutines.
package positions

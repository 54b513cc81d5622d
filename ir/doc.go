// Package ir provides the canonical tree representation of a resolved
// pipeline configuration.
//
// A Node is a tagged union over null, bool, number, string, array and
// object values. Objects keep their keys in the parallel Fields/Values
// slices; Fields[i] is always the StringType key for Values[i], and a
// canonical tree keeps fields in sorted key order (see Sort).
//
// Numbers and nulls never arise from parsing a properties dump; they
// enter trees through expected-result JSON documents and participate in
// comparison and diffing like any other node.
//
// Trees are constructed once and read thereafter. Nodes are not
// thread-safe during construction; a finished tree may be read from any
// number of goroutines.
package ir

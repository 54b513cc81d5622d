// Package parse converts resolved-config properties text into canonical
// ir trees.
//
// ParseValue parses a single serialized value token; Parse parses a
// whole dump: one key=value pair per line, dotted keys for nesting,
// with volatile values masked before value parsing.
//
// Parsing is fail fast: a malformed line, an unbalanced bracket or a
// map entry without its escaped separator aborts the whole parse with
// the offending text. There is no partial-result mode.
//
// # Related Packages
//
//   - github.com/nextflow-checks/propdiff/ir - canonical tree
//   - github.com/nextflow-checks/propdiff/mask - volatile value masking
//   - github.com/nextflow-checks/propdiff/libdiff - tree diffing
package parse

// Package libdiff computes structural diffs between canonical trees.
//
// Diff reports every point of disagreement between two trees as a
// Delta: a path plus the before and after values, either of which may
// be nil when a key or index exists on only one side. Diffing never
// fails; a type mismatch is a reportable difference, not an error.
//
// # Related Packages
//
//   - github.com/nextflow-checks/propdiff/ir - canonical tree
//   - github.com/nextflow-checks/propdiff/encode - delta rendering
package libdiff

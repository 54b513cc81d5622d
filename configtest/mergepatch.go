package configtest

import (
	"github.com/nextflow-checks/propdiff/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// MergePatch returns the RFC 7386 merge patch that transforms expected
// into actual, as a CI-friendly summary of what changed.
func MergePatch(expected, actual *ir.Node) ([]byte, error) {
	e, err := ir.ToJSON(expected)
	if err != nil {
		return nil, err
	}
	a, err := ir.ToJSON(actual)
	if err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch(e, a)
}

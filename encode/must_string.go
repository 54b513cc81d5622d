package encode

import (
	"bytes"

	"github.com/nextflow-checks/propdiff/ir"
)

// MustString returns the canonical JSON text of node, or the error
// text if it cannot be encoded.
func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		return err.Error()
	}
	return buf.String()
}

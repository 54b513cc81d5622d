// Package encode renders canonical trees and diff deltas as text.
package encode

import (
	"io"

	"github.com/nextflow-checks/propdiff/ir"
)

// Encode writes node as plain JSON. A canonical tree yields
// deterministic output with object keys in sorted order.
func Encode(node *ir.Node, w io.Writer) error {
	d, err := ir.ToJSON(node)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

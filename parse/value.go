package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nextflow-checks/propdiff/ir"
	"github.com/nextflow-checks/propdiff/mask"
	"github.com/nextflow-checks/propdiff/token"
)

// ParseValue parses a single serialized value token. Grammar, in
// precedence order: closure identifier, pointer-like token, bracketed
// list, bracketed map, bool literal, scalar.
func ParseValue(tok string) (*ir.Node, error) {
	if mask.IsClosure(tok) {
		return ir.FromString(mask.Closure), nil
	}
	if masked, ok := mask.Pointer(tok); ok {
		return ir.FromString(masked), nil
	}
	if len(tok) >= 2 && tok[0] == '[' && tok[len(tok)-1] == ']' {
		return parseSequence(tok)
	}
	if len(tok) >= 2 && tok[0] == '{' && tok[len(tok)-1] == '}' {
		return parseMapping(tok)
	}
	switch tok {
	case "true":
		return ir.FromBool(true), nil
	case "false":
		return ir.FromBool(false), nil
	}
	return ir.FromString(token.Unescape(strings.TrimSpace(tok))), nil
}

func parseSequence(tok string) (*ir.Node, error) {
	elems, err := token.SplitTop(tok[1 : len(tok)-1])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	vals := make([]*ir.Node, 0, len(elems))
	for _, e := range elems {
		v, err := ParseValue(e)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return ir.FromSlice(vals), nil
}

func parseMapping(tok string) (*ir.Node, error) {
	pairs, err := token.SplitTop(tok[1 : len(tok)-1])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	m := make(map[string]*ir.Node, len(pairs))
	for _, pair := range pairs {
		k, v, err := token.SplitPair(pair)
		if err != nil {
			// report both the whole literal and the bad entry
			return nil, fmt.Errorf("%w: in literal %q: %w", ErrParse, tok, err)
		}
		keyNode, err := ParseValue(k)
		if err != nil {
			return nil, err
		}
		key, err := mapKey(keyNode)
		if err != nil {
			return nil, err
		}
		valNode, err := ParseValue(v)
		if err != nil {
			return nil, err
		}
		m[key] = valNode
	}
	return ir.FromMap(m), nil
}

func mapKey(node *ir.Node) (string, error) {
	switch node.Type {
	case ir.StringType:
		return node.String, nil
	case ir.BoolType:
		return strconv.FormatBool(node.Bool), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrBadKey, node.Type)
	}
}

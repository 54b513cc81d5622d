package ir

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// FromAny converts a decoded-JSON style value (nil, bool, string,
// json.Number, numeric, []any, map[string]any) into a canonical tree.
func FromAny(v any) (*Node, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(t), nil
	case string:
		return FromString(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return FromInt(i), nil
		}
		if f, err := t.Float64(); err == nil {
			return FromFloat(f), nil
		}
		return &Node{Type: NumberType, Number: t.String()}, nil
	case int:
		return FromInt(int64(t)), nil
	case int64:
		return FromInt(t), nil
	case float64:
		return FromFloat(t), nil
	case []any:
		vals := make([]*Node, len(t))
		for i, e := range t {
			v, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		return FromSlice(vals), nil
	case map[string]any:
		m := make(map[string]*Node, len(t))
		for k, e := range t {
			v, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			m[k] = v
		}
		return FromMap(m), nil
	case *Node:
		return t, nil
	}
	return nil, fmt.Errorf("cannot represent %T", v)
}

// ToAny converts a tree to plain Go values: map[string]any for objects,
// []any for arrays, and scalars otherwise.
func ToAny(node *Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case NullType:
		return nil
	case BoolType:
		return node.Bool
	case StringType:
		return node.String
	case NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return node.Number
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = ToAny(v)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i := range node.Fields {
			res[node.Fields[i].String] = ToAny(node.Values[i])
		}
		return res
	}
	return nil
}

// number formatting used by display surfaces
func NumberString(node *Node) string {
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10)
	}
	if node.Float64 != nil {
		return strconv.FormatFloat(*node.Float64, 'g', -1, 64)
	}
	return node.Number
}

package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// A canonical tree is externally a plain JSON document: objects, arrays,
// strings, bools, numbers and null, with object keys in sorted order.
// Node marshals to that plain form, not to a typed encoding.

func (node *Node) MarshalJSON() ([]byte, error) {
	switch node.Type {
	case NullType:
		return []byte("null"), nil
	case BoolType:
		if node.Bool {
			return []byte("true"), nil
		}
		return []byte("false"), nil
	case NumberType:
		if node.Int64 != nil {
			return json.Marshal(*node.Int64)
		}
		if node.Float64 != nil {
			return json.Marshal(*node.Float64)
		}
		if node.Number != "" {
			return []byte(node.Number), nil
		}
		return []byte("0"), nil
	case StringType:
		return json.Marshal(node.String)
	case ArrayType:
		buf := bytes.NewBuffer(nil)
		buf.WriteByte('[')
		for i, v := range node.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			d, err := v.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(d)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	case ObjectType:
		buf := bytes.NewBuffer(nil)
		buf.WriteByte('{')
		for i := range node.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(node.Fields[i].String)
			if err != nil {
				return nil, err
			}
			buf.Write(k)
			buf.WriteByte(':')
			d, err := node.Values[i].MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(d)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("cannot marshal node type %s", node.Type)
}

func (node *Node) UnmarshalJSON(d []byte) error {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	res, err := FromAny(v)
	if err != nil {
		return err
	}
	*node = *res
	return nil
}

// FromJSON decodes a plain JSON document into a canonical tree.
func FromJSON(d []byte) (*Node, error) {
	node := &Node{}
	if err := node.UnmarshalJSON(d); err != nil {
		return nil, err
	}
	return node, nil
}

// ToJSON encodes a tree as plain JSON. Field order is the stored order,
// so a canonical tree yields deterministic output.
func ToJSON(node *Node) ([]byte, error) {
	if node == nil {
		return []byte("null"), nil
	}
	return node.MarshalJSON()
}

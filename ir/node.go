package ir

import (
	"maps"
	"slices"
	"sort"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func (node *Node) Clone() *Node {
	res := &Node{}
	return node.CloneTo(res)
}

func (node *Node) CloneTo(dst *Node) *Node {
	dst.Parent = node.Parent
	dst.ParentIndex = node.ParentIndex
	dst.ParentField = node.ParentField
	dst.Type = node.Type
	dst.Values = make([]*Node, len(node.Values))
	dst.Fields = make([]*Node, len(node.Fields))
	for i, v := range node.Values {
		dstI := &Node{}
		v.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = v.ParentField
		dst.Values[i] = dstI
	}
	for i, f := range node.Fields {
		dstI := &Node{}
		f.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = f.String
		dst.Fields[i] = dstI
	}
	dst.String = node.String
	dst.Bool = node.Bool
	dst.Number = node.Number
	if node.Float64 != nil {
		f := *node.Float64
		dst.Float64 = &f
	}
	if node.Int64 != nil {
		i := *node.Int64
		dst.Int64 = &i
	}
	return dst
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromMap(m map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, len(m))
	res.Values = make([]*Node, len(m))
	keys := slices.Sorted(maps.Keys(m))
	for i, key := range keys {
		v := m[key]
		v.Parent = res
		v.ParentIndex = i
		v.ParentField = key
		res.Fields[i] = &Node{
			Parent:      res,
			ParentIndex: i,
			ParentField: key,
			Type:        StringType,
			String:      key,
		}
		res.Values[i] = v
	}
	return res
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = make([]*Node, len(vs))
	for i, v := range vs {
		v.Parent = res
		v.ParentIndex = i
		res.Values[i] = v
	}
	return res
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		res[node.Fields[i].String] = node.Values[i]
	}
	return res
}

// Get returns the value under field, or nil if node has no such field.
func Get(node *Node, field string) *Node {
	n := len(node.Fields)
	for i := range n {
		if node.Fields[i].String == field {
			return node.Values[i]
		}
	}
	return nil
}

// Set assigns val under field, replacing any existing value.
func Set(node *Node, field string, val *Node) {
	for i := range node.Fields {
		if node.Fields[i].String != field {
			continue
		}
		val.Parent = node
		val.ParentIndex = i
		val.ParentField = field
		node.Values[i] = val
		return
	}
	i := len(node.Fields)
	node.Fields = append(node.Fields, &Node{
		Parent:      node,
		ParentIndex: i,
		ParentField: field,
		Type:        StringType,
		String:      field,
	})
	val.Parent = node
	val.ParentIndex = i
	val.ParentField = field
	node.Values = append(node.Values, val)
}

// Delete removes field from node, if present.
func Delete(node *Node, field string) {
	for i := range node.Fields {
		if node.Fields[i].String != field {
			continue
		}
		node.Fields = append(node.Fields[:i], node.Fields[i+1:]...)
		node.Values = append(node.Values[:i], node.Values[i+1:]...)
		for j := i; j < len(node.Fields); j++ {
			node.Fields[j].ParentIndex = j
			node.Values[j].ParentIndex = j
		}
		return
	}
}

// Sort puts node in canonical form: object fields ordered by key,
// recursively. Arrays keep their order.
func Sort(node *Node) {
	if node == nil {
		return
	}
	switch node.Type {
	case ObjectType:
		idx := make([]int, len(node.Fields))
		for i := range idx {
			idx[i] = i
		}
		sort.Slice(idx, func(a, b int) bool {
			return node.Fields[idx[a]].String < node.Fields[idx[b]].String
		})
		fields := make([]*Node, len(idx))
		values := make([]*Node, len(idx))
		for i, j := range idx {
			fields[i] = node.Fields[j]
			values[i] = node.Values[j]
			fields[i].ParentIndex = i
			values[i].ParentIndex = i
		}
		node.Fields = fields
		node.Values = values
		for _, v := range node.Values {
			Sort(v)
		}
	case ArrayType:
		for _, v := range node.Values {
			Sort(v)
		}
	}
}

package ir

import (
	"testing"
)

func TestGetSetDelete(t *testing.T) {
	obj := &Node{Type: ObjectType}
	Set(obj, "b", FromString("1"))
	Set(obj, "a", FromString("2"))
	if got := Get(obj, "b"); got == nil || got.String != "1" {
		t.Fatalf("Get(b) = %v", got)
	}
	if got := Get(obj, "missing"); got != nil {
		t.Fatalf("Get(missing) = %v", got)
	}

	// replace keeps position, updates value
	Set(obj, "b", FromString("3"))
	if got := Get(obj, "b"); got.String != "3" {
		t.Errorf("Get(b) after replace = %q", got.String)
	}
	if len(obj.Fields) != 2 {
		t.Fatalf("replace grew the object to %d fields", len(obj.Fields))
	}

	Delete(obj, "b")
	if Get(obj, "b") != nil {
		t.Errorf("Get(b) after delete != nil")
	}
	if got := Get(obj, "a"); got == nil || got.ParentIndex != 0 {
		t.Errorf("delete did not renumber remaining fields: %+v", got)
	}
	// deleting an absent field is a no-op
	Delete(obj, "b")
	if len(obj.Fields) != 1 {
		t.Errorf("got %d fields", len(obj.Fields))
	}
}

func TestSort(t *testing.T) {
	obj := &Node{Type: ObjectType}
	Set(obj, "z", FromString("1"))
	inner := &Node{Type: ObjectType}
	Set(inner, "b", FromString("2"))
	Set(inner, "a", FromString("3"))
	Set(obj, "m", FromSlice([]*Node{inner}))
	Set(obj, "a", FromString("4"))

	Sort(obj)

	keys := make([]string, len(obj.Fields))
	for i := range obj.Fields {
		keys[i] = obj.Fields[i].String
	}
	want := []string{"a", "m", "z"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys = %v, want %v", keys, want)
		}
	}
	// recursion through arrays into nested objects
	nested := Get(obj, "m").Values[0]
	if nested.Fields[0].String != "a" || nested.Fields[1].String != "b" {
		t.Errorf("nested keys not sorted: %q, %q",
			nested.Fields[0].String, nested.Fields[1].String)
	}
	for i := range obj.Fields {
		if obj.Fields[i].ParentIndex != i || obj.Values[i].ParentIndex != i {
			t.Errorf("parent index not renumbered at %d", i)
		}
	}
}

func TestFromMapSorted(t *testing.T) {
	obj := FromMap(map[string]*Node{
		"c": FromInt(1),
		"a": FromInt(2),
		"b": FromInt(3),
	})
	want := []string{"a", "b", "c"}
	for i := range want {
		if obj.Fields[i].String != want[i] {
			t.Fatalf("field %d = %q, want %q", i, obj.Fields[i].String, want[i])
		}
	}
}

func TestClone(t *testing.T) {
	obj := FromMap(map[string]*Node{
		"a": FromSlice([]*Node{FromBool(true), Null()}),
		"b": FromFloat(2.5),
	})
	cp := obj.Clone()
	if !Equal(obj, cp) {
		t.Fatalf("clone not equal to original")
	}
	Set(cp, "b", FromString("changed"))
	if Equal(obj, cp) {
		t.Errorf("mutating the clone changed the original")
	}
}

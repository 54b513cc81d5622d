package ir

import (
	"testing"
)

func TestJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string // "" means same as in
	}{
		{"null", `null`, ""},
		{"bool", `true`, ""},
		{"int", `42`, ""},
		{"float", `2.5`, ""},
		{"string", `"hello"`, ""},
		{"array", `["a",true,null,1]`, ""},
		{"object keys get sorted", `{"b":1,"a":{"d":2,"c":3}}`, `{"a":{"c":3,"d":2},"b":1}`},
		{"out-of-range number kept verbatim", `1e999`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := FromJSON([]byte(tt.in))
			if err != nil {
				t.Fatalf("FromJSON: %v", err)
			}
			d, err := ToJSON(node)
			if err != nil {
				t.Fatalf("ToJSON: %v", err)
			}
			want := tt.want
			if want == "" {
				want = tt.in
			}
			if string(d) != want {
				t.Errorf("round trip = %s, want %s", d, want)
			}
		})
	}
}

func TestToJSONNil(t *testing.T) {
	d, err := ToJSON(nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "null" {
		t.Errorf("ToJSON(nil) = %s", d)
	}
}

func TestFromAnyNumbers(t *testing.T) {
	a, err := FromAny(map[string]any{"n": 1})
	if err != nil {
		t.Fatal(err)
	}
	b, err := FromAny(map[string]any{"n": 1.0})
	if err != nil {
		t.Fatal(err)
	}
	if Equal(a, b) {
		t.Errorf("int and float values compare equal")
	}
}

func TestToAny(t *testing.T) {
	node, err := FromJSON([]byte(`{"a":[1,"x"],"b":null}`))
	if err != nil {
		t.Fatal(err)
	}
	m, ok := ToAny(node).(map[string]any)
	if !ok {
		t.Fatalf("ToAny = %T", ToAny(node))
	}
	arr, ok := m["a"].([]any)
	if !ok || len(arr) != 2 {
		t.Fatalf("a = %#v", m["a"])
	}
	if arr[0] != int64(1) || arr[1] != "x" {
		t.Errorf("a = %#v", arr)
	}
	if m["b"] != nil {
		t.Errorf("b = %#v", m["b"])
	}
}

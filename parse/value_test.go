package parse

import (
	"errors"
	"testing"

	"github.com/nextflow-checks/propdiff/ir"
	"github.com/nextflow-checks/propdiff/mask"
)

func TestParseValueScalars(t *testing.T) {
	tests := []struct {
		name string
		tok  string
		want *ir.Node
	}{
		{"string", "hello", ir.FromString("hello")},
		{"true", "true", ir.FromBool(true)},
		{"false", "false", ir.FromBool(false)},
		{"escaped equals", `a\=b`, ir.FromString("a=b")},
		{"escaped space", `a\ b`, ir.FromString("a b")},
		{"escaped colon", `a\:b`, ir.FromString("a:b")},
		{"surrounding space trimmed", "  x  ", ir.FromString("x")},
		{"number stays a string", "42", ir.FromString("42")},
		{"closure", "Script_ab12_run_closure3", ir.FromString(mask.Closure)},
		{"pointer", "[Ljava.lang.String;@1a2b3c",
			ir.FromString("[Ljava.lang.String;@" + mask.PointerSuffix)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValue(tt.tok)
			if err != nil {
				t.Fatalf("ParseValue(%q): %v", tt.tok, err)
			}
			if !ir.Equal(tt.want, got) {
				t.Errorf("ParseValue(%q) = %s, want %s", tt.tok, jsonText(t, got), jsonText(t, tt.want))
			}
		})
	}
}

func TestParseValueComposites(t *testing.T) {
	tests := []struct {
		name string
		tok  string
		want string
	}{
		{"empty list", "[]", `[]`},
		{"empty map", "{}", `{}`},
		{"flat list", "[a, b, c]", `["a","b","c"]`},
		{"single element list", "[x]", `["x"]`},
		{"single char trailing element", "[ab, c]", `["ab","c"]`},
		{"flat map", `{a\=1, b\=2}`, `{"a":"1","b":"2"}`},
		{"nested", `[1, {a\=2, b\=[3, 4]}]`, `["1",{"a":"2","b":["3","4"]}]`},
		{"map in map", `{outer\={inner\=v}}`, `{"outer":{"inner":"v"}}`},
		{"bool map key", `{true\=yes}`, `{"true":"yes"}`},
		{"list elements keep inner commas", "[f(x, y), z]", `["f(x, y)","z"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValue(tt.tok)
			if err != nil {
				t.Fatalf("ParseValue(%q): %v", tt.tok, err)
			}
			if s := jsonText(t, got); s != tt.want {
				t.Errorf("ParseValue(%q) = %s, want %s", tt.tok, s, tt.want)
			}
		})
	}
}

func TestParseValueErrors(t *testing.T) {
	tests := []struct {
		name string
		tok  string
	}{
		{"unbalanced brace in list", "[{a]"},
		{"map entry without separator", "{noseparator}"},
		{"unbalanced nested", `{a\={b}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseValue(tt.tok)
			if !errors.Is(err, ErrParse) {
				t.Errorf("ParseValue(%q) err = %v, want ErrParse", tt.tok, err)
			}
		})
	}
}

func jsonText(t *testing.T, node *ir.Node) string {
	t.Helper()
	d, err := ir.ToJSON(node)
	if err != nil {
		t.Fatal(err)
	}
	return string(d)
}

package parse

import (
	"fmt"
	"strings"

	"github.com/nextflow-checks/propdiff/debug"
	"github.com/nextflow-checks/propdiff/ir"
	"github.com/nextflow-checks/propdiff/mask"
	"github.com/nextflow-checks/propdiff/token"
)

// splitLine splits a line at the first '=' not preceded by a backslash.
// The key must be non-empty and contain no whitespace.
func splitLine(line string) (key, value string, ok bool) {
	for i := 1; i < len(line); i++ {
		if line[i] != '=' || line[i-1] == '\\' {
			continue
		}
		key = line[:i]
		if strings.ContainsAny(key, " \t") {
			return "", "", false
		}
		return key, line[i+1:], true
	}
	return "", "", false
}

// Parse converts a whole properties dump into a canonical tree. Each
// non-blank line must match key=value; masking is applied to the raw
// value text with the unescaped key as field path, before value
// parsing. The resulting tree has object keys in sorted order
// regardless of input line order.
func Parse(text string, opts ...Option) (*ir.Node, error) {
	o := newParseOpts(opts)

	version := mask.FindVersion(text)
	if version != "" {
		// the version field itself is always masked
		o.versionFields["manifest.version"] = true
		if debug.Parse() {
			debug.Logf("parse: masking version %q\n", version)
		}
	}

	root := &ir.Node{Type: ir.ObjectType}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rawKey, value, ok := splitLine(line)
		if !ok {
			return nil, fmt.Errorf("%w: the offending line is %q", ErrBadLine, line)
		}
		key := token.Unescape(rawKey)
		if o.datedFields[key] {
			value = mask.Dates(value)
		}
		if o.versionFields[key] {
			value = mask.Version(value, version)
		}
		if err := assign(root, key, value); err != nil {
			return nil, err
		}
	}
	ir.Sort(root)
	return root, nil
}

// jsonObjectKey is unconditionally dropped at assignment: upstream
// emits it as an always-redundant field.
const jsonObjectKey = "json_object"

func assign(obj *ir.Node, key, value string) error {
	seg, rest, dotted := strings.Cut(key, ".")
	if !dotted {
		if key == jsonObjectKey {
			return nil
		}
		v, err := ParseValue(value)
		if err != nil {
			return err
		}
		ir.Set(obj, key, v)
		return nil
	}
	child := ir.Get(obj, seg)
	if child == nil {
		child = &ir.Node{Type: ir.ObjectType}
		ir.Set(obj, seg, child)
	}
	if child.Type != ir.ObjectType {
		return fmt.Errorf("%w: key %q descends through non-map segment %q",
			ErrBadLine, key, seg)
	}
	return assign(child, rest, value)
}

package token

import (
	"fmt"
	"strings"
)

// SplitTop splits the inner text of a bracketed literal on top-level
// ", " separators. Each opener '{', '(' and '[' pushes its expected
// closer on the balance stack; separators are recognized only while
// the stack is empty. A closer that does not match the top of the
// stack, or a stack left open at end of input, is fatal.
func SplitTop(inner string) ([]string, error) {
	var (
		elems []string
		stack []byte
	)
	first := 0
	i := 0
	for i < len(inner) {
		switch c := inner[i]; c {
		case '{':
			stack = append(stack, '}')
		case '(':
			stack = append(stack, ')')
		case '[':
			stack = append(stack, ']')
		case '}', ')', ']':
			if len(stack) == 0 || stack[len(stack)-1] != c {
				return nil, fmt.Errorf("%w: unexpected %q at offset %d in %q",
					ErrUnbalanced, string(c), i, inner)
			}
			stack = stack[:len(stack)-1]
		case ',':
			if len(stack) == 0 && i+1 < len(inner) && inner[i+1] == ' ' {
				elems = append(elems, inner[first:i])
				i += 2
				first = i
				continue
			}
		}
		i++
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("%w: %d bracket(s) left open in %q",
			ErrUnbalanced, len(stack), inner)
	}
	if rest := inner[first:]; rest != "" {
		elems = append(elems, rest)
	}
	return elems, nil
}

// SplitPair splits a map entry on the first backslash-escaped '='. The
// escaped separator distinguishes the key/value boundary from bare '='
// characters inside nested values.
func SplitPair(tok string) (key, val string, err error) {
	i := strings.Index(tok, `\=`)
	if i < 0 {
		return "", "", fmt.Errorf("%w: %q", ErrNoPairSep, tok)
	}
	return tok[:i], tok[i+2:], nil
}

// Unescape removes a backslash immediately preceding a space, '=' or
// ':', leaving the following character literal.
func Unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case ' ', '=', ':':
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

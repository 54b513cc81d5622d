// Package token provides low-level scanning for the resolved-config
// properties grammar: top-level splitting of bracketed literals,
// escaped key/value pair splitting, and backslash unescaping.
//
// The grammar is a Java-properties style serialization. Structural
// characters inside values are backslash-escaped only where they would
// otherwise be ambiguous (space, '=', ':'); list and map delimiters are
// never escaped, so splitting must track bracket depth rather than
// splitting naively.
package token

// Package mask rewrites volatile values in resolved-config text so that
// comparisons are insensitive to wall clocks, release versions and
// memory addresses. All matchers are compiled once at init and are
// read-only afterwards, safe for unsynchronized concurrent use.
package mask

import (
	"regexp"
	"strings"
)

const (
	// DateSentinel replaces serialized timestamps in dated fields.
	// The date is Pathfinder's landing.
	DateSentinel = "19970704T165655Z"

	// VersionSentinel replaces the detected manifest version in
	// version-masked fields.
	VersionSentinel = "VER.SI.ON"

	// PointerSuffix replaces the hex address of a pointer-like token.
	PointerSuffix = "dec0ded"

	// Closure is the fixed stand-in for unrepresentable closure values.
	Closure = "closure()"
)

var (
	closureRE = regexp.MustCompile(`^Script\S+_run_closure`)
	dateRE    = regexp.MustCompile(`\d{8}T\d{6}Z`)
	pointerRE = regexp.MustCompile(`^(\[?Ljava\..*;@)(\w+)$`)
	versionRE = regexp.MustCompile(`(?m)^manifest\.version=(.*)$`)
)

// Dates replaces every YYYYMMDDThhmmssZ timestamp in value with
// DateSentinel.
func Dates(value string) string {
	return dateRE.ReplaceAllString(value, DateSentinel)
}

// StripDates removes every timestamp from value. Used to decide whether
// two values differ only by date.
func StripDates(value string) string {
	return dateRE.ReplaceAllString(value, "")
}

// Version replaces every occurrence of version in value with
// VersionSentinel. No-op when version is empty.
func Version(value, version string) string {
	if version == "" {
		return value
	}
	return strings.ReplaceAll(value, version, VersionSentinel)
}

// FindVersion scans a whole properties dump for a manifest.version line
// and returns its raw value, or "" when absent.
func FindVersion(text string) string {
	m := versionRE.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}

// IsClosure reports whether tok is a compiler-generated closure
// identifier. Closures are unrepresentable; callers substitute Closure
// so equality does not fail on compiler-assigned suffixes.
func IsClosure(tok string) bool {
	return closureRE.MatchString(tok)
}

// Pointer masks the memory address of a pointer-like token (the default
// string form of a native array object) with PointerSuffix, preserving
// the type prefix verbatim. The second result reports whether tok was
// pointer-like.
func Pointer(tok string) (string, bool) {
	if !pointerRE.MatchString(tok) {
		return tok, false
	}
	return pointerRE.ReplaceAllString(tok, "${1}"+PointerSuffix), true
}

// Package debug gates trace output on PROPDIFF_DEBUG_* environment
// variables.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Diff  bool
	Check bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("PROPDIFF_DEBUG_PARSE")
	d.Diff = boolEnv("PROPDIFF_DEBUG_DIFF")
	d.Check = boolEnv("PROPDIFF_DEBUG_CHECK")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Diff() bool {
	return d.Diff
}
func Check() bool {
	return d.Check
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

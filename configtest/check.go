package configtest

import (
	"strings"

	"github.com/nextflow-checks/propdiff/debug"
	"github.com/nextflow-checks/propdiff/ir"
	"github.com/nextflow-checks/propdiff/libdiff"
	"github.com/nextflow-checks/propdiff/mask"
	"github.com/nextflow-checks/propdiff/parse"
)

// Sentinel separates arbitrary pipeline stdout from the configuration
// dump that follows it.
const Sentinel = "=========SENTINEL_OUTPUT=========="

// ExtractOutput returns the text after the last occurrence of Sentinel,
// or all of raw when the sentinel is absent.
func ExtractOutput(raw string) string {
	if i := strings.LastIndex(raw, Sentinel); i >= 0 {
		return raw[i+len(Sentinel):]
	}
	return raw
}

// namespaces defined by shared submodules, present in every pipeline
// and never interesting to compare
var boringKeys = []string{
	"bam_parser",
	"csv_parser",
	"custom_schema_types",
	"json_extractor",
	"methods",
	"retry",
	"schema",
}

// Result is the outcome of checking a dump against a case.
type Result struct {
	Actual        *ir.Node
	Differences   []libdiff.Delta
	FailedAsserts []AssertFailure
}

// OK reports whether the dump matched the expectations.
func (r *Result) OK() bool {
	return len(r.Differences) == 0 && len(r.FailedAsserts) == 0
}

// Check parses the raw runner output and compares it with the case's
// expected result. Differences on dated fields whose two sides are
// equal once timestamps are stripped are filtered out.
func (c *Case) Check(raw string) (*Result, error) {
	text := ExtractOutput(raw)
	actual, err := parse.Parse(text,
		parse.DatedFields(c.DatedFields...),
		parse.VersionFields(c.VersionFields...))
	if err != nil {
		return nil, err
	}
	for _, key := range boringKeys {
		ir.Delete(actual, key)
	}
	ds := libdiff.Diff(c.ExpectedResult, actual)
	ds = filterDated(ds, c.DatedFields)
	if debug.Check() {
		debug.Logf("check: %d difference(s) after date filter\n", len(ds))
	}
	res := &Result{Actual: actual, Differences: ds}
	for _, src := range c.Asserts {
		if fail := evalAssert(src, actual); fail != nil {
			res.FailedAsserts = append(res.FailedAsserts, *fail)
		}
	}
	return res, nil
}

// filterDated drops differences on dated fields that exist only because
// of embedded timestamps.
func filterDated(ds []libdiff.Delta, dated []string) []libdiff.Delta {
	if len(dated) == 0 || len(ds) == 0 {
		return ds
	}
	set := make(map[string]bool, len(dated))
	for _, f := range dated {
		set[f] = true
	}
	res := make([]libdiff.Delta, 0, len(ds))
	for _, d := range ds {
		if set[strings.TrimLeft(d.Path, ".")] && dateOnlyChange(&d) {
			continue
		}
		res = append(res, d)
	}
	return res
}

func dateOnlyChange(d *libdiff.Delta) bool {
	if d.From == nil || d.To == nil {
		return false
	}
	if d.From.Type != ir.StringType || d.To.Type != ir.StringType {
		return false
	}
	return mask.StripDates(d.From.String) == mask.StripDates(d.To.String)
}

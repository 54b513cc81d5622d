package encode

import (
	"fmt"
	"io"
	"os"

	"github.com/nextflow-checks/propdiff/ir"
	"github.com/nextflow-checks/propdiff/libdiff"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Colors struct {
	Path func(string, ...any) string
	From func(string, ...any) string
	To   func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Path: color.New(color.Bold).SprintfFunc(),
		From: color.RedString,
		To:   color.GreenString,
	}
}

type deltaOpts struct {
	colors *Colors
	inline bool
}

type DeltaOption func(*deltaOpts)

// WithColors renders paths bold, before-values red and after-values
// green.
func WithColors(c *Colors) DeltaOption {
	return func(o *deltaOpts) {
		o.colors = c
	}
}

// AutoColors enables colors when w is a terminal.
func AutoColors(w io.Writer) DeltaOption {
	return func(o *deltaOpts) {
		f, ok := w.(*os.File)
		if !ok {
			return
		}
		if isatty.IsTerminal(f.Fd()) {
			o.colors = NewColors()
		}
	}
}

// InlineStringDiffs adds a character-level diff line for changed string
// pairs whose difference is small relative to the strings themselves.
func InlineStringDiffs() DeltaOption {
	return func(o *deltaOpts) {
		o.inline = true
	}
}

// Deltas writes one block per delta: the path, the before value, the
// after value, and a separator line. Paths are written verbatim,
// including the bare-key form used for one-sided map keys. Absent
// sides render as null.
func Deltas(w io.Writer, deltas []libdiff.Delta, opts ...DeltaOption) error {
	o := &deltaOpts{}
	for _, f := range opts {
		f(o)
	}
	c := o.colors
	if c == nil {
		c = &Colors{Path: plain, From: plain, To: plain}
	}
	for i := range deltas {
		d := &deltas[i]
		if _, err := fmt.Fprintln(w, c.Path(escapePercent(d.Path))); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, c.From(escapePercent(MustString(d.From)))); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, c.To(escapePercent(MustString(d.To)))); err != nil {
			return err
		}
		if o.inline {
			if err := inlineStringDiff(w, d); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "------"); err != nil {
			return err
		}
	}
	return nil
}

func plain(v string, args ...any) string { return fmt.Sprintf(v, args...) }

// fatih/color formatting funcs treat their argument as a format string
func escapePercent(v string) string {
	res := make([]byte, 0, len(v))
	for i := 0; i < len(v); i++ {
		if v[i] == '%' {
			res = append(res, '%', '%')
			continue
		}
		res = append(res, v[i])
	}
	return string(res)
}

func inlineStringDiff(w io.Writer, d *libdiff.Delta) error {
	if d.From == nil || d.To == nil {
		return nil
	}
	if d.From.Type != ir.StringType || d.To.Type != ir.StringType {
		return nil
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(d.From.String, d.To.String, false)
	diffSize := 0
	for i := range diffs {
		if diffs[i].Type != diffpatch.DiffEqual {
			diffSize += len(diffs[i].Text)
		}
	}
	// a full replacement is already legible from the two value lines
	if diffSize == 0 || diffSize > min(len(d.From.String), len(d.To.String))/2 {
		return nil
	}
	_, err := fmt.Fprintln(w, diffCfg.DiffPrettyText(diffs))
	return err
}

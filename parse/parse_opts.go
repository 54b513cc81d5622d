package parse

type parseOpts struct {
	datedFields   map[string]bool
	versionFields map[string]bool
}

type Option func(*parseOpts)

// DatedFields names field paths whose timestamps are replaced with the
// date sentinel. The caller's slice is copied.
func DatedFields(fields ...string) Option {
	return func(o *parseOpts) {
		for _, f := range fields {
			o.datedFields[f] = true
		}
	}
}

// VersionFields names field paths in which occurrences of the detected
// manifest version are replaced with the version sentinel. The parser
// extends its local copy with "manifest.version" when the dump carries
// one; the caller's slice is never mutated.
func VersionFields(fields ...string) Option {
	return func(o *parseOpts) {
		for _, f := range fields {
			o.versionFields[f] = true
		}
	}
}

func newParseOpts(opts []Option) *parseOpts {
	o := &parseOpts{
		datedFields:   map[string]bool{},
		versionFields: map[string]bool{},
	}
	for _, f := range opts {
		f(o)
	}
	return o
}

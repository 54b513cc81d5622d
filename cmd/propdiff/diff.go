package main

import (
	"bytes"
	"fmt"

	"github.com/nextflow-checks/propdiff/encode"
	"github.com/nextflow-checks/propdiff/ir"
	"github.com/nextflow-checks/propdiff/libdiff"
	"github.com/nextflow-checks/propdiff/parse"

	"github.com/scott-cotton/cli"
)

func diffCmd(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes two files, got %d", cli.ErrUsage, len(args))
	}
	a, err := loadDoc(cfg, cc, args[0])
	if err != nil {
		return err
	}
	b, err := loadDoc(cfg, cc, args[1])
	if err != nil {
		return err
	}
	deltas := libdiff.Diff(a, b)
	if len(deltas) == 0 {
		return nil
	}
	if err := encode.Deltas(cc.Out, deltas, cfg.deltaOpts(cc.Out)...); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

// loadDoc reads a document, treating it as JSON when it looks like
// JSON and as a properties document otherwise.
func loadDoc(cfg *DiffConfig, cc *cli.Context, arg string) (*ir.Node, error) {
	d, err := readArg(cc, arg)
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(d)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		node, err := ir.FromJSON(trimmed)
		if err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", arg, err)
		}
		ir.Sort(node)
		return node, nil
	}
	node, err := parse.Parse(string(d), cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", arg, err)
	}
	return node, nil
}

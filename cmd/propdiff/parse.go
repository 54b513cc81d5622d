package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nextflow-checks/propdiff/encode"
	"github.com/nextflow-checks/propdiff/parse"

	"github.com/scott-cotton/cli"
)

func parseCmd(cfg *ParseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse.Parse(cc, args)
	if err != nil {
		return err
	}
	var arg string
	switch len(args) {
	case 0:
		arg = "-"
	case 1:
		arg = args[0]
	default:
		return fmt.Errorf("%w: parse takes at most one file, got %d", cli.ErrUsage, len(args))
	}
	d, err := readArg(cc, arg)
	if err != nil {
		return err
	}
	node, err := parse.Parse(string(d), cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", arg, err)
	}
	if err := encode.Encode(node, cc.Out); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err = fmt.Fprintln(cc.Out)
	return err
}

func readArg(cc *cli.Context, arg string) ([]byte, error) {
	var r io.Reader
	if arg == "-" {
		r = cc.In
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	return io.ReadAll(r)
}

package main

import (
	"io"
	"os"
	"strings"

	"github.com/nextflow-checks/propdiff/encode"
	"github.com/nextflow-checks/propdiff/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colored delta output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) deltaOpts(w io.Writer) []encode.DeltaOption {
	res := []encode.DeltaOption{
		encode.InlineStringDiffs(),
	}
	if cfg.Color {
		res = append(res, encode.WithColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.WithColors(encode.NewColors()))
	}
	return res
}

type ParseConfig struct {
	*MainConfig

	Dated   string `cli:"name=dated desc='comma separated key paths whose dates are masked'"`
	Version string `cli:"name=version desc='comma separated key paths masked with the version sentinel'"`

	Parse *cli.Command
}

func (cfg *ParseConfig) parseOpts() []parse.Option {
	return []parse.Option{
		parse.DatedFields(splitFields(cfg.Dated)...),
		parse.VersionFields(splitFields(cfg.Version)...),
	}
}

type DiffConfig struct {
	*MainConfig

	Dated   string `cli:"name=dated desc='comma separated key paths whose dates are masked'"`
	Version string `cli:"name=version desc='comma separated key paths masked with the version sentinel'"`

	Diff *cli.Command
}

func (cfg *DiffConfig) parseOpts() []parse.Option {
	return []parse.Option{
		parse.DatedFields(splitFields(cfg.Dated)...),
		parse.VersionFields(splitFields(cfg.Version)...),
	}
}

type CheckConfig struct {
	*MainConfig

	Update bool `cli:"name=u aliases=update desc='write an updated case file next to the original on failure'"`
	Patch  bool `cli:"name=patch desc='print a merge patch from expected to actual on failure'"`

	Check *cli.Command
}

func splitFields(s string) []string {
	if s == "" {
		return nil
	}
	var res []string
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		res = append(res, f)
	}
	return res
}

package main

import (
	"fmt"

	"github.com/nextflow-checks/propdiff/configtest"
	"github.com/nextflow-checks/propdiff/encode"

	"github.com/scott-cotton/cli"
)

// exit code distinguishing "ran, found differences" from hard failures
const differencesExitCode = 82

func checkCmd(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: check takes a case file and an output file, got %d args", cli.ErrUsage, len(args))
	}
	caseFile, outFile := args[0], args[1]
	c, err := configtest.Load(caseFile)
	if err != nil {
		return err
	}
	raw, err := readArg(cc, outFile)
	if err != nil {
		return err
	}
	res, err := c.Check(string(raw))
	if err != nil {
		return fmt.Errorf("error checking %s: %w", outFile, err)
	}
	if res.OK() {
		return nil
	}
	if len(res.Differences) > 0 {
		if err := encode.Deltas(cc.Out, res.Differences, cfg.deltaOpts(cc.Out)...); err != nil {
			return err
		}
	}
	for i := range res.FailedAsserts {
		fmt.Fprintf(cc.Out, "assert failed: %s\n", res.FailedAsserts[i].String())
	}
	if cfg.Patch {
		patch, err := configtest.MergePatch(c.ExpectedResult, res.Actual)
		if err != nil {
			return fmt.Errorf("error computing merge patch: %w", err)
		}
		fmt.Fprintf(cc.Out, "%s\n", patch)
	}
	if cfg.Update {
		updated := c.WithResult(res.Actual)
		path := configtest.UpdatePath(caseFile)
		if err := updated.Write(path); err != nil {
			return fmt.Errorf("error writing %s: %w", path, err)
		}
		fmt.Fprintf(cc.Out, "saved updated case to %s\n", path)
	}
	return cli.ExitCodeErr(differencesExitCode)
}

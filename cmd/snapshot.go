package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/limitcalc"
	"github.com/etnz/limitcalc/renderer"
	"github.com/google/subcommands"
)

type snapshotCmd struct {
	holdingFlags
	asJSON bool
}

func (*snapshotCmd) Name() string     { return "snapshot" }
func (*snapshotCmd) Synopsis() string { return "value a holding at the current price" }
func (*snapshotCmd) Usage() string {
	return `lcs snapshot [-n <position>] [-cost <price>] [-price <price>] [-json]

  Displays the total cost, market value and profit of a holding at the
  current price. Inputs not given are taken from the saved parameters.
`
}

func (c *snapshotCmd) SetFlags(f *flag.FlagSet) {
	c.holdingFlags.SetFlags(f)
	f.BoolVar(&c.asJSON, "json", false, "print the snapshot as JSON")
}

func (c *snapshotCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	params, closeParams, err := OpenParams(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening parameters store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeParams()

	in := c.resolve(f, params)
	in.Days = limitcalc.DefaultDays
	// the limit plays no part in the snapshot.
	if err := in.Validate(); err != nil && !errors.Is(err, limitcalc.ErrInvalidLimitPercent) {
		return inputError(err)
	}
	snapshot := limitcalc.ComputeInitialSnapshot(in.Position, in.CostPrice, in.CurrentPrice)

	if c.asJSON {
		if err := printJSON(snapshot); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing JSON: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	fmtr, err := formatter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.SnapshotMarkdown(snapshot, fmtr))
	return subcommands.ExitSuccess
}

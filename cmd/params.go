package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/limitcalc/renderer"
	"github.com/google/subcommands"
)

// saveCmd holds the flags for the 'save' subcommand.
type saveCmd struct {
	holdingFlags
}

func (*saveCmd) Name() string     { return "save" }
func (*saveCmd) Synopsis() string { return "save the default projection parameters" }
func (*saveCmd) Usage() string {
	return `lcs save [-n <position>] [-cost <price>] [-price <price>] [-limit <pct>]

  Saves the parameters used by default by the other commands. Parameters not
  given keep their saved value, so updating the current price alone is:

$ lcs save -price 11.35

`
}

func (c *saveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	params, closeParams, err := OpenParams(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening parameters store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeParams()

	in := c.resolve(f, params)
	in.Days = 1
	if err := in.Validate(); err != nil {
		return inputError(err)
	}
	if !params.Save(parameters(in)) {
		fmt.Fprintf(os.Stderr, "Error: could not save the parameters (run with -v for details).\n")
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Parameters saved.\n")
	return subcommands.ExitSuccess
}

// loadCmd holds the flags for the 'load' subcommand.
type loadCmd struct {
	asJSON bool
}

func (*loadCmd) Name() string     { return "load" }
func (*loadCmd) Synopsis() string { return "display the saved projection parameters" }
func (*loadCmd) Usage() string {
	return `lcs load [-json]

  Displays the saved parameters. Exits with status 1 when there are none.
`
}

func (c *loadCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.asJSON, "json", false, "print the parameters as JSON")
}

func (c *loadCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	params, closeParams, err := OpenParams(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening parameters store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeParams()

	saved, ok := params.Load()
	if !ok {
		fmt.Fprintf(os.Stderr, "No saved parameters.\n")
		return subcommands.ExitFailure
	}

	if c.asJSON {
		o := inputOutput{
			Position:     saved.Position,
			CostPrice:    saved.CostPrice,
			CurrentPrice: saved.CurrentPrice,
			LimitPercent: saved.LimitPercent,
		}
		if err := printJSON(o); err != nil {
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
	printMarkdown(renderer.ParametersMarkdown(saved, fmtr))
	return subcommands.ExitSuccess
}

type clearCmd struct{}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "forget the saved projection parameters" }
func (*clearCmd) Usage() string {
	return `lcs clear

  Deletes the saved parameters.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {}

func (c *clearCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	params, closeParams, err := OpenParams(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening parameters store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeParams()

	if !params.Clear() {
		fmt.Fprintf(os.Stderr, "Error: could not clear the parameters (run with -v for details).\n")
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Parameters cleared.\n")
	return subcommands.ExitSuccess
}

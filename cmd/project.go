package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/limitcalc"
	"github.com/etnz/limitcalc/date"
	"github.com/etnz/limitcalc/renderer"
	"github.com/google/subcommands"
)

// projectCmd holds the flags for the 'project' subcommand.
type projectCmd struct {
	holdingFlags
	days   limitcalc.Days
	start  string
	save   bool
	asJSON bool
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project consecutive limit-up and limit-down days" }
func (*projectCmd) Usage() string {
	return `lcs project [-n <position>] [-cost <price>] [-price <price>] [-limit <pct>] [-days <n>] [-d <date>] [-save] [-json]

  Projects the price, market value and profit of a holding over consecutive
  trading days that all close at the daily limit, on the way up and on the
  way down.

  Inputs not given on the command line are taken from the saved parameters.

Usage Examples:
# 1000 shares bought at 10.5, now at 11.2, on a ±10% market.
$ lcs project -n 1000 -cost 10.5 -price 11.2 -limit 10

# Same, on the next 3 trading days, and remember the inputs.
$ lcs project -n 1000 -cost 10.5 -price 11.2 -limit 10 -days 3 -d today -save

`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	c.holdingFlags.SetFlags(f)
	c.days = defaultDays()
	f.Var(&c.days, "days", "number of consecutive limit days to project")
	f.StringVar(&c.start, "d", "", "label projected days with the trading days following this date (YYYY-MM-DD or 'today')")
	f.BoolVar(&c.save, "save", false, "save the inputs as the new default parameters")
	f.BoolVar(&c.asJSON, "json", false, "print the projection as JSON")
}

func (c *projectCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	params, closeParams, err := OpenParams(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening parameters store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeParams()

	in := c.resolve(f, params)
	in.Days = int(c.days)
	if in.Start, err = parseStart(c.start); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	days, err := limitcalc.ProjectLimitTrajectory(in)
	if err != nil {
		return inputError(err)
	}
	snapshot := limitcalc.ComputeInitialSnapshot(in.Position, in.CostPrice, in.CurrentPrice)

	if c.save && !params.Save(parameters(in)) {
		fmt.Fprintf(os.Stderr, "Warning: could not save the parameters.\n")
	}

	if c.asJSON {
		if err := printJSON(projectionOutput{
			Input:    newInputOutput(in),
			Snapshot: snapshot,
			Days:     days,
		}); err != nil {
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
	printMarkdown(renderer.ProjectionMarkdown(&renderer.ProjectionReport{
		Snapshot:     snapshot,
		LimitPercent: in.LimitPercent,
		Days:         days,
	}, fmtr))
	return subcommands.ExitSuccess
}

// parseStart parses the -d flag. "" means no date labels.
func parseStart(s string) (date.Date, error) {
	switch s {
	case "":
		return date.Date{}, nil
	case "today":
		return date.Today(), nil
	}
	return date.Parse(s)
}

type inputOutput struct {
	Position     limitcalc.Quantity `json:"position"`
	CostPrice    limitcalc.Money    `json:"costPrice"`
	CurrentPrice limitcalc.Money    `json:"currentPrice"`
	LimitPercent limitcalc.Percent  `json:"limitPercent"`
	Days         int                `json:"days,omitempty"`
	Start        string             `json:"start,omitempty"`
}

func newInputOutput(in limitcalc.HoldingInput) inputOutput {
	return inputOutput{
		Position:     in.Position,
		CostPrice:    in.CostPrice,
		CurrentPrice: in.CurrentPrice,
		LimitPercent: in.LimitPercent,
		Days:         in.Days,
		Start:        in.Start.String(),
	}
}

type projectionOutput struct {
	Input    inputOutput               `json:"input"`
	Snapshot limitcalc.InitialSnapshot `json:"snapshot"`
	Days     []limitcalc.DayProjection `json:"days"`
}

func printJSON(v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

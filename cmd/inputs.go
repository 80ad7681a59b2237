package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/limitcalc"
	"github.com/etnz/limitcalc/store"
	"github.com/google/subcommands"
)

// holdingFlags are the inputs shared by the commands that work on a holding.
// Inputs that are not given on the command line are taken from the stored
// parameters, then from the configuration.
type holdingFlags struct {
	position     limitcalc.Quantity
	costPrice    limitcalc.Money
	currentPrice limitcalc.Money
	limitPercent limitcalc.Percent
}

func (h *holdingFlags) SetFlags(f *flag.FlagSet) {
	f.Var(&h.position, "n", "position: number of shares held")
	f.Var(&h.costPrice, "cost", "average cost price per share")
	f.Var(&h.currentPrice, "price", "current price per share")
	f.Var(&h.limitPercent, "limit", "daily price limit in percent, e.g. 10 for ±10%")
}

// resolve returns the holding from the flags explicitly set in f, completed
// with the stored parameters (when params is not nil) and the configured
// limit.
func (h *holdingFlags) resolve(f *flag.FlagSet, params *store.Params) limitcalc.HoldingInput {
	set := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	in := limitcalc.HoldingInput{
		Position:     h.position,
		CostPrice:    h.costPrice,
		CurrentPrice: h.currentPrice,
		LimitPercent: h.limitPercent,
	}
	if params != nil {
		if saved, ok := params.Load(); ok {
			if !set["n"] {
				in.Position = saved.Position
			}
			if !set["cost"] {
				in.CostPrice = saved.CostPrice
			}
			if !set["price"] {
				in.CurrentPrice = saved.CurrentPrice
			}
			if !set["limit"] {
				in.LimitPercent = saved.LimitPercent
			}
			// the stored limit wins over the configured one.
			set["limit"] = true
		}
	}
	if !set["limit"] && config.IsSet("limit") {
		var p limitcalc.Percent
		if err := p.Set(config.GetString("limit")); err == nil {
			in.LimitPercent = p
		}
	}
	return in
}

// parameters returns the store form of in.
func parameters(in limitcalc.HoldingInput) store.Parameters {
	return store.Parameters{
		Position:     in.Position,
		CostPrice:    in.CostPrice,
		CurrentPrice: in.CurrentPrice,
		LimitPercent: in.LimitPercent,
	}
}

// defaultDays returns the configured projection horizon.
func defaultDays() limitcalc.Days {
	days := limitcalc.Days(limitcalc.DefaultDays)
	if config.IsSet("days") {
		if err := days.Set(config.GetString("days")); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: ignoring configured days: %v\n", err)
			return limitcalc.DefaultDays
		}
	}
	return days
}

// inputError reports err to the user and returns the matching exit status:
// validation errors are usage errors.
func inputError(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	for _, sentinel := range []error{
		limitcalc.ErrInvalidPosition,
		limitcalc.ErrInvalidCostPrice,
		limitcalc.ErrInvalidCurrentPrice,
		limitcalc.ErrInvalidLimitPercent,
		limitcalc.ErrInvalidDays,
	} {
		if errors.Is(err, sentinel) {
			return subcommands.ExitUsageError
		}
	}
	return subcommands.ExitFailure
}

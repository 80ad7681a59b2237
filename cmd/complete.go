package cmd

import (
	"flag"

	"github.com/etnz/limitcalc/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of lcs: global flags,
// subcommands with their flags, and topic names for 'topic'.
//
// Install it in bash with COMP_INSTALL=1 lcs.
func Completion() *complete.Command {
	root := &complete.Command{
		Flags: flagPredictors(flag.CommandLine),
		Sub:   make(map[string]*complete.Command),
	}
	for _, c := range Commands {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		root.Sub[c.Name()] = &complete.Command{Flags: flagPredictors(f)}
	}
	topics, _ := docs.GetAllTopics()
	root.Sub["topic"].Args = predict.Set(append(topics, "*"))
	return root
}

// flagPredictors predicts values for the flags of f.
func flagPredictors(f *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		switch fl.Name {
		case "store":
			flags[fl.Name] = predict.Dirs("*")
		case "currency":
			flags[fl.Name] = predict.Set{"CNY", "HKD", "USD", "EUR", "JPY", "KRW", "TWD"}
		case "d":
			flags[fl.Name] = predict.Set{"today"}
		default:
			if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
				flags[fl.Name] = predict.Nothing
			} else {
				flags[fl.Name] = predict.Something
			}
		}
	})
	return flags
}

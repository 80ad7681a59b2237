// Command lcs projects a stock holding over consecutive limit-up and
// limit-down days.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/limitcalc/cmd"
	"github.com/google/subcommands"
)

func main() {
	name := path.Base(os.Args[0])
	cmd.Completion().Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	// unknown commands are looked up as lcs-<command> extensions.
	if sub := flag.Arg(0); sub != "" && !cmd.IsCommand(sub) && !isBuiltin(sub) {
		if found, code := cmd.RunExtension(sub, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}

func isBuiltin(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	return false
}

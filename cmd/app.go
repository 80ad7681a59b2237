// Package cmd implements the lcs command line application.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/limitcalc/renderer"
	"github.com/etnz/limitcalc/store"
	"github.com/google/subcommands"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Commands lists the lcs subcommands, in help order.
var Commands = []subcommands.Command{
	&projectCmd{},
	&snapshotCmd{},
	&saveCmd{},
	&loadCmd{},
	&clearCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands[:2] {
		c.Register(cmd, "projection")
	}
	for _, cmd := range Commands[2:5] {
		c.Register(cmd, "parameters")
	}
	c.Register(Commands[5], "")
}

// IsCommand reports whether name is one of the lcs subcommands.
func IsCommand(name string) bool {
	for _, c := range Commands {
		if c.Name() == name {
			return true
		}
	}
	return false
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// config holds the defaults of the global flags, read from LCS_* environment
// variables and the optional lcs.yaml file.
var config = loadConfig()

var (
	storeLocation   = flag.String("store", config.GetString("store"), "Parameters store: a folder or a postgres:// URL. Defaults to the user config folder.")
	defaultCurrency = flag.String("currency", config.GetString("currency"), "ISO 4217 code of the quotation currency")
	rawMarkdown     = flag.Bool("markdown", false, "print raw markdown instead of rendering it for the terminal")
	Verbose         = flag.Bool("v", false, "verbose logging")
)

// out is where commands print their results.
var out io.Writer = os.Stdout

func loadConfig() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("LCS")
	v.AutomaticEnv()
	v.SetDefault("store", "")
	v.SetDefault("currency", renderer.DefaultCurrency)

	v.SetConfigName("lcs")
	v.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, store.DefaultDirName))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "Warning: ignoring config file: %v\n", err)
		}
	}
	return v
}

// logger returns the logger of the run: a development logger in verbose mode,
// a no-op one otherwise.
func logger() *zap.Logger {
	if !*Verbose {
		return zap.NewNop()
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// OpenParams opens the parameters store designated by the -store flag.
// The returned function closes it.
func OpenParams(ctx context.Context) (*store.Params, func(), error) {
	log := logger()
	kv, err := store.Open(ctx, *storeLocation)
	if err != nil {
		return nil, nil, err
	}
	closer := func() {
		if err := kv.Close(); err != nil {
			log.Warn("cannot close store", zap.Error(err))
		}
		_ = log.Sync()
	}
	return store.NewParams(kv, store.WithLogger(log)), closer, nil
}

// formatter returns the formatter of the -currency flag.
func formatter() (*renderer.Formatter, error) {
	return renderer.NewFormatter(*defaultCurrency)
}

// printMarkdown renders md for the terminal, or prints it as is with -markdown.
func printMarkdown(md string) {
	if *rawMarkdown {
		fmt.Fprint(out, md)
		return
	}
	rendered, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Fprint(out, md)
		return
	}
	fmt.Fprint(out, rendered)
}

package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"syscall"

	"go.uber.org/zap"
)

// Environment variables passing the global flags to extensions.
const (
	EnvStore    = "LCS_STORE"
	EnvCurrency = "LCS_CURRENCY"
	EnvVerbose  = "LCS_VERBOSE"
)

// RunExtension attempts to find and execute an external lcs-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	log := logger()
	defer log.Sync()

	name := "lcs-" + subcommand
	lp, err := exec.LookPath(name)
	if err != nil {
		log.Debug("extension not found in PATH", zap.String("extension", name), zap.Error(err))
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// global flags travel as environment variables, the extension reads them
	// the same way lcs reads its configuration.
	cmd.Env = append(os.Environ(),
		EnvStore+"="+*storeLocation,
		EnvCurrency+"="+*defaultCurrency,
		EnvVerbose+"="+strconv.FormatBool(*Verbose),
	)

	log.Debug("running extension", zap.String("path", lp), zap.Strings("args", args))
	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}

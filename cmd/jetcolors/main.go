package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AvengeMedia/jetcolors/internal/config"
	"github.com/AvengeMedia/jetcolors/internal/log"
	"github.com/spf13/afero"
)

func main() {
	os.Exit(run(os.Args[1:], os.LookupEnv, afero.NewOsFs(), os.Stdout, os.Stderr))
}

// run returns the process exit code. A missing input prints the bare
// diagnostic to stderr; format and pipeline errors are logged.
func run(args []string, lookup config.LookupFunc, fs afero.Fs, stdout, stderr io.Writer) int {
	log.SetOutput(stderr)
	log.SetLevel("info")

	cmd := newRootCmd(lookup, fs)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var cfgErr *config.ConfigurationError
	if errors.As(err, &cfgErr) {
		fmt.Fprintln(stderr, cfgErr.Error())
		return 1
	}

	log.Errorf("%v", err)
	return 1
}

package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds the parsed command line.
type cliFlags struct {
	config  string
	quiet   bool
	verbose bool
	version bool
	help    bool
}

// buildFlagSet creates the FlagSet bound to f. Parse errors are returned,
// never printed, so callers control where usage goes.
func buildFlagSet(f *cliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("md2site", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	fs.StringVarP(&f.config, "config", "c", "", "config file path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log every written file")
	fs.BoolVar(&f.version, "version", false, "show version and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "show this help")
	return fs
}

// parseFlags parses args (without the program name) and returns the flags
// plus any positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	f := &cliFlags{}
	fs := buildFlagSet(f)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

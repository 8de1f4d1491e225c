package main

import (
	"github.com/spf13/pflag"

	"github.com/matsen/ris2bib/internal/config"
)

// options holds the values of the command line flags.
type options struct {
	output   string
	logLevel string
}

// registerFlags registers all CLI flags on the given FlagSet
func registerFlags(flags *pflag.FlagSet, opts *options) {
	flags.StringVarP(&opts.output, "output", "o", "", "Write entries to this file instead of stdout")
	flags.StringVar(&opts.logLevel, "log-level", "", "Diagnostic log level on stderr: debug, info, warn, error (default from "+config.EnvLogLevel+", else "+config.DefaultLogLevel+")")
}

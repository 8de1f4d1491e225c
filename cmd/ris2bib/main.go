// Package main provides the ris2bib CLI entry point.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matsen/ris2bib/internal/config"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	config.LoadEnv()
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes the command line in args and returns the process exit code.
// args[0] is the program name shown in the usage message.
func run(args []string, stdout, stderr io.Writer) int {
	prog := "ris2bib"
	if len(args) > 0 {
		prog = args[0]
		args = args[1:]
	}
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}

	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		var ue *usageError
		if errors.As(err, &ue) {
			if ue.reason != "" {
				fmt.Fprintf(stderr, "Error: %s\n", ue.reason)
			}
			fmt.Fprintf(stderr, "Usage: %s <file.ris>\n", prog)
			return ExitError
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}
	return ExitSuccess
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "ris2bib <file.ris>",
		Short: "Convert RIS citations to BibTeX",
		Long: `ris2bib converts bibliographic records in RIS format to BibTeX entries.

Every record of the input file becomes one entry on standard output, in
input order. Missing fields are written empty; nothing is validated.

Examples:
  ris2bib refs.ris
  ris2bib refs.ris > refs.bib
  ris2bib refs.ris --output refs.bib`,
		Args: exactlyOneFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(opts, args[0], stdout, stderr)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{reason: err.Error()}
	})
	registerFlags(cmd.Flags(), opts)

	return cmd
}

// usageError reports a malformed command line. reason is empty when only
// the argument count is wrong.
type usageError struct {
	reason string
}

func (e *usageError) Error() string {
	if e.reason == "" {
		return "expected exactly one input file"
	}
	return e.reason
}

func exactlyOneFile(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return &usageError{}
	}
	return nil
}

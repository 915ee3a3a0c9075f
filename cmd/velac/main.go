// Command velac is a thin driver over the front end: its parse command lexes
// and parses a file and prints the AST, and its tokens command lexes input a
// line at a time. It does not run the type store or the IR emitter.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Version info, set by ldflags during build.
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"

	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

var traceFlag bool

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "velac",
		Short:   "Vela front end: lexer, parser, type store, and IR emitter",
		Version: fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildTime),
	}
	root.PersistentFlags().BoolVar(&traceFlag, "trace", false, "enable enter/leave/message tracing")
	root.AddCommand(newParseCmd())
	root.AddCommand(newTokensCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("error"), err)
		os.Exit(1)
	}
}

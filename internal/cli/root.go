// Package cli implements the parsby command-line diagnostic tool: a
// thin Cobra surface over the library's bundled grammars, used to
// exercise parse/trace against a file or stdin. It is the one place in
// the repository that talks to a logger, a terminal, or the filesystem
// — the library core in the parent package stays pure.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var verbose bool
var renderWidth = newWidthValue(120)

// NewRootCommand builds the root "parsby" Cobra command with its
// subcommands attached. Main calls this and Execute()s the result.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "parsby",
		Short: "Exercise the parsby combinator library against a bundled grammar",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbosity := 0
			if verbose {
				verbosity = 1
			}
			commonlog.Configure(verbosity, nil)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log parse attempts, timing, and failures")
	root.PersistentFlags().Var(renderWidth, "width", "diagnostic render width")

	root.AddCommand(newParseCmd())
	root.AddCommand(newTraceCmd())

	return root
}

// Main is the entry point cmd/parsby/main.go calls.
func Main() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

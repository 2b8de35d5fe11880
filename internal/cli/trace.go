package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/oleiade/parsby"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

var traceLog = commonlog.GetLogger("parsby.trace")

func newTraceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace <grammar> [file]",
		Short: "Parse stdin or a file, printing the full diagnostic render to stderr on failure",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			grammar := args[0]
			file := ""
			if len(args) == 2 {
				file = args[1]
			}

			source, err := readInput(file)
			if err != nil {
				return err
			}

			started := time.Now()
			_, err = runGrammar(grammar, source)
			traceLog.Infof("parse of %d bytes with %q took %s", len(source), grammar, time.Since(started))

			if err == nil {
				pterm.Success.Println("parsed successfully")
				return nil
			}

			failure, ok := err.(*parsby.ParseFailure)
			if !ok || failure.Tree == nil {
				traceLog.Errorf("parse failed without a trace: %v", err)
				return err
			}

			rendered := parsby.Render(failure.Tree, source, renderWidth.n)
			fmt.Fprintln(os.Stderr, pterm.FgRed.Sprint(rendered))
			return err
		},
	}
	return cmd
}

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

var parseLog = commonlog.GetLogger("parsby.parse")

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <grammar> [file]",
		Short: "Parse stdin or a file with a bundled grammar and print the result as JSON",
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

			parseLog.Infof("parsing %d bytes with grammar %q", len(source), grammar)

			result, err := runGrammar(grammar, source)
			if err != nil {
				parseLog.Errorf("parse failed: %v", err)
				pterm.Error.Println(err.Error())
				return err
			}

			encoded, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("encode result: %w", err)
			}
			pterm.Success.Println("parsed successfully")
			fmt.Println(string(encoded))
			return nil
		},
	}
	return cmd
}

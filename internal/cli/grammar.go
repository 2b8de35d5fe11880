package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/oleiade/parsby"
	"github.com/oleiade/parsby/internal/grammars"
)

// readInput returns the contents of path, or stdin if path is empty.
func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// runGrammar dispatches on name to one of the bundled grammars and runs
// it against source, returning a JSON-marshalable result or the
// *parsby.ParseFailure on failure.
func runGrammar(name, source string) (any, error) {
	switch name {
	case "arithmetic":
		return parsby.Parse(grammars.Arithmetic(), source)
	case "tag-list":
		return parsby.Parse(grammars.TagList(), source)
	case "nested-list":
		return parsby.Parse(grammars.NestedList(), source)
	default:
		return nil, fmt.Errorf("unknown grammar %q (want arithmetic, tag-list, or nested-list)", name)
	}
}

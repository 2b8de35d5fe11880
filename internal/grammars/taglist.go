package grammars

import (
	"strings"

	"github.com/oleiade/parsby"
)

// TagList parses a comma-separated list of bare alphabetic tags wrapped
// in angle brackets, e.g. "<draft,urgent,reviewed>", exercising Between
// and SepBy together the way the CLI's "parse"/"trace" subcommands need
// a second bundled grammar distinct from the bracketed NestedList.
func TagList() parsby.Parser[[]string] {
	tag := parsby.As(parsby.Map(parsby.Many1(parsby.Alpha()), func(cs []string) (string, error) {
		return strings.Join(cs, ""), nil
	}), "tag")
	return parsby.As(
		parsby.Between(parsby.Literal("<"), parsby.Literal(">"), parsby.SepBy(tag, parsby.Literal(","))),
		"tag-list",
	)
}

package parsby

import (
	"strconv"
	"strings"
)

// Literal reads len(s) characters and succeeds iff they equal s exactly.
// On mismatch it fails with Expected set to a quoted rendering of s and
// Actual set to what was actually read; it does not itself unget — per
// the Open Question resolution in DESIGN.md, restoration is solely the
// enclosing checkpoint's responsibility.
func Literal(s string) Parser[string] {
	return literal(s, false)
}

// LiteralFold is Literal's case-insensitive counterpart.
func LiteralFold(s string) Parser[string] {
	return literal(s, true)
}

func literal(s string, fold bool) Parser[string] {
	n := len([]rune(s))
	label := strconv.Quote(s)

	return NewParser(label, func(ctx *Context) (string, error) {
		got := ctx.Input.Read(n)
		matched := got == s
		if fold && !matched {
			matched = strings.EqualFold(got, s)
		}
		if !matched {
			return "", NewFailure(ctx.Input.Pos(), label, quoteActual(got))
		}
		return got, nil
	})
}

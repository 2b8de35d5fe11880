package parsby

import (
	"fmt"
	"strconv"
	"unicode"
)

// quoteActual renders a consumed (or peeked) fragment for use as a
// ParseFailure.Actual value: empty input reads as "<eof>", anything else
// is quoted.
func quoteActual(s string) string {
	if s == "" {
		return "<eof>"
	}
	return strconv.Quote(s)
}

// peekNonWhitespace reads ahead (under a checkpoint that always
// restores) the upcoming run of non-whitespace characters, for use as
// EOF's "actual" report. It is capped to avoid an unbounded peek on
// pathological input.
func peekNonWhitespace(b *BackedInput) string {
	const cap = 24
	s, _ := PeekCheckpoint(b, func() (string, error) {
		var out []rune
		for len(out) < cap {
			c := b.Read(1)
			if c == "" {
				break
			}
			r := []rune(c)[0]
			if unicode.IsSpace(r) {
				break
			}
			out = append(out, r)
		}
		return string(out), nil
	})
	return quoteActual(s)
}

// labelOrAny returns p's label, or a generic placeholder if p is
// anonymous — used when reconstructing a human-readable "not X" label
// for ThatFails.
func labelOrAny[T any](p Parser[T]) string {
	if p.Label != "" {
		return p.Label
	}
	return "<anonymous>"
}

func quoteValue(v Value) string {
	return fmt.Sprintf("%v", v)
}

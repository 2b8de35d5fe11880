package parsby

// AnyChar reads one character and succeeds with it as a string,
// regardless of what it is. Fails at EOF.
func AnyChar() Parser[string] {
	return NewParser("<any-char>", func(ctx *Context) (string, error) {
		if ctx.Input.EOF() {
			return "", NewFailure(ctx.Input.Pos(), "<any-char>", "<eof>")
		}
		return ctx.Input.Read(1), nil
	})
}

// CharIn reads one character and succeeds iff it lies in the union of
// the provided members, each of which is either a string (any of its
// characters match) or a CharRange (an inclusive rune range). On
// mismatch the character read is reported as Actual; the input itself is
// left for the enclosing checkpoint to restore (see the Open Question
// resolution in DESIGN.md: primitives never Unget themselves).
func CharIn(members ...any) Parser[string] {
	label := "<char-in " + describeCharInMembers(members) + ">"
	return charMatching(label, charInPredicate(members))
}

// CharMatching reads one character and succeeds iff predicate accepts
// it.
func CharMatching(predicate func(r rune) bool) Parser[string] {
	return charMatching("<char-matching>", predicate)
}

func charMatching(label string, predicate func(r rune) bool) Parser[string] {
	return NewParser(label, func(ctx *Context) (string, error) {
		if ctx.Input.EOF() {
			return "", NewFailure(ctx.Input.Pos(), label, "<eof>")
		}
		got := ctx.Input.Read(1)
		r := []rune(got)[0]
		if !predicate(r) {
			return "", NewFailure(ctx.Input.Pos(), label, quoteActual(got))
		}
		return got, nil
	})
}

func charInPredicate(members []any) func(rune) bool {
	return func(r rune) bool {
		for _, m := range members {
			switch v := m.(type) {
			case string:
				for _, c := range v {
					if c == r {
						return true
					}
				}
			case CharRange:
				if r >= v.Lo && r <= v.Hi {
					return true
				}
			}
		}
		return false
	}
}

func describeCharInMembers(members []any) string {
	out := ""
	for i, m := range members {
		if i > 0 {
			out += ","
		}
		switch v := m.(type) {
		case string:
			out += v
		case CharRange:
			out += string(v.Lo) + "-" + string(v.Hi)
		}
	}
	return out
}

// Digit matches a single decimal digit: a convenience built from CharIn,
// handed to Decimal/Integer in numbers.go.
func Digit() Parser[string] {
	return As(CharIn(CharRange{'0', '9'}), "<digit>")
}

// Alpha matches a single ASCII letter: a-z, A-Z.
func Alpha() Parser[string] {
	return As(CharIn(CharRange{'a', 'z'}, CharRange{'A', 'Z'}), "<alpha>")
}

// Newline matches a line feed or a carriage-return/line-feed pair.
func Newline() Parser[string] {
	return As(Alt(Literal("\r\n"), Literal("\n")), "<newline>")
}

package parsby

import "fmt"

// Arg is one argument recorded for Define's reconstructed call-site
// label, e.g. the "10" and "<digit>" in "count(10,<digit>)".
type Arg interface {
	argString() string
}

type parserArg struct{ label string }

func (a parserArg) argString() string { return a.label }

// ParserArg records p's Label (or a placeholder, if anonymous) as one of
// Define's call-site arguments.
func ParserArg[T any](p Parser[T]) Arg {
	return parserArg{label: labelOrAny(p)}
}

type literalArg struct{ s string }

func (a literalArg) argString() string { return a.s }

// LiteralArg records v's default formatting as one of Define's call-site
// arguments, for a plain value (a count, a separator rune) rather than a
// sub-parser.
func LiteralArg(v any) Arg {
	return literalArg{s: fmt.Sprintf("%v", v)}
}

// Define names a combinator defined in terms of other parsers, giving
// its trace node a label that reads like the call that built it (e.g.
// "count(10,<digit>)") instead of an empty anonymous label.
//
// When wrap is true, Define introduces its own trace node carrying the
// reconstructed label, with body()'s own invocation nested beneath it as
// a child — useful when body is itself a named/structural parser whose
// own trace should remain visible. When wrap is false, Define relabels
// body()'s own node in place (as As does), producing no extra nesting —
// appropriate when body is a one-off anonymous combinator assembled
// purely to implement this definition.
func Define[T any](name string, wrap bool, args []Arg, body func() Parser[T]) Parser[T] {
	label := defineLabel(name, args)
	if wrap {
		return NewParser(label, func(ctx *Context) (T, error) {
			return body().Invoke(ctx)
		})
	}
	return As(body(), label)
}

func defineLabel(name string, args []Arg) string {
	label := name + "("
	for i, a := range args {
		if i > 0 {
			label += ","
		}
		label += a.argString()
	}
	return label + ")"
}

package parsby

import "unicode"

// WhitespaceHook is the parser consulted by Whitespace1/Whitespace on
// every invocation (not captured once at grammar-construction time), so
// a grammar author can override what "whitespace" means — for instance
// to also skip comments — by reassigning it with SetWhitespaceHook
// before parsing, without rebuilding any parser that was already
// constructed with Spaced.
var WhitespaceHook = defaultWhitespace1()

// SetWhitespaceHook replaces WhitespaceHook. Pass a parser matching one
// or more units of "whitespace" under the caller's definition.
func SetWhitespaceHook(p Parser[string]) {
	WhitespaceHook = p
}

// Whitespace1 matches one or more whitespace units per the current
// WhitespaceHook.
func Whitespace1() Parser[string] {
	return NewParser("<whitespace>", func(ctx *Context) (string, error) {
		return WhitespaceHook.Invoke(ctx)
	})
}

// Whitespace matches zero or more whitespace units; it cannot fail.
func Whitespace() Parser[string] {
	return As(Alt(Whitespace1(), Pure("")), "<whitespace?>")
}

// Spaced wraps p to ignore leading and trailing whitespace, per the
// current WhitespaceHook at invocation time.
func Spaced[T any](p Parser[T]) Parser[T] {
	return KeepLeft(KeepRight(Whitespace(), p), Whitespace())
}

func defaultWhitespace1() Parser[string] {
	return As(Map(Many1(CharMatching(unicode.IsSpace)), func(cs []string) (string, error) {
		out := ""
		for _, c := range cs {
			out += c
		}
		return out, nil
	}), "<whitespace>")
}

package grammars

import "github.com/oleiade/parsby"

// NestedList builds a grammar for a bracketed, comma-separated list whose
// elements are either the literal "foo" or another such list, e.g.
// "[[[[foo, foo]]]]". The rule refers to itself before it has finished
// being constructed, so the self-reference is wrapped in parsby.Lazy:
// by the time Lazy's thunk actually runs (on the first invocation), the
// local "list" variable it closes over has already been assigned.
func NestedList() parsby.Parser[parsby.Value] {
	foo := parsby.Map(parsby.Literal("foo"), func(s string) (parsby.Value, error) {
		return parsby.Value(s), nil
	})

	var list parsby.Parser[parsby.Value]
	self := parsby.Lazy(func() parsby.Parser[parsby.Value] { return list })

	element := parsby.Spaced(parsby.Alt(self, foo))
	body := parsby.Between(parsby.Literal("["), parsby.Literal("]"), parsby.SepBy(element, parsby.Literal(",")))

	list = parsby.As(parsby.Map(body, func(vs []parsby.Value) (parsby.Value, error) {
		return parsby.Seq(vs...), nil
	}), "list")

	return list
}

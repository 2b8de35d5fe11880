// Package grammars holds the small fixture grammars the property tests
// and the CLI's bundled subcommands share, so neither has to duplicate a
// one-off parser. It is not part of the library's public surface.
package grammars

import "github.com/oleiade/parsby"

// Arithmetic builds a left-associative "-"/"+" expression parser over
// decimal integers, using parsby.Reduce to avoid left-recursive
// stack blowup. Given "5 - 4 - 3" it yields the nested Value tree
// [[5,"-",4],"-",3] — each reduction step folds the running left operand
// with the next operator/operand pair.
func Arithmetic() parsby.Parser[parsby.Value] {
	operand := parsby.Spaced(parsby.Integer())
	op := parsby.Spaced(parsby.Alt(parsby.Literal("-"), parsby.Literal("+")))

	seed := parsby.Map(operand, func(n int) (parsby.Value, error) {
		return parsby.Value(n), nil
	})

	return parsby.Define("arithmetic", true, nil, func() parsby.Parser[parsby.Value] {
		return parsby.Reduce(seed, func(left parsby.Value) parsby.Parser[parsby.Value] {
			return parsby.Map(
				parsby.Seq2(op, operand),
				func(p parsby.Pair[string, int]) (parsby.Value, error) {
					return parsby.Seq(left, p.First, p.Second), nil
				},
			)
		})
	})
}

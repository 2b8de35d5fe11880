package parsby

// Alt tries p under a checkpoint; on failure it restores and tries q.
// It is left-biased (if p succeeds, q is never tried) and associative:
// (p|q)|r and p|(q|r) behave identically on every input. A programming
// error from p is not caught — it propagates immediately, without q ever
// running.
func Alt[T any](p, q Parser[T]) Parser[T] {
	return NewParser("", func(ctx *Context) (T, error) {
		val, err := WithCheckpoint(ctx.Input, func() (T, error) {
			return p.Invoke(ctx)
		})
		if err == nil {
			return val, nil
		}
		if pf, ok := err.(*ParseFailure); ok && pf.IsProgrammingError() {
			return val, err
		}
		return q.Invoke(ctx)
	})
}

// Choice tries a list of parsers in order, left to right; equivalent to
// Unparseable|p1|...|pn, so an empty list always fails. The binary Alt
// chain Choice builds itself from is spliced out of the diagnostic
// trace: each candidate's own node is reparented directly under the
// Choice node.
func Choice[T any](ps ...Parser[T]) Parser[T] {
	return SpliceStart(func() Parser[T] {
		acc := Unparseable[T]()
		for _, p := range ps {
			acc = Alt(acc, SpliceEnd(p))
		}
		return As(acc, "<choice>")
	})
}

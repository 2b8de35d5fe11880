package parsby

// Optional tries p under a checkpoint; on failure it restores and
// succeeds with a nil *T, signalling "absent" without the zero-value
// ambiguity a bare T would have (0, "", false are all valid parse
// results in their own right). A programming error from p propagates
// uncaught.
func Optional[T any](p Parser[T]) Parser[*T] {
	return NewParser("", func(ctx *Context) (*T, error) {
		val, err := WithCheckpoint(ctx.Input, func() (T, error) {
			return p.Invoke(ctx)
		})
		if err != nil {
			if pf, ok := err.(*ParseFailure); ok && pf.IsProgrammingError() {
				return nil, err
			}
			return nil, nil
		}
		v := val
		return &v, nil
	})
}

// Many repeatedly invokes p under a checkpoint, stopping at the first
// failure or at EOF, and yields the ordered slice of successful results.
// It cannot fail. If an iteration succeeds while consuming zero
// characters, Many stops after that iteration — this is the zero-width
// termination guard that keeps many(pure(x)) from looping forever.
func Many[T any](p Parser[T]) Parser[[]T] {
	return NewParser("", func(ctx *Context) ([]T, error) {
		var results []T
		for !ctx.Input.EOF() {
			before := ctx.Input.Pos()
			val, err := WithCheckpoint(ctx.Input, func() (T, error) {
				return p.Invoke(ctx)
			})
			if err != nil {
				if pf, ok := err.(*ParseFailure); ok && pf.IsProgrammingError() {
					return nil, err
				}
				break
			}
			results = append(results, val)
			if ctx.Input.Pos() == before {
				break
			}
		}
		return results, nil
	})
}

// Many1 is single(p) + many(p): it fails iff the first attempt fails,
// but otherwise behaves like Many.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return NewParser("", func(ctx *Context) ([]T, error) {
		first, err := p.Invoke(ctx)
		if err != nil {
			return nil, err
		}
		rest, err := Many(p).Invoke(ctx)
		if err != nil {
			return nil, err
		}
		return append([]T{first}, rest...), nil
	})
}

// SepBy is single(p) + many(sep > p), or an empty slice if p fails on
// the very first attempt.
func SepBy[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return NewParser("", func(ctx *Context) ([]T, error) {
		first, err := WithCheckpoint(ctx.Input, func() (T, error) {
			return p.Invoke(ctx)
		})
		if err != nil {
			if pf, ok := err.(*ParseFailure); ok && pf.IsProgrammingError() {
				return nil, err
			}
			return []T{}, nil
		}
		rest, err := Many(KeepRight(sep, p)).Invoke(ctx)
		if err != nil {
			return nil, err
		}
		return append([]T{first}, rest...), nil
	})
}

// SepBy1 is SepBy without the empty fallback: it fails if p fails on the
// first attempt.
func SepBy1[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return NewParser("", func(ctx *Context) ([]T, error) {
		first, err := p.Invoke(ctx)
		if err != nil {
			return nil, err
		}
		rest, err := Many(KeepRight(sep, p)).Invoke(ctx)
		if err != nil {
			return nil, err
		}
		return append([]T{first}, rest...), nil
	})
}

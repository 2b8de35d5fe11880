package parsby

import "strings"

// Peek runs p under a checkpoint and always restores, regardless of
// outcome: it yields p's result on success, or fails with p's failure,
// but never consumes input either way.
func Peek[T any](p Parser[T]) Parser[T] {
	return NewParser("", func(ctx *Context) (T, error) {
		return PeekCheckpoint(ctx.Input, func() (T, error) {
			return p.Invoke(ctx)
		})
	})
}

// ThatFails tries q under a checkpoint and always restores; if q
// succeeds, ThatFails fails (reporting q's result as Actual and "not
// q.Label" as Expected); otherwise it runs and returns p.
func ThatFails[T, U any](p Parser[T], q Parser[U]) Parser[T] {
	return NewParser("", func(ctx *Context) (T, error) {
		qVal, qErr := PeekCheckpoint(ctx.Input, func() (U, error) {
			return q.Invoke(ctx)
		})
		if qErr == nil {
			var zero T
			return zero, NewFailure(ctx.Input.Pos(), "not "+labelOrAny(q), quoteValue(qVal))
		}
		if pf, ok := qErr.(*ParseFailure); ok && pf.IsProgrammingError() {
			var zero T
			return zero, qErr
		}
		return p.Invoke(ctx)
	})
}

// TakeUntil repeatedly peeks for stop; as soon as stop would succeed, it
// returns the accumulated text without consuming stop's match.
// Characters are consumed one at a time with AnyChar.
func TakeUntil[U any](stop Parser[U]) Parser[string] {
	return TakeUntilWith(stop, AnyChar())
}

// TakeUntilWith is TakeUntil parameterized over the parser used to
// consume each non-stop character (normally AnyChar).
func TakeUntilWith[U any](stop Parser[U], with Parser[string]) Parser[string] {
	return NewParser("", func(ctx *Context) (string, error) {
		var sb strings.Builder
		for {
			_, err := PeekCheckpoint(ctx.Input, func() (U, error) {
				return stop.Invoke(ctx)
			})
			if err == nil {
				return sb.String(), nil
			}
			if pf, ok := err.(*ParseFailure); ok && pf.IsProgrammingError() {
				return "", err
			}
			chunk, err := with.Invoke(ctx)
			if err != nil {
				return "", err
			}
			sb.WriteString(chunk)
		}
	})
}

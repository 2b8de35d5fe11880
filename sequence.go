package parsby

import (
	"fmt"
	"strings"
)

// KeepRight runs p then q under a single flow (sequencing does not wrap
// its own checkpoint — if q fails, nothing is restored here; an outer
// checkpoint restores both), discarding p's result and keeping q's. This
// is spec's `p > q`.
func KeepRight[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	return NewParser("", func(ctx *Context) (B, error) {
		if _, err := p.Invoke(ctx); err != nil {
			var zero B
			return zero, err
		}
		return q.Invoke(ctx)
	})
}

// KeepLeft runs p then q, discarding q's result and keeping p's. This is
// spec's `p < q`.
func KeepLeft[A, B any](p Parser[A], q Parser[B]) Parser[A] {
	return NewParser("", func(ctx *Context) (A, error) {
		a, err := p.Invoke(ctx)
		if err != nil {
			return a, err
		}
		if _, err := q.Invoke(ctx); err != nil {
			var zero A
			return zero, err
		}
		return a, nil
	})
}

// Seq2 runs p then q and returns both results as a Pair. This is spec's
// plain `seq(p, q)`.
func Seq2[A, B any](p Parser[A], q Parser[B]) Parser[Pair[A, B]] {
	return NewParser("", func(ctx *Context) (Pair[A, B], error) {
		var zero Pair[A, B]
		a, err := p.Invoke(ctx)
		if err != nil {
			return zero, err
		}
		b, err := q.Invoke(ctx)
		if err != nil {
			return zero, err
		}
		return Pair[A, B]{a, b}, nil
	})
}

// Between runs l, then p, then r, keeping only p's result. This is
// spec's `between(l, r, p)`.
func Between[L, T, R any](l Parser[L], r Parser[R], p Parser[T]) Parser[T] {
	return KeepLeft(KeepRight(l, p), r)
}

// ToValue retypes p as a Parser[Value] without introducing an extra
// trace node: it shares p's Label and body, just erasing the static
// type, so it can take part in heterogeneous combinators (Group,
// Concat's operands, Choice of differently-typed alternatives coerced to
// a common Value).
func ToValue[T any](p Parser[T]) Parser[Value] {
	run := p.run
	q := Parser[Value]{Label: p.Label, spliceStart: p.spliceStart, spliceEnd: p.spliceEnd}
	q.run = func(ctx *Context) (Value, error) {
		return run(ctx)
	}
	return q
}

// Group runs each of ps in order and returns their results as a
// []Value, spec's `group(p1, ..., pn)`.
func Group(ps ...Parser[Value]) Parser[[]Value] {
	return NewParser("", func(ctx *Context) ([]Value, error) {
		out := make([]Value, 0, len(ps))
		for _, p := range ps {
			v, err := p.Invoke(ctx)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	})
}

// Map runs p and applies f to its result. An error from f is a
// programming error, not a backtrackable parse failure.
func Map[A, B any](p Parser[A], f func(A) (B, error)) Parser[B] {
	return NewParser("", func(ctx *Context) (B, error) {
		var zero B
		a, err := p.Invoke(ctx)
		if err != nil {
			return zero, err
		}
		b, err := f(a)
		if err != nil {
			return zero, NewProgrammingFailure(ctx.Input.Pos(), err)
		}
		return b, nil
	})
}

// Single wraps p's result in a one-element []Value, spec's `single(p)`.
func Single[T any](p Parser[T]) Parser[[]Value] {
	return Map(ToValue(p), func(v Value) ([]Value, error) {
		return []Value{v}, nil
	})
}

// Join runs p and concatenates its result elements into a single string.
// p may yield either a []string directly (e.g. from Many, Many1, or
// SepBy over string-valued parsers) or a []Value whose elements are
// themselves strings (e.g. from Group or Single); any other element
// type is a programming error.
func Join[T any](p Parser[[]T]) Parser[string] {
	return Map(p, func(vs []T) (string, error) {
		var sb strings.Builder
		for _, v := range vs {
			s, ok := any(v).(string)
			if !ok {
				return "", fmt.Errorf("join: expected a string element, got %T", v)
			}
			sb.WriteString(s)
		}
		return sb.String(), nil
	})
}

// Concat is spec's `p + q`: if both operands yield []Value, the result
// is their concatenation; if both yield string, the result is their
// string concatenation; any other combination is a programming error.
func Concat(p, q Parser[Value]) Parser[Value] {
	return NewParser("", func(ctx *Context) (Value, error) {
		a, err := p.Invoke(ctx)
		if err != nil {
			return nil, err
		}
		b, err := q.Invoke(ctx)
		if err != nil {
			return nil, err
		}
		switch av := a.(type) {
		case string:
			bv, ok := b.(string)
			if !ok {
				return nil, NewProgrammingFailure(ctx.Input.Pos(), fmt.Errorf("concat: cannot add string and %T", b))
			}
			return av + bv, nil
		case []Value:
			bv, ok := b.([]Value)
			if !ok {
				return nil, NewProgrammingFailure(ctx.Input.Pos(), fmt.Errorf("concat: cannot add sequence and %T", b))
			}
			out := make([]Value, 0, len(av)+len(bv))
			out = append(out, av...)
			out = append(out, bv...)
			return out, nil
		default:
			return nil, NewProgrammingFailure(ctx.Input.Pos(), fmt.Errorf("concat: unsupported operand type %T", a))
		}
	})
}

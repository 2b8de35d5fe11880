package parsby

import "sync"

// Lazy defers construction of the wrapped parser until its first
// invocation, then memoizes it. This breaks initialization cycles when
// a grammar's parsers reference each other across package-level vars,
// and is the standard way to write self-referential grammars: a rule
// that needs to call itself wraps the recursive call in Lazy instead of
// referring to a not-yet-initialized package variable.
func Lazy[T any](f func() Parser[T]) Parser[T] {
	var once sync.Once
	var p Parser[T]
	return NewParser("", func(ctx *Context) (T, error) {
		once.Do(func() { p = f() })
		return p.Invoke(ctx)
	})
}

// Recursive builds a parser whose own definition may refer to itself,
// by handing f a self-reference it can embed anywhere in the parser it
// returns. Unlike Lazy, which only defers construction, Recursive ties
// the knot explicitly: self indirects through a cell that is assigned
// f's result when f returns, so self can be embedded in the parser f
// builds without wrapping it in another Lazy. Invoking self while f is
// still running finds no parser in the cell.
func Recursive[T any](f func(self Parser[T]) Parser[T]) Parser[T] {
	cell := &struct{ p Parser[T] }{}
	self := NewParser("", func(ctx *Context) (T, error) {
		return cell.p.Invoke(ctx)
	})
	cell.p = f(self)
	return self
}

// Reduce implements left-recursive grammars without actual recursion:
// it parses seed once, then repeatedly hands the accumulated value to
// step and folds in the result, stopping at the first iteration that
// fails or that succeeds while consuming no input. It can never itself
// fail once seed has succeeded.
func Reduce[T any](seed Parser[T], step func(left T) Parser[T]) Parser[T] {
	return NewParser("", func(ctx *Context) (T, error) {
		acc, err := seed.Invoke(ctx)
		if err != nil {
			return acc, err
		}
		for {
			before := ctx.Input.Pos()
			next, err := WithCheckpoint(ctx.Input, func() (T, error) {
				return step(acc).Invoke(ctx)
			})
			if err != nil {
				if pf, ok := err.(*ParseFailure); ok && pf.IsProgrammingError() {
					return acc, err
				}
				return acc, nil
			}
			acc = next
			if ctx.Input.Pos() == before {
				return acc, nil
			}
		}
	})
}

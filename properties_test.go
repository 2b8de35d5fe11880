package parsby

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlternationIdentity(t *testing.T) {
	t.Parallel()

	p := Literal("foo")

	for _, input := range []string{"foobar", "barfoo", ""} {
		left, lerr := Parse(Alt(Unparseable[string](), p), input)
		right, rerr := Parse(Alt(p, Unparseable[string]()), input)
		plain, perr := Parse(p, input)

		assert.Equal(t, perr != nil, lerr != nil)
		assert.Equal(t, perr != nil, rerr != nil)
		if perr == nil {
			assert.Equal(t, plain, left)
			assert.Equal(t, plain, right)
		}
	}
}

func TestAlternationAssociativity(t *testing.T) {
	t.Parallel()

	p, q, r := Literal("foo"), Literal("bar"), Literal("baz")

	for _, input := range []string{"foo", "bar", "baz", "qux"} {
		left, lerr := Parse(Alt(Alt(p, q), r), input)
		right, rerr := Parse(Alt(p, Alt(q, r)), input)
		assert.Equal(t, lerr != nil, rerr != nil)
		if lerr == nil {
			assert.Equal(t, left, right)
		}
	}
}

func TestMapFunctoriality(t *testing.T) {
	t.Parallel()

	id := func(s string) (string, error) { return s, nil }
	p := Literal("foo")

	got, err := Parse(Map(p, id), "foo")
	require.NoError(t, err)
	assert.Equal(t, "foo", got)

	upper := func(s string) (string, error) { return s + "!", nil }
	excited := func(s string) (string, error) { return s + "?", nil }

	composedSeparately, err := Parse(Map(Map(p, upper), excited), "foo")
	require.NoError(t, err)

	composedTogether, err := Parse(Map(p, func(s string) (string, error) {
		mid, _ := upper(s)
		return excited(mid)
	}), "foo")
	require.NoError(t, err)

	assert.Equal(t, composedTogether, composedSeparately)
}

func TestPureLaws(t *testing.T) {
	t.Parallel()

	f := func(n int) (int, error) { return n * 2, nil }

	mapped, err := Parse(Map(Pure(21), f), "")
	require.NoError(t, err)
	assert.Equal(t, 42, mapped)

	direct, err := f(21)
	require.NoError(t, err)
	assert.Equal(t, direct, mapped)

	p := Literal("foo")

	keepRight, err := Parse(KeepRight(Pure("x"), p), "foo")
	require.NoError(t, err)
	plain, err := Parse(p, "foo")
	require.NoError(t, err)
	assert.Equal(t, plain, keepRight)

	keepLeft, err := Parse(KeepLeft(p, Pure("x")), "foo")
	require.NoError(t, err)
	assert.Equal(t, plain, keepLeft)
}

func TestRepetitionCannotFail(t *testing.T) {
	t.Parallel()

	_, err := Parse(Many(Literal("foo")), "barbaz")
	assert.NoError(t, err)
}

func TestZeroWidthGuardTerminates(t *testing.T) {
	t.Parallel()

	got, err := Parse(Many(Pure(0)), "anything")
	require.NoError(t, err)
	assert.Equal(t, []int{0}, got)
}

func TestLeftRecursionAssociativity(t *testing.T) {
	t.Parallel()

	atom := Spaced(Integer())
	op := Spaced(Literal("-"))

	seed := Map(atom, func(n int) (Value, error) { return Value(n), nil })
	reduced := Reduce(seed, func(left Value) Parser[Value] {
		return Map(Seq2(op, atom), func(p Pair[string, int]) (Value, error) {
			return Seq(left, p.First, p.Second), nil
		})
	})

	got, err := Parse(reduced, "5 - 4 - 3")
	require.NoError(t, err)
	assert.Equal(t, Seq(Seq(5, "-", 4), "-", 3), got)
}

func TestSpliceCollapseLeavesNoIntermediaries(t *testing.T) {
	t.Parallel()

	p := Choice(Literal("foo"), Literal("bar"))
	_, err := Parse(p, "qux")
	require.Error(t, err)

	pf, ok := err.(*ParseFailure)
	require.True(t, ok)
	require.NotNil(t, pf.Tree)

	collapsed := collapseSplices(pf.Tree)
	var walk func(n *TreeNode)
	walk = func(n *TreeNode) {
		assert.False(t, n.Label == "<unparseable>")
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(collapsed)
}

// Concrete scenarios from the testable-properties list.

func TestScenarioBetweenDecimal(t *testing.T) {
	t.Parallel()

	p := Between(Literal("<"), Literal(">"), Decimal())
	got, err := Parse(p, "<100>")
	require.NoError(t, err)
	assert.Equal(t, float64(100), got)
}

func TestScenarioChoice(t *testing.T) {
	t.Parallel()

	got, err := Parse(Choice(Literal("foo"), Literal("bar")), "bar")
	require.NoError(t, err)
	assert.Equal(t, "bar", got)
}

func TestScenarioKeepRight(t *testing.T) {
	t.Parallel()

	got, err := Parse(KeepRight(Literal("foo"), Literal("bar")), "foobar")
	require.NoError(t, err)
	assert.Equal(t, "bar", got)
}

func TestScenarioJoinSepBy(t *testing.T) {
	t.Parallel()

	p := Join(SepBy(Alt(Literal("foo"), Literal("bar")), Literal(",")))
	got, err := Parse(p, "foo,bar")
	require.NoError(t, err)
	assert.Equal(t, "foobar", got)
}

func TestScenarioSequencingFailureDiagnostic(t *testing.T) {
	t.Parallel()

	p := As(KeepLeft(Literal("foo"), EOF()), "foo-then-eof")
	_, err := Parse(p, "foobar")
	require.Error(t, err)

	pf, ok := err.(*ParseFailure)
	require.True(t, ok)
	require.NotNil(t, pf.Tree)
	assert.Equal(t, "foo-then-eof", pf.Tree.Children[0].Label)
}

func TestScenarioRecursiveListGrammar(t *testing.T) {
	t.Parallel()

	// built inline, grounded the same way internal/grammars.NestedList is.
	foo := Map(Literal("foo"), func(s string) (Value, error) { return Value(s), nil })
	var list Parser[Value]
	self := Lazy(func() Parser[Value] { return list })
	element := Spaced(Alt(self, foo))
	body := Between(Literal("["), Literal("]"), SepBy(element, Literal(",")))
	list = Map(body, func(vs []Value) (Value, error) { return Seq(vs...), nil })

	got, err := Parse(list, "[[[[foo, foo]]]]")
	require.NoError(t, err)
	assert.Equal(t, Seq(Seq(Seq(Seq("foo", "foo")))), got)
}

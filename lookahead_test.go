package parsby

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeekDoesNotConsume(t *testing.T) {
	t.Parallel()

	p := Seq2(Peek(Literal("foo")), Literal("foobar"))
	got, err := Parse(p, "foobar")
	require.NoError(t, err)
	assert.Equal(t, Pair[string, string]{"foo", "foobar"}, got)
}

func TestPeekFailurePropagates(t *testing.T) {
	t.Parallel()

	_, err := Parse(KeepRight(Peek(Literal("foo")), Literal("bar")), "bar")
	assert.Error(t, err)
}

func TestThatFails(t *testing.T) {
	t.Parallel()

	notKeyword := ThatFails(Many1(Alpha()), Literal("end"))

	got, err := Parse(notKeyword, "begin")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "e", "g", "i", "n"}, got)

	_, err = Parse(notKeyword, "end")
	assert.Error(t, err)
}

func TestTakeUntil(t *testing.T) {
	t.Parallel()

	got, err := Parse(TakeUntil(Literal(",")), "abc,def")
	require.NoError(t, err)
	assert.Equal(t, "abc", got)

	got, err = Parse(TakeUntil(Literal(",")), ",def")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	_, err = Parse(TakeUntil(Literal(",")), "abcdef")
	assert.Error(t, err)
}

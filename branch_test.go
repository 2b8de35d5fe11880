package parsby

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlt(t *testing.T) {
	t.Parallel()

	p := Alt(Literal("foo"), Literal("bar"))

	testCases := []struct {
		name    string
		input   string
		wantErr bool
		want    string
	}{
		{name: "first alternative matches", input: "foobaz", want: "foo"},
		{name: "second alternative matches", input: "barbaz", want: "bar"},
		{name: "neither matches", input: "bazqux", wantErr: true},
		{name: "empty input fails", input: "", wantErr: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(p, tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAltIsLeftBiased(t *testing.T) {
	t.Parallel()

	got, err := Parse(Alt(Pure("left"), Pure("right")), "")
	require.NoError(t, err)
	assert.Equal(t, "left", got)
}

func TestAltRestoresOnFailure(t *testing.T) {
	t.Parallel()

	p := Alt(Literal("foo"), Literal("bar"))
	got, err := Parse(p, "bar")
	require.NoError(t, err)
	assert.Equal(t, "bar", got)
}

func TestChoice(t *testing.T) {
	t.Parallel()

	p := Choice(Literal("foo"), Literal("bar"), Literal("baz"))

	got, err := Parse(p, "bar")
	require.NoError(t, err)
	assert.Equal(t, "bar", got)

	_, err = Parse(p, "qux")
	assert.Error(t, err)
}

func TestChoiceOfEmptyListAlwaysFails(t *testing.T) {
	t.Parallel()

	_, err := Parse(Choice[string](), "anything")
	assert.Error(t, err)
}

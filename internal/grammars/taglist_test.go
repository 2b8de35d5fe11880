package grammars

import (
	"testing"

	"github.com/oleiade/parsby"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagList(t *testing.T) {
	t.Parallel()

	got, err := parsby.Parse(TagList(), "<draft,urgent,reviewed>")
	require.NoError(t, err)
	assert.Equal(t, []string{"draft", "urgent", "reviewed"}, got)
}

func TestTagListEmpty(t *testing.T) {
	t.Parallel()

	got, err := parsby.Parse(TagList(), "<>")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTagListMissingClosingBracket(t *testing.T) {
	t.Parallel()

	_, err := parsby.Parse(TagList(), "<draft,urgent")
	assert.Error(t, err)
}

package charstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInOrder(t *testing.T) {
	b := NewFromString("abc")

	r, ok := b.Read()
	require.True(t, ok)
	assert.Equal(t, 'a', r)

	r, ok = b.Read()
	require.True(t, ok)
	assert.Equal(t, 'b', r)

	r, ok = b.Read()
	require.True(t, ok)
	assert.Equal(t, 'c', r)

	_, ok = b.Read()
	assert.False(t, ok)
}

func TestLookaheadDoesNotConsume(t *testing.T) {
	b := NewFromString("xy")

	r, ok := b.Lookahead(0)
	require.True(t, ok)
	assert.Equal(t, 'x', r)

	r, ok = b.Lookahead(1)
	require.True(t, ok)
	assert.Equal(t, 'y', r)

	r, ok = b.Lookahead(0)
	require.True(t, ok)
	assert.Equal(t, 'x', r, "repeated lookahead at the same offset is stable")

	r, ok = b.Read()
	require.True(t, ok)
	assert.Equal(t, 'x', r, "Read after Lookahead(0) returns what Lookahead(0) reported")
}

func TestLookaheadPastEndOfInput(t *testing.T) {
	b := NewFromString("a")

	_, ok := b.Lookahead(5)
	assert.False(t, ok)

	r, ok := b.Read()
	require.True(t, ok)
	assert.Equal(t, 'a', r, "failed lookahead must not have consumed anything")
}

func TestSkip(t *testing.T) {
	b := NewFromString("hello")
	b.Skip(3)

	r, ok := b.Read()
	require.True(t, ok)
	assert.Equal(t, 'l', r)
}

func TestEmptySource(t *testing.T) {
	b := NewFromString("")

	_, ok := b.Read()
	assert.False(t, ok)

	_, ok = b.Lookahead(0)
	assert.False(t, ok)
}

func TestUnicodeRunes(t *testing.T) {
	b := NewFromString("aé\U0001F600")

	r, ok := b.Read()
	require.True(t, ok)
	assert.Equal(t, 'a', r)

	r, ok = b.Read()
	require.True(t, ok)
	assert.Equal(t, 'é', r)

	r, ok = b.Read()
	require.True(t, ok)
	assert.Equal(t, '\U0001F600', r)
}

package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pilekit/core"
)

func ids(n int) []core.ID {
	out := make([]core.ID, n)
	for i := range out {
		out[i] = core.NewID()
	}
	return out
}

func TestProgression_AppendRejectsDuplicate(t *testing.T) {
	p := New()
	id := core.NewID()
	require.NoError(t, p.Append(id))
	err := p.Append(id)
	require.ErrorIs(t, err, core.ErrDuplicate)
	assert.Equal(t, 1, p.Len())
}

func TestProgression_InsertShiftsRight(t *testing.T) {
	seed := ids(3)
	p := New(seed...)

	extra := core.NewID()
	require.NoError(t, p.Insert(1, extra))
	assert.Equal(t, []core.ID{seed[0], extra, seed[1], seed[2]}, p.IDs())

	// Popping the inserted position restores the prior order.
	got, err := p.PopAt(1)
	require.NoError(t, err)
	assert.Equal(t, extra, got)
	assert.Equal(t, seed, p.IDs())
}

func TestProgression_InsertClampsIndex(t *testing.T) {
	seed := ids(2)
	p := New(seed...)

	head := core.NewID()
	require.NoError(t, p.Insert(-100, head))
	tail := core.NewID()
	require.NoError(t, p.Insert(100, tail))
	assert.Equal(t, []core.ID{head, seed[0], seed[1], tail}, p.IDs())
}

func TestProgression_IncludeExcludeIdempotent(t *testing.T) {
	p := New()
	id := core.NewID()
	assert.True(t, p.Include(id))
	assert.False(t, p.Include(id))
	assert.Equal(t, 1, p.Len())

	assert.True(t, p.Exclude(id))
	assert.False(t, p.Exclude(id))
	assert.True(t, p.IsEmpty())
}

func TestProgression_RemoveAbsent(t *testing.T) {
	p := New(ids(2)...)
	err := p.Remove(core.NewID())
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestProgression_NegativeIndex(t *testing.T) {
	seed := ids(3)
	p := New(seed...)

	last, err := p.At(-1)
	require.NoError(t, err)
	assert.Equal(t, seed[2], last)

	first, err := p.At(-3)
	require.NoError(t, err)
	assert.Equal(t, seed[0], first)

	_, err = p.At(-4)
	require.ErrorIs(t, err, core.ErrInvalidKey)
	_, err = p.At(3)
	require.ErrorIs(t, err, core.ErrInvalidKey)
}

func TestProgression_SliceClamping(t *testing.T) {
	seed := ids(4)
	p := New(seed...)

	assert.Equal(t, seed[1:3], p.Slice(1, 3))
	assert.Equal(t, seed[2:], p.Slice(-2, 100))
	assert.Empty(t, p.Slice(3, 1))
	assert.Empty(t, p.Slice(10, 20))
}

func TestProgression_DefensiveCopies(t *testing.T) {
	seed := ids(2)
	p := New(seed...)

	out := p.IDs()
	out[0] = core.NewID()
	assert.Equal(t, seed, p.IDs(), "mutating the returned slice must not affect the progression")
}

func TestProgression_ReverseAndEqual(t *testing.T) {
	seed := ids(3)
	p := New(seed...)
	r := p.Reverse()

	assert.Equal(t, []core.ID{seed[2], seed[1], seed[0]}, r.IDs())
	assert.True(t, p.Equal(New(seed...)))
	assert.False(t, p.Equal(r))

	p.Clear()
	assert.True(t, p.IsEmpty())
}

func TestProgression_SeedDeduplicates(t *testing.T) {
	id := core.NewID()
	p := New(id, id, id)
	assert.Equal(t, 1, p.Len())
}

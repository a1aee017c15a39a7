package gted

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoGetSet(t *testing.T) {
	m := NewMemo(2, 3)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	_, err := m.Get(1, 2)
	assert.ErrorIs(t, err, ErrUnresolved)
	assert.False(t, m.Resolved(1, 2))
	require.NoError(t, m.Set(1, 2, 7))
	d, err := m.Get(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7, d)
	assert.True(t, m.Resolved(1, 2))
	assert.Equal(t, 1, m.Count())
}

func TestMemoRewrite(t *testing.T) {
	m := NewMemo(1, 1)
	require.NoError(t, m.Set(0, 0, 4))
	assert.NoError(t, m.Set(0, 0, 4), "rewriting an equal value is accepted")
	assert.ErrorIs(t, m.Set(0, 0, 5), ErrMemoConflict)
	d, _ := m.Get(0, 0)
	assert.Equal(t, 4, d, "conflicting write must not change the cell")
	assert.ErrorIs(t, m.Set(0, 0, -3), ErrPrecondition)
}

func TestMemoBounds(t *testing.T) {
	m := NewMemo(2, 2)
	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := m.Get(ij[0], ij[1])
		assert.ErrorIs(t, err, ErrIndexOutOfBounds, "%v", ij)
		assert.ErrorIs(t, m.Set(ij[0], ij[1], 0), ErrIndexOutOfBounds, "%v", ij)
		assert.False(t, m.Resolved(ij[0], ij[1]))
	}
}

func TestMemoCloneEqual(t *testing.T) {
	m := NewMemo(2, 2)
	require.NoError(t, m.Set(0, 1, 3))
	c := m.Clone()
	assert.True(t, m.Equal(c))
	require.NoError(t, c.Set(1, 1, 0))
	assert.False(t, m.Equal(c))
	assert.False(t, m.Resolved(1, 1), "clone must be independent")
	assert.False(t, m.Equal(NewMemo(2, 3)))
}

func TestStrategyTable(t *testing.T) {
	st := NewStrategyTable(2, 3, T2Right)
	s, err := st.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, T2Right, s)
	require.NoError(t, st.Set(1, 2, Heavy))
	s, _ = st.At(1, 2)
	assert.Equal(t, Heavy, s)
	_, err = st.At(2, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	assert.ErrorIs(t, st.Set(0, 3, T1Left), ErrIndexOutOfBounds)
	//
	r1, r2 := RandomStrategyTable(5, 5, 11), RandomStrategyTable(5, 5, 11)
	assert.Equal(t, r1, r2)
}

func TestStrategyNames(t *testing.T) {
	for _, s := range []Strategy{T1Left, T1Right, T2Left, T2Right, Heavy} {
		p, err := ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, p)
	}
	p, err := ParseStrategy("T1-Right")
	require.NoError(t, err)
	assert.Equal(t, T1Right, p)
	_, err = ParseStrategy("zigzag")
	assert.ErrorIs(t, err, ErrPrecondition)
	assert.True(t, T1Right.IsT1() && T1Right.IsRight())
	assert.True(t, T2Left.IsT2() && T2Left.IsLeft())
	assert.False(t, Heavy.IsT1() || Heavy.IsT2())
}

package gted

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMappingOperations(t *testing.T) {
	m := &Mapping{Pairs: []Pair{{3, 3}, {0, 1}, {2, 0}, {1, 2}}, Distance: 2}
	m.Sort()
	assert.Equal(t, []Pair{{0, 1}, {1, 2}, {2, 0}, {3, 3}}, m.Pairs)
	assert.Equal(t, []int{1}, m.Deletes())
	assert.Equal(t, []int{0}, m.Inserts())
	assert.Equal(t, []Pair{{1, 2}, {3, 3}}, m.Matches())
	assert.Equal(t, 1, m.Partner(0))
	assert.Equal(t, 2, m.Partner(2))
	assert.Equal(t, -1, m.Partner(1))
	assert.NoError(t, m.Validate(3, 3))
}

func TestMappingValidate(t *testing.T) {
	for _, pairs := range [][]Pair{
		{{0, 0}, {1, 1}},
		{{1, 1}},
		{{1, 1}, {1, 2}},
		{{1, 1}, {2, 1}, {0, 2}},
		{{1, 3}, {2, 2}},
	} {
		m := &Mapping{Pairs: pairs}
		assert.ErrorIs(t, m.Validate(2, 2), ErrMalformedMapping, "%v", pairs)
	}
}

func TestMappingTextFormat(t *testing.T) {
	m := &Mapping{Pairs: []Pair{{0, 1}, {1, 2}, {2, 0}}, Distance: 2}
	var buf bytes.Buffer
	n, err := m.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, "DISTANCE: 2\n0 1\n1 2\n2 0\n", buf.String())
	r, err := ReadMapping(&buf)
	require.NoError(t, err)
	assert.Equal(t, m, r)
}

func TestReadMalformedMapping(t *testing.T) {
	for _, input := range []string{
		"",
		"0 1\n",
		"DISTANCE: x\n",
		"DISTANCE: 1\n1\n",
		"DISTANCE: 1\n1 -2\n",
		"DISTANCE: 1\n1 a\n",
	} {
		_, err := ReadMapping(strings.NewReader(input))
		assert.ErrorIs(t, err, ErrMalformedMapping, "input %q", input)
	}
}

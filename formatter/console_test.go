package formatter

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/gted"
	"github.com/npillmayer/gted/tree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/uax11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chain(t *testing.T, name string, labels ...string) *tree.Tree {
	t.Helper()
	b := tree.NewBuilder(name)
	h := b.Root(labels[0], false)
	for _, l := range labels[1:] {
		var err error
		h, err = b.Add(h, l, false)
		require.NoError(t, err)
	}
	tr, err := b.Build()
	require.NoError(t, err)
	return tr
}

func plain() *Config {
	return &Config{
		LineWidth: 40,
		Context:   uax11.LatinContext,
		Palette:   map[Op]*color.Color{},
	}
}

func TestPrintRelabel(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	a, b := chain(t, "A", "r", "a", "b"), chain(t, "B", "r", "a", "c")
	m, err := gted.Compute(a, b, gted.NewStrategyTable(3, 3, gted.T1Left), nil)
	require.NoError(t, err)
	var out strings.Builder
	require.NoError(t, PrintMapping(&out, a, b, m, plain()))
	expected := "DISTANCE: 0\n" +
		"~ 0 b    0 c\n" +
		"= 1 a    1 a\n" +
		"= 2 r    2 r\n"
	assert.Equal(t, expected, out.String())
}

func TestPrintInsertDelete(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	single, two := chain(t, "single", "r"), chain(t, "two", "r", "x")
	m, err := gted.Compute(single, two, gted.NewStrategyTable(1, 2, gted.T1Left), nil)
	require.NoError(t, err)
	var out strings.Builder
	require.NoError(t, PrintMapping(&out, single, two, m, plain()))
	expected := "DISTANCE: 1\n" +
		"+ " + strings.Repeat(" ", 5) + "  0 x\n" +
		"= 0 r    1 r\n"
	assert.Equal(t, expected, out.String())
	//
	m, err = gted.Compute(two, single, gted.NewStrategyTable(2, 1, gted.T1Left), nil)
	require.NoError(t, err)
	out.Reset()
	require.NoError(t, PrintMapping(&out, two, single, m, plain()))
	assert.Equal(t, "DISTANCE: 1\n- 0 x\n= 1 r    0 r\n", out.String())
}

func TestPrintColors(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	a, b := chain(t, "A", "r", "a"), chain(t, "B", "r")
	m, err := gted.Compute(a, b, gted.NewStrategyTable(2, 1, gted.T2Left), nil)
	require.NoError(t, err)
	red := color.New(color.FgRed)
	red.EnableColor()
	config := plain()
	config.Palette[Delete] = red
	var out strings.Builder
	require.NoError(t, PrintMapping(&out, a, b, m, config))
	assert.Contains(t, out.String(), "\x1b[31m- 0 a")
	assert.Contains(t, out.String(), "\n= 1 r    0 r\n", "matches are printed without color")
}

func TestShortenLabels(t *testing.T) {
	s := shorten("abcdefghij", 6, uax11.LatinContext)
	assert.True(t, strings.HasPrefix(s, "abc"), s)
	assert.True(t, strings.HasSuffix(s, ellipsis), s)
	assert.LessOrEqual(t, width(s, uax11.LatinContext), 6)
	assert.Equal(t, "abc", shorten("abc", 6, uax11.LatinContext))
}

func TestOpOf(t *testing.T) {
	a, b := chain(t, "A", "r", "a"), chain(t, "B", "r", "b")
	assert.Equal(t, Relabel, OpOf(a, b, gted.Pair{A: 1, B: 1}))
	assert.Equal(t, Match, OpOf(a, b, gted.Pair{A: 2, B: 2}))
	assert.Equal(t, Delete, OpOf(a, b, gted.Pair{A: 1}))
	assert.Equal(t, Insert, OpOf(a, b, gted.Pair{B: 1}))
	assert.Equal(t, "~", Relabel.String())
}

func TestPrintNil(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	a := chain(t, "A", "r")
	assert.Error(t, PrintMapping(&strings.Builder{}, a, a, nil, plain()))
}

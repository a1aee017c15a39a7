package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/gted"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pairYAML = `
a:
  structure: "((..))"
  sequence: GCAAGC
b:
  structure: "((...))"
  sequence: GCAUAGC
strategy: t2-right
heavy: fixed
heavy_fallback: t1-right
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pair.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, pairYAML))
	require.NoError(t, err)
	assert.Equal(t, "((..))", cfg.A.Structure)
	assert.Equal(t, "GCAUAGC", cfg.B.Sequence)
	assert.Equal(t, "t2-right", cfg.Strategy)
	assert.Equal(t, int64(1), cfg.Seed, "unset keys keep their defaults")
	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, gted.HeavyFixed, opts.Heavy)
	assert.Equal(t, gted.T1Right, opts.HeavyFallback)
	st, err := cfg.Strategies(2, 3)
	require.NoError(t, err)
	s, _ := st.At(1, 2)
	assert.Equal(t, gted.T2Right, s)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	_, err = LoadConfig(writeConfig(t, "a: [unclosed"))
	assert.Error(t, err)
	cfg := DefaultConfig()
	cfg.Heavy = "sometimes"
	_, err = cfg.Options()
	assert.Error(t, err)
	cfg = DefaultConfig()
	cfg.Strategy = "zigzag"
	_, err = cfg.Strategies(1, 1)
	assert.ErrorIs(t, err, gted.ErrPrecondition)
}

func TestRandomStrategies(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Strategy = "random"
	cfg.Seed = 5
	st1, err := cfg.Strategies(4, 4)
	require.NoError(t, err)
	st2, _ := cfg.Strategies(4, 4)
	assert.Equal(t, st1, st2)
}

func TestCommands(t *testing.T) {
	path := writeConfig(t, pairYAML)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"distance", "--config", path})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "1\n", out.String())
	//
	out.Reset()
	rootCmd.SetArgs([]string{"mapping", "--config", path, "--strategy", "random", "--seed", "3"})
	require.NoError(t, rootCmd.Execute())
	m, err := gted.ReadMapping(&out)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Distance)
	assert.NoError(t, m.Validate(5, 6))
	//
	out.Reset()
	rootCmd.SetArgs([]string{"dot", "--config", path})
	require.NoError(t, rootCmd.Execute())
	assert.True(t, strings.HasPrefix(out.String(), "strict digraph {"))
}

package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/gted"
	"github.com/npillmayer/gted/formatter"
	"github.com/npillmayer/gted/tree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	configPath string
	debug      bool
	pretty     bool
	flagConfig = DefaultConfig()

	rootCmd = &cobra.Command{
		Use:   "gted",
		Short: "Tree edit distance between RNA secondary structures",
		Long: `gted computes the edit distance and an optimal edit mapping between
two RNA secondary structures, decomposing the trees by a strategy table.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			gtrace.CoreTracer = gologadapter.New()
			if debug {
				gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
			} else {
				gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
			}
		},
	}

	distanceCmd = &cobra.Command{
		Use:   "distance",
		Short: "Prints the tree edit distance",
		Args:  cobra.NoArgs,
		RunE:  runDistance,
	}
	mappingCmd = &cobra.Command{
		Use:   "mapping",
		Short: "Prints an optimal edit mapping in Traveler format",
		Args:  cobra.NoArgs,
		RunE:  runMapping,
	}
	dotCmd = &cobra.Command{
		Use:   "dot",
		Short: "Prints both trees and the edit mapping in Graphviz DOT format",
		Args:  cobra.NoArgs,
		RunE:  runDot,
	}
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "YAML file with settings, overridden by flags")
	pf.BoolVar(&debug, "debug", false, "trace the computation")
	pf.StringVar(&flagConfig.A.Structure, "a-structure", "", "dot-bracket structure of tree A")
	pf.StringVar(&flagConfig.A.Sequence, "a-sequence", "", "base sequence of tree A")
	pf.StringVar(&flagConfig.B.Structure, "b-structure", "", "dot-bracket structure of tree B")
	pf.StringVar(&flagConfig.B.Sequence, "b-sequence", "", "base sequence of tree B")
	pf.StringVar(&flagConfig.Strategy, "strategy", flagConfig.Strategy,
		"t1-left|t1-right|t2-left|t2-right|heavy|random")
	pf.Int64Var(&flagConfig.Seed, "seed", flagConfig.Seed, "seed for random strategies")
	pf.IntVar(&flagConfig.RootPenalty, "root-penalty", 0, "cost of forbidden operations (0 selects the minimum)")
	pf.StringVar(&flagConfig.Heavy, "heavy", flagConfig.Heavy, "replacement of heavy strategies: random|fixed")
	pf.StringVar(&flagConfig.HeavyFallback, "heavy-fallback", flagConfig.HeavyFallback,
		"strategy replacing heavy with --heavy fixed")
	mappingCmd.Flags().BoolVar(&pretty, "pretty", false, "print a colored listing instead")

	rootCmd.AddCommand(distanceCmd, mappingCmd, dotCmd)
}

// settings merges the config file, if any, with the flags actually set.
func settings(cmd *cobra.Command) (Config, error) {
	cfg := DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = LoadConfig(configPath); err != nil {
			return cfg, err
		}
	}
	flags := cmd.Flags()
	override := func(name string, dst *string, src string) {
		if flags.Changed(name) {
			*dst = src
		}
	}
	override("a-structure", &cfg.A.Structure, flagConfig.A.Structure)
	override("a-sequence", &cfg.A.Sequence, flagConfig.A.Sequence)
	override("b-structure", &cfg.B.Structure, flagConfig.B.Structure)
	override("b-sequence", &cfg.B.Sequence, flagConfig.B.Sequence)
	override("strategy", &cfg.Strategy, flagConfig.Strategy)
	override("heavy", &cfg.Heavy, flagConfig.Heavy)
	override("heavy-fallback", &cfg.HeavyFallback, flagConfig.HeavyFallback)
	if flags.Changed("seed") {
		cfg.Seed = flagConfig.Seed
	}
	if flags.Changed("root-penalty") {
		cfg.RootPenalty = flagConfig.RootPenalty
	}
	return cfg, nil
}

// job holds the parsed trees and a computed engine.
type job struct {
	a, b   *tree.Tree
	engine *gted.Engine
}

func prepare(cfg Config) (*job, error) {
	if cfg.A.Structure == "" || cfg.B.Structure == "" {
		return nil, fmt.Errorf("structures of both trees are required")
	}
	a, err := tree.FromBrackets("A", cfg.A.Structure, sequenceOf(cfg.A))
	if err != nil {
		return nil, fmt.Errorf("tree A: %w", err)
	}
	b, err := tree.FromBrackets("B", cfg.B.Structure, sequenceOf(cfg.B))
	if err != nil {
		return nil, fmt.Errorf("tree B: %w", err)
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	strategies, err := cfg.Strategies(a.Size(), b.Size())
	if err != nil {
		return nil, err
	}
	e, err := gted.New(a, b, &opts)
	if err != nil {
		return nil, err
	}
	if err = e.Run(strategies); err != nil {
		return nil, err
	}
	return &job{a: a, b: b, engine: e}, nil
}

// sequenceOf returns the sequence of s, or a placeholder base per position
// if no sequence is given.
func sequenceOf(s Structure) string {
	if s.Sequence != "" {
		return s.Sequence
	}
	seq := make([]byte, len(s.Structure))
	for i := range seq {
		seq[i] = 'N'
	}
	return string(seq)
}

func runJob(cmd *cobra.Command, out func(*job, io.Writer) error) error {
	cfg, err := settings(cmd)
	if err != nil {
		return err
	}
	j, err := prepare(cfg)
	if err != nil {
		return err
	}
	return out(j, cmd.OutOrStdout())
}

func runDistance(cmd *cobra.Command, args []string) error {
	return runJob(cmd, func(j *job, w io.Writer) error {
		d, err := j.engine.Distance()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, d)
		return err
	})
}

func runMapping(cmd *cobra.Command, args []string) error {
	return runJob(cmd, func(j *job, w io.Writer) error {
		m, err := j.engine.Mapping()
		if err != nil {
			return err
		}
		if pretty {
			return formatter.PrintMapping(w, j.a, j.b, m, nil)
		}
		_, err = m.WriteTo(w)
		return err
	})
}

func runDot(cmd *cobra.Command, args []string) error {
	return runJob(cmd, func(j *job, w io.Writer) error {
		m, err := j.engine.Mapping()
		if err != nil {
			return err
		}
		gted.Mapping2Dot(j.a, j.b, m, w)
		return nil
	})
}

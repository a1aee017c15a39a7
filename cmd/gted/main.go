/*
Command gted computes the tree edit distance between two RNA secondary
structures given in dot-bracket notation.

Usage:

	gted distance --a-structure '((..))' --a-sequence GCAAGC \
	              --b-structure '((...))' --b-sequence GCAUAGC
	gted mapping --config pair.yaml --strategy random --seed 7
	gted mapping --config pair.yaml --pretty
	gted dot --config pair.yaml | dot -Tsvg > mapping.svg

A config file holds the same settings as the flags; flags given on the
command line take precedence:

	a:
	  structure: "((..))"
	  sequence: GCAAGC
	b:
	  structure: "((...))"
	  sequence: GCAUAGC
	strategy: t1-left
	seed: 1
	heavy: random

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

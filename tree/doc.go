/*
Package tree implements labeled ordered trees as they are consumed by the
tree edit distance engine of package gted.

Every node carries a label, a paired flag and a dense postorder id. Ids are
assigned once, when a tree is built, and never change afterwards. All
per-side navigation the edit distance algorithm needs is precomputed:
leftmost and rightmost leaves, the postorder and the mirrored postorder
(children visited right to left), keyroots and subforest roots.

Trees are usually created either with a Builder

	b := tree.NewBuilder("t1")
	r := b.Root("r", false)
	a, _ := b.Add(r, "a", false)
	_, _ = b.Add(a, "b", false)
	t, err := b.Build()

or from an RNA secondary structure in dot-bracket notation

	t, err := tree.FromBrackets("hairpin", "((..))", "GCAAGC")

Trees are immutable after construction and may be shared between goroutines.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'gted'
func tracer() tracing.Trace {
	return tracing.Select("gted")
}

/*
Package gted computes the generalized tree edit distance between two labeled
ordered trees, together with an explicit edit mapping.

Tree Edit Distance

Given two ordered trees A and B, the tree edit distance is the minimum cost of
a sequence of node deletions, insertions and relabelings which transforms A
into B. The general framework (Pawlik and Augsten, “RTED: A Robust Algorithm
for the Tree Edit Distance”, 2011) decomposes both trees recursively along
root-to-leaf paths. Which tree and which path (leftmost or rightmost) is
decomposed first is decided per pair of subtrees by a strategy. The strategy
influences the running time, never the resulting distance.

This package executes a strategy table supplied by the client. Computing an
optimal strategy is a separate optimization problem and not part of this
package; heavy-path decomposition is not implemented either. Table cells
holding the Heavy strategy are replaced by one of the four path strategies,
either drawn from a seeded random source or fixed by configuration.

Usage

	a, _ := tree.FromBrackets("a", "((..))", "GCAAGC")
	b, _ := tree.FromBrackets("b", "((...))", "GCAUAGC")
	strategies := gted.NewStrategyTable(a.Size(), b.Size(), gted.T1Left)
	m, err := gted.Compute(a, b, strategies, nil)
	// m.Distance == 1, m.Pairs holds (idA+1, idB+1) pairs, 0 meaning „absent“

The cost model shipped with the package is the one for RNA secondary
structures: deleting or inserting a node costs 1, relabeling is free, but
matching the root with a non-root node, or a paired base with an unpaired
one, is forbidden by a penalty exceeding any legitimate edit script.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package gted

import (
	"github.com/npillmayer/gted/tree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Tree is the view of a labeled ordered tree the engine works on.
// It is implemented by *tree.Tree.
//
// Node ids must be dense postorder positions in [0, Size()), the root
// having id Size()-1. Methods taking a node id may panic for ids out of range.
type Tree interface {
	Name() string
	Size() int
	Root() int
	IsRoot(id int) bool
	Paired(id int) bool
	Label(id int) string
	Parent(id int) int
	Children(id int) []int
	SubtreeSize(id int) int
	// Leaf returns the leftmost or rightmost leaf below id.
	Leaf(id int, side tree.Side) int
	// Prev returns the predecessor of id in postorder (Left) or mirrored
	// postorder (Right), or tree.None.
	Prev(id int, side tree.Side) int
	Keyroots(id int, side tree.Side) []int
	Subforests(id int, side tree.Side) []int
	CheckPostorder() error
}

var _ Tree = (*tree.Tree)(nil)

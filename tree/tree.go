package tree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"strings"
)

// None denotes the absence of a node, e.g. the parent of the root or the
// empty forest.
const None = -1

// Side selects one of the two boundary paths of a subtree.
type Side uint8

const (
	// Left is the leftmost path, iterated in postorder.
	Left Side = iota
	// Right is the rightmost path, iterated in mirrored postorder.
	Right
)

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// Node is the payload of a tree node.
type Node struct {
	Label  string
	Paired bool
	// Positions holds the sequence positions a node stands for: one position
	// for an unpaired base, two for a base pair, none for an artificial root.
	Positions []int
}

// Tree is an immutable labeled ordered tree with dense postorder ids.
//
// The root always has the highest id, size()-1. The subtree of a node v
// occupies the contiguous id range [Leaf(v, Left), v].
type Tree struct {
	name     string
	nodes    []Node
	parent   []int
	children [][]int
	size     []int    // subtree sizes
	leaf     [2][]int // leftmost/rightmost leaf per node
	order    [2][]int // postorder/mirrored postorder
	pos      [2][]int // index of a node within order
}

// Name returns the name given to the tree at construction time.
func (t *Tree) Name() string {
	if t == nil {
		return ""
	}
	return t.name
}

// Size returns the number of nodes.
func (t *Tree) Size() int {
	if t == nil {
		return 0
	}
	return len(t.nodes)
}

// Root returns the id of the root node, or None for an empty tree.
func (t *Tree) Root() int {
	return t.Size() - 1
}

// Valid reports whether id denotes a node of t.
func (t *Tree) Valid(id int) bool {
	return id >= 0 && id < t.Size()
}

// Node returns a copy of the payload of node id.
func (t *Tree) Node(id int) Node {
	t.check(id)
	n := t.nodes[id]
	n.Positions = append([]int(nil), n.Positions...)
	return n
}

// Label returns the label of node id.
func (t *Tree) Label(id int) string {
	t.check(id)
	return t.nodes[id].Label
}

// Paired reports whether node id stands for a base pair.
func (t *Tree) Paired(id int) bool {
	t.check(id)
	return t.nodes[id].Paired
}

// IsRoot reports whether id is the root of the whole tree.
func (t *Tree) IsRoot(id int) bool {
	t.check(id)
	return t.parent[id] == None
}

// Parent returns the parent of node id, or None for the root.
func (t *Tree) Parent(id int) int {
	t.check(id)
	return t.parent[id]
}

// Children returns the children of node id from left to right.
// The returned slice must not be modified.
func (t *Tree) Children(id int) []int {
	t.check(id)
	return t.children[id]
}

// IsLeaf reports whether node id has no children.
func (t *Tree) IsLeaf(id int) bool {
	return len(t.Children(id)) == 0
}

// SubtreeSize returns the number of nodes in the subtree rooted at id.
func (t *Tree) SubtreeSize(id int) int {
	t.check(id)
	return t.size[id]
}

// Leaf returns the leftmost or rightmost leaf of the subtree rooted at id.
func (t *Tree) Leaf(id int, side Side) int {
	t.check(id)
	return t.leaf[side][id]
}

// Order returns all node ids in postorder (Left) or mirrored postorder (Right).
// The returned slice must not be modified.
func (t *Tree) Order(side Side) []int {
	if t == nil {
		return nil
	}
	return t.order[side]
}

// Postorder returns all node ids in postorder, which is 0…size-1.
func (t *Tree) Postorder() []int {
	return t.Order(Left)
}

// Prev returns the predecessor of id in the order of side, or None if id is
// the first node of that order.
func (t *Tree) Prev(id int, side Side) int {
	t.check(id)
	p := t.pos[side][id]
	if p == 0 {
		return None
	}
	return t.order[side][p-1]
}

// IsFirstChild reports whether id is the first child (Left) or last child (Right)
// of its parent. The root is not a first child of anything.
func (t *Tree) IsFirstChild(id int, side Side) bool {
	p := t.Parent(id)
	if p == None {
		return false
	}
	ch := t.children[p]
	if side == Left {
		return ch[0] == id
	}
	return ch[len(ch)-1] == id
}

func (t *Tree) check(id int) {
	if !t.Valid(id) {
		panic(fmt.Sprintf("tree %q: node id %d out of range [0,%d)", t.Name(), id, t.Size()))
	}
}

// String returns the tree in bracket notation, e.g. "r(a(b))".
func (t *Tree) String() string {
	if t.Size() == 0 {
		return "()"
	}
	var sb strings.Builder
	t.print(&sb, t.Root())
	return sb.String()
}

func (t *Tree) print(sb *strings.Builder, id int) {
	sb.WriteString(t.nodes[id].Label)
	if t.nodes[id].Paired {
		sb.WriteByte('*')
	}
	if len(t.children[id]) == 0 {
		return
	}
	sb.WriteByte('(')
	for i, ch := range t.children[id] {
		if i > 0 {
			sb.WriteByte(' ')
		}
		t.print(sb, ch)
	}
	sb.WriteByte(')')
}

// Subtree returns the subtree rooted at id in bracket notation.
func (t *Tree) Subtree(id int) string {
	t.check(id)
	var sb strings.Builder
	t.print(&sb, id)
	return sb.String()
}

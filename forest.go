package gted

import (
	"fmt"

	"github.com/npillmayer/gted/tree"
)

// forestTable is the local distance table between all prefixes of two forests.
//
// Rows and columns are indexed by the postorder offset of a node from the
// leftmost leaf of the respective subtree, plus one; index 0 is the empty
// forest. A cell (x, y) holds the distance between the forests consisting of
// all nodes up to and including x and y, in the order of the current side.
type forestTable struct {
	rows, cols int
	off1, off2 int
	cells      []int
}

func newForestTable(rows, cols, off1, off2 int) *forestTable {
	ft := &forestTable{rows: rows, cols: cols, off1: off1, off2: off2, cells: make([]int, rows*cols)}
	for i := range ft.cells {
		ft.cells[i] = unresolved
	}
	return ft
}

func (ft *forestTable) index(x, y int) int {
	i, j := 0, 0
	if x != tree.None {
		i = x - ft.off1 + 1
	}
	if y != tree.None {
		j = y - ft.off2 + 1
	}
	if i < 0 || i >= ft.rows || j < 0 || j >= ft.cols {
		fail(ErrIndexOutOfBounds, "fdist", x, y,
			fmt.Sprintf("offset (%d,%d) in %d×%d table", i, j, ft.rows, ft.cols))
	}
	return i*ft.cols + j
}

func (ft *forestTable) get(x, y int) int {
	d := ft.cells[ft.index(x, y)]
	if d == unresolved {
		fail(ErrUnresolved, "fdist", x, y, "")
	}
	return d
}

func (ft *forestTable) set(x, y, d int) {
	ft.cells[ft.index(x, y)] = d
}

// forest holds the nodes of a subtree in the order of a side, starting at
// its boundary leaf and ending at the subtree root.
type forest struct {
	t     Tree
	side  tree.Side
	beg   int
	nodes []int
}

func makeForest(t Tree, root int, side tree.Side) forest {
	n := t.SubtreeSize(root)
	nodes := make([]int, n)
	for k, x := n-1, root; k >= 0; k-- {
		nodes[k] = x
		x = t.Prev(x, side)
	}
	return forest{t: t, side: side, beg: t.Leaf(root, side), nodes: nodes}
}

// prev returns the predecessor of x within the forest, or tree.None.
func (f forest) prev(x int) int {
	if x == f.beg {
		return tree.None
	}
	return f.t.Prev(x, f.side)
}

// onPath reports whether the subtree of x starts at the forest boundary,
// i.e. x lies on the boundary path of the forest's root.
func (f forest) onPath(x int) bool {
	return f.t.Leaf(x, f.side) == f.beg
}

// before returns the last node preceding the subtree of x, or tree.None if
// the subtree of x starts at the forest boundary.
func (f forest) before(x int) int {
	return f.prev(f.t.Leaf(x, f.side))
}

// forestDistance computes the distances between all forest prefixes of the
// subtrees rooted at root1 (outer tree) and root2 (inner tree).
//
// Tree distances for pairs of nodes which are both on the boundary paths are
// written to the memo; all other tree distances needed have to be resolved
// beforehand.
func (r *run) forestDistance(root1, root2 int, dir direction) *forestTable {
	side := dir.side()
	f1 := makeForest(dir.outer(), root1, side)
	f2 := makeForest(dir.inner(), root2, side)
	fd := newForestTable(len(f1.nodes)+1, len(f2.nodes)+1,
		dir.outer().Leaf(root1, tree.Left), dir.inner().Leaf(root2, tree.Left))
	fd.set(tree.None, tree.None, 0)
	for _, x := range f1.nodes {
		fd.set(x, tree.None, fd.get(f1.prev(x), tree.None)+dir.deleteOuter(x))
	}
	for _, y := range f2.nodes {
		fd.set(tree.None, y, fd.get(tree.None, f2.prev(y))+dir.deleteInner(y))
	}
	for _, x := range f1.nodes {
		px := f1.prev(x)
		for _, y := range f2.nodes {
			py := f2.prev(y)
			del := fd.get(px, y) + dir.deleteOuter(x)
			ins := fd.get(x, py) + dir.deleteInner(y)
			subroots := f1.onPath(x) && f2.onPath(y)
			var match int
			if subroots {
				match = fd.get(px, py) + dir.relabel(x, y)
			} else {
				match = dir.tdist(x, y) + fd.get(f1.before(x), f2.before(y))
			}
			d := min(del, ins, match)
			fd.set(x, y, d)
			if subroots {
				dir.setTdist(x, y, d)
			}
		}
	}
	return fd
}

package tree

import "sort"

// Keyroots returns the roots of the relevant subtrees of v for a side: for
// every node p on the path from v down to Leaf(v, side), all children of p
// except the first (Left) or last (Right) one. Ids are ascending.
//
// Together with the path itself, the subtrees of the keyroots partition the
// subtree of v.
func (t *Tree) Keyroots(v int, side Side) []int {
	t.check(v)
	var roots []int
	for p := v; len(t.children[p]) > 0; {
		ch := t.children[p]
		if side == Left {
			roots = append(roots, ch[1:]...)
			p = ch[0]
		} else {
			roots = append(roots, ch[:len(ch)-1]...)
			p = ch[len(ch)-1]
		}
	}
	sort.Ints(roots)
	return roots
}

// Subforests returns the proper descendants x of v which start a new
// boundary path, i.e. x is not the first (Left) or last (Right) child of
// its parent. Ids are ascending, so every such node is listed after all of
// its descendants.
//
// The boundary paths of v and of all returned nodes cover the subtree of v.
func (t *Tree) Subforests(v int, side Side) []int {
	t.check(v)
	var roots []int
	for x := t.leaf[Left][v]; x < v; x++ {
		if !t.IsFirstChild(x, side) {
			roots = append(roots, x)
		}
	}
	return roots
}

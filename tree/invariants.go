package tree

import "fmt"

// CheckPostorder validates that node ids enumerate the tree in postorder and
// that parent and child links agree.
func (t *Tree) CheckPostorder() error {
	if t == nil || len(t.nodes) == 0 {
		return ErrEmptyTree
	}
	n := len(t.nodes)
	if len(t.parent) != n || len(t.children) != n {
		return fmt.Errorf("%w: tree %q has inconsistent node tables", ErrNotPostorder, t.name)
	}
	next := 0
	var err error
	var visit func(id, depth int)
	visit = func(id, depth int) {
		if err != nil {
			return
		}
		if depth > n {
			err = fmt.Errorf("%w: tree %q contains a cycle", ErrNotPostorder, t.name)
			return
		}
		for _, ch := range t.children[id] {
			if ch < 0 || ch >= n || t.parent[ch] != id {
				err = fmt.Errorf("%w: tree %q: child %d of %d has broken parent link",
					ErrNotPostorder, t.name, ch, id)
				return
			}
			visit(ch, depth+1)
		}
		if err == nil && id != next {
			err = fmt.Errorf("%w: tree %q: node %d visited at postorder position %d",
				ErrNotPostorder, t.name, id, next)
		}
		next++
	}
	root := n - 1
	if t.parent[root] != None {
		return fmt.Errorf("%w: tree %q: node %d is last in postorder but not the root",
			ErrNotPostorder, t.name, root)
	}
	visit(root, 0)
	if err != nil {
		return err
	}
	if next != n {
		return fmt.Errorf("%w: tree %q: %d of %d nodes reachable from root",
			ErrNotPostorder, t.name, next, n)
	}
	return nil
}

package gted

import (
	"fmt"

	"github.com/npillmayer/gted/tree"
)

type subtreePair struct {
	a, b int
}

// reconstruct derives an optimal edit mapping from the resolved tree
// distances. For every pair of subtrees on the worklist the local forest
// distances are recomputed and traced back from the roots towards the
// leftmost leaves. Alignments crossing into nested subtrees are pushed onto
// the worklist and resolved independently.
func (r *run) reconstruct() *Mapping {
	dir := r.newDirection(T1Left)
	m := &Mapping{}
	work := []subtreePair{{r.a.Root(), r.b.Root()}}
	for len(work) > 0 {
		p := work[len(work)-1]
		work = work[:len(work)-1]
		T().Debugf("matching subtrees %s and %s", subtreeString(r.a, p.a), subtreeString(r.b, p.b))
		fd := r.forestDistance(p.a, p.b, dir)
		f1 := makeForest(r.a, p.a, tree.Left)
		f2 := makeForest(r.b, p.b, tree.Left)
		x, y := p.a, p.b
		for x != tree.None || y != tree.None {
			d := fd.get(x, y)
			if x != tree.None && fd.get(f1.prev(x), y)+r.costs.Delete(x) == d {
				T().Debugf("delete %s:%d", r.a.Label(x), x)
				m.Pairs = append(m.Pairs, Pair{A: x + 1})
				x = f1.prev(x)
			} else if y != tree.None && fd.get(x, f2.prev(y))+r.costs.Insert(y) == d {
				T().Debugf("insert %s:%d", r.b.Label(y), y)
				m.Pairs = append(m.Pairs, Pair{B: y + 1})
				y = f2.prev(y)
			} else if x == tree.None || y == tree.None {
				fail(ErrInconsistent, "fdist", x, y, "no edit operation reproduces the distance")
			} else if f1.onPath(x) && f2.onPath(y) {
				if fd.get(f1.prev(x), f2.prev(y))+r.costs.Relabel(x, y) != d {
					fail(ErrInconsistent, "fdist", x, y, "match does not reproduce the distance")
				}
				T().Debugf("match %s:%d -> %s:%d", r.a.Label(x), x, r.b.Label(y), y)
				m.Pairs = append(m.Pairs, Pair{A: x + 1, B: y + 1})
				x, y = f1.prev(x), f2.prev(y)
			} else {
				bx, by := f1.before(x), f2.before(y)
				if r.tdist(x, y)+fd.get(bx, by) != d {
					fail(ErrInconsistent, "fdist", x, y, "subtree alignment does not reproduce the distance")
				}
				T().Debugf("to be matched: %s and %s", subtreeString(r.a, x), subtreeString(r.b, y))
				work = append(work, subtreePair{x, y})
				x, y = bx, by
			}
		}
	}
	return m
}

// cost sums up the costs of all edit operations of a mapping.
func (r *run) cost(m *Mapping) int {
	d := 0
	for _, p := range m.Pairs {
		a, b := p.IDs()
		switch {
		case p.IsDelete():
			d += r.costs.Delete(a)
		case p.IsInsert():
			d += r.costs.Insert(b)
		default:
			d += r.costs.Relabel(a, b)
		}
	}
	return d
}

type subtreePrinter interface {
	Subtree(id int) string
}

func subtreeString(t Tree, id int) string {
	if sp, ok := t.(subtreePrinter); ok {
		return sp.Subtree(id)
	}
	return fmt.Sprintf("%s:%d", t.Label(id), id)
}

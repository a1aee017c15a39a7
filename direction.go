package gted

import "github.com/npillmayer/gted/tree"

// direction fixes, for one forest distance computation, which tree is
// iterated in the outer loop and along which side. Node ids passed to a
// direction are in its own (outer, inner) coordinates.
type direction interface {
	side() tree.Side
	outer() Tree
	inner() Tree
	// orient converts an (idA, idB) pair into (outer, inner) ids.
	orient(a, b int) (int, int)
	deleteOuter(o int) int
	deleteInner(i int) int
	relabel(o, i int) int
	tdist(o, i int) int
	setTdist(o, i, d int)
}

// newDirection selects the direction for a path strategy: tree A outer if
// the strategy decomposes A, tree B outer otherwise.
func (r *run) newDirection(s Strategy) direction {
	if s.IsT2() {
		return reversed{r: r, s: s.Side()}
	}
	return forward{r: r, s: s.Side()}
}

// forward iterates tree A in the outer loop.
type forward struct {
	r *run
	s tree.Side
}

func (d forward) side() tree.Side            { return d.s }
func (d forward) outer() Tree                { return d.r.a }
func (d forward) inner() Tree                { return d.r.b }
func (d forward) orient(a, b int) (int, int) { return a, b }
func (d forward) deleteOuter(o int) int      { return d.r.costs.Delete(o) }
func (d forward) deleteInner(i int) int      { return d.r.costs.Insert(i) }
func (d forward) relabel(o, i int) int       { return d.r.costs.Relabel(o, i) }
func (d forward) tdist(o, i int) int         { return d.r.tdist(o, i) }
func (d forward) setTdist(o, i, dist int)    { d.r.setTdist(o, i, dist) }

// reversed iterates tree B in the outer loop.
type reversed struct {
	r *run
	s tree.Side
}

func (d reversed) side() tree.Side            { return d.s }
func (d reversed) outer() Tree                { return d.r.b }
func (d reversed) inner() Tree                { return d.r.a }
func (d reversed) orient(a, b int) (int, int) { return b, a }
func (d reversed) deleteOuter(o int) int      { return d.r.costs.Insert(o) }
func (d reversed) deleteInner(i int) int      { return d.r.costs.Delete(i) }
func (d reversed) relabel(o, i int) int       { return d.r.costs.Relabel(i, o) }
func (d reversed) tdist(o, i int) int         { return d.r.tdist(i, o) }
func (d reversed) setTdist(o, i, dist int)    { d.r.setTdist(i, o, dist) }

package gted

// run carries the state of one distance computation or reconstruction.
type run struct {
	a, b       Tree
	costs      CostModel
	memo       *Memo
	strategies *StrategyTable
	heavy      heavyResolver
}

func (r *run) tdist(i, j int) int {
	d, err := r.memo.Get(i, j)
	if err != nil {
		fail(err, "tdist", i, j, "")
	}
	return d
}

func (r *run) setTdist(i, j, d int) {
	if err := r.memo.Set(i, j, d); err != nil {
		fail(err, "tdist", i, j, "")
	}
}

// strategy looks up the strategy for (i, j) and replaces Heavy by a path strategy.
func (r *run) strategy(i, j int) Strategy {
	s, err := r.strategies.At(i, j)
	if err != nil {
		fail(err, "strategy", i, j, "")
	}
	if s.IsHeavy() {
		s = r.heavy.resolve(i, j)
		T().Debugf("heavy decomposition not implemented, using %s for (%d,%d)", s, i, j)
	} else if s > Heavy {
		fail(ErrPrecondition, "strategy", i, j, s.String())
	}
	return s
}

// compute resolves the tree distances between all pairs of nodes in the
// subtrees of rootA and rootB.
//
// The relevant subtrees hanging off the decomposition path are resolved
// first, then the single-path step covers the path itself.
func (r *run) compute(rootA, rootB int) {
	s := r.strategy(rootA, rootB)
	side := s.Side()
	if s.IsT1() {
		for _, k := range r.a.Keyroots(rootA, side) {
			r.compute(k, rootB)
		}
	} else {
		for _, k := range r.b.Keyroots(rootB, side) {
			r.compute(rootA, k)
		}
	}
	r.singlePath(rootA, rootB, s)
}

// singlePath computes the forest distances between the path of the
// decomposed subtree and every subforest of the other subtree. The final
// call resolves (rootA, rootB) itself.
func (r *run) singlePath(rootA, rootB int, s Strategy) {
	dir := r.newDirection(s)
	side := s.Side()
	if s.IsT1() {
		for _, sf := range r.b.Subforests(rootB, side) {
			r.forestDistance(rootA, sf, dir)
		}
	} else {
		for _, sf := range r.a.Subforests(rootA, side) {
			r.forestDistance(rootB, sf, dir)
		}
	}
	o, i := dir.orient(rootA, rootB)
	r.forestDistance(o, i, dir)
}

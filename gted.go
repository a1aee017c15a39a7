package gted

import (
	"fmt"
)

// Engine computes the tree edit distance and an edit mapping between two trees.
//
// An Engine is not safe for concurrent use. The trees must not change while
// they are in use by an engine.
type Engine struct {
	a, b  Tree
	opts  Options
	costs CostModel
	memo  *Memo
	done  bool
}

// New creates an engine for trees a and b. If opts is nil, DefaultOptions are used.
func New(a, b Tree, opts *Options) (*Engine, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: missing tree", ErrPrecondition)
	}
	if a.Size() == 0 || b.Size() == 0 {
		return nil, fmt.Errorf("%w: empty tree", ErrPrecondition)
	}
	e := &Engine{a: a, b: b, opts: DefaultOptions()}
	if opts != nil {
		e.opts = *opts
	}
	e.costs = e.opts.Costs
	if e.costs == nil {
		e.costs = NewRNACosts(a, b, e.opts.RootPenalty)
	}
	return e, nil
}

// Costs returns the cost model in use.
func (e *Engine) Costs() CostModel {
	return e.costs
}

// Memo returns the tree distances of the last run, or nil before the first run.
func (e *Engine) Memo() *Memo {
	return e.memo
}

func (e *Engine) checkTrees() error {
	if err := e.a.CheckPostorder(); err != nil {
		return fmt.Errorf("%w: tree A: %v", ErrPrecondition, err)
	}
	if err := e.b.CheckPostorder(); err != nil {
		return fmt.Errorf("%w: tree B: %v", ErrPrecondition, err)
	}
	return nil
}

func (e *Engine) newRun(strategies *StrategyTable) *run {
	return &run{
		a:          e.a,
		b:          e.b,
		costs:      e.costs,
		memo:       e.memo,
		strategies: strategies,
		heavy:      newHeavyResolver(e.opts),
	}
}

// Run computes the tree distances between all pairs of subtrees of A and B,
// decomposing as told by strategies, a table of size |A|×|B|.
func (e *Engine) Run(strategies *StrategyTable) (err error) {
	if strategies == nil {
		return fmt.Errorf("%w: missing strategy table", ErrPrecondition)
	}
	if strategies.Rows() != e.a.Size() || strategies.Cols() != e.b.Size() {
		return fmt.Errorf("%w: strategy table is %d×%d, trees are %d×%d", ErrPrecondition,
			strategies.Rows(), strategies.Cols(), e.a.Size(), e.b.Size())
	}
	if err = e.checkTrees(); err != nil {
		return err
	}
	T().Infof("BEG: running GTED for trees %s and %s", e.a.Name(), e.b.Name())
	e.done = false
	e.memo = NewMemo(e.a.Size(), e.b.Size())
	defer recoverInvariant(&err)
	r := e.newRun(strategies)
	r.compute(e.a.Root(), e.b.Root())
	T().Infof("computed tree edit distance tdist[%s][%s] = %d",
		e.a.Label(e.a.Root()), e.b.Label(e.b.Root()), r.tdist(e.a.Root(), e.b.Root()))
	T().Infof("END: running GTED for trees %s and %s", e.a.Name(), e.b.Name())
	e.done = true
	return nil
}

// Distance returns the tree edit distance between A and B.
func (e *Engine) Distance() (int, error) {
	if !e.done {
		return 0, ErrNotComputed
	}
	return e.memo.Get(e.a.Root(), e.b.Root())
}

// Mapping reconstructs an optimal edit mapping from the resolved distances.
// Pairs are sorted by (A, B).
//
// Reconstruction recomputes local forest distances but never changes the
// tree distances of the run; doing so is reported as ErrMemoChanged.
func (e *Engine) Mapping() (m *Mapping, err error) {
	if !e.done {
		return nil, ErrNotComputed
	}
	if err = e.checkTrees(); err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			m = nil
		}
	}()
	defer recoverInvariant(&err)
	T().Infof("BEG: computing mapping between trees %s and %s", e.a.Name(), e.b.Name())
	snapshot := e.memo.Clone()
	r := e.newRun(nil)
	m = r.reconstruct()
	if !e.memo.Equal(snapshot) {
		return nil, ErrMemoChanged
	}
	if err = m.Validate(e.a.Size(), e.b.Size()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInconsistent, err)
	}
	ins, del := len(m.Inserts()), len(m.Deletes())
	if e.a.Size()+ins != e.b.Size()+del {
		return nil, fmt.Errorf("%w: |A|+%d inserts != |B|+%d deletes", ErrInconsistent, ins, del)
	}
	m.Distance = r.cost(m)
	if d := r.tdist(e.a.Root(), e.b.Root()); d != m.Distance {
		return nil, fmt.Errorf("%w: mapping costs %d, distance is %d", ErrInconsistent, m.Distance, d)
	}
	m.Sort()
	T().Infof("END: computing mapping between trees %s and %s", e.a.Name(), e.b.Name())
	return m, nil
}

// Compute runs the engine on a and b and returns the mapping, whose Distance
// field is the tree edit distance.
func Compute(a, b Tree, strategies *StrategyTable, opts *Options) (*Mapping, error) {
	e, err := New(a, b, opts)
	if err != nil {
		return nil, err
	}
	if err = e.Run(strategies); err != nil {
		return nil, err
	}
	return e.Mapping()
}

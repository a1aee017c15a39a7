package gted

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/npillmayer/gted/tree"
)

// Strategy tells the decomposition which tree to decompose first for a pair
// of subtrees, and along which path.
type Strategy uint8

const (
	// T1Left decomposes tree A along its leftmost paths.
	T1Left Strategy = iota
	// T1Right decomposes tree A along its rightmost paths.
	T1Right
	// T2Left decomposes tree B along its leftmost paths.
	T2Left
	// T2Right decomposes tree B along its rightmost paths.
	T2Right
	// Heavy stands for heavy-path decomposition, which is not implemented.
	// It is replaced by one of the path strategies, see HeavyPolicy.
	Heavy
)

var pathStrategies = [...]Strategy{T1Left, T1Right, T2Left, T2Right}

var strategyNames = [...]string{"t1-left", "t1-right", "t2-left", "t2-right", "heavy"}

func (s Strategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return fmt.Sprintf("Strategy(%d)", s)
}

// ParseStrategy converts a strategy name as returned by String back into a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for i, n := range strategyNames {
		if strings.EqualFold(n, name) {
			return Strategy(i), nil
		}
	}
	return Heavy, fmt.Errorf("%w: unknown strategy %q", ErrPrecondition, name)
}

func (s Strategy) IsT1() bool    { return s == T1Left || s == T1Right }
func (s Strategy) IsT2() bool    { return s == T2Left || s == T2Right }
func (s Strategy) IsLeft() bool  { return s == T1Left || s == T2Left }
func (s Strategy) IsRight() bool { return s == T1Right || s == T2Right }
func (s Strategy) IsHeavy() bool { return s == Heavy }

// Side returns the decomposition path of a path strategy.
func (s Strategy) Side() tree.Side {
	if s.IsRight() {
		return tree.Right
	}
	return tree.Left
}

// StrategyTable holds one strategy for every pair (i, j) of node ids,
// i in tree A and j in tree B.
type StrategyTable struct {
	rows, cols int
	cells      []Strategy
}

// NewStrategyTable creates a rows×cols table with every cell set to fill.
func NewStrategyTable(rows, cols int, fill Strategy) *StrategyTable {
	st := &StrategyTable{rows: rows, cols: cols, cells: make([]Strategy, rows*cols)}
	for i := range st.cells {
		st.cells[i] = fill
	}
	return st
}

// RandomStrategyTable creates a rows×cols table with strategies drawn from all
// five strategies, Heavy included. Equal seeds produce equal tables.
func RandomStrategyTable(rows, cols int, seed int64) *StrategyTable {
	rnd := rand.New(rand.NewSource(seed))
	st := &StrategyTable{rows: rows, cols: cols, cells: make([]Strategy, rows*cols)}
	for i := range st.cells {
		st.cells[i] = Strategy(rnd.Intn(len(strategyNames)))
	}
	return st
}

// Rows returns the number of rows, i.e. the size of tree A.
func (st *StrategyTable) Rows() int { return st.rows }

// Cols returns the number of columns, i.e. the size of tree B.
func (st *StrategyTable) Cols() int { return st.cols }

// At returns the strategy for (i, j).
func (st *StrategyTable) At(i, j int) (Strategy, error) {
	if i < 0 || i >= st.rows || j < 0 || j >= st.cols {
		return Heavy, fmt.Errorf("%w: strategy[%d][%d] in %d×%d table",
			ErrIndexOutOfBounds, i, j, st.rows, st.cols)
	}
	return st.cells[i*st.cols+j], nil
}

// Set stores the strategy for (i, j).
func (st *StrategyTable) Set(i, j int, s Strategy) error {
	if i < 0 || i >= st.rows || j < 0 || j >= st.cols {
		return fmt.Errorf("%w: strategy[%d][%d] in %d×%d table",
			ErrIndexOutOfBounds, i, j, st.rows, st.cols)
	}
	st.cells[i*st.cols+j] = s
	return nil
}

// --- Heavy strategy fallback -----------------------------------------------

// HeavyPolicy selects how Heavy table entries are replaced.
type HeavyPolicy uint8

const (
	// HeavyRandom draws one of the four path strategies uniformly from a
	// random source seeded with Options.Seed at the start of every run.
	HeavyRandom HeavyPolicy = iota
	// HeavyFixed always substitutes Options.HeavyFallback.
	HeavyFixed
)

// heavyResolver picks a path strategy for a Heavy table entry at (i, j).
type heavyResolver interface {
	resolve(i, j int) Strategy
}

type randomResolver struct {
	rnd *rand.Rand
}

func (r randomResolver) resolve(int, int) Strategy {
	return pathStrategies[r.rnd.Intn(len(pathStrategies))]
}

type fixedResolver Strategy

func (r fixedResolver) resolve(int, int) Strategy {
	return Strategy(r)
}

func newHeavyResolver(opts Options) heavyResolver {
	if opts.Heavy == HeavyFixed {
		s := opts.HeavyFallback
		if s.IsHeavy() || s > Heavy {
			s = T1Left
		}
		return fixedResolver(s)
	}
	return randomResolver{rnd: rand.New(rand.NewSource(opts.Seed))}
}

package gted

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/npillmayer/gted/tree"
)

func path(t *testing.T, name string, labels ...string) *tree.Tree {
	t.Helper()
	b := tree.NewBuilder(name)
	h := b.Root(labels[0], false)
	for _, l := range labels[1:] {
		var err error
		if h, err = b.Add(h, l, false); err != nil {
			t.Fatal(err)
		}
	}
	tr, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	return tr
}

func brackets(t *testing.T, name, structure, sequence string) *tree.Tree {
	t.Helper()
	tr, err := tree.FromBrackets(name, structure, sequence)
	if err != nil {
		t.Fatal(err)
	}
	return tr
}

// randomTree creates a tree of n nodes with an unpaired root, attaching every
// further node to a randomly chosen earlier one.
func randomTree(t *testing.T, name string, rnd *rand.Rand, n int) *tree.Tree {
	t.Helper()
	b := tree.NewBuilder(name)
	handles := []tree.Handle{b.Root("R", false)}
	for i := 1; i < n; i++ {
		p := handles[rnd.Intn(len(handles))]
		h, err := b.Add(p, string(rune('a'+rnd.Intn(4))), rnd.Intn(3) == 0)
		if err != nil {
			t.Fatal(err)
		}
		handles = append(handles, h)
	}
	tr, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	return tr
}

// referenceDistance is the textbook forest recursion, memoized on forests
// given as sequences of root ids.
func referenceDistance(a, b Tree, costs CostModel) int {
	memo := make(map[string]int)
	var dist func(f, g []int) int
	dist = func(f, g []int) int {
		key := fmt.Sprint(f, g)
		if d, ok := memo[key]; ok {
			return d
		}
		var d int
		switch {
		case len(f) == 0 && len(g) == 0:
			d = 0
		case len(f) == 0:
			for _, w := range g {
				for y := b.Leaf(w, tree.Left); y <= w; y++ {
					d += costs.Insert(y)
				}
			}
		case len(g) == 0:
			for _, v := range f {
				for x := a.Leaf(v, tree.Left); x <= v; x++ {
					d += costs.Delete(x)
				}
			}
		default:
			v, w := f[len(f)-1], g[len(g)-1]
			fv := append(append([]int{}, f[:len(f)-1]...), a.Children(v)...)
			gw := append(append([]int{}, g[:len(g)-1]...), b.Children(w)...)
			d = min(
				dist(fv, g)+costs.Delete(v),
				dist(f, gw)+costs.Insert(w),
				dist(append([]int{}, f[:len(f)-1]...), append([]int{}, g[:len(g)-1]...))+
					dist(a.Children(v), b.Children(w))+costs.Relabel(v, w),
			)
		}
		memo[key] = d
		return d
	}
	return dist([]int{a.Root()}, []int{b.Root()})
}

func allStrategyTables(a, b Tree) map[string]*StrategyTable {
	tables := make(map[string]*StrategyTable)
	for _, s := range pathStrategies {
		tables[s.String()] = NewStrategyTable(a.Size(), b.Size(), s)
	}
	tables["heavy"] = NewStrategyTable(a.Size(), b.Size(), Heavy)
	for seed := int64(1); seed <= 3; seed++ {
		tables[fmt.Sprintf("random-%d", seed)] = RandomStrategyTable(a.Size(), b.Size(), seed)
	}
	return tables
}

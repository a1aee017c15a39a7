package gted

// CostModel assigns costs to edit operations. Node ids refer to tree A for
// Delete and to tree B for Insert.
type CostModel interface {
	Delete(a int) int
	Insert(b int) int
	Relabel(a, b int) int
}

// RNACosts is the cost model for RNA secondary structure trees.
//
// Deleting or inserting a node costs 1, relabeling is free. Deleting or
// inserting a tree root, matching a root with a non-root, or matching a
// paired with an unpaired node costs Penalty.
type RNACosts struct {
	a, b    Tree
	penalty int
}

// MinPenalty returns the smallest penalty which exceeds the cost of every
// edit script between a and b that avoids forbidden operations.
func MinPenalty(a, b Tree) int {
	return a.Size() + b.Size() + 1
}

// NewRNACosts creates the RNA cost model for trees a and b. A penalty below
// MinPenalty(a, b), including 0, is raised to MinPenalty(a, b).
func NewRNACosts(a, b Tree, penalty int) *RNACosts {
	if lower := MinPenalty(a, b); penalty < lower {
		penalty = lower
	}
	return &RNACosts{a: a, b: b, penalty: penalty}
}

// Penalty returns the cost of a forbidden operation.
func (c *RNACosts) Penalty() int {
	return c.penalty
}

func (c *RNACosts) Delete(a int) int {
	if c.a.IsRoot(a) {
		return c.penalty
	}
	return 1
}

func (c *RNACosts) Insert(b int) int {
	if c.b.IsRoot(b) {
		return c.penalty
	}
	return 1
}

func (c *RNACosts) Relabel(a, b int) int {
	if c.a.IsRoot(a) != c.b.IsRoot(b) || c.a.Paired(a) != c.b.Paired(b) {
		return c.penalty
	}
	return 0
}

package tree

import "fmt"

// Handle refers to a node staged in a Builder. Handles are not node ids;
// ids are assigned in postorder when the tree is built.
type Handle int

// Builder stages nodes and finalizes them into a Tree.
//
// Nodes may be added in any order as long as a node's parent has been added
// before it. Children keep the order in which they were added.
type Builder struct {
	name     string
	nodes    []Node
	parent   []Handle
	children [][]Handle
	done     bool
	tree     *Tree
}

// NewBuilder creates a new and empty tree builder.
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// Root stages the root node. It must be the first node staged; calling it
// again returns the existing root handle.
func (b *Builder) Root(label string, paired bool, positions ...int) Handle {
	if len(b.nodes) > 0 {
		return 0
	}
	b.stage(Handle(None), Node{Label: label, Paired: paired, Positions: positions})
	return 0
}

// Add stages a node as the new last child of parent.
func (b *Builder) Add(parent Handle, label string, paired bool, positions ...int) (Handle, error) {
	if b.done {
		return Handle(None), ErrTreeCompleted
	}
	if parent < 0 || int(parent) >= len(b.nodes) {
		return Handle(None), fmt.Errorf("%w: parent %d", ErrInvalidHandle, parent)
	}
	h := b.stage(parent, Node{Label: label, Paired: paired, Positions: positions})
	b.children[parent] = append(b.children[parent], h)
	return h, nil
}

func (b *Builder) stage(parent Handle, node Node) Handle {
	node.Positions = append([]int(nil), node.Positions...)
	b.nodes = append(b.nodes, node)
	b.parent = append(b.parent, parent)
	b.children = append(b.children, nil)
	return Handle(len(b.nodes) - 1)
}

// Build numbers the staged nodes in postorder and returns the tree.
//
// It is illegal to continue adding nodes after Build has been called, but
// Build may be called multiple times.
func (b *Builder) Build() (*Tree, error) {
	if b.tree != nil {
		return b.tree, nil
	}
	if len(b.nodes) == 0 {
		return nil, ErrEmptyTree
	}
	b.done = true
	n := len(b.nodes)
	t := &Tree{
		name:     b.name,
		nodes:    make([]Node, n),
		parent:   make([]int, n),
		children: make([][]int, n),
		size:     make([]int, n),
	}
	ids := make([]int, n) // handle → postorder id
	next := 0
	var number func(h Handle)
	number = func(h Handle) {
		for _, ch := range b.children[h] {
			number(ch)
		}
		ids[h] = next
		next++
	}
	number(0)
	for h := range b.nodes {
		id := ids[h]
		t.nodes[id] = b.nodes[h]
		if b.parent[h] == Handle(None) {
			t.parent[id] = None
		} else {
			t.parent[id] = ids[b.parent[h]]
		}
		if len(b.children[h]) > 0 {
			t.children[id] = make([]int, len(b.children[h]))
			for i, ch := range b.children[h] {
				t.children[id][i] = ids[ch]
			}
		}
	}
	t.index()
	b.tree = t
	tracer().Debugf("built tree %q with %d nodes", t.name, n)
	return t, nil
}

// index precomputes subtree sizes, boundary leaves and both traversal orders.
func (t *Tree) index() {
	n := len(t.nodes)
	for side := Left; side <= Right; side++ {
		t.leaf[side] = make([]int, n)
		t.order[side] = make([]int, 0, n)
		t.pos[side] = make([]int, n)
	}
	for id := 0; id < n; id++ { // children have smaller ids than their parent
		t.size[id] = 1
		ch := t.children[id]
		for _, c := range ch {
			t.size[id] += t.size[c]
		}
		if len(ch) == 0 {
			t.leaf[Left][id], t.leaf[Right][id] = id, id
		} else {
			t.leaf[Left][id] = t.leaf[Left][ch[0]]
			t.leaf[Right][id] = t.leaf[Right][ch[len(ch)-1]]
		}
		t.order[Left] = append(t.order[Left], id)
	}
	var mirror func(id int)
	mirror = func(id int) {
		ch := t.children[id]
		for i := len(ch) - 1; i >= 0; i-- {
			mirror(ch[i])
		}
		t.order[Right] = append(t.order[Right], id)
	}
	if n > 0 {
		mirror(n - 1)
	}
	for side := Left; side <= Right; side++ {
		for p, id := range t.order[side] {
			t.pos[side][id] = p
		}
	}
}

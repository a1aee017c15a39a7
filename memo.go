package gted

import "fmt"

const unresolved = -1

// Memo holds the tree distances between all pairs of subtrees of A and B.
//
// Cells are filled lazily during decomposition. A cell may be written more
// than once, but only with the value it already holds.
type Memo struct {
	rows, cols int
	cells      []int
}

// NewMemo creates a rows×cols table of unresolved cells.
func NewMemo(rows, cols int) *Memo {
	m := &Memo{rows: rows, cols: cols, cells: make([]int, rows*cols)}
	for i := range m.cells {
		m.cells[i] = unresolved
	}
	return m
}

func (m *Memo) Rows() int { return m.rows }
func (m *Memo) Cols() int { return m.cols }

func (m *Memo) index(i, j int) (int, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, fmt.Errorf("%w: tdist[%d][%d] in %d×%d table", ErrIndexOutOfBounds, i, j, m.rows, m.cols)
	}
	return i*m.cols + j, nil
}

// Get returns the tree distance between subtree i of A and subtree j of B.
func (m *Memo) Get(i, j int) (int, error) {
	k, err := m.index(i, j)
	if err != nil {
		return 0, err
	}
	if m.cells[k] == unresolved {
		return 0, fmt.Errorf("%w: tdist[%d][%d]", ErrUnresolved, i, j)
	}
	return m.cells[k], nil
}

// Resolved reports whether the distance for (i, j) has been written.
func (m *Memo) Resolved(i, j int) bool {
	k, err := m.index(i, j)
	return err == nil && m.cells[k] != unresolved
}

// Set stores the tree distance for (i, j).
func (m *Memo) Set(i, j, d int) error {
	k, err := m.index(i, j)
	if err != nil {
		return err
	}
	if d < 0 {
		return fmt.Errorf("%w: negative distance %d for tdist[%d][%d]", ErrPrecondition, d, i, j)
	}
	if old := m.cells[k]; old != unresolved && old != d {
		return fmt.Errorf("%w: tdist[%d][%d] = %d, re-derived as %d", ErrMemoConflict, i, j, old, d)
	}
	m.cells[k] = d
	return nil
}

// Count returns the number of resolved cells.
func (m *Memo) Count() int {
	n := 0
	for _, d := range m.cells {
		if d != unresolved {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of m.
func (m *Memo) Clone() *Memo {
	c := &Memo{rows: m.rows, cols: m.cols, cells: make([]int, len(m.cells))}
	copy(c.cells, m.cells)
	return c
}

// Equal reports whether m and o have the same shape and cells.
func (m *Memo) Equal(o *Memo) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for k := range m.cells {
		if m.cells[k] != o.cells[k] {
			return false
		}
	}
	return true
}

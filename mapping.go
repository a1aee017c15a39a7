package gted

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/npillmayer/gted/tree"
)

// Pair is one entry of an edit mapping. A and B are node ids plus one, so
// that 0 can stand for “no counterpart”: (a, 0) deletes a, (0, b) inserts b,
// and (a, b) matches a with b.
type Pair struct {
	A, B int
}

func (p Pair) IsDelete() bool { return p.A != 0 && p.B == 0 }
func (p Pair) IsInsert() bool { return p.A == 0 && p.B != 0 }
func (p Pair) IsMatch() bool  { return p.A != 0 && p.B != 0 }

// IDs returns the 0-based node ids of a pair, tree.None for an absent node.
func (p Pair) IDs() (a, b int) {
	return p.A - 1, p.B - 1
}

func (p Pair) String() string {
	return fmt.Sprintf("(%d,%d)", p.A, p.B)
}

// Mapping is an edit mapping between two trees together with its cost.
type Mapping struct {
	Pairs    []Pair
	Distance int
}

// Deletes returns the ids of all nodes of tree A which are deleted.
func (m *Mapping) Deletes() []int {
	var ids []int
	for _, p := range m.Pairs {
		if p.IsDelete() {
			ids = append(ids, p.A-1)
		}
	}
	return ids
}

// Inserts returns the ids of all nodes of tree B which are inserted.
func (m *Mapping) Inserts() []int {
	var ids []int
	for _, p := range m.Pairs {
		if p.IsInsert() {
			ids = append(ids, p.B-1)
		}
	}
	return ids
}

// Matches returns all pairs which match a node of A with a node of B.
func (m *Mapping) Matches() []Pair {
	var pairs []Pair
	for _, p := range m.Pairs {
		if p.IsMatch() {
			pairs = append(pairs, p)
		}
	}
	return pairs
}

// Partner returns the node of B matched with node a of A, or tree.None.
func (m *Mapping) Partner(a int) int {
	for _, p := range m.Pairs {
		if p.A == a+1 {
			return p.B - 1
		}
	}
	return tree.None
}

// Sort orders the pairs by (A, B).
func (m *Mapping) Sort() {
	sort.Slice(m.Pairs, func(i, j int) bool {
		if m.Pairs[i].A != m.Pairs[j].A {
			return m.Pairs[i].A < m.Pairs[j].A
		}
		return m.Pairs[i].B < m.Pairs[j].B
	})
}

// Validate checks that every node of a tree of size sizeA and every node of
// a tree of size sizeB occurs in exactly one pair.
func (m *Mapping) Validate(sizeA, sizeB int) error {
	seenA := make([]bool, sizeA+1)
	seenB := make([]bool, sizeB+1)
	for _, p := range m.Pairs {
		if p.A == 0 && p.B == 0 {
			return fmt.Errorf("%w: empty pair", ErrMalformedMapping)
		}
		if p.A < 0 || p.A > sizeA || p.B < 0 || p.B > sizeB {
			return fmt.Errorf("%w: pair %s out of range for trees of size %d and %d",
				ErrMalformedMapping, p, sizeA, sizeB)
		}
		if p.A != 0 {
			if seenA[p.A] {
				return fmt.Errorf("%w: node %d of A mapped twice", ErrMalformedMapping, p.A)
			}
			seenA[p.A] = true
		}
		if p.B != 0 {
			if seenB[p.B] {
				return fmt.Errorf("%w: node %d of B mapped twice", ErrMalformedMapping, p.B)
			}
			seenB[p.B] = true
		}
	}
	for i := 1; i <= sizeA; i++ {
		if !seenA[i] {
			return fmt.Errorf("%w: node %d of A not mapped", ErrMalformedMapping, i)
		}
	}
	for i := 1; i <= sizeB; i++ {
		if !seenB[i] {
			return fmt.Errorf("%w: node %d of B not mapped", ErrMalformedMapping, i)
		}
	}
	return nil
}

// --- Text format -----------------------------------------------------------

const distanceHeader = "DISTANCE:"

// WriteTo writes the mapping in the text format understood by Traveler:
// a line "DISTANCE: n", followed by one line "a b" per pair.
func (m *Mapping) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64
	n, err := fmt.Fprintf(bw, "%s %d\n", distanceHeader, m.Distance)
	total += int64(n)
	if err != nil {
		return total, err
	}
	for _, p := range m.Pairs {
		n, err = fmt.Fprintf(bw, "%d %d\n", p.A, p.B)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, bw.Flush()
}

// ReadMapping parses a mapping written by WriteTo.
func ReadMapping(r io.Reader) (*Mapping, error) {
	sc := bufio.NewScanner(r)
	m := &Mapping{}
	line := 0
	header := false
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if !header {
			rest, ok := strings.CutPrefix(text, distanceHeader)
			if !ok {
				return nil, fmt.Errorf("%w: line %d: expected %q", ErrMalformedMapping, line, distanceHeader)
			}
			d, err := strconv.Atoi(strings.TrimSpace(rest))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedMapping, line, err)
			}
			m.Distance = d
			header = true
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: expected two ids", ErrMalformedMapping, line)
		}
		a, errA := strconv.Atoi(fields[0])
		b, errB := strconv.Atoi(fields[1])
		if errA != nil || errB != nil || a < 0 || b < 0 {
			return nil, fmt.Errorf("%w: line %d: invalid ids %q", ErrMalformedMapping, line, text)
		}
		m.Pairs = append(m.Pairs, Pair{A: a, B: b})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !header {
		return nil, fmt.Errorf("%w: missing %q header", ErrMalformedMapping, distanceHeader)
	}
	return m, nil
}

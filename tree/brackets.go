package tree

import (
	"fmt"
	"strings"
)

// RootLabel is the label of the artificial root created by FromBrackets.
const RootLabel = "5'-3'"

// FromBrackets creates a tree from an RNA secondary structure in dot-bracket
// notation and the corresponding sequence.
//
// Every base pair "(…)" becomes a paired inner node labeled "X-Y" with the
// pair's bases, every unpaired base "." becomes an unpaired leaf. All top-level
// elements hang below an artificial, unpaired root labeled RootLabel.
// Pseudo-knot brackets ([]{}<>) are not supported.
func FromBrackets(name, brackets, sequence string) (*Tree, error) {
	seq := []rune(sequence)
	if len(seq) != len(brackets) {
		return nil, fmt.Errorf("%w: structure has %d positions, sequence has %d",
			ErrInvalidStructure, len(brackets), len(seq))
	}
	b := NewBuilder(name)
	root := b.Root(RootLabel, false)
	stack := []Handle{root}
	open := []int{}
	for i, c := range brackets {
		top := stack[len(stack)-1]
		switch c {
		case '.':
			if _, err := b.Add(top, string(seq[i]), false, i); err != nil {
				return nil, err
			}
		case '(':
			h, err := b.Add(top, "", true)
			if err != nil {
				return nil, err
			}
			stack = append(stack, h)
			open = append(open, i)
		case ')':
			if len(open) == 0 {
				return nil, fmt.Errorf("%w: unbalanced ')' at position %d", ErrInvalidStructure, i)
			}
			j := open[len(open)-1]
			open = open[:len(open)-1]
			node := &b.nodes[top]
			node.Label = string(seq[j]) + "-" + string(seq[i])
			node.Positions = []int{j, i}
			stack = stack[:len(stack)-1]
		default:
			if strings.ContainsRune("[]{}<>", c) {
				return nil, fmt.Errorf("%w: pseudo-knot bracket %q at position %d",
					ErrInvalidStructure, c, i)
			}
			return nil, fmt.Errorf("%w: illegal character %q at position %d",
				ErrInvalidStructure, c, i)
		}
	}
	if len(open) > 0 {
		return nil, fmt.Errorf("%w: unbalanced '(' at position %d", ErrInvalidStructure, open[len(open)-1])
	}
	return b.Build()
}

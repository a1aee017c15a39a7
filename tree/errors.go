package tree

import "errors"

var (
	// ErrInvalidStructure signals a malformed dot-bracket structure.
	ErrInvalidStructure = errors.New("tree: invalid structure")
	// ErrInvalidHandle signals a builder handle not created by the builder.
	ErrInvalidHandle = errors.New("tree: invalid node handle")
	// ErrTreeCompleted signals that a builder has already built its tree.
	ErrTreeCompleted = errors.New("tree: builder has already been completed")
	// ErrEmptyTree signals an attempt to build a tree without a root.
	ErrEmptyTree = errors.New("tree: tree has no root")
	// ErrNotPostorder signals node ids which do not enumerate the tree in postorder.
	ErrNotPostorder = errors.New("tree: node ids are not in postorder")
)

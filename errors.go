package gted

import (
	"errors"
	"fmt"
)

var (
	// ErrPrecondition signals invalid input: ids not in dense postorder,
	// missing trees or a strategy table of the wrong size.
	ErrPrecondition = errors.New("gted: precondition violated")
	// ErrIndexOutOfBounds signals an index pair outside of a table.
	ErrIndexOutOfBounds = errors.New("gted: index out of bounds")
	// ErrUnresolved signals a read of a distance cell which has never been written.
	ErrUnresolved = errors.New("gted: unresolved distance")
	// ErrMemoConflict signals that a tree distance was re-derived with a different value.
	ErrMemoConflict = errors.New("gted: conflicting tree distance")
	// ErrMemoChanged signals that mapping reconstruction modified the tree distances.
	ErrMemoChanged = errors.New("gted: tree distances changed during reconstruction")
	// ErrInconsistent signals a mapping which does not realize the computed distance.
	ErrInconsistent = errors.New("gted: mapping inconsistent with distance")
	// ErrNotComputed signals access to results before Run has completed.
	ErrNotComputed = errors.New("gted: distance has not been computed")
	// ErrMalformedMapping signals a mapping text which cannot be parsed, or a
	// mapping which does not cover both trees.
	ErrMalformedMapping = errors.New("gted: malformed mapping")
)

// InvariantError describes a failed internal invariant together with the
// table and the indices involved.
type InvariantError struct {
	Err   error
	Table string // "tdist" or "fdist"
	I, J  int
	Msg   string
}

func (e *InvariantError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%s: %s[%d][%d]", e.Err, e.Table, e.I, e.J)
	}
	return fmt.Sprintf("%s: %s[%d][%d]: %s", e.Err, e.Table, e.I, e.J, e.Msg)
}

func (e *InvariantError) Unwrap() error {
	return e.Err
}

// fail aborts the current computation. The panic is turned back into an error
// by recoverInvariant at the API boundary.
func fail(err error, table string, i, j int, msg string) {
	panic(&InvariantError{Err: err, Table: table, I: i, J: j, Msg: msg})
}

func recoverInvariant(errp *error) {
	if r := recover(); r != nil {
		ie, ok := r.(*InvariantError)
		if !ok {
			panic(r)
		}
		T().Errorf("gted: %s", ie.Error())
		*errp = ie
	}
}

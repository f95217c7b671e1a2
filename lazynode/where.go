package lazynode

import (
	"github.com/nnyyxxxx/lazyseq/cardinal"
	"github.com/nnyyxxxx/lazyseq/xerrors"
)

// Where maintains matchIdx, a strictly increasing list of base indices at
// which the predicate held. Length(), on a finite base, forces the full
// scan and memoizes every confirmed match into matchIdx as a side effect —
// the explicit choice the spec's Open Question invites (see DESIGN.md).
type Where[T any] struct {
	base    Node[T]
	p       func(T) bool
	matchIdx []int
}

// NewWhere wraps base, keeping only the elements for which p holds.
func NewWhere[T any](base Node[T], p func(T) bool) *Where[T] {
	return &Where[T]{base: base, p: p}
}

// extend scans base forward from the last confirmed match until either
// len(matchIdx) exceeds stopWhenCount (stopWhenCount<0 means "scan to the
// end") or base is exhausted, returning base's error in the latter case.
func (w *Where[T]) extend(stopWhenCount int) error {
	next := 0
	if len(w.matchIdx) > 0 {
		next = w.matchIdx[len(w.matchIdx)-1] + 1
	}
	for {
		if stopWhenCount >= 0 && len(w.matchIdx) > stopWhenCount {
			return nil
		}
		v, err := w.base.Get(next)
		if err != nil {
			return err
		}
		if w.p(v) {
			w.matchIdx = append(w.matchIdx, next)
		}
		next++
	}
}

func (w *Where[T]) Get(i int) (T, error) {
	var zero T
	if i < 0 {
		return zero, xerrors.ErrOutOfRange
	}
	if i >= len(w.matchIdx) {
		if err := w.extend(i); err != nil {
			return zero, xerrors.ErrOutOfRange
		}
	}
	return w.base.Get(w.matchIdx[i])
}

func (w *Where[T]) Length() cardinal.Cardinal {
	if w.base.Length().IsOmega() {
		return cardinal.Omega()
	}
	_ = w.extend(-1)
	return cardinal.Finite(len(w.matchIdx))
}

func (w *Where[T]) MaterializedCount() int {
	return len(w.matchIdx)
}

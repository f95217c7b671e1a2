// Package eager implements EagerSequence: a finite, indexable, in-memory
// sequence backed by a plain slice, in a mutable and an immutable flavor
// sharing one view-plus-clone-on-write core.
package eager

import (
	"fmt"

	"github.com/IBM/fp-go/array"
	"github.com/IBM/fp-go/option"

	"github.com/nnyyxxxx/lazyseq/cardinal"
	"github.com/nnyyxxxx/lazyseq/xerrors"
)

// Sequence is a finite, ordered sequence of T. The immutable flag decides
// whether Append/Prepend/Insert/Concat return a cloned sequence or mutate
// and return the same handle.
type Sequence[T any] struct {
	data      []T
	immutable bool
}

// NewMutable builds a mutable sequence from literal elements.
func NewMutable[T any](data ...T) *Sequence[T] {
	return FromSlice(false, data)
}

// NewImmutable builds an immutable sequence from literal elements.
func NewImmutable[T any](data ...T) *Sequence[T] {
	return FromSlice(true, data)
}

// NewEmpty builds an empty sequence of the requested flavor.
func NewEmpty[T any](immutable bool) *Sequence[T] {
	return &Sequence[T]{data: array.Empty[T](), immutable: immutable}
}

// NewSized builds a zero-initialized sequence of length n, built on top of
// the teacher library's array.MakeBy rather than a hand-rolled loop.
func NewSized[T any](immutable bool, n int) *Sequence[T] {
	var zero T
	return &Sequence[T]{
		data:      array.MakeBy(n, func(int) T { return zero }),
		immutable: immutable,
	}
}

// NewSizedWith builds a sequence of length n, every slot initialized to v,
// via array.Replicate.
func NewSizedWith[T any](immutable bool, n int, v T) *Sequence[T] {
	return &Sequence[T]{data: array.Replicate(n, v), immutable: immutable}
}

// FromSlice builds a sequence that deep-copies a raw buffer via array.Copy:
// the caller's slice and the sequence's internal storage never alias.
func FromSlice[T any](immutable bool, data []T) *Sequence[T] {
	return &Sequence[T]{data: array.Copy(data), immutable: immutable}
}

// Clone returns a deep copy of s, preserving its flavor.
func (s *Sequence[T]) Clone() *Sequence[T] {
	return &Sequence[T]{data: array.Copy(s.data), immutable: s.immutable}
}

// Len returns the number of elements currently held.
func (s *Sequence[T]) Len() int {
	return len(s.data)
}

// Length returns s's length as a Cardinal (always finite), letting a
// *Sequence[T] satisfy generator.Sized[T] alongside lazynode.Node[T] and
// lazyseq.Sequence[T].
func (s *Sequence[T]) Length() cardinal.Cardinal {
	return cardinal.Finite(len(s.data))
}

// IsImmutable reports the sequence's flavor.
func (s *Sequence[T]) IsImmutable() bool {
	return s.immutable
}

// Get returns the element at index i, failing ErrOutOfRange when i is
// negative or past the end.
func (s *Sequence[T]) Get(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(s.data) {
		return zero, xerrors.ErrOutOfRange
	}
	return s.data[i], nil
}

// First returns the first element, or None if the sequence is empty.
func (s *Sequence[T]) First() option.Option[T] {
	return array.First(s.data)
}

// Last returns the last element, or None if the sequence is empty.
func (s *Sequence[T]) Last() option.Option[T] {
	return array.Last(s.data)
}

// Snapshot returns a defensive copy of the materialized elements, suitable
// for handing to a Rule: the rule must never be able to observe, let alone
// mutate, the sequence's live backing array.
func (s *Sequence[T]) Snapshot() []T {
	return array.Copy(s.data)
}

// copyOnWrite returns the target Sequence to apply the next mutation to:
// itself for the mutable flavor, a fresh clone for the immutable flavor.
func (s *Sequence[T]) copyOnWrite() *Sequence[T] {
	if s.immutable {
		return &Sequence[T]{data: array.Copy(s.data), immutable: true}
	}
	return s
}

// Append adds v at the end.
func (s *Sequence[T]) Append(v T) *Sequence[T] {
	t := s.copyOnWrite()
	t.data = array.Append(t.data, v)
	return t
}

// Prepend adds v at the front, shifting every other element.
func (s *Sequence[T]) Prepend(v T) *Sequence[T] {
	nd := make([]T, 0, len(s.data)+1)
	nd = append(nd, v)
	nd = append(nd, s.data...)
	if s.immutable {
		return &Sequence[T]{data: nd, immutable: true}
	}
	s.data = nd
	return s
}

// Insert places v at index idx, requiring 0 <= idx <= Len().
func (s *Sequence[T]) Insert(v T, idx int) (*Sequence[T], error) {
	if idx < 0 || idx > len(s.data) {
		return nil, xerrors.ErrOutOfRange
	}
	nd := make([]T, 0, len(s.data)+1)
	nd = append(nd, s.data[:idx]...)
	nd = append(nd, v)
	nd = append(nd, s.data[idx:]...)
	if s.immutable {
		return &Sequence[T]{data: nd, immutable: true}, nil
	}
	s.data = nd
	return s, nil
}

// Subrange returns the inclusive [lo, hi] slice of s as a new sequence,
// failing ErrOutOfRange when lo<0, hi>=Len(), or lo>hi.
func (s *Sequence[T]) Subrange(lo, hi int) (*Sequence[T], error) {
	n := len(s.data)
	if lo < 0 || hi >= n || lo > hi {
		return nil, xerrors.ErrOutOfRange
	}
	sliced := array.Slice[T](lo, hi+1)(s.data)
	return &Sequence[T]{data: array.Copy(sliced), immutable: s.immutable}, nil
}

// Resize grows the sequence to length n (padding with zero values) or
// truncates it, matching the "obvious semantics" the spec asks for.
func (s *Sequence[T]) Resize(n int) (*Sequence[T], error) {
	if n < 0 {
		return nil, xerrors.ErrInvalidArgument
	}
	t := s.copyOnWrite()
	switch {
	case n <= len(t.data):
		t.data = array.Slice[T](0, n)(t.data)
	default:
		var zero T
		pad := array.MakeBy(n-len(t.data), func(int) T { return zero })
		t.data = append(t.data, pad...)
	}
	return t, nil
}

// Concat appends other's elements after s's own, returning a new sequence
// (immutable flavor) or the mutated self (mutable flavor).
func (s *Sequence[T]) Concat(other *Sequence[T]) *Sequence[T] {
	t := s.copyOnWrite()
	t.data = append(t.data, other.data...)
	return t
}

// String renders a short debug summary in the teacher library's
// "Kind[T](value)"-style Stringer idiom.
func (s *Sequence[T]) String() string {
	flavor := "Mutable"
	if s.immutable {
		flavor = "Immutable"
	}
	return fmt.Sprintf("EagerSequence.%s(len=%d)", flavor, len(s.data))
}

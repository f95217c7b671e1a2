package lazynode

import (
	"github.com/nnyyxxxx/lazyseq/cardinal"
)

// Appended is a pure index-algebra view: length base+1, index len(base)
// yields v. Non-caching — the wrapped base is expected to cache.
type Appended[T any] struct {
	base Node[T]
	v    T
}

// NewAppended wraps base with one extra trailing value v.
func NewAppended[T any](base Node[T], v T) *Appended[T] {
	return &Appended[T]{base: base, v: v}
}

func (a *Appended[T]) Get(i int) (T, error) {
	bl := a.base.Length()
	if !bl.IsOmega() {
		n, _ := bl.Value()
		if i == n {
			return a.v, nil
		}
	}
	return a.base.Get(i)
}

func (a *Appended[T]) Length() cardinal.Cardinal {
	return a.base.Length().Add(cardinal.Finite(1))
}

func (a *Appended[T]) MaterializedCount() int {
	return a.base.MaterializedCount() + 1
}

// Prepended is a pure index-algebra view: length base+1, index 0 yields v,
// every other index shifts by one into base.
type Prepended[T any] struct {
	base Node[T]
	v    T
}

// NewPrepended wraps base with one extra leading value v.
func NewPrepended[T any](base Node[T], v T) *Prepended[T] {
	return &Prepended[T]{base: base, v: v}
}

func (p *Prepended[T]) Get(i int) (T, error) {
	if i == 0 {
		return p.v, nil
	}
	return p.base.Get(i - 1)
}

func (p *Prepended[T]) Length() cardinal.Cardinal {
	return p.base.Length().Add(cardinal.Finite(1))
}

func (p *Prepended[T]) MaterializedCount() int {
	return p.base.MaterializedCount() + 1
}

// InsertedAt is a pure index-algebra view: length base+1, index k yields v,
// indices below k are unchanged, indices above k read base shifted left.
type InsertedAt[T any] struct {
	base Node[T]
	v    T
	k    int
}

// NewInsertedAt wraps base with v inserted at index k.
func NewInsertedAt[T any](base Node[T], v T, k int) *InsertedAt[T] {
	return &InsertedAt[T]{base: base, v: v, k: k}
}

func (ins *InsertedAt[T]) Get(i int) (T, error) {
	switch {
	case i < ins.k:
		return ins.base.Get(i)
	case i == ins.k:
		return ins.v, nil
	default:
		return ins.base.Get(i - 1)
	}
}

func (ins *InsertedAt[T]) Length() cardinal.Cardinal {
	return ins.base.Length().Add(cardinal.Finite(1))
}

func (ins *InsertedAt[T]) MaterializedCount() int {
	return ins.base.MaterializedCount() + 1
}

package lazynode

import (
	"github.com/nnyyxxxx/lazyseq/cardinal"
)

// MapNode maintains an append-only result cache: length mirrors base, and
// every produced R is memoized so repeated reads never re-apply f.
type MapNode[T, R any] struct {
	base  Node[T]
	f     func(T) R
	cache []R
}

// NewMap wraps base, transforming each element with f on first read.
func NewMap[T, R any](base Node[T], f func(T) R) *MapNode[T, R] {
	return &MapNode[T, R]{base: base, f: f}
}

func (m *MapNode[T, R]) Get(i int) (R, error) {
	var zero R
	if i < len(m.cache) {
		return m.cache[i], nil
	}
	for j := len(m.cache); j <= i; j++ {
		bv, err := m.base.Get(j)
		if err != nil {
			return zero, err
		}
		m.cache = append(m.cache, m.f(bv))
	}
	return m.cache[i], nil
}

func (m *MapNode[T, R]) Length() cardinal.Cardinal {
	return m.base.Length()
}

func (m *MapNode[T, R]) MaterializedCount() int {
	return len(m.cache)
}

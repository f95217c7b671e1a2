// Package lazynode implements the derived-view DAG that backs a
// lazyseq.Sequence: Core, Appended, Prepended, InsertedAt, Map, Where and
// Zip, dispatched through one tagged Node[T] interface rather than
// inheritance, per spec §9.
package lazynode

import (
	"github.com/nnyyxxxx/lazyseq/cardinal"
	"github.com/nnyyxxxx/lazyseq/eager"
	"github.com/nnyyxxxx/lazyseq/generator"
	"github.com/nnyyxxxx/lazyseq/xerrors"
)

// Node is a node in the derived-view DAG. get is deterministic and
// idempotent: once an index has been yielded, every later call for that
// index returns the same value. MaterializedCount is a non-decreasing
// observable.
type Node[T any] interface {
	Get(i int) (T, error)
	Length() cardinal.Cardinal
	MaterializedCount() int
}

// Core is the DAG leaf: it owns a materialized prefix, an optional rule
// (used to decide Length and recovered by RuleOf for ConcatWith — actual
// stepping lives in a Generator bound to the same cache at the
// lazyseq.Sequence level), and a list of tail
// children appended after the cache, consulted once the cache is exhausted.
type Core[T any] struct {
	cache    *eager.Sequence[T]
	rule     generator.Rule[T]
	children []Node[T]
}

// NewCore wraps cache (mutable flavor expected so a Generator can grow it)
// as a Core leaf, optionally tagged with a rule.
func NewCore[T any](cache *eager.Sequence[T], rule generator.Rule[T]) *Core[T] {
	return &Core[T]{cache: cache, rule: rule}
}

// Cache exposes the leaf's backing eager.Sequence, the object a Generator
// must share to keep the Core's reads observing its growth.
func (c *Core[T]) Cache() *eager.Sequence[T] {
	return c.cache
}

// Rule returns the attached rule, or nil if none.
func (c *Core[T]) Rule() generator.Rule[T] {
	return c.rule
}

// AppendTailChild appends a child node consulted once the cache (and any
// earlier children) are exhausted. Used by ConcatWith to glue an infinite
// tail with no recoverable rule after a finite head.
func (c *Core[T]) AppendTailChild(child Node[T]) {
	c.children = append(c.children, child)
}

// Get descends the cache, then the child list in order, subtracting each
// finite child's length from the offset; an Omega child is descended into
// unconditionally. Out-of-range and generator-needed failures are returned
// as-is: a bare Core.Get never drives generation, only lazyseq.Sequence does.
func (c *Core[T]) Get(i int) (T, error) {
	var zero T
	if i < 0 {
		return zero, xerrors.ErrOutOfRange
	}
	if i < c.cache.Len() {
		return c.cache.Get(i)
	}
	offset := i - c.cache.Len()
	for _, child := range c.children {
		cl := child.Length()
		if cl.IsOmega() {
			return child.Get(offset)
		}
		n, _ := cl.Value()
		if offset < n {
			return child.Get(offset)
		}
		offset -= n
	}
	return zero, xerrors.ErrOutOfRange
}

// Length is Omega if a rule is attached or any child is Omega; otherwise
// the cache length plus the sum of the children's lengths.
func (c *Core[T]) Length() cardinal.Cardinal {
	if c.rule != nil {
		return cardinal.Omega()
	}
	total := cardinal.Finite(c.cache.Len())
	for _, child := range c.children {
		total = total.Add(child.Length())
		if total.IsOmega() {
			return total
		}
	}
	return total
}

// MaterializedCount is the cache length plus every fully-available child's
// length, stopping at (and including the partial count of) the first child
// that is itself only partially materialized or infinite: elements past
// that point are not contiguously known yet.
func (c *Core[T]) MaterializedCount() int {
	count := c.cache.Len()
	for _, child := range c.children {
		cl := child.Length()
		cm := child.MaterializedCount()
		if !cl.IsOmega() {
			n, _ := cl.Value()
			if cm >= n {
				count += n
				continue
			}
		}
		count += cm
		break
	}
	return count
}

// AsCore attempts to recover the concrete *Core[T] behind a Node[T], the
// variant's answer to the spec's hint that Concat needs a runtime downcast
// to recover a tail's rule.
func AsCore[T any](n Node[T]) (*Core[T], bool) {
	c, ok := n.(*Core[T])
	return c, ok
}

// RuleOf returns the rule attached to n, if n is a Core carrying one.
func RuleOf[T any](n Node[T]) (generator.Rule[T], bool) {
	c, ok := AsCore(n)
	if !ok || c.rule == nil {
		return nil, false
	}
	return c.rule, true
}

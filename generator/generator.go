// Package generator implements Generator: a stateful producer of values
// built from a seed prefix, an optional rule, and three overlay queues
// (front-injected, back-injected, removed) layered on top of a shared,
// append-only eager.Sequence cache.
package generator

import (
	"reflect"

	"github.com/IBM/fp-go/option"

	"github.com/nnyyxxxx/lazyseq/cardinal"
	"github.com/nnyyxxxx/lazyseq/eager"
	"github.com/nnyyxxxx/lazyseq/xerrors"
)

// maxRemoveAttempts bounds the inner skip-loop a rule can force before
// Next reports ErrNonTerminatingRule, per the spec's allowance that an
// implementation "may bound attempts to detect" a rule that never produces
// a kept value.
const maxRemoveAttempts = 10000

// Rule is a pure function from the current materialized prefix to the next
// element of the sequence. It must be total on every non-empty prefix it is
// asked about and must not observe a Generator's overlay queues.
type Rule[T any] func(prefix []T) T

// Sized is the minimal shape PrependSequence/AppendSequence/RemoveSequence
// need from a peer sequence: its own Cardinal length and indexed access.
// Both lazynode.Node[T] and lazyseq.Sequence[T] satisfy it without this
// package importing either, mirroring original_source/Generator.h's
// PrependSequence(Sequence<T>* seq) taking the same abstract base the rest
// of the engine shares.
type Sized[T any] interface {
	Length() cardinal.Cardinal
	Get(i int) (T, error)
}

func materializeSized[T any](seq Sized[T]) ([]T, error) {
	ln := seq.Length()
	if ln.IsOmega() {
		return nil, xerrors.ErrInfiniteNotAllowed
	}
	n, _ := ln.Value()
	out := make([]T, n)
	for i := 0; i < n; i++ {
		v, err := seq.Get(i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Generator is the stepping machine described in spec §4.3. Its cache is
// shared with the Core leaf it feeds; PrependValue/AppendValue/RemoveValue
// and their -Slice counterparts return new Generators that alias that same
// cache but copy their own queue state, so two generator handles derived
// from one another never corrupt each other's overlay state.
type Generator[T any] struct {
	cache   *eager.Sequence[T]
	rule    Rule[T]
	prepend []T
	append  []T
	remove  []T
	pos     int
}

// New builds a Generator over cache (which must be the mutable flavor, the
// same object the owning Core leaf reads through) with an optional rule.
// Pass a nil rule to build a pure overlay generator (queues only).
func New[T any](cache *eager.Sequence[T], rule Rule[T]) *Generator[T] {
	return &Generator[T]{cache: cache, rule: rule, pos: cache.Len() - 1}
}

// Pos returns the index of the last value yielded by this generator, or -1
// if it has not yielded yet.
func (g *Generator[T]) Pos() int {
	return g.pos
}

// HasRule reports whether a rule is attached.
func (g *Generator[T]) HasRule() bool {
	return g.rule != nil
}

func removeOne[T any](set []T, v T) ([]T, bool) {
	for i, r := range set {
		if reflect.DeepEqual(r, v) {
			return append(append([]T{}, set[:i]...), set[i+1:]...), true
		}
	}
	return set, false
}

// Next produces exactly one value and appends it to the shared cache,
// consuming the PrependQueue, then the AppendQueue, then the rule, in that
// order, per spec §4.3.
func (g *Generator[T]) Next() (T, error) {
	var zero T
	switch {
	case len(g.prepend) > 0:
		v := g.prepend[0]
		g.prepend = g.prepend[1:]
		g.cache = g.cache.Append(v)
		g.pos++
		return v, nil

	case len(g.append) > 0:
		v := g.append[0]
		g.append = g.append[1:]
		g.cache = g.cache.Append(v)
		g.pos++
		return v, nil

	case g.rule != nil:
		for attempt := 0; attempt < maxRemoveAttempts; attempt++ {
			c := g.rule(g.cache.Snapshot())
			// The candidate is appended to the cache whether or not it is
			// removed: a rule that reads its own prior candidates (accepted
			// or not) must see them, per original_source/Generator.h.
			g.cache = g.cache.Append(c)
			remaining, removed := removeOne(g.remove, c)
			g.remove = remaining
			if !removed {
				g.pos++
				return c, nil
			}
		}
		return zero, xerrors.ErrNonTerminatingRule

	default:
		return zero, xerrors.ErrNoGenerator
	}
}

// Step advances the generator by one, discarding the produced value. It
// lets a caller holding only an opaque "something to pump" handle (as
// lazyseq.Sequence does for a derived view whose element type differs from
// the driving generator's) force more materialization without needing to
// know T.
func (g *Generator[T]) Step() error {
	_, err := g.Next()
	return err
}

// TryNext converts any Next failure into option.None, the teacher library's
// idiom for "value or nothing" instead of a (T, bool) pair.
func (g *Generator[T]) TryNext() option.Option[T] {
	v, err := g.Next()
	if err != nil {
		return option.None[T]()
	}
	return option.Some(v)
}

// clone copies queue state into a new Generator that still shares this
// generator's cache and rule, per spec §3: "here each edit copies queue
// state" while the cache keeps feeding the same Core leaf.
func (g *Generator[T]) clone() *Generator[T] {
	return &Generator[T]{
		cache:   g.cache,
		rule:    g.rule,
		prepend: append([]T{}, g.prepend...),
		append:  append([]T{}, g.append...),
		remove:  append([]T{}, g.remove...),
		pos:     g.pos,
	}
}

// PrependValue returns a new generator with v enqueued at the back of the
// PrependQueue (still consumed ahead of the AppendQueue and the rule).
func (g *Generator[T]) PrependValue(v T) *Generator[T] {
	ng := g.clone()
	ng.prepend = append(ng.prepend, v)
	return ng
}

// PrependSlice returns a new generator with vs enqueued, in order, at the
// back of the PrependQueue.
func (g *Generator[T]) PrependSlice(vs []T) *Generator[T] {
	ng := g.clone()
	ng.prepend = append(ng.prepend, vs...)
	return ng
}

// PrependSequence materializes seq and enqueues its elements at the back of
// the PrependQueue, failing ErrInfiniteNotAllowed if seq is Omega-length,
// per original_source/Generator.h's PrependSequence.
func (g *Generator[T]) PrependSequence(seq Sized[T]) (*Generator[T], error) {
	vs, err := materializeSized[T](seq)
	if err != nil {
		return nil, err
	}
	return g.PrependSlice(vs), nil
}

// AppendValue returns a new generator with v enqueued at the back of the
// AppendQueue (consumed once the PrependQueue is empty).
func (g *Generator[T]) AppendValue(v T) *Generator[T] {
	ng := g.clone()
	ng.append = append(ng.append, v)
	return ng
}

// AppendSlice returns a new generator with vs enqueued, in order, at the
// back of the AppendQueue.
func (g *Generator[T]) AppendSlice(vs []T) *Generator[T] {
	ng := g.clone()
	ng.append = append(ng.append, vs...)
	return ng
}

// AppendSequence materializes seq and enqueues its elements at the back of
// the AppendQueue, failing ErrInfiniteNotAllowed if seq is Omega-length,
// per original_source/Generator.h's AppendSequence.
func (g *Generator[T]) AppendSequence(seq Sized[T]) (*Generator[T], error) {
	vs, err := materializeSized[T](seq)
	if err != nil {
		return nil, err
	}
	return g.AppendSlice(vs), nil
}

// RemoveValue returns a new generator whose rule output will skip v the
// next time the rule produces it (one skip per RemoveValue call).
func (g *Generator[T]) RemoveValue(v T) *Generator[T] {
	ng := g.clone()
	ng.remove = append(ng.remove, v)
	return ng
}

// RemoveSlice returns a new generator with every element of vs added to the
// RemoveSet.
func (g *Generator[T]) RemoveSlice(vs []T) *Generator[T] {
	ng := g.clone()
	ng.remove = append(ng.remove, vs...)
	return ng
}

// RemoveSequence materializes seq and adds its elements to the RemoveSet,
// failing ErrInfiniteNotAllowed if seq is Omega-length, per
// original_source/Generator.h's RemoveSequence.
func (g *Generator[T]) RemoveSequence(seq Sized[T]) (*Generator[T], error) {
	vs, err := materializeSized[T](seq)
	if err != nil {
		return nil, err
	}
	return g.RemoveSlice(vs), nil
}

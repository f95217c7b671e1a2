// Package lazyseq implements LazySequence: the user-facing handle bundling
// a root lazynode.Node with an optional Generator, driving materialization
// for out-of-range indices.
package lazyseq

import (
	"github.com/IBM/fp-go/function"
	"github.com/IBM/fp-go/option"
	"github.com/IBM/fp-go/tuple"

	"github.com/nnyyxxxx/lazyseq/cardinal"
	"github.com/nnyyxxxx/lazyseq/eager"
	"github.com/nnyyxxxx/lazyseq/generator"
	"github.com/nnyyxxxx/lazyseq/lazynode"
	"github.com/nnyyxxxx/lazyseq/xerrors"
)

// driver is the minimal capability lazyseq needs from whatever generator
// backs a sequence: the ability to force one more element into the shared
// cache. A derived view (Map, Where, Zip) may carry forward a driver whose
// element type differs from its own — it can still pump it, it just cannot
// recover a typed Generator[R] from it (see Generator below).
type driver interface {
	Step() error
}

// Sequence is the pair (root, gen) described in spec §4.9: gen, when
// non-nil, references the same cache as the unique Core leaf reachable
// from root without crossing another Core.
type Sequence[T any] struct {
	root lazynode.Node[T]
	gen  driver
}

// Root exposes the underlying DAG node, e.g. to pass as the "other root"
// argument of ConcatWith or Zip.
func (s Sequence[T]) Root() lazynode.Node[T] {
	return s.root
}

// Empty returns a sequence with no elements and no generator.
func Empty[T any]() Sequence[T] {
	return Sequence[T]{root: lazynode.NewCore[T](eager.NewEmpty[T](false), nil)}
}

// FromSlice wraps literal elements as a finite, ungenerated sequence.
func FromSlice[T any](data []T) Sequence[T] {
	return Sequence[T]{root: lazynode.NewCore[T](eager.FromSlice(false, data), nil)}
}

// FromEager wraps an existing eager.Sequence as a finite, ungenerated
// sequence's Core leaf.
func FromEager[T any](seq *eager.Sequence[T]) Sequence[T] {
	return Sequence[T]{root: lazynode.NewCore[T](seq, nil)}
}

// FromRule builds a rule-driven sequence seeded by seed (nil for an empty
// seed). The seed's elements are copied into a fresh, mutable-flavor cache:
// a Generator must be able to grow this cache in place, which an
// immutable-flavor eager.Sequence cannot guarantee (each mutator there
// returns a new object), so lazyseq always forces mutable storage
// internally regardless of the seed's own flavor.
func FromRule[T any](rule generator.Rule[T], seed *eager.Sequence[T]) Sequence[T] {
	var data []T
	if seed != nil {
		data = seed.Snapshot()
	}
	cache := eager.FromSlice[T](false, data)
	core := lazynode.NewCore[T](cache, rule)
	return Sequence[T]{root: core, gen: generator.New[T](cache, rule)}
}

// HasGenerator reports whether a driver is attached.
func (s Sequence[T]) HasGenerator() bool {
	return s.gen != nil
}

// Generator recovers the concrete *generator.Generator[T] driving s, which
// only succeeds when s is (or derives its driver unchanged from) a sequence
// whose generator actually produces T — e.g. not a Map result whose element
// type differs from its base's, since its driver produces the pre-map type.
func (s Sequence[T]) Generator() (*generator.Generator[T], bool) {
	g, ok := s.gen.(*generator.Generator[T])
	return g, ok
}

// SetGenerator attaches rule to s, requiring s.Root() to be a bare Core
// (ErrTypeMismatch otherwise — the spec's seed/peer must "expose an
// indexable prefix", and here specifically an un-derived one a rule can be
// pinned to).
func (s Sequence[T]) SetGenerator(rule generator.Rule[T]) (Sequence[T], error) {
	core, ok := lazynode.AsCore[T](s.root)
	if !ok {
		return Sequence[T]{}, xerrors.ErrTypeMismatch
	}
	newCore := lazynode.NewCore[T](core.Cache(), rule)
	return Sequence[T]{root: newCore, gen: generator.New[T](core.Cache(), rule)}, nil
}

// WithGenerator replaces s's driver, keeping its root. Used to apply an
// overlay edit (PrependValue, AppendSequence, RemoveValue, ...) obtained
// from s.Generator().
func (s Sequence[T]) WithGenerator(g *generator.Generator[T]) Sequence[T] {
	return Sequence[T]{root: s.root, gen: g}
}

// Get returns the element at index i, pumping the attached driver to force
// further materialization when the root can't yet resolve i on its own.
func (s Sequence[T]) Get(i int) (T, error) {
	var zero T
	if i < 0 {
		return zero, xerrors.ErrOutOfRange
	}
	v, err := s.root.Get(i)
	if err == nil {
		return v, nil
	}
	if s.gen == nil {
		return zero, err
	}
	for {
		if stepErr := s.gen.Step(); stepErr != nil {
			return zero, err
		}
		v, err = s.root.Get(i)
		if err == nil {
			return v, nil
		}
	}
}

// GetFirst returns the element at index 0.
func (s Sequence[T]) GetFirst() (T, error) {
	return s.Get(0)
}

// GetLast returns the last element, failing ErrInfiniteNotAllowed on an
// Omega-length sequence and ErrOutOfRange when empty.
func (s Sequence[T]) GetLast() (T, error) {
	var zero T
	l := s.Length()
	if l.IsOmega() {
		return zero, xerrors.ErrInfiniteNotAllowed
	}
	n, _ := l.Value()
	if n == 0 {
		return zero, xerrors.ErrOutOfRange
	}
	return s.Get(n - 1)
}

// Length reports the sequence's length, Omega if it is rule-driven or
// carries an infinite tail.
func (s Sequence[T]) Length() cardinal.Cardinal {
	return s.root.Length()
}

// MaterializedCount reports how many elements are currently available
// without forcing generation.
func (s Sequence[T]) MaterializedCount() int {
	return s.root.MaterializedCount()
}

// AppendValue replaces the root with an Appended view; the driver, if any,
// is preserved.
func (s Sequence[T]) AppendValue(v T) Sequence[T] {
	return Sequence[T]{root: lazynode.NewAppended[T](s.root, v), gen: s.gen}
}

// PrependValue replaces the root with a Prepended view; the driver, if any,
// is preserved.
func (s Sequence[T]) PrependValue(v T) Sequence[T] {
	return Sequence[T]{root: lazynode.NewPrepended[T](s.root, v), gen: s.gen}
}

// InsertAtValue replaces the root with an InsertedAt view; the driver, if
// any, is preserved.
func (s Sequence[T]) InsertAtValue(v T, k int) Sequence[T] {
	return Sequence[T]{root: lazynode.NewInsertedAt[T](s.root, v, k), gen: s.gen}
}

// Where keeps only the elements of s for which p holds, carrying s's
// driver forward so an infinite base can still be forced further.
func (s Sequence[T]) Where(p func(T) bool) Sequence[T] {
	return Sequence[T]{root: lazynode.NewWhere[T](s.root, p), gen: s.gen}
}

// Where is the free-function form of Sequence.Where, matching the external
// interface's "map<R>(f), where(p), zip<U>(other_root)" listing alongside
// the other free-function combinators.
func Where[T any](s Sequence[T], p func(T) bool) Sequence[T] {
	return s.Where(p)
}

func materializeNode[T any](n lazynode.Node[T]) ([]T, error) {
	ln := n.Length()
	if ln.IsOmega() {
		return nil, xerrors.ErrInfiniteNotAllowed
	}
	count, _ := ln.Value()
	out := make([]T, count)
	for i := 0; i < count; i++ {
		v, err := n.Get(i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ConcatWith implements spec §4.9's four-way branch: flatten two finite
// sequences into one Core, drop a concat attempt against an Omega root,
// continue a rule-bearing Omega tail with a fresh Generator over a merged
// seed, or attach a no-rule Omega tail as an aliased child (see DESIGN.md's
// Open Question on why it is aliased, not cloned).
func (s Sequence[T]) ConcatWith(other lazynode.Node[T]) Sequence[T] {
	rootLen := s.root.Length()
	if rootLen.IsOmega() {
		return s
	}
	head, err := materializeNode[T](s.root)
	if err != nil {
		return s
	}

	otherLen := other.Length()
	if !otherLen.IsOmega() {
		tail, err := materializeNode[T](other)
		if err != nil {
			return s
		}
		merged := eager.FromSlice[T](false, append(head, tail...))
		return Sequence[T]{root: lazynode.NewCore[T](merged, nil)}
	}

	if rule, ok := lazynode.RuleOf[T](other); ok {
		otherCore, _ := lazynode.AsCore[T](other)
		seed := otherCore.Cache().Snapshot()
		merged := eager.FromSlice[T](false, append(head, seed...))
		newCore := lazynode.NewCore[T](merged, rule)
		return Sequence[T]{root: newCore, gen: generator.New[T](merged, rule)}
	}

	newCache := eager.FromSlice[T](false, head)
	newCore := lazynode.NewCore[T](newCache, nil)
	newCore.AppendTailChild(other)
	return Sequence[T]{root: newCore}
}

// Map transforms s of type T into a sequence of R, using function.Pipe2 to
// compose the two-step "unwrap driver, wrap result" construction in the
// teacher library's point-free style.
func Map[T, R any](s Sequence[T], f func(T) R) Sequence[R] {
	return function.Pipe2(
		s,
		func(s Sequence[T]) lazynode.Node[R] { return lazynode.NewMap[T, R](s.root, f) },
		func(root lazynode.Node[R]) Sequence[R] { return Sequence[R]{root: root, gen: s.gen} },
	)
}

// Zip pairs a's elements with otherRoot's, wrapping each pair as the
// teacher library's tuple.Tuple2. a's driver, if any, is carried forward;
// otherRoot is read as-is, matching spec §6's "zip<U>(other_root)" — only
// one side of a zip owns the generator that can be pumped.
func Zip[A, B any](a Sequence[A], otherRoot lazynode.Node[B]) Sequence[tuple.Tuple2[A, B]] {
	return Sequence[tuple.Tuple2[A, B]]{root: lazynode.NewZip[A, B](a.root, otherRoot), gen: a.gen}
}

// Concat is the free-function form of ConcatWith, operating on two bare
// roots per spec §6.
func Concat[T any](a, b lazynode.Node[T]) Sequence[T] {
	return Sequence[T]{root: a}.ConcatWith(b)
}

// Reduce left-folds a finite sequence, failing ErrInfiniteNotAllowed on an
// Omega length.
func Reduce[T, R any](seq Sequence[T], f func(R, T) R, init R) (R, error) {
	l := seq.Length()
	if l.IsOmega() {
		return init, xerrors.ErrInfiniteNotAllowed
	}
	n, _ := l.Value()
	acc := init
	for i := 0; i < n; i++ {
		v, err := seq.Get(i)
		if err != nil {
			return acc, err
		}
		acc = f(acc, v)
	}
	return acc, nil
}

// TryGet mirrors Generator.TryNext's idiom at the sequence level: any Get
// failure collapses to option.None instead of surfacing an error.
func TryGet[T any](s Sequence[T], i int) option.Option[T] {
	v, err := s.Get(i)
	if err != nil {
		return option.None[T]()
	}
	return option.Some(v)
}

package lazynode

import (
	"github.com/IBM/fp-go/tuple"

	"github.com/nnyyxxxx/lazyseq/cardinal"
)

// Zip pairs two nodes element-wise, reusing the teacher library's
// tuple.Tuple2 as the combined element type instead of a bespoke pair
// struct. Length is the min of the two bases'; Get(i) pairs a.Get(i) with
// b.Get(i).
type Zip[A, B any] struct {
	a Node[A]
	b Node[B]
}

// NewZip pairs a and b element-wise.
func NewZip[A, B any](a Node[A], b Node[B]) *Zip[A, B] {
	return &Zip[A, B]{a: a, b: b}
}

func (z *Zip[A, B]) Get(i int) (tuple.Tuple2[A, B], error) {
	var zero tuple.Tuple2[A, B]
	av, err := z.a.Get(i)
	if err != nil {
		return zero, err
	}
	bv, err := z.b.Get(i)
	if err != nil {
		return zero, err
	}
	return tuple.MakeTuple2(av, bv), nil
}

func (z *Zip[A, B]) Length() cardinal.Cardinal {
	return cardinal.Min(z.a.Length(), z.b.Length())
}

func (z *Zip[A, B]) MaterializedCount() int {
	am, bm := z.a.MaterializedCount(), z.b.MaterializedCount()
	if am < bm {
		return am
	}
	return bm
}

package generator

import (
	"testing"

	"github.com/IBM/fp-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nnyyxxxx/lazyseq/cardinal"
	"github.com/nnyyxxxx/lazyseq/eager"
	"github.com/nnyyxxxx/lazyseq/xerrors"
)

// infiniteSized is a minimal Sized[T] that always reports Omega, standing
// in for an infinite lazyseq.Sequence/lazynode.Node peer without pulling
// either package in (would be an import cycle from this package).
type infiniteSized[T any] struct{}

func (infiniteSized[T]) Length() cardinal.Cardinal { return cardinal.Omega() }
func (infiniteSized[T]) Get(i int) (T, error) {
	var zero T
	return zero, nil
}

func naturalsRule(prefix []int) int {
	if len(prefix) == 0 {
		return 0
	}
	return prefix[len(prefix)-1] + 1
}

func TestNextWithRule(t *testing.T) {
	cache := eager.NewMutable[int]()
	g := New(cache, Rule[int](naturalsRule))

	v0, err := g.Next()
	assert.NoError(t, err)
	assert.Equal(t, 0, v0)

	v1, err := g.Next()
	assert.NoError(t, err)
	assert.Equal(t, 1, v1)

	assert.Equal(t, 2, cache.Len())
}

func TestNoRuleNoQueuesFails(t *testing.T) {
	cache := eager.NewMutable[int]()
	g := New[int](cache, nil)
	_, err := g.Next()
	assert.Error(t, err)
	assert.Equal(t, option.None[int](), g.TryNext())
}

func TestPrependThenAppendThenRuleOrdering(t *testing.T) {
	cache := eager.NewMutable[int]()
	g := New(cache, Rule[int](naturalsRule))
	g = g.PrependValue(100)
	g = g.AppendValue(200)

	v0, _ := g.Next() // prepend drains first
	assert.Equal(t, 100, v0)

	v1, _ := g.Next() // then append
	assert.Equal(t, 200, v1)

	v2, _ := g.Next() // then the rule, seeing the full cache history
	assert.Equal(t, 201, v2)
}

func TestRemoveSkipsButStillSeesCandidate(t *testing.T) {
	// rule counts up by 1 starting at 0; remove 2 once.
	cache := eager.NewMutable[int]()
	g := New(cache, Rule[int](naturalsRule))
	g = g.RemoveValue(2)

	v0, _ := g.Next()
	v1, _ := g.Next()
	v2, _ := g.Next() // 2 is produced, appended to cache, then skipped
	assert.Equal(t, []int{0, 1, 3}, []int{v0, v1, v2})
	// cache holds the skipped 2 as well as the three yielded values
	assert.Equal(t, 4, cache.Len())
}

func TestOverlayBuildersDoNotMutateOriginal(t *testing.T) {
	cache := eager.NewMutable[int]()
	g := New(cache, Rule[int](naturalsRule))
	g2 := g.PrependValue(42)

	v, err := g.Next()
	assert.NoError(t, err)
	assert.Equal(t, 0, v) // original g is untouched by g2's edit

	v2, err := g2.Next()
	assert.NoError(t, err)
	assert.Equal(t, 42, v2)
}

func TestPrependSliceOrderPreserved(t *testing.T) {
	cache := eager.NewMutable[int]()
	g := New[int](cache, nil)
	g = g.PrependSlice([]int{7, 8, 9})

	var got []int
	for i := 0; i < 3; i++ {
		v, err := g.Next()
		assert.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int{7, 8, 9}, got)
}

func TestPrependAppendRemoveSequenceMaterializeFiniteSeq(t *testing.T) {
	cache := eager.NewMutable[int]()
	g := New[int](cache, nil)

	g, err := g.PrependSequence(eager.NewMutable(1, 2))
	require.NoError(t, err)
	g, err = g.AppendSequence(eager.NewMutable(3, 4))
	require.NoError(t, err)

	var got []int
	for i := 0; i < 4; i++ {
		v, err := g.Next()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, got)
}

func TestRemoveSequenceSkipsAll(t *testing.T) {
	cache := eager.NewMutable[int]()
	g := New(cache, Rule[int](naturalsRule))
	g, err := g.RemoveSequence(eager.NewMutable(1, 2))
	require.NoError(t, err)

	var got []int
	for i := 0; i < 3; i++ {
		v, _ := g.Next()
		got = append(got, v)
	}
	assert.Equal(t, []int{0, 3, 4}, got)
}

func TestPrependAppendRemoveSequenceRejectOmega(t *testing.T) {
	cache := eager.NewMutable[int]()
	g := New[int](cache, nil)
	var inf infiniteSized[int]

	_, err := g.PrependSequence(inf)
	assert.ErrorIs(t, err, xerrors.ErrInfiniteNotAllowed)

	_, err = g.AppendSequence(inf)
	assert.ErrorIs(t, err, xerrors.ErrInfiniteNotAllowed)

	_, err = g.RemoveSequence(inf)
	assert.ErrorIs(t, err, xerrors.ErrInfiniteNotAllowed)
}

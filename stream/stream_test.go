package stream

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nnyyxxxx/lazyseq/eager"
	"github.com/nnyyxxxx/lazyseq/generator"
	"github.com/nnyyxxxx/lazyseq/lazyseq"
	"github.com/nnyyxxxx/lazyseq/xerrors"
)

func naturalsFrom(start int) generator.Rule[int] {
	return func(prefix []int) int {
		if len(prefix) == 0 {
			return start
		}
		return prefix[len(prefix)-1] + 1
	}
}

func TestSequenceReadStream(t *testing.T) {
	seq := eager.NewMutable(1, 2, 3)
	rs := NewSequenceReadStream[int](seq)

	for _, want := range []int{1, 2, 3} {
		assert.False(t, rs.IsEndOfStream())
		v, err := rs.Read()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	assert.True(t, rs.IsEndOfStream())
	_, err := rs.Read()
	assert.ErrorIs(t, err, xerrors.ErrEndOfStream)
}

func TestSequenceReadStreamSeekAndReset(t *testing.T) {
	seq := eager.NewMutable("a", "b", "c")
	rs := NewSequenceReadStream[string](seq)

	require.NoError(t, rs.Seek(2))
	v, err := rs.Read()
	require.NoError(t, err)
	assert.Equal(t, "c", v)

	rs.Reset()
	v, err = rs.Read()
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	assert.Error(t, rs.Seek(99))
}

func TestIOReadStream(t *testing.T) {
	r := strings.NewReader("1\n2\n3\n")
	deser := func(line string) (int, error) { return strconv.Atoi(line) }
	rs := NewIOReadStream[int](r, deser)

	assert.False(t, rs.CanSeek())
	for _, want := range []int{1, 2, 3} {
		v, err := rs.Read()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	assert.True(t, rs.IsEndOfStream())
}

func TestReadStreamClosed(t *testing.T) {
	rs := NewSequenceReadStream[int](eager.NewMutable(1))
	rs.Close()
	_, err := rs.Read()
	assert.Error(t, err)
}

func TestSequenceWriteStream(t *testing.T) {
	seq := eager.NewMutable[int]()
	ws := NewSequenceWriteStream[int](seq)

	pos, err := ws.Write(7)
	require.NoError(t, err)
	assert.Equal(t, 1, pos)

	pos, err = ws.Write(8)
	require.NoError(t, err)
	assert.Equal(t, 2, pos)

	v, _ := seq.Get(0)
	assert.Equal(t, 7, v)
	v, _ = seq.Get(1)
	assert.Equal(t, 8, v)
}

func TestIOWriteStream(t *testing.T) {
	var buf bytes.Buffer
	ser := func(v int) (string, error) { return strconv.Itoa(v), nil }
	ws := NewIOWriteStream[int](&buf, ser)

	_, err := ws.Write(42)
	require.NoError(t, err)
	_, err = ws.Write(43)
	require.NoError(t, err)

	assert.Equal(t, "42\n43\n", buf.String())
	assert.Equal(t, 2, ws.Pos())
}

func TestWriteStreamClosed(t *testing.T) {
	ws := NewSequenceWriteStream[int](eager.NewMutable[int]())
	ws.Close()
	_, err := ws.Write(1)
	assert.Error(t, err)
}

func TestLazySequenceReadStreamFinite(t *testing.T) {
	seq := lazyseq.FromSlice([]int{1, 2, 3})
	rs := NewLazySequenceReadStream[int](seq)

	for _, want := range []int{1, 2, 3} {
		assert.False(t, rs.IsEndOfStream())
		v, err := rs.Read()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	assert.True(t, rs.IsEndOfStream())
}

func TestLazySequenceReadStreamInfiniteNeverEndsOfStream(t *testing.T) {
	seq := lazyseq.FromRule(naturalsFrom(0), nil)
	rs := NewLazySequenceReadStream[int](seq)

	for _, want := range []int{0, 1, 2} {
		assert.False(t, rs.IsEndOfStream())
		v, err := rs.Read()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	assert.False(t, rs.IsEndOfStream())
}

func TestLazySequenceWriteStream(t *testing.T) {
	ws := NewLazySequenceWriteStream[int](lazyseq.Empty[int]())

	pos, err := ws.Write(5)
	require.NoError(t, err)
	assert.Equal(t, 1, pos)

	pos, err = ws.Write(6)
	require.NoError(t, err)
	assert.Equal(t, 2, pos)
}

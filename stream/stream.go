// Package stream implements ReadStream and WriteStream: a uniform
// sequential-access façade over an in-memory eager.Sequence, a rule-driven
// lazyseq.Sequence, or a raw io.Reader/io.Writer, with user-supplied
// (de)serialization for the latter.
package stream

import (
	"bufio"
	"fmt"
	"io"

	"github.com/nnyyxxxx/lazyseq/eager"
	"github.com/nnyyxxxx/lazyseq/lazyseq"
	"github.com/nnyyxxxx/lazyseq/xerrors"
)

// Deserializer turns one line of text into a T.
type Deserializer[T any] func(line string) (T, error)

// Serializer turns a T into the line of text written for it.
type Serializer[T any] func(v T) (string, error)

// readImpl is the strategy a ReadStream delegates to, mirroring the
// original's ArrayImpl/IoStreamImpl split (original_source/ReadOnlyStream.h)
// as a Go interface instead of a virtual base class.
type readImpl[T any] interface {
	read() (T, error)
	isEOS() bool
	canSeek() bool
	pos() int
	seek(i int) error
	reset()
}

// ReadStream sequentially reads T values from a finite eager.Sequence, a
// (possibly infinite) lazyseq.Sequence, or a line-oriented io.Reader,
// failing ErrEndOfStream once exhausted.
type ReadStream[T any] struct {
	impl   readImpl[T]
	closed bool
}

type arraySeqRead[T any] struct {
	seq *eager.Sequence[T]
	p   int
}

func (a *arraySeqRead[T]) isEOS() bool { return a.p >= a.seq.Len() }
func (a *arraySeqRead[T]) read() (T, error) {
	var zero T
	if a.isEOS() {
		return zero, xerrors.ErrEndOfStream
	}
	v, err := a.seq.Get(a.p)
	if err != nil {
		return zero, err
	}
	a.p++
	return v, nil
}
func (a *arraySeqRead[T]) canSeek() bool { return true }
func (a *arraySeqRead[T]) pos() int      { return a.p }
func (a *arraySeqRead[T]) seek(i int) error {
	if i < 0 || i > a.seq.Len() {
		return xerrors.ErrOutOfRange
	}
	a.p = i
	return nil
}
func (a *arraySeqRead[T]) reset() { a.p = 0 }

type ioRead[T any] struct {
	scanner *bufio.Scanner
	deser   Deserializer[T]
	eof     bool
	pending bool
	p       int
}

// isEOS scans ahead one line when none is buffered, so the stream reports
// its end as soon as the last record has been read.
func (r *ioRead[T]) isEOS() bool {
	if !r.eof && !r.pending {
		if r.scanner.Scan() {
			r.pending = true
		} else {
			r.eof = true
		}
	}
	return r.eof
}
func (r *ioRead[T]) read() (T, error) {
	var zero T
	if r.isEOS() {
		return zero, xerrors.ErrEndOfStream
	}
	r.pending = false
	v, err := r.deser(r.scanner.Text())
	if err != nil {
		return zero, err
	}
	r.p++
	return v, nil
}
func (r *ioRead[T]) canSeek() bool   { return false }
func (r *ioRead[T]) pos() int       { return r.p }
func (r *ioRead[T]) seek(int) error { return fmt.Errorf("%w: seek not supported for io-backed streams", xerrors.ErrInvalidArgument) }
func (r *ioRead[T]) reset()         {}

// lazySeqRead reads from a (possibly infinite) lazyseq.Sequence. Per
// spec §4.10, is_end_of_stream is false for an Omega source: Read simply
// keeps pumping the sequence's own generator forward.
type lazySeqRead[T any] struct {
	seq lazyseq.Sequence[T]
	p   int
}

func (l *lazySeqRead[T]) isEOS() bool {
	ln := l.seq.Length()
	if ln.IsOmega() {
		return false
	}
	n, _ := ln.Value()
	return l.p >= n
}
func (l *lazySeqRead[T]) read() (T, error) {
	var zero T
	if l.isEOS() {
		return zero, xerrors.ErrEndOfStream
	}
	v, err := l.seq.Get(l.p)
	if err != nil {
		return zero, err
	}
	l.p++
	return v, nil
}
func (l *lazySeqRead[T]) canSeek() bool { return true }
func (l *lazySeqRead[T]) pos() int      { return l.p }
func (l *lazySeqRead[T]) seek(i int) error {
	if i < 0 {
		return xerrors.ErrOutOfRange
	}
	ln := l.seq.Length()
	if !ln.IsOmega() {
		n, _ := ln.Value()
		if i > n {
			return xerrors.ErrOutOfRange
		}
	}
	l.p = i
	return nil
}
func (l *lazySeqRead[T]) reset() { l.p = 0 }

// NewSequenceReadStream opens a read stream over a finite eager.Sequence.
func NewSequenceReadStream[T any](seq *eager.Sequence[T]) *ReadStream[T] {
	return &ReadStream[T]{impl: &arraySeqRead[T]{seq: seq}}
}

// NewLazySequenceReadStream opens a read stream over seq, which may be
// Omega-length: IsEndOfStream then always reports false, and Read drives
// seq's own generator forward on demand.
func NewLazySequenceReadStream[T any](seq lazyseq.Sequence[T]) *ReadStream[T] {
	return &ReadStream[T]{impl: &lazySeqRead[T]{seq: seq}}
}

// NewIOReadStream opens a read stream over r, decoding one value per line
// with deser.
func NewIOReadStream[T any](r io.Reader, deser Deserializer[T]) *ReadStream[T] {
	return &ReadStream[T]{impl: &ioRead[T]{scanner: bufio.NewScanner(r), deser: deser}}
}

// IsEndOfStream reports whether the stream is closed or exhausted.
func (rs *ReadStream[T]) IsEndOfStream() bool {
	return rs.closed || rs.impl.isEOS()
}

// Read returns the next value, failing ErrEndOfStream once exhausted.
func (rs *ReadStream[T]) Read() (T, error) {
	var zero T
	if rs.closed {
		return zero, xerrors.ErrEndOfStream
	}
	return rs.impl.read()
}

// CanSeek reports whether Seek is meaningful for this stream's backing.
func (rs *ReadStream[T]) CanSeek() bool {
	return rs.impl.canSeek()
}

// Pos returns the cursor's current index: the number of values read so far,
// unless Seek or Reset has moved the cursor.
func (rs *ReadStream[T]) Pos() int {
	return rs.impl.pos()
}

// Seek repositions a seekable stream to index i, failing ErrInvalidArgument
// on a non-seekable (io-backed) stream. Seek only moves the cursor: on a
// lazyseq-backed stream it does not itself materialize anything, and the
// next Read is what drives generation up to i.
func (rs *ReadStream[T]) Seek(i int) error {
	return rs.impl.seek(i)
}

// Reset rewinds a sequence-backed stream to its start; it is a no-op on an
// io-backed stream.
func (rs *ReadStream[T]) Reset() {
	rs.impl.reset()
}

// Close marks the stream closed; further Read calls fail ErrEndOfStream.
func (rs *ReadStream[T]) Close() {
	rs.closed = true
}

// writeImpl is the WriteStream counterpart of readImpl, grounded on
// original_source/WriteOnlyStream.h's ArrayImpl/IoStreamImpl split.
type writeImpl[T any] interface {
	write(v T) (int, error)
	pos() int
	reset()
}

// WriteStream sequentially appends T values to a mutable eager.Sequence, a
// finite lazyseq.Sequence, or a line-oriented io.Writer.
type WriteStream[T any] struct {
	impl   writeImpl[T]
	closed bool
}

type arraySeqWrite[T any] struct {
	seq *eager.Sequence[T]
}

func (a *arraySeqWrite[T]) write(v T) (int, error) {
	a.seq = a.seq.Append(v)
	return a.seq.Len(), nil
}
func (a *arraySeqWrite[T]) pos() int  { return a.seq.Len() }
func (a *arraySeqWrite[T]) reset()    { a.seq, _ = a.seq.Resize(0) }

type ioWrite[T any] struct {
	w    io.Writer
	ser  Serializer[T]
	p    int
}

func (w *ioWrite[T]) write(v T) (int, error) {
	line, err := w.ser(v)
	if err != nil {
		return 0, err
	}
	if _, err := fmt.Fprintln(w.w, line); err != nil {
		return 0, xerrors.Wrap("stream: write failed")(err)
	}
	w.p++
	return w.p, nil
}
func (w *ioWrite[T]) pos() int { return w.p }
func (w *ioWrite[T]) reset()   {}

// lazySeqWrite appends to a lazyseq.Sequence by replacing its root with an
// Appended view each Write, matching LazySequence::append_value rather than
// mutating a shared cache in place.
type lazySeqWrite[T any] struct {
	seq lazyseq.Sequence[T]
}

func (l *lazySeqWrite[T]) write(v T) (int, error) {
	l.seq = l.seq.AppendValue(v)
	n, err := l.seq.Length().Value()
	if err != nil {
		return 0, err
	}
	return n, nil
}
func (l *lazySeqWrite[T]) pos() int {
	n, err := l.seq.Length().Value()
	if err != nil {
		return -1
	}
	return n
}
func (l *lazySeqWrite[T]) reset() {}

// NewSequenceWriteStream opens a write stream appending onto seq, which must
// be the mutable flavor so successive writes grow one shared backing array.
func NewSequenceWriteStream[T any](seq *eager.Sequence[T]) *WriteStream[T] {
	return &WriteStream[T]{impl: &arraySeqWrite[T]{seq: seq}}
}

// NewLazySequenceWriteStream opens a write stream appending onto seq via
// repeated AppendValue. seq must be finite: length tracking (Pos) requires
// Value() to succeed after every write, which an Omega seq cannot satisfy.
func NewLazySequenceWriteStream[T any](seq lazyseq.Sequence[T]) *WriteStream[T] {
	return &WriteStream[T]{impl: &lazySeqWrite[T]{seq: seq}}
}

// NewIOWriteStream opens a write stream over w, encoding one value per line
// with ser.
func NewIOWriteStream[T any](w io.Writer, ser Serializer[T]) *WriteStream[T] {
	return &WriteStream[T]{impl: &ioWrite[T]{w: w, ser: ser}}
}

// Write appends v, returning the stream's new position.
func (ws *WriteStream[T]) Write(v T) (int, error) {
	if ws.closed {
		return 0, xerrors.ErrEndOfStream
	}
	return ws.impl.write(v)
}

// Pos returns the stream's position: the backing sequence's length for a
// sequence-backed stream (which includes any elements it held before the
// first Write), or the number of lines written for an io-backed stream.
func (ws *WriteStream[T]) Pos() int {
	return ws.impl.pos()
}

// Reset clears an eager.Sequence-backed stream back to empty; it is a no-op
// on a lazyseq-backed stream and on an io-backed stream, the latter matching the original's stream->clear() semantics for
// resetting stream error state rather than truncating prior output.
func (ws *WriteStream[T]) Reset() {
	ws.impl.reset()
}

// Close marks the stream closed; further Write calls fail ErrEndOfStream.
func (ws *WriteStream[T]) Close() {
	ws.closed = true
}

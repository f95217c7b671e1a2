// Package xerrors defines the error taxonomy shared by every component of the
// lazy-sequence engine: cardinal, eager, generator, lazynode, lazyseq, stream and turing
// all fail through one of the sentinels below.
package xerrors

import (
	"errors"

	fperrors "github.com/IBM/fp-go/errors"
)

var (
	// ErrOutOfRange signals a negative index, an index past a finite end, or
	// GetFirst/GetLast on an empty sequence.
	ErrOutOfRange = errors.New("index out of range")

	// ErrInfiniteNotAllowed signals an operation that requires a finite length
	// was asked to act on an Omega-length sequence.
	ErrInfiniteNotAllowed = errors.New("operation not allowed on an infinite sequence")

	// ErrNoGenerator signals Generator.Next with empty queues and no rule. A
	// lazyseq.Sequence.Get past the available elements with no generator
	// attached fails ErrOutOfRange instead.
	ErrNoGenerator = errors.New("no generator and no queued elements")

	// ErrInvalidArgument signals a nil stream, a negative count, or a missing
	// serializer/deserializer.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEndOfStream signals a read past the end of a finite or closed stream.
	ErrEndOfStream = errors.New("end of stream")

	// ErrTypeMismatch signals a Concat peer or seed sequence that was expected
	// to expose an indexable prefix and does not.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrNonTerminatingRule signals that a rule produced generator.maxRemoveAttempts
	// removed candidates in a row without producing a non-removed value.
	ErrNonTerminatingRule = errors.New("rule did not produce a non-removed value within the attempt bound")
)

// Wrap curries a causal wrap around an error, built directly on top of the
// teacher library's own errors.OnError combinator.
func Wrap(msg string, args ...any) func(error) error {
	return fperrors.OnError(msg, args...)
}

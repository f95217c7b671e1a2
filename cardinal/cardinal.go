// Package cardinal implements the extended natural numbers {0,1,2,...,omega}
// used throughout the lazy-sequence engine to represent possibly-infinite
// lengths and positions.
package cardinal

import (
	"fmt"
	"math"

	"github.com/IBM/fp-go/eq"
	"github.com/IBM/fp-go/monoid"

	"github.com/nnyyxxxx/lazyseq/xerrors"
)

// Cardinal is either a concrete, finite count or Omega, the symbol for
// countable infinity. The zero value is Finite(0).
type Cardinal struct {
	omega bool
	n     int
}

// Finite constructs a concrete cardinal. Negative counts are clamped to 0:
// a length or position is never negative in this engine.
func Finite(n int) Cardinal {
	if n < 0 {
		n = 0
	}
	return Cardinal{n: n}
}

// Omega constructs the cardinal denoting countable infinity.
func Omega() Cardinal {
	return Cardinal{omega: true}
}

// IsOmega reports whether c is the infinite cardinal.
func (c Cardinal) IsOmega() bool {
	return c.omega
}

// Value returns the finite count, failing if c is Omega.
func (c Cardinal) Value() (int, error) {
	if c.omega {
		return 0, fmt.Errorf("cardinal: Value called on Omega: %w", xerrors.ErrInfiniteNotAllowed)
	}
	return c.n, nil
}

// Add returns the saturating sum of two cardinals: Omega absorbs any addend,
// and a finite overflow saturates to Omega rather than wrapping.
func (c Cardinal) Add(other Cardinal) Cardinal {
	if c.omega || other.omega {
		return Omega()
	}
	sum := c.n + other.n
	if sum < c.n || sum < other.n || sum > math.MaxInt32 {
		return Omega()
	}
	return Finite(sum)
}

// Equals reports whether two cardinals denote the same value.
func (c Cardinal) Equals(other Cardinal) bool {
	if c.omega != other.omega {
		return false
	}
	return c.omega || c.n == other.n
}

// Less implements the total order where Omega is the unique greatest element
// and is never less than itself or anything else.
func (c Cardinal) Less(other Cardinal) bool {
	if c.omega {
		return false
	}
	if other.omega {
		return true
	}
	return c.n < other.n
}

// String renders the cardinal for diagnostics and test failure messages.
func (c Cardinal) String() string {
	if c.omega {
		return "Omega"
	}
	return fmt.Sprintf("%d", c.n)
}

// Min returns the lesser of two cardinals, Omega being the greatest.
func Min(a, b Cardinal) Cardinal {
	if a.Less(b) {
		return a
	}
	return b
}

// Equality exposes Cardinal's equivalence relation as the teacher library's
// eq.Eq typeclass instance, so callers can fold or compare cardinals with
// github.com/IBM/fp-go combinators that take an eq.Eq[T].
func Equality() eq.Eq[Cardinal] {
	return eq.FromEquals(func(a, b Cardinal) bool {
		return a.Equals(b)
	})
}

// Monoid exposes Cardinal's saturating addition as a monoid.Monoid[Cardinal]
// with identity Finite(0), letting a slice of lengths be folded with
// array.FoldMap(cardinal.Monoid()) instead of a hand-rolled loop.
func Monoid() monoid.Monoid[Cardinal] {
	return monoid.MakeMonoid(func(a, b Cardinal) Cardinal {
		return a.Add(b)
	}, Finite(0))
}

// Package turing demonstrates lazyseq end to end: a Turing machine's entire
// execution trace is exposed as one rule-driven Sequence[Configuration],
// each step computed on demand from the previous one.
package turing

import (
	"fmt"
	"strings"

	"github.com/IBM/fp-go/tuple"

	"github.com/nnyyxxxx/lazyseq/eager"
	"github.com/nnyyxxxx/lazyseq/generator"
	"github.com/nnyyxxxx/lazyseq/lazyseq"
)

// State names a machine control state. Which states accept and reject is
// fixed per Machine by NewMachine.
type State int

// Symbol is one tape cell's content.
type Symbol rune

// Direction is the head's move after a transition fires.
type Direction int

const (
	Left  Direction = -1
	Stay  Direction = 0
	Right Direction = 1
)

// Transition rewrites (fromState, readSym) into (toState, writeSym, move).
type Transition struct {
	ToState  State
	WriteSym Symbol
	Move     Direction
}

// Tape is a bi-infinite tape realized as two growing arrays meeting at
// index 0, mirroring original_source/TuringMachine.h's TuringTape: rightTape
// holds non-negative head positions, leftTape holds the mirrored negative
// ones, and every unwritten cell reads as Blank.
type Tape struct {
	left, right []Symbol
	head        int
	blank       Symbol
}

// NewTape builds a tape preloaded with input starting at head position 0,
// using blank for every other cell.
func NewTape(input string, blank Symbol) Tape {
	right := make([]Symbol, len(input))
	for i, r := range input {
		right[i] = Symbol(r)
	}
	return Tape{right: right, blank: blank}
}

// Read returns the symbol under the head.
func (t Tape) Read() Symbol {
	if t.head >= 0 {
		if t.head < len(t.right) {
			return t.right[t.head]
		}
		return t.blank
	}
	idx := -t.head - 1
	if idx < len(t.left) {
		return t.left[idx]
	}
	return t.blank
}

// Write sets the symbol under the head, growing whichever side is needed.
func (t Tape) Write(s Symbol) Tape {
	if t.head >= 0 {
		right := growTo(t.right, t.head+1, t.blank)
		right[t.head] = s
		return Tape{left: t.left, right: right, head: t.head, blank: t.blank}
	}
	idx := -t.head - 1
	left := growTo(t.left, idx+1, t.blank)
	left[idx] = s
	return Tape{left: left, right: t.right, head: t.head, blank: t.blank}
}

func growTo(s []Symbol, n int, blank Symbol) []Symbol {
	if n <= len(s) {
		out := make([]Symbol, len(s))
		copy(out, s)
		return out
	}
	out := make([]Symbol, n)
	copy(out, s)
	for i := len(s); i < n; i++ {
		out[i] = blank
	}
	return out
}

// Move shifts the head by d.
func (t Tape) Move(d Direction) Tape {
	t.head += int(d)
	return t
}

// Snapshot renders a window of radius cells either side of the head, with
// the cell under the head bracketed, per TuringTape::Snapshot.
func (t Tape) Snapshot(radius int) string {
	var b strings.Builder
	for i := t.head - radius; i <= t.head+radius; i++ {
		c := t.cellAt(i)
		if i == t.head {
			fmt.Fprintf(&b, "[%c]", c)
		} else {
			b.WriteRune(rune(c))
		}
	}
	return b.String()
}

func (t Tape) cellAt(i int) Symbol {
	if i >= 0 {
		if i < len(t.right) {
			return t.right[i]
		}
		return t.blank
	}
	idx := -i - 1
	if idx < len(t.left) {
		return t.left[idx]
	}
	return t.blank
}

// Machine is a deterministic Turing machine: one transition per
// (state, symbol) pair, looked up via a tuple.Tuple2 key in the teacher
// library's pair idiom rather than a nested map.
type Machine struct {
	transitions  map[tuple.Tuple2[State, Symbol]]Transition
	start        State
	accept       State
	reject       State
	blank        Symbol
}

// NewMachine builds an empty machine with the given start/accept/reject
// states and blank symbol.
func NewMachine(start, accept, reject State, blank Symbol) *Machine {
	return &Machine{
		transitions: make(map[tuple.Tuple2[State, Symbol]]Transition),
		start:       start,
		accept:      accept,
		reject:      reject,
		blank:       blank,
	}
}

// AddTransition registers the rule applied when the machine is in from and
// reads sym.
func (m *Machine) AddTransition(from State, sym Symbol, to Transition) {
	m.transitions[tuple.MakeTuple2(from, sym)] = to
}

// Configuration is one frame of a run: the tape, the control state, and the
// step count, equivalent to the original's TMState.
type Configuration struct {
	Tape      Tape
	State     State
	StepCount int
}

// String renders a configuration the way TMState::operator<< does.
func (c Configuration) String() string {
	return fmt.Sprintf("Step: %d | State: %d | Tape: %s", c.StepCount, c.State, c.Tape.Snapshot(5))
}

// step computes the configuration following prev: halted states (accept or
// reject) are fixed points, an unmatched (state, symbol) pair transitions
// to reject, and a matching transition writes, moves, and re-states.
func (m *Machine) step(prev Configuration) Configuration {
	if prev.State == m.accept || prev.State == m.reject {
		return prev
	}
	cur := prev.Tape.Read()
	tr, ok := m.transitions[tuple.MakeTuple2(prev.State, cur)]
	next := Configuration{Tape: prev.Tape, State: m.reject, StepCount: prev.StepCount + 1}
	if !ok {
		return next
	}
	next.Tape = prev.Tape.Write(tr.WriteSym).Move(tr.Move)
	next.State = tr.ToState
	return next
}

// ExecutionTrace returns the machine's entire run on input as a
// rule-driven Sequence: index 0 is the seed configuration, every later
// index is produced on demand by applying step to the prior configuration,
// per original_source/TuringMachine.h's GetExecutionTrace.
func (m *Machine) ExecutionTrace(input string) lazyseq.Sequence[Configuration] {
	seed := Configuration{Tape: NewTape(input, m.blank), State: m.start, StepCount: 0}
	seedSeq := eager.NewMutable(seed)

	rule := generator.Rule[Configuration](func(prefix []Configuration) Configuration {
		return m.step(prefix[len(prefix)-1])
	})

	return lazyseq.FromRule[Configuration](rule, seedSeq)
}

// Halted reports whether c is an accept or reject configuration.
func (m *Machine) Halted(c Configuration) bool {
	return c.State == m.accept || c.State == m.reject
}

// Accepted reports whether c is specifically the accept configuration.
func (m *Machine) Accepted(c Configuration) bool {
	return c.State == m.accept
}

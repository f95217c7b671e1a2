package turing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zeroOneMachine recognizes 0^n 1^n by repeatedly crossing off a leading
// '0' (written as 'X') and a matching '1' (written as 'Y'), the classic
// marking algorithm with four working states (q0-q3).
func zeroOneMachine() *Machine {
	const (
		q0 State = iota
		q1
		q2
		q3
		accept
		reject
	)
	m := NewMachine(q0, accept, reject, '_')

	m.AddTransition(q0, '0', Transition{ToState: q1, WriteSym: 'X', Move: Right})
	m.AddTransition(q0, 'Y', Transition{ToState: q3, WriteSym: 'Y', Move: Right})
	m.AddTransition(q0, '_', Transition{ToState: accept, WriteSym: '_', Move: Stay})

	m.AddTransition(q1, '0', Transition{ToState: q1, WriteSym: '0', Move: Right})
	m.AddTransition(q1, 'Y', Transition{ToState: q1, WriteSym: 'Y', Move: Right})
	m.AddTransition(q1, '1', Transition{ToState: q2, WriteSym: 'Y', Move: Left})

	m.AddTransition(q2, '0', Transition{ToState: q2, WriteSym: '0', Move: Left})
	m.AddTransition(q2, 'Y', Transition{ToState: q2, WriteSym: 'Y', Move: Left})
	m.AddTransition(q2, 'X', Transition{ToState: q0, WriteSym: 'X', Move: Right})

	m.AddTransition(q3, 'Y', Transition{ToState: q3, WriteSym: 'Y', Move: Right})
	m.AddTransition(q3, '_', Transition{ToState: accept, WriteSym: '_', Move: Stay})

	return m
}

func runUntilHalt(t *testing.T, m *Machine, input string, maxSteps int) Configuration {
	t.Helper()
	trace := m.ExecutionTrace(input)
	var last Configuration
	for i := 0; i < maxSteps; i++ {
		c, err := trace.Get(i)
		require.NoError(t, err)
		last = c
		if m.Halted(c) {
			return c
		}
	}
	t.Fatalf("machine on %q did not halt within %d steps", input, maxSteps)
	return last
}

func TestTuringMachineAcceptsBalanced(t *testing.T) {
	m := zeroOneMachine()
	final := runUntilHalt(t, m, "0011", 100)
	assert.True(t, m.Accepted(final))
}

func TestTuringMachineRejectsUnbalanced(t *testing.T) {
	m := zeroOneMachine()
	final := runUntilHalt(t, m, "001", 100)
	assert.True(t, m.Halted(final))
	assert.False(t, m.Accepted(final))
}

func TestConfigurationStringIncludesStepStateAndWindow(t *testing.T) {
	m := zeroOneMachine()
	trace := m.ExecutionTrace("01")
	c, err := trace.Get(0)
	require.NoError(t, err)
	s := c.String()
	assert.Contains(t, s, "Step: 0")
	assert.Contains(t, s, "Tape:")
}

func TestTapeReadWriteAndMove(t *testing.T) {
	tp := NewTape("ab", '_')
	assert.Equal(t, Symbol('a'), tp.Read())

	tp = tp.Move(Right)
	assert.Equal(t, Symbol('b'), tp.Read())

	tp = tp.Write('z')
	assert.Equal(t, Symbol('z'), tp.Read())

	tp = tp.Move(Left).Move(Left)
	assert.Equal(t, Symbol('_'), tp.Read())
}

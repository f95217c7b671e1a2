// Command tracewalk is a thin, non-interactive driver that builds a
// TapeMachine, walks its execution trace to a halt (or a step bound), and
// logs each configuration, grounded on original_source/main_MachineTuring.cpp
// trimmed to the spec's non-interactive shape.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/nnyyxxxx/lazyseq/stream"
	"github.com/nnyyxxxx/lazyseq/turing"
)

const maxSteps = 100

func buildBalancedMachine() *turing.Machine {
	const (
		q0 turing.State = iota
		q1
		q2
		q3
		accept
		reject
	)
	m := turing.NewMachine(q0, accept, reject, '_')

	m.AddTransition(q0, '0', turing.Transition{ToState: q1, WriteSym: 'X', Move: turing.Right})
	m.AddTransition(q0, 'Y', turing.Transition{ToState: q3, WriteSym: 'Y', Move: turing.Right})
	m.AddTransition(q0, '_', turing.Transition{ToState: accept, WriteSym: '_', Move: turing.Stay})

	m.AddTransition(q1, '0', turing.Transition{ToState: q1, WriteSym: '0', Move: turing.Right})
	m.AddTransition(q1, 'Y', turing.Transition{ToState: q1, WriteSym: 'Y', Move: turing.Right})
	m.AddTransition(q1, '1', turing.Transition{ToState: q2, WriteSym: 'Y', Move: turing.Left})

	m.AddTransition(q2, '0', turing.Transition{ToState: q2, WriteSym: '0', Move: turing.Left})
	m.AddTransition(q2, 'Y', turing.Transition{ToState: q2, WriteSym: 'Y', Move: turing.Left})
	m.AddTransition(q2, 'X', turing.Transition{ToState: q0, WriteSym: 'X', Move: turing.Right})

	m.AddTransition(q3, 'Y', turing.Transition{ToState: q3, WriteSym: 'Y', Move: turing.Right})
	m.AddTransition(q3, '_', turing.Transition{ToState: accept, WriteSym: '_', Move: turing.Stay})

	return m
}

var programs = map[string]func() *turing.Machine{
	"balanced01": buildBalancedMachine,
}

func configSerializer(c turing.Configuration) (string, error) {
	return c.String(), nil
}

func main() {
	program := flag.String("program", "balanced01", "registered TapeMachine program to run")
	input := flag.String("input", "0011", "tape input string")
	outPath := flag.String("out", "", "optional path to write the trace to, one line per step")
	flag.Parse()

	build, ok := programs[*program]
	if !ok {
		log.Fatalf("tracewalk: unknown program %q", *program)
	}
	m := build()
	trace := m.ExecutionTrace(*input)

	var ws *stream.WriteStream[turing.Configuration]
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatalf("tracewalk: opening %s: %v", *outPath, err)
		}
		defer f.Close()
		ws = stream.NewIOWriteStream[turing.Configuration](f, configSerializer)
	}

	for step := 0; step < maxSteps; step++ {
		cfg, err := trace.Get(step)
		if err != nil {
			log.Fatalf("tracewalk: reading step %d: %v", step, err)
		}
		log.Println(cfg.String())
		if ws != nil {
			if _, err := ws.Write(cfg); err != nil {
				log.Printf("tracewalk: writing trace: %v", err)
			}
		}
		if m.Halted(cfg) {
			if m.Accepted(cfg) {
				log.Println(">>> RESULT: ACCEPTED <<<")
			} else {
				log.Println(">>> RESULT: REJECTED <<<")
			}
			return
		}
	}
	log.Printf("tracewalk: did not halt within %d steps", maxSteps)
}

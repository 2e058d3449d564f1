package test

import (
	"github.com/quantsim/qlume/aqasm"
	"github.com/quantsim/qlume/backend"
	"github.com/quantsim/qlume/circuit"
)

// Engine implements backend.Engine with canned qubit states.
//
// A job with a fixed shot count is served by cycling through States; a job
// delegating the shot count (NbShots == 0) is served Default verbatim, with
// uniform probabilities, standing in for an engine's own shot policy. Every
// submitted job is recorded in Jobs.
type Engine struct {
	// States is cycled to satisfy fixed-shot-count jobs. Empty means all
	// shots read |0...0⟩.
	States [][]bool
	// Default is returned for jobs delegating the shot count to the engine.
	Default [][]bool
	// Err, when set, fails every submission.
	Err error

	Jobs []backend.Job
}

// NewEngine returns an engine replaying the given qubit states.
func NewEngine(states ...[]bool) *Engine {
	return &Engine{States: states}
}

// Submit implements backend.Engine.
func (e *Engine) Submit(job backend.Job) ([]backend.Shot, error) {
	e.Jobs = append(e.Jobs, job)
	if e.Err != nil {
		return nil, e.Err
	}

	if job.NbShots == 0 {
		shots := make([]backend.Shot, len(e.Default))
		for i, state := range e.Default {
			shots[i] = backend.Shot{
				State:       cloneState(state),
				Probability: 1 / float64(len(e.Default)),
			}
		}
		return shots, nil
	}

	shots := make([]backend.Shot, job.NbShots)
	for i := range shots {
		if len(e.States) == 0 {
			shots[i] = backend.Shot{State: make([]bool, job.NbQubits)}
			continue
		}
		shots[i] = backend.Shot{State: cloneState(e.States[i%len(e.States)])}
	}
	return shots, nil
}

func cloneState(state []bool) []bool {
	out := make([]bool, len(state))
	copy(out, state)
	return out
}

// Compiler implements backend.Compiler, recording inputs and optionally
// failing.
type Compiler struct {
	// Err, when set, fails every compilation.
	Err error

	Circuits []*circuit.Circuit
}

// Compile implements backend.Compiler by delegating to the aqasm compiler
// after recording the circuit.
func (c *Compiler) Compile(circ *circuit.Circuit, nbQubits int) (*aqasm.Program, error) {
	c.Circuits = append(c.Circuits, circ)
	if c.Err != nil {
		return nil, c.Err
	}
	return aqasm.Compile(circ, nbQubits)
}

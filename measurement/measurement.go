// Package measurement provides a basic measurement: an ordered set of named
// circuits, an optional constant prefix circuit and a caller-supplied
// post-processing function.
package measurement

import (
	"github.com/quantsim/qlume/circuit"
	"github.com/quantsim/qlume/registers"
)

// EvaluateFunc post-processes the merged registers of a measurement into
// named expectation values. A nil map is a valid result.
type EvaluateFunc func(bits registers.Bit, floats registers.Float, cplxs registers.Complex) (map[string]float64, error)

// Registers is a measurement whose post-processing is delegated to a
// caller-supplied function. With a nil function it returns the raw registers'
// side effect only: Evaluate yields a nil map.
type Registers struct {
	constant *circuit.Circuit
	circuits []*circuit.Circuit
	evaluate EvaluateFunc
}

// New builds a measurement over the given circuits, executed in argument
// order.
func New(circuits ...*circuit.Circuit) *Registers {
	return &Registers{circuits: circuits}
}

// WithConstantCircuit sets the shared prefix circuit and returns the
// measurement for chaining.
func (m *Registers) WithConstantCircuit(c *circuit.Circuit) *Registers {
	m.constant = c
	return m
}

// WithEvaluate sets the post-processing function and returns the measurement
// for chaining.
func (m *Registers) WithEvaluate(f EvaluateFunc) *Registers {
	m.evaluate = f
	return m
}

// ConstantCircuit returns the shared prefix circuit, or nil.
func (m *Registers) ConstantCircuit() *circuit.Circuit {
	return m.constant
}

// Circuits returns the measurement's circuits in execution order.
func (m *Registers) Circuits() []*circuit.Circuit {
	return m.circuits
}

// Evaluate applies the configured post-processing function, if any.
func (m *Registers) Evaluate(bits registers.Bit, floats registers.Float, cplxs registers.Complex) (map[string]float64, error) {
	if m.evaluate == nil {
		return nil, nil
	}
	return m.evaluate(bits, floats, cplxs)
}

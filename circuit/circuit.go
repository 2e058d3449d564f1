// Package circuit implements qlume's quantum circuit intermediate
// representation.
//
// A Circuit is an ordered sequence of operations: gates, measurements and
// classical register definitions. Operations carry hierarchical tags
// (e.g. "Operation" → "GateOperation" → "RotateZ") so callers can filter a
// circuit without knowing the concrete operation types.
package circuit

import (
	"fmt"
	"strings"
)

// Operation is a single step of a circuit.
type Operation interface {
	// Tags returns the hierarchical tags of the operation, most generic first.
	Tags() []string
	// InvolvedQubits returns the qubit indices the operation acts on.
	InvolvedQubits() []int
}

// Circuit is an ordered sequence of operations.
type Circuit struct {
	ops []Operation
}

// New returns an empty circuit.
func New() *Circuit {
	return &Circuit{}
}

// Add appends operations to the circuit and returns it for chaining.
func (c *Circuit) Add(ops ...Operation) *Circuit {
	c.ops = append(c.ops, ops...)
	return c
}

// Operations returns the operations in circuit order. The returned slice is
// the circuit's backing storage; callers must not mutate it.
func (c *Circuit) Operations() []Operation {
	return c.ops
}

// Len returns the number of operations.
func (c *Circuit) Len() int {
	return len(c.ops)
}

// FilterByTag returns all operations carrying the given tag, in circuit order.
func (c *Circuit) FilterByTag(tag string) []Operation {
	var out []Operation
	for _, op := range c.ops {
		for _, t := range op.Tags() {
			if t == tag {
				out = append(out, op)
				break
			}
		}
	}
	return out
}

func (c *Circuit) String() string {
	var sb strings.Builder
	for _, op := range c.ops {
		tags := op.Tags()
		fmt.Fprintf(&sb, "%s %v\n", tags[len(tags)-1], op.InvolvedQubits())
	}
	return sb.String()
}

package aqasm

import (
	"errors"
	"fmt"

	"github.com/quantsim/qlume/circuit"
	"github.com/quantsim/qlume/logger"
)

// ErrUnsupportedOperation is returned when a circuit contains an operation
// with no native equivalent in the program format.
var ErrUnsupportedOperation = errors.New("operation not supported by the aqasm compiler")

// Compile translates a circuit into a vendor-native program over nbQubits
// qubits.
//
// Measurements and register definitions carry no gate semantics and compile
// to nothing; the backend recovers readouts from the execution engine
// instead. PragmaActiveReset compiles to a native RESET instruction. Any
// other operation outside the supported gate set fails the whole compilation.
func Compile(c *circuit.Circuit, nbQubits int) (*Program, error) {
	log := logger.Logger()
	log.Debug().Int("nbQubits", nbQubits).Int("nbOps", c.Len()).Msg("compiling circuit")

	p, err := NewProgram(nbQubits)
	if err != nil {
		return nil, err
	}
	for _, op := range c.Operations() {
		ins, ok, err := callOperation(op)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if err := p.Apply(ins); err != nil {
			return nil, fmt.Errorf("applying %s: %w", tagOf(op), err)
		}
	}
	return p, nil
}

// callOperation maps one circuit operation to a program instruction. The
// boolean is false for operations that translate to nothing.
func callOperation(op circuit.Operation) (Instruction, bool, error) {
	switch g := op.(type) {
	case circuit.RotateX:
		return Instruction{Gate: RX, Qubits: []int{g.Qubit}, Theta: g.Theta}, true, nil
	case circuit.RotateY:
		return Instruction{Gate: RY, Qubits: []int{g.Qubit}, Theta: g.Theta}, true, nil
	case circuit.RotateZ:
		return Instruction{Gate: RZ, Qubits: []int{g.Qubit}, Theta: g.Theta}, true, nil
	case circuit.Hadamard:
		return Instruction{Gate: H, Qubits: []int{g.Qubit}}, true, nil
	case circuit.PauliX:
		return Instruction{Gate: X, Qubits: []int{g.Qubit}}, true, nil
	case circuit.PauliY:
		return Instruction{Gate: Y, Qubits: []int{g.Qubit}}, true, nil
	case circuit.PauliZ:
		return Instruction{Gate: Z, Qubits: []int{g.Qubit}}, true, nil
	case circuit.SGate:
		return Instruction{Gate: S, Qubits: []int{g.Qubit}}, true, nil
	case circuit.TGate:
		return Instruction{Gate: T, Qubits: []int{g.Qubit}}, true, nil
	case circuit.CNOT:
		return Instruction{Gate: CNOT, Qubits: []int{g.Control, g.Target}}, true, nil
	case circuit.ControlledPauliY:
		return Instruction{Gate: CY, Qubits: []int{g.Control, g.Target}}, true, nil
	case circuit.ControlledPauliZ:
		return Instruction{Gate: CSIGN, Qubits: []int{g.Control, g.Target}}, true, nil
	case circuit.SWAP:
		return Instruction{Gate: SWAP, Qubits: []int{g.Control, g.Target}}, true, nil
	case circuit.ISwap:
		return Instruction{Gate: ISWAP, Qubits: []int{g.Control, g.Target}}, true, nil
	case circuit.VariableMSXX:
		return Instruction{Gate: Custom2, Qubits: []int{g.Control, g.Target}, Matrix: Matrix(g.UnitaryMatrix())}, true, nil
	case circuit.SingleQubitGate:
		return Instruction{Gate: Custom1, Qubits: []int{g.Qubit}, Matrix: Matrix(g.Matrix)}, true, nil
	case circuit.TwoQubitGate:
		return Instruction{Gate: Custom2, Qubits: []int{g.Control, g.Target}, Matrix: Matrix(g.Matrix)}, true, nil
	case circuit.PragmaActiveReset:
		return Instruction{Gate: Reset, Qubits: []int{g.Qubit}}, true, nil
	case circuit.MeasureQubit:
		return Instruction{}, false, nil
	case circuit.DefinitionBit, circuit.DefinitionFloat, circuit.DefinitionComplex:
		return Instruction{}, false, nil
	default:
		return Instruction{}, false, fmt.Errorf("%w: %s", ErrUnsupportedOperation, tagOf(op))
	}
}

// tagOf returns the most specific tag of an operation, for error messages.
func tagOf(op circuit.Operation) string {
	tags := op.Tags()
	if len(tags) == 0 {
		return "untagged operation"
	}
	return tags[len(tags)-1]
}

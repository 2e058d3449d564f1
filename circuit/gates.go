package circuit

import (
	"math"
)

// RotateX rotates a single qubit around the X axis by Theta radians.
type RotateX struct {
	Qubit int
	Theta float64
}

func (RotateX) Tags() []string {
	return []string{"Operation", "GateOperation", "SingleQubitGateOperation", "Rotation", "RotateX"}
}

func (g RotateX) InvolvedQubits() []int { return []int{g.Qubit} }

// RotateY rotates a single qubit around the Y axis by Theta radians.
type RotateY struct {
	Qubit int
	Theta float64
}

func (RotateY) Tags() []string {
	return []string{"Operation", "GateOperation", "SingleQubitGateOperation", "Rotation", "RotateY"}
}

func (g RotateY) InvolvedQubits() []int { return []int{g.Qubit} }

// RotateZ rotates a single qubit around the Z axis by Theta radians.
type RotateZ struct {
	Qubit int
	Theta float64
}

func (RotateZ) Tags() []string {
	return []string{"Operation", "GateOperation", "SingleQubitGateOperation", "Rotation", "RotateZ"}
}

func (g RotateZ) InvolvedQubits() []int { return []int{g.Qubit} }

// Hadamard applies the Hadamard gate to a single qubit.
type Hadamard struct {
	Qubit int
}

func (Hadamard) Tags() []string {
	return []string{"Operation", "GateOperation", "SingleQubitGateOperation", "Hadamard"}
}

func (g Hadamard) InvolvedQubits() []int { return []int{g.Qubit} }

// PauliX applies the Pauli X gate to a single qubit.
type PauliX struct {
	Qubit int
}

func (PauliX) Tags() []string {
	return []string{"Operation", "GateOperation", "SingleQubitGateOperation", "PauliX"}
}

func (g PauliX) InvolvedQubits() []int { return []int{g.Qubit} }

// PauliY applies the Pauli Y gate to a single qubit.
type PauliY struct {
	Qubit int
}

func (PauliY) Tags() []string {
	return []string{"Operation", "GateOperation", "SingleQubitGateOperation", "PauliY"}
}

func (g PauliY) InvolvedQubits() []int { return []int{g.Qubit} }

// PauliZ applies the Pauli Z gate to a single qubit.
type PauliZ struct {
	Qubit int
}

func (PauliZ) Tags() []string {
	return []string{"Operation", "GateOperation", "SingleQubitGateOperation", "PauliZ"}
}

func (g PauliZ) InvolvedQubits() []int { return []int{g.Qubit} }

// SGate applies the phase gate S to a single qubit.
type SGate struct {
	Qubit int
}

func (SGate) Tags() []string {
	return []string{"Operation", "GateOperation", "SingleQubitGateOperation", "SGate"}
}

func (g SGate) InvolvedQubits() []int { return []int{g.Qubit} }

// TGate applies the T gate to a single qubit.
type TGate struct {
	Qubit int
}

func (TGate) Tags() []string {
	return []string{"Operation", "GateOperation", "SingleQubitGateOperation", "TGate"}
}

func (g TGate) InvolvedQubits() []int { return []int{g.Qubit} }

// CNOT applies the controlled NOT gate.
type CNOT struct {
	Control int
	Target  int
}

func (CNOT) Tags() []string {
	return []string{"Operation", "GateOperation", "TwoQubitGateOperation", "CNOT"}
}

func (g CNOT) InvolvedQubits() []int { return []int{g.Control, g.Target} }

// ControlledPauliY applies the controlled Pauli Y gate.
type ControlledPauliY struct {
	Control int
	Target  int
}

func (ControlledPauliY) Tags() []string {
	return []string{"Operation", "GateOperation", "TwoQubitGateOperation", "ControlledPauliY"}
}

func (g ControlledPauliY) InvolvedQubits() []int { return []int{g.Control, g.Target} }

// ControlledPauliZ applies the controlled Pauli Z gate.
type ControlledPauliZ struct {
	Control int
	Target  int
}

func (ControlledPauliZ) Tags() []string {
	return []string{"Operation", "GateOperation", "TwoQubitGateOperation", "ControlledPauliZ"}
}

func (g ControlledPauliZ) InvolvedQubits() []int { return []int{g.Control, g.Target} }

// SWAP exchanges the states of two qubits.
type SWAP struct {
	Control int
	Target  int
}

func (SWAP) Tags() []string {
	return []string{"Operation", "GateOperation", "TwoQubitGateOperation", "SWAP"}
}

func (g SWAP) InvolvedQubits() []int { return []int{g.Control, g.Target} }

// ISwap applies the iSWAP gate to two qubits.
type ISwap struct {
	Control int
	Target  int
}

func (ISwap) Tags() []string {
	return []string{"Operation", "GateOperation", "TwoQubitGateOperation", "ISwap"}
}

func (g ISwap) InvolvedQubits() []int { return []int{g.Control, g.Target} }

// VariableMSXX applies the variable-angle Mølmer-Sørensen XX interaction.
type VariableMSXX struct {
	Control int
	Target  int
	Theta   float64
}

func (VariableMSXX) Tags() []string {
	return []string{"Operation", "GateOperation", "TwoQubitGateOperation", "Rotation", "VariableMSXX"}
}

func (g VariableMSXX) InvolvedQubits() []int { return []int{g.Control, g.Target} }

// UnitaryMatrix returns the 4x4 unitary of the XX interaction at angle Theta.
func (g VariableMSXX) UnitaryMatrix() [][]complex128 {
	c := complex(math.Cos(g.Theta/2), 0)
	s := -1i * complex(math.Sin(g.Theta/2), 0)
	return [][]complex128{
		{c, 0, 0, s},
		{0, c, s, 0},
		{0, s, c, 0},
		{s, 0, 0, c},
	}
}

// SingleQubitGate applies an arbitrary 2x2 unitary to a single qubit.
type SingleQubitGate struct {
	Qubit  int
	Matrix [][]complex128
}

func (SingleQubitGate) Tags() []string {
	return []string{"Operation", "GateOperation", "SingleQubitGateOperation", "SingleQubitGate"}
}

func (g SingleQubitGate) InvolvedQubits() []int { return []int{g.Qubit} }

// UnitaryMatrix returns the gate matrix.
func (g SingleQubitGate) UnitaryMatrix() [][]complex128 { return g.Matrix }

// TwoQubitGate applies an arbitrary 4x4 unitary to a control/target pair.
type TwoQubitGate struct {
	Control int
	Target  int
	Matrix  [][]complex128
}

func (TwoQubitGate) Tags() []string {
	return []string{"Operation", "GateOperation", "TwoQubitGateOperation", "TwoQubitGate"}
}

func (g TwoQubitGate) InvolvedQubits() []int { return []int{g.Control, g.Target} }

// UnitaryMatrix returns the gate matrix.
func (g TwoQubitGate) UnitaryMatrix() [][]complex128 { return g.Matrix }

// MeasureQubit measures a single qubit in the computational basis and stores
// the outcome at ReadoutIndex of the named bit register.
type MeasureQubit struct {
	Qubit        int
	Readout      string
	ReadoutIndex int
}

func (MeasureQubit) Tags() []string {
	return []string{"Operation", "Measurement", "MeasureQubit"}
}

func (g MeasureQubit) InvolvedQubits() []int { return []int{g.Qubit} }

// PragmaActiveReset resets a qubit to |0⟩ mid-circuit.
type PragmaActiveReset struct {
	Qubit int
}

func (PragmaActiveReset) Tags() []string {
	return []string{"Operation", "PragmaOperation", "PragmaActiveReset"}
}

func (g PragmaActiveReset) InvolvedQubits() []int { return []int{g.Qubit} }

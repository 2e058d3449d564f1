package circuit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitions(t *testing.T) {
	c := New().Add(
		DefinitionBit{Name: "ro", Length: 2, IsOutput: true},
		DefinitionBit{Name: "scratch", Length: 4},
		DefinitionFloat{Name: "angles", Length: 3, IsOutput: true},
		DefinitionComplex{Name: "amps", Length: 1},
		Hadamard{Qubit: 0},
		MeasureQubit{Qubit: 0, Readout: "ro"},
	)

	bits := c.Definitions(BitRegister)
	require.Len(t, bits, 2)
	assert.Equal(t, Definition{Name: "ro", Length: 2, IsOutput: true}, bits[0])
	assert.Equal(t, Definition{Name: "scratch", Length: 4}, bits[1])

	floats := c.Definitions(FloatRegister)
	require.Len(t, floats, 1)
	assert.Equal(t, "angles", floats[0].Name)

	cplxs := c.Definitions(ComplexRegister)
	require.Len(t, cplxs, 1)
	assert.False(t, cplxs[0].IsOutput)
}

func TestFilterByTag(t *testing.T) {
	c := New().Add(
		DefinitionBit{Name: "ro", Length: 1, IsOutput: true},
		RotateZ{Qubit: 0, Theta: math.Pi},
		PauliX{Qubit: 1},
		CNOT{Control: 0, Target: 1},
		MeasureQubit{Qubit: 0, Readout: "ro"},
	)

	assert.Len(t, c.FilterByTag("GateOperation"), 3)
	assert.Len(t, c.FilterByTag("SingleQubitGateOperation"), 2)
	assert.Len(t, c.FilterByTag("TwoQubitGateOperation"), 1)
	assert.Len(t, c.FilterByTag("Definition"), 1)
	assert.Empty(t, c.FilterByTag("PragmaOperation"))

	rz := c.FilterByTag("RotateZ")
	require.Len(t, rz, 1)
	assert.Equal(t, []int{0}, rz[0].InvolvedQubits())
}

func TestInvolvedQubits(t *testing.T) {
	assert.Equal(t, []int{1, 0}, CNOT{Control: 1, Target: 0}.InvolvedQubits())
	assert.Equal(t, []int{2}, PragmaActiveReset{Qubit: 2}.InvolvedQubits())
	assert.Nil(t, DefinitionBit{Name: "ro", Length: 1}.InvolvedQubits())
}

func TestVariableMSXXUnitary(t *testing.T) {
	// θ = π gives cos(θ/2) = 0 and -i·sin(θ/2) = -i on the anti-diagonal
	m := VariableMSXX{Control: 0, Target: 1, Theta: math.Pi}.UnitaryMatrix()
	require.Len(t, m, 4)
	for i := range m {
		require.Len(t, m[i], 4)
	}
	assert.InDelta(t, 0, real(m[0][0]), 1e-12)
	assert.InDelta(t, -1, imag(m[0][3]), 1e-12)
	assert.InDelta(t, -1, imag(m[1][2]), 1e-12)
	assert.InDelta(t, 0, imag(m[0][0]), 1e-12)

	// θ = 0 is the identity
	id := VariableMSXX{Control: 0, Target: 1}.UnitaryMatrix()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := complex128(0)
			if i == j {
				want = 1
			}
			assert.Equal(t, want, id[i][j])
		}
	}
}

func TestCircuitString(t *testing.T) {
	c := New().Add(
		Hadamard{Qubit: 0},
		CNOT{Control: 0, Target: 1},
	)
	assert.Equal(t, "Hadamard [0]\nCNOT [0 1]\n", c.String())
}

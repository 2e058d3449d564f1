package aqasm

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Matrix is a dense complex matrix, row major.
//
// CBOR has no native complex type, so matrices travel as rows of
// (real, imaginary) float pairs.
type Matrix [][]complex128

// MarshalCBOR implements cbor.Marshaler.
func (m Matrix) MarshalCBOR() ([]byte, error) {
	rows := make([][][2]float64, len(m))
	for i, row := range m {
		rows[i] = make([][2]float64, len(row))
		for j, v := range row {
			rows[i][j] = [2]float64{real(v), imag(v)}
		}
	}
	return cbor.Marshal(rows)
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (m *Matrix) UnmarshalCBOR(data []byte) error {
	var rows [][][2]float64
	if err := cbor.Unmarshal(data, &rows); err != nil {
		return err
	}
	out := make(Matrix, len(rows))
	for i, row := range rows {
		out[i] = make([]complex128, len(row))
		for j, v := range row {
			out[i][j] = complex(v[0], v[1])
		}
	}
	*m = out
	return nil
}

// IsSquare reports whether the matrix is non-empty and square.
func (m Matrix) IsSquare() bool {
	if len(m) == 0 {
		return false
	}
	for _, row := range m {
		if len(row) != len(m) {
			return false
		}
	}
	return true
}

// PauliZMatrix returns the single-qubit Z observable [[1,0],[0,-1]].
func PauliZMatrix() Matrix {
	return Matrix{
		{1, 0},
		{0, -1},
	}
}

// Observable is an operator measured in OBS-type jobs: a square matrix acting
// on a register of NbQubits qubits.
type Observable struct {
	NbQubits int
	Matrix   Matrix
}

// NewObservable builds an observable over nbQubits qubits. The matrix must be
// square with a power-of-two dimension not exceeding the full register; a
// smaller matrix measures the corresponding leading qubits only.
func NewObservable(nbQubits int, matrix Matrix) (*Observable, error) {
	if nbQubits < 1 {
		return nil, fmt.Errorf("observable needs at least one qubit, got %d", nbQubits)
	}
	if !matrix.IsSquare() {
		return nil, fmt.Errorf("observable matrix must be square, got %d rows", len(matrix))
	}
	dim := len(matrix)
	if dim&(dim-1) != 0 {
		return nil, fmt.Errorf("observable matrix dimension %d is not a power of two", dim)
	}
	if dim > 1<<nbQubits {
		return nil, fmt.Errorf("observable matrix dimension %d exceeds a %d-qubit register", dim, nbQubits)
	}
	return &Observable{NbQubits: nbQubits, Matrix: matrix}, nil
}

// Package aqasm implements the vendor-native program format targeted by the
// qlume backend: a flat gate listing over a fixed-size qubit register, close
// to the AQASM text format, plus the compiler from qlume's circuit
// representation into it.
package aqasm

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Gate identifies a native gate of the program format.
type Gate uint8

const (
	unknownGate Gate = iota
	RX
	RY
	RZ
	H
	X
	Y
	Z
	S
	T
	CNOT
	CSIGN
	CY
	SWAP
	ISWAP
	Custom1
	Custom2
	Reset
)

func (g Gate) String() string {
	switch g {
	case RX:
		return "RX"
	case RY:
		return "RY"
	case RZ:
		return "RZ"
	case H:
		return "H"
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	case S:
		return "S"
	case T:
		return "T"
	case CNOT:
		return "CNOT"
	case CSIGN:
		return "CSIGN"
	case CY:
		return "CY"
	case SWAP:
		return "SWAP"
	case ISWAP:
		return "ISWAP"
	case Custom1:
		return "CUSTOM"
	case Custom2:
		return "CUSTOM2"
	case Reset:
		return "RESET"
	default:
		return "unknown"
	}
}

// Arity returns the number of qubit operands the gate takes.
func (g Gate) Arity() int {
	switch g {
	case RX, RY, RZ, H, X, Y, Z, S, T, Custom1, Reset:
		return 1
	case CNOT, CSIGN, CY, SWAP, ISWAP, Custom2:
		return 2
	default:
		return 0
	}
}

// parameterized reports whether the gate carries a rotation angle.
func (g Gate) parameterized() bool {
	return g == RX || g == RY || g == RZ
}

// Instruction is one gate application within a program.
type Instruction struct {
	Gate   Gate
	Qubits []int
	// Theta is the rotation angle for RX, RY and RZ.
	Theta float64
	// Matrix holds the unitary for Custom1 and Custom2 gates.
	Matrix Matrix `cbor:",omitempty"`
}

// Program is a compiled, vendor-native gate listing over NbQubits qubits.
type Program struct {
	NbQubits     int
	Instructions []Instruction

	used *bitset.BitSet
}

// NewProgram allocates an empty program over nbQubits qubits.
func NewProgram(nbQubits int) (*Program, error) {
	if nbQubits < 1 {
		return nil, fmt.Errorf("program needs at least one qubit, got %d", nbQubits)
	}
	return &Program{
		NbQubits: nbQubits,
		used:     bitset.New(uint(nbQubits)),
	}, nil
}

// Apply appends an instruction after checking its shape against the program's
// qubit register.
func (p *Program) Apply(ins Instruction) error {
	if arity := ins.Gate.Arity(); arity == 0 {
		return errors.New("instruction has an unknown gate")
	} else if len(ins.Qubits) != arity {
		return fmt.Errorf("gate %s takes %d qubit(s), got %d", ins.Gate, arity, len(ins.Qubits))
	}
	for _, q := range ins.Qubits {
		if q < 0 || q >= p.NbQubits {
			return fmt.Errorf("gate %s: qubit %d out of range [0, %d)", ins.Gate, q, p.NbQubits)
		}
	}
	if p.used == nil {
		p.used = bitset.New(uint(p.NbQubits))
	}
	for _, q := range ins.Qubits {
		p.used.Set(uint(q))
	}
	p.Instructions = append(p.Instructions, ins)
	return nil
}

// UsedQubits returns the indices of qubits touched by at least one
// instruction, in ascending order.
func (p *Program) UsedQubits() []int {
	if p.used == nil {
		// programs that went through deserialization rebuild the set lazily
		p.used = bitset.New(uint(p.NbQubits))
		for _, ins := range p.Instructions {
			for _, q := range ins.Qubits {
				p.used.Set(uint(q))
			}
		}
	}
	out := make([]int, 0, p.used.Count())
	for q, ok := p.used.NextSet(0); ok; q, ok = p.used.NextSet(q + 1) {
		out = append(out, int(q))
	}
	return out
}

// WriteTo writes the program as an AQASM-style listing.
func (p *Program) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	sb.WriteString("BEGIN\n")
	fmt.Fprintf(&sb, "qubits %d\n", p.NbQubits)
	for _, ins := range p.Instructions {
		if ins.Gate.parameterized() {
			fmt.Fprintf(&sb, "%s[%g]", ins.Gate, ins.Theta)
		} else {
			sb.WriteString(ins.Gate.String())
		}
		for i, q := range ins.Qubits {
			if i == 0 {
				sb.WriteByte(' ')
			} else {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "q[%d]", q)
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("END\n")
	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

func (p *Program) String() string {
	var sb strings.Builder
	p.WriteTo(&sb)
	return sb.String()
}

package encoding

import (
	"bytes"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/icza/bitio"

	"github.com/quantsim/qlume/registers"
)

// Result is the serializable outcome of a circuit run: the three classical
// register dictionaries plus the context they were produced in.
type Result struct {
	JobType  string
	NbQubits int

	Bits      registers.Bit
	Floats    registers.Float
	Complexes registers.Complex
}

// bitRegisterWire is the packed form of one bit register: per-shot lengths
// plus all bits concatenated into a bitstream.
type bitRegisterWire struct {
	Lengths []int
	Packed  []byte
}

type resultWire struct {
	JobType   string
	NbQubits  int
	Bits      map[string]bitRegisterWire
	Floats    map[string][][]float64
	Complexes map[string][][][2]float64
}

func packBits(shots [][]bool) (bitRegisterWire, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	wire := bitRegisterWire{Lengths: make([]int, len(shots))}
	for i, shot := range shots {
		wire.Lengths[i] = len(shot)
		for _, bit := range shot {
			if err := w.WriteBool(bit); err != nil {
				return bitRegisterWire{}, err
			}
		}
	}
	if err := w.Close(); err != nil {
		return bitRegisterWire{}, err
	}
	wire.Packed = buf.Bytes()
	return wire, nil
}

func unpackBits(wire bitRegisterWire) ([][]bool, error) {
	r := bitio.NewReader(bytes.NewReader(wire.Packed))
	shots := make([][]bool, len(wire.Lengths))
	for i, length := range wire.Lengths {
		shots[i] = make([]bool, length)
		for j := range shots[i] {
			bit, err := r.ReadBool()
			if err != nil {
				return nil, fmt.Errorf("unpacking bit register: %w", err)
			}
			shots[i][j] = bit
		}
	}
	return shots, nil
}

// SerializeResult writes a run result into the provided writer. Bit registers
// are packed into bitstreams; complex values travel as (real, imaginary)
// float pairs.
func SerializeResult(w io.Writer, res *Result) error {
	wire := resultWire{
		JobType:   res.JobType,
		NbQubits:  res.NbQubits,
		Bits:      make(map[string]bitRegisterWire, len(res.Bits)),
		Floats:    res.Floats,
		Complexes: make(map[string][][][2]float64, len(res.Complexes)),
	}
	for name, shots := range res.Bits {
		packed, err := packBits(shots)
		if err != nil {
			return fmt.Errorf("packing bit register %q: %w", name, err)
		}
		wire.Bits[name] = packed
	}
	for name, shots := range res.Complexes {
		out := make([][][2]float64, len(shots))
		for i, shot := range shots {
			out[i] = make([][2]float64, len(shot))
			for j, v := range shot {
				out[i][j] = [2]float64{real(v), imag(v)}
			}
		}
		wire.Complexes[name] = out
	}

	enc := cbor.NewEncoder(w)
	if err := writeHeader(enc, resultKind); err != nil {
		return err
	}
	return enc.Encode(wire)
}

// DeserializeResult reads a run result from the provided reader.
func DeserializeResult(r io.Reader) (*Result, error) {
	dec := cbor.NewDecoder(r)
	if err := checkHeader(dec, resultKind); err != nil {
		return nil, err
	}
	var wire resultWire
	if err := dec.Decode(&wire); err != nil {
		return nil, err
	}

	res := &Result{
		JobType:   wire.JobType,
		NbQubits:  wire.NbQubits,
		Bits:      registers.Bit{},
		Floats:    registers.Float{},
		Complexes: registers.Complex{},
	}
	for name, packed := range wire.Bits {
		shots, err := unpackBits(packed)
		if err != nil {
			return nil, fmt.Errorf("bit register %q: %w", name, err)
		}
		res.Bits[name] = shots
	}
	for name, shots := range wire.Floats {
		res.Floats[name] = shots
	}
	for name, shots := range wire.Complexes {
		out := make([][]complex128, len(shots))
		for i, shot := range shots {
			out[i] = make([]complex128, len(shot))
			for j, v := range shot {
				out[i][j] = complex(v[0], v[1])
			}
		}
		res.Complexes[name] = out
	}
	return res, nil
}

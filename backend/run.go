package backend

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/quantsim/qlume/circuit"
	"github.com/quantsim/qlume/logger"
	"github.com/quantsim/qlume/registers"
)

// RunCircuit compiles and executes a single circuit and returns its classical
// registers.
//
// Every register the circuit declares as output appears as a key of the
// corresponding dictionary even if nothing is ever written to it. The
// engine's per-shot qubit readout lands under the reserved "ro" key of the
// bit dictionary, one entry per shot.
func (b *Backend) RunCircuit(c *circuit.Circuit) (registers.Bit, registers.Float, registers.Complex, error) {
	outBits := registers.Bit{}
	outFloats := registers.Float{}
	outComplexes := registers.Complex{}

	// Internal registers are sized per their definitions, mirroring the
	// toolkit's circuit contract; only output registers survive this step.
	internalBits := make(map[string]*bitset.BitSet)
	internalFloats := make(map[string][]float64)
	internalComplexes := make(map[string][]complex128)

	for _, def := range c.Definitions(circuit.BitRegister) {
		internalBits[def.Name] = bitset.New(uint(def.Length))
		if def.IsOutput {
			outBits[def.Name] = [][]bool{}
		}
	}
	for _, def := range c.Definitions(circuit.FloatRegister) {
		internalFloats[def.Name] = make([]float64, def.Length)
		if def.IsOutput {
			outFloats[def.Name] = [][]float64{}
		}
	}
	for _, def := range c.Definitions(circuit.ComplexRegister) {
		internalComplexes[def.Name] = make([]complex128, def.Length)
		if def.IsOutput {
			outComplexes[def.Name] = [][]complex128{}
		}
	}

	program, err := b.compiler.Compile(c, b.nbQubits)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("compiling circuit: %w", err)
	}

	job := Job{
		Program:  program,
		Type:     b.jobType,
		NbQubits: b.nbQubits,
		NbShots:  b.nbShots,
	}
	if b.jobType == ObservableJob {
		job.Observable = b.observable
	}

	engine, err := b.resolveEngine()
	if err != nil {
		return nil, nil, nil, err
	}
	shots, err := engine.Submit(job)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("submitting job: %w", err)
	}

	if _, ok := outBits[readoutRegister]; !ok {
		outBits[readoutRegister] = [][]bool{}
	}
	for _, shot := range shots {
		state := make([]bool, len(shot.State))
		copy(state, shot.State)
		outBits[readoutRegister] = append(outBits[readoutRegister], state)
	}

	return outBits, outFloats, outComplexes, nil
}

// RunMeasurementRegisters executes all circuits of a measurement, strictly in
// order, and merges their registers. On register name collision the later
// circuit's values replace the earlier ones entirely.
func (b *Backend) RunMeasurementRegisters(m Measurement) (registers.Bit, registers.Float, registers.Complex, error) {
	if constant := m.ConstantCircuit(); constant != nil {
		// A constant circuit is assumed to already be part of each
		// per-circuit representation, so its presence does not change which
		// circuit is executed below.
		// TODO: confirm with the toolkit owners whether it should be
		// prepended here instead.
		log := logger.Logger()
		log.Debug().Int("nbOps", constant.Len()).Msg("measurement has a constant circuit")
	}

	outBits := registers.Bit{}
	outFloats := registers.Float{}
	outComplexes := registers.Complex{}

	for _, circ := range m.Circuits() {
		bits, floats, cplxs, err := b.RunCircuit(circ)
		if err != nil {
			return nil, nil, nil, err
		}
		outBits.Merge(bits)
		outFloats.Merge(floats)
		outComplexes.Merge(cplxs)
	}
	return outBits, outFloats, outComplexes, nil
}

// RunMeasurement executes a measurement end to end and returns the result of
// its post-processing step unchanged.
func (b *Backend) RunMeasurement(m Measurement) (map[string]float64, error) {
	bits, floats, cplxs, err := b.RunMeasurementRegisters(m)
	if err != nil {
		return nil, err
	}
	return m.Evaluate(bits, floats, cplxs)
}

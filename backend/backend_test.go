package backend_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantsim/qlume/aqasm"
	"github.com/quantsim/qlume/backend"
	"github.com/quantsim/qlume/circuit"
	"github.com/quantsim/qlume/logger"
	"github.com/quantsim/qlume/measurement"
	"github.com/quantsim/qlume/registers"
	"github.com/quantsim/qlume/test"
)

// captureWarnings routes the global logger into a buffer for the duration of
// the test and returns a counter of emitted warnings.
func captureWarnings(t *testing.T) func() int {
	t.Helper()
	var buf bytes.Buffer
	logger.Set(zerolog.New(&buf))
	t.Cleanup(logger.Disable)
	return func() int {
		return strings.Count(buf.String(), `"level":"warn"`)
	}
}

func TestParseJobType(t *testing.T) {
	jt, err := backend.ParseJobType("SAMPLE")
	require.NoError(t, err)
	assert.Equal(t, backend.SampleJob, jt)

	jt, err = backend.ParseJobType("OBS")
	require.NoError(t, err)
	assert.Equal(t, backend.ObservableJob, jt)

	for _, s := range []string{"", "sample", "OBSERVABLE", "PSAMPLE"} {
		_, err := backend.ParseJobType(s)
		assert.Error(t, err, s)
	}
}

func TestNewValidJobTypes(t *testing.T) {
	for _, jt := range []backend.JobType{backend.SampleJob, backend.ObservableJob} {
		b, err := backend.New(backend.WithJobType(jt))
		require.NoError(t, err, jt)
		assert.Equal(t, jt, b.JobType())
	}
}

func TestNewInvalidJobType(t *testing.T) {
	_, err := backend.New(backend.WithJobType(backend.JobType(42)))
	require.Error(t, err)
}

func TestNewSampleIgnoresObservable(t *testing.T) {
	warnings := captureWarnings(t)

	engine := test.NewEngine([]bool{true})
	b, err := backend.New(
		backend.WithObservable(aqasm.PauliZMatrix()),
		backend.WithEngine(engine),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, warnings())

	_, _, _, err = b.RunCircuit(circuit.New())
	require.NoError(t, err)
	require.Len(t, engine.Jobs, 1)
	assert.Nil(t, engine.Jobs[0].Observable, "discarded matrix must never reach the engine")
}

func TestNewObservableSubstitutesZ(t *testing.T) {
	warnings := captureWarnings(t)

	engine := test.NewEngine([]bool{true, false})
	b, err := backend.New(
		backend.WithQubits(2),
		backend.WithJobType(backend.ObservableJob),
		backend.WithEngine(engine),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, warnings())

	_, _, _, err = b.RunCircuit(circuit.New())
	require.NoError(t, err)
	require.Len(t, engine.Jobs, 1)
	job := engine.Jobs[0]
	assert.Equal(t, backend.ObservableJob, job.Type)
	require.NotNil(t, job.Observable)
	assert.Equal(t, aqasm.PauliZMatrix(), job.Observable.Matrix)
	assert.Equal(t, 2, job.Observable.NbQubits)
}

func TestNewObservableNoWarningWithMatrix(t *testing.T) {
	warnings := captureWarnings(t)

	_, err := backend.New(
		backend.WithJobType(backend.ObservableJob),
		backend.WithObservable(aqasm.PauliZMatrix()),
	)
	require.NoError(t, err)
	assert.Equal(t, 0, warnings())
}

func TestRunCircuitNoDefinitions(t *testing.T) {
	engine := test.NewEngine([]bool{true, false}, []bool{false, false}, []bool{true, true})
	b, err := backend.New(
		backend.WithQubits(2),
		backend.WithShots(3),
		backend.WithEngine(engine),
	)
	require.NoError(t, err)

	bits, floats, cplxs, err := b.RunCircuit(circuit.New())
	require.NoError(t, err)

	want := registers.Bit{"ro": {{true, false}, {false, false}, {true, true}}}
	if diff := cmp.Diff(want, bits); diff != "" {
		t.Errorf("bit registers mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, floats)
	assert.Empty(t, cplxs)
}

func TestRunCircuitOutputRegisters(t *testing.T) {
	engine := test.NewEngine([]bool{true})
	b, err := backend.New(
		backend.WithShots(2),
		backend.WithEngine(engine),
	)
	require.NoError(t, err)

	c := circuit.New().Add(
		circuit.DefinitionBit{Name: "ro", Length: 1, IsOutput: true},
		circuit.DefinitionBit{Name: "scratch", Length: 3},
		circuit.DefinitionFloat{Name: "angles", Length: 2, IsOutput: true},
		circuit.DefinitionComplex{Name: "amps", Length: 1, IsOutput: true},
		circuit.PauliX{Qubit: 0},
		circuit.MeasureQubit{Qubit: 0, Readout: "ro", ReadoutIndex: 0},
	)

	bits, floats, cplxs, err := b.RunCircuit(c)
	require.NoError(t, err)

	// non-output definitions are bookkeeping only and never surface
	assert.NotContains(t, bits, "scratch")
	assert.Equal(t, [][]bool{{true}, {true}}, bits["ro"])

	// declared outputs are present even when nothing is written into them
	assert.Equal(t, registers.Float{"angles": {}}, floats)
	assert.Equal(t, registers.Complex{"amps": {}}, cplxs)
}

func TestRunCircuitZeroShotSentinel(t *testing.T) {
	engine := &test.Engine{
		Default: [][]bool{{false, false}, {true, true}},
	}
	b, err := backend.New(
		backend.WithQubits(2),
		backend.WithShots(0),
		backend.WithEngine(engine),
	)
	require.NoError(t, err)

	bits, _, _, err := b.RunCircuit(circuit.New())
	require.NoError(t, err)

	// the engine's own policy decides how many shots come back
	assert.Equal(t, [][]bool{{false, false}, {true, true}}, bits["ro"])
	require.Len(t, engine.Jobs, 1)
	assert.Equal(t, 0, engine.Jobs[0].NbShots)
}

func TestRunCircuitCompilerErrorPropagates(t *testing.T) {
	compileErr := errors.New("unsupported widget")
	b, err := backend.New(
		backend.WithCompiler(&test.Compiler{Err: compileErr}),
		backend.WithEngine(test.NewEngine()),
	)
	require.NoError(t, err)

	_, _, _, err = b.RunCircuit(circuit.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, compileErr))
}

func TestRunCircuitEngineErrorPropagates(t *testing.T) {
	submitErr := errors.New("queue unavailable")
	b, err := backend.New(
		backend.WithEngine(&test.Engine{Err: submitErr}),
	)
	require.NoError(t, err)

	_, _, _, err = b.RunCircuit(circuit.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, submitErr))
}

func TestRunCircuitNoEngine(t *testing.T) {
	b, err := backend.New()
	require.NoError(t, err)

	_, _, _, err = b.RunCircuit(circuit.New())
	assert.True(t, errors.Is(err, backend.ErrNoEngine))
}

func TestEngineFactoryResolvedOnFirstUse(t *testing.T) {
	built := 0
	factory := func() (backend.Engine, error) {
		built++
		return test.NewEngine([]bool{true}), nil
	}
	b, err := backend.New(backend.WithEngineFactory(factory))
	require.NoError(t, err)
	assert.Equal(t, 0, built, "factory must not run at construction")

	_, _, _, err = b.RunCircuit(circuit.New())
	require.NoError(t, err)
	_, _, _, err = b.RunCircuit(circuit.New())
	require.NoError(t, err)
	assert.Equal(t, 1, built, "engine is built once and reused")
}

// scriptedEngine serves a fixed response per submission, in order.
type scriptedEngine struct {
	responses [][][]bool
	calls     int
}

func (e *scriptedEngine) Submit(job backend.Job) ([]backend.Shot, error) {
	states := e.responses[e.calls]
	e.calls++
	shots := make([]backend.Shot, len(states))
	for i, s := range states {
		shots[i] = backend.Shot{State: s}
	}
	return shots, nil
}

func TestRunMeasurementRegistersOverwrite(t *testing.T) {
	engine := &scriptedEngine{responses: [][][]bool{
		{{true}},
		{{false}},
	}}
	b, err := backend.New(backend.WithEngine(engine))
	require.NoError(t, err)

	withRo := func() *circuit.Circuit {
		return circuit.New().Add(
			circuit.DefinitionBit{Name: "ro", Length: 1, IsOutput: true},
			circuit.MeasureQubit{Qubit: 0, Readout: "ro", ReadoutIndex: 0},
		)
	}
	m := measurement.New(withRo(), withRo())

	bits, _, _, err := b.RunMeasurementRegisters(m)
	require.NoError(t, err)

	// the second circuit's registers replace the first's entirely
	assert.Equal(t, [][]bool{{false}}, bits["ro"])
}

func TestRunMeasurementRegistersConstantCircuitUnused(t *testing.T) {
	compiler := &test.Compiler{}
	b, err := backend.New(
		backend.WithCompiler(compiler),
		backend.WithEngine(test.NewEngine()),
	)
	require.NoError(t, err)

	inner := circuit.New().Add(circuit.PauliX{Qubit: 0})
	constant := circuit.New().Add(circuit.Hadamard{Qubit: 0})
	m := measurement.New(inner).WithConstantCircuit(constant)

	_, _, _, err = b.RunMeasurementRegisters(m)
	require.NoError(t, err)

	// the constant circuit's presence does not change what is executed
	require.Len(t, compiler.Circuits, 1)
	assert.Same(t, inner, compiler.Circuits[0])
}

func TestRunMeasurementDelegatesToEvaluate(t *testing.T) {
	b, err := backend.New(
		backend.WithQubits(1),
		backend.WithShots(2),
		backend.WithEngine(test.NewEngine([]bool{true})),
	)
	require.NoError(t, err)

	var seen registers.Bit
	m := measurement.New(circuit.New()).WithEvaluate(
		func(bits registers.Bit, _ registers.Float, _ registers.Complex) (map[string]float64, error) {
			seen = bits
			return map[string]float64{"<Z0>": -0.5}, nil
		})

	got, err := b.RunMeasurement(m)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"<Z0>": -0.5}, got)
	assert.Equal(t, [][]bool{{true}, {true}}, seen["ro"])
}

func TestRunMeasurementNilEvaluate(t *testing.T) {
	b, err := backend.New(backend.WithEngine(test.NewEngine()))
	require.NoError(t, err)

	got, err := b.RunMeasurement(measurement.New(circuit.New()))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRunMeasurementEvaluateError(t *testing.T) {
	evalErr := errors.New("postprocessing failed")
	b, err := backend.New(backend.WithEngine(test.NewEngine()))
	require.NoError(t, err)

	m := measurement.New(circuit.New()).WithEvaluate(
		func(registers.Bit, registers.Float, registers.Complex) (map[string]float64, error) {
			return nil, evalErr
		})
	_, err = b.RunMeasurement(m)
	assert.True(t, errors.Is(err, evalErr))
}

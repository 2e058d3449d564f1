// Package backend implements the qlume execution adapter: it consumes
// circuits built with qlume/circuit, compiles them to vendor-native programs
// and submits those to an execution engine, marshalling per-shot results back
// into classical registers.
package backend

import (
	"errors"
	"fmt"

	"github.com/quantsim/qlume/aqasm"
	"github.com/quantsim/qlume/circuit"
	"github.com/quantsim/qlume/logger"
	"github.com/quantsim/qlume/registers"
)

// readoutRegister is the reserved register name the engine's qubit readout is
// reported under.
const readoutRegister = "ro"

// ErrNoEngine is returned when a backend without a configured engine or
// engine factory tries to execute a job.
var ErrNoEngine = errors.New("no execution engine configured")

// JobType selects how a compiled program is executed.
type JobType uint8

const (
	// SampleJob measures every qubit in the computational basis.
	SampleJob JobType = iota + 1
	// ObservableJob measures the expectation of a supplied operator.
	ObservableJob
)

// String returns the wire name of the job type.
func (t JobType) String() string {
	switch t {
	case SampleJob:
		return "SAMPLE"
	case ObservableJob:
		return "OBS"
	default:
		return "unknown"
	}
}

// ParseJobType parses the wire name of a job type.
func ParseJobType(s string) (JobType, error) {
	switch s {
	case "SAMPLE":
		return SampleJob, nil
	case "OBS":
		return ObservableJob, nil
	default:
		return 0, fmt.Errorf("job type is neither %q nor %q: %q", SampleJob, ObservableJob, s)
	}
}

// Job is one execution request handed to an engine.
type Job struct {
	Program  *aqasm.Program
	Type     JobType
	NbQubits int
	// NbShots is the requested number of repetitions. Zero delegates the
	// choice to the engine's own default shot policy.
	NbShots int
	// Observable is set for OBS jobs only.
	Observable *aqasm.Observable
	// Aggregate requests a distribution instead of per-shot data. The adapter
	// always needs per-shot data and leaves it false.
	Aggregate bool
}

// Shot is the outcome of one repetition of a program.
type Shot struct {
	// State holds the computational basis outcome of every qubit.
	State []bool
	// Probability is the weight engines attach to a state when running under
	// their default shot policy; informational for the adapter.
	Probability float64
}

// Compiler translates a circuit into a vendor-native program.
type Compiler interface {
	Compile(c *circuit.Circuit, nbQubits int) (*aqasm.Program, error)
}

// CompilerFunc adapts a plain function to the Compiler interface.
type CompilerFunc func(c *circuit.Circuit, nbQubits int) (*aqasm.Program, error)

func (f CompilerFunc) Compile(c *circuit.Circuit, nbQubits int) (*aqasm.Program, error) {
	return f(c, nbQubits)
}

// Engine runs jobs on a simulator or a hardware queue and returns per-shot
// outcomes.
type Engine interface {
	Submit(job Job) ([]Shot, error)
}

// EngineFactory builds an engine on first use when none was configured
// explicitly.
type EngineFactory func() (Engine, error)

// Measurement is an ordered collection of circuits sharing an optional
// constant prefix circuit, plus a post-processing step turning raw registers
// into named expectation values.
type Measurement interface {
	// ConstantCircuit returns the shared prefix circuit, or nil.
	ConstantCircuit() *circuit.Circuit
	// Circuits returns the measurement's circuits in execution order.
	Circuits() []*circuit.Circuit
	// Evaluate post-processes the merged registers of all circuits. A nil map
	// is a valid result.
	Evaluate(bits registers.Bit, floats registers.Float, cplxs registers.Complex) (map[string]float64, error)
}

// Backend executes qlume circuits on an AQASM-style execution stack. Its
// configuration is fixed at construction.
type Backend struct {
	nbQubits   int
	nbShots    int
	device     *Device
	jobType    JobType
	observable *aqasm.Observable
	compiler   Compiler
	engine     Engine
	newEngine  EngineFactory
}

// New builds a backend from the given options. The zero configuration is a
// single-qubit, single-shot SAMPLE backend.
//
// A SAMPLE backend configured with an observable matrix drops the matrix with
// a warning; an OBS backend configured without one substitutes the
// single-qubit Z observable, also with a warning. An invalid job type fails
// construction.
func New(opts ...Option) (*Backend, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	log := logger.Logger()

	b := &Backend{
		nbQubits:  cfg.nbQubits,
		nbShots:   cfg.nbShots,
		device:    cfg.device,
		jobType:   cfg.jobType,
		compiler:  cfg.compiler,
		engine:    cfg.engine,
		newEngine: cfg.newEngine,
	}

	switch cfg.jobType {
	case SampleJob:
		if cfg.observable != nil {
			log.Warn().Msg("SAMPLE job type given, ignoring the observable matrix")
		}
	case ObservableJob:
		matrix := cfg.observable
		if matrix == nil {
			log.Warn().Msg("OBS job type given without observable matrix, using Z on all qubits")
			matrix = aqasm.PauliZMatrix()
		}
		obs, err := aqasm.NewObservable(cfg.nbQubits, matrix)
		if err != nil {
			return nil, fmt.Errorf("building observable: %w", err)
		}
		b.observable = obs
	default:
		return nil, fmt.Errorf("job type is neither %q nor %q: %d", SampleJob, ObservableJob, cfg.jobType)
	}

	if b.device != nil {
		log.Debug().Str("device", b.device.Name).Int("nbQubits", b.nbQubits).
			Stringer("jobType", b.jobType).Msg("backend configured")
	}
	return b, nil
}

// NbQubits returns the size of the backend's qubit register.
func (b *Backend) NbQubits() int { return b.nbQubits }

// NbShots returns the configured shot count; zero means the engine decides.
func (b *Backend) NbShots() int { return b.nbShots }

// JobType returns the configured execution mode.
func (b *Backend) JobType() JobType { return b.jobType }

// resolveEngine returns the configured engine, building it through the
// factory on first use.
func (b *Backend) resolveEngine() (Engine, error) {
	if b.engine != nil {
		return b.engine, nil
	}
	if b.newEngine == nil {
		return nil, ErrNoEngine
	}
	engine, err := b.newEngine()
	if err != nil {
		return nil, fmt.Errorf("building execution engine: %w", err)
	}
	b.engine = engine
	return engine, nil
}

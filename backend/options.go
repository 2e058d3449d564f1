package backend

import (
	"fmt"

	"github.com/quantsim/qlume/aqasm"
)

// Option alters the backend configuration in New. See the With* functions.
type Option func(*config) error

type config struct {
	nbQubits   int
	nbShots    int
	device     *Device
	jobType    JobType
	observable aqasm.Matrix
	compiler   Compiler
	engine     Engine
	newEngine  EngineFactory
}

// newConfig returns the default configuration with the given options applied.
func newConfig(opts ...Option) (config, error) {
	cfg := config{
		nbQubits: 1,
		nbShots:  1,
		jobType:  SampleJob,
		compiler: CompilerFunc(aqasm.Compile),
	}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return config{}, err
		}
	}
	return cfg, nil
}

// WithQubits sets the size of the qubit register.
func WithQubits(n int) Option {
	return func(cfg *config) error {
		if n < 1 {
			return fmt.Errorf("backend needs at least one qubit, got %d", n)
		}
		cfg.nbQubits = n
		return nil
	}
}

// WithShots sets the number of measurement repetitions. Zero delegates the
// shot count to the execution engine's own default policy.
func WithShots(n int) Option {
	return func(cfg *config) error {
		if n < 0 {
			return fmt.Errorf("shot count must not be negative, got %d", n)
		}
		cfg.nbShots = n
		return nil
	}
}

// WithDevice attaches a target device description. The adapter forwards it to
// the engine and does not interpret it.
func WithDevice(d *Device) Option {
	return func(cfg *config) error {
		cfg.device = d
		return nil
	}
}

// WithJobType sets the execution mode.
func WithJobType(t JobType) Option {
	return func(cfg *config) error {
		if t != SampleJob && t != ObservableJob {
			return fmt.Errorf("job type is neither %q nor %q: %d", SampleJob, ObservableJob, t)
		}
		cfg.jobType = t
		return nil
	}
}

// WithObservable sets the operator matrix measured by OBS jobs.
func WithObservable(m aqasm.Matrix) Option {
	return func(cfg *config) error {
		cfg.observable = m
		return nil
	}
}

// WithCompiler replaces the default circuit compiler.
func WithCompiler(c Compiler) Option {
	return func(cfg *config) error {
		if c == nil {
			return fmt.Errorf("compiler must not be nil")
		}
		cfg.compiler = c
		return nil
	}
}

// WithEngine sets the execution engine jobs are submitted to.
func WithEngine(e Engine) Option {
	return func(cfg *config) error {
		if e == nil {
			return fmt.Errorf("engine must not be nil")
		}
		cfg.engine = e
		return nil
	}
}

// WithEngineFactory defers engine construction to first use. Ignored when an
// engine is set explicitly.
func WithEngineFactory(f EngineFactory) Option {
	return func(cfg *config) error {
		if f == nil {
			return fmt.Errorf("engine factory must not be nil")
		}
		cfg.newEngine = f
		return nil
	}
}

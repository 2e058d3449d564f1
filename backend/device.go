package backend

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Device describes the target hardware or simulator topology. The adapter
// only records and forwards it; interpretation is left to the engine.
type Device struct {
	Name     string `koanf:"name"`
	NbQubits int    `koanf:"nb_qubits"`
	// MaxShots is the largest shot count the device authorises; zero means
	// unbounded.
	MaxShots int `koanf:"max_shots"`
	// Connectivity lists the qubit pairs supporting two-qubit gates. Empty
	// means all-to-all.
	Connectivity [][]int `koanf:"connectivity"`
}

// LoadDevice reads a device description from a YAML file.
func LoadDevice(path string) (*Device, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("reading device description %s: %w", path, err)
	}
	var d Device
	if err := k.Unmarshal("", &d); err != nil {
		return nil, fmt.Errorf("decoding device description %s: %w", path, err)
	}
	return &d, nil
}

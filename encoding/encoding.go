// Package encoding offers (de)serialization APIs for qlume objects: compiled
// programs and run results. It uses CBOR with a small version header.
package encoding

import (
	"errors"
	"fmt"
	"io"

	"github.com/blang/semver/v4"
	"github.com/fxamacker/cbor/v2"

	"github.com/quantsim/qlume"
	"github.com/quantsim/qlume/aqasm"
	"github.com/quantsim/qlume/logger"
)

var errInvalidKind = errors.New("trying to deserialize an object serialized as another kind")

// kind tags the payload following the header.
type kind uint8

const (
	programKind kind = iota + 1
	resultKind
)

// header precedes every serialized object.
type header struct {
	Version string
	Kind    kind
}

// writeHeader encodes the version header for the given payload kind.
func writeHeader(enc *cbor.Encoder, k kind) error {
	return enc.Encode(header{Version: qlume.Version.String(), Kind: k})
}

// checkHeader decodes and validates a header against the expected payload
// kind. A version mismatch only warns; there are no compatibility guarantees
// across versions.
func checkHeader(dec *cbor.Decoder, expected kind) error {
	var h header
	if err := dec.Decode(&h); err != nil {
		return fmt.Errorf("decoding header: %w", err)
	}
	if h.Kind != expected {
		return errInvalidKind
	}
	objectVersion, err := semver.Parse(h.Version)
	if err != nil {
		return fmt.Errorf("when parsing object version: %w", err)
	}
	if qlume.Version.Compare(objectVersion) != 0 {
		log := logger.Logger()
		log.Warn().Str("binary", qlume.Version.String()).Str("object", objectVersion.String()).
			Msg("qlume version (binary) mismatch with serialized object. there are no guarantees on compatibility")
	}
	return nil
}

// SerializeProgram writes a compiled program into the provided writer.
func SerializeProgram(w io.Writer, p *aqasm.Program) error {
	enc := cbor.NewEncoder(w)
	if err := writeHeader(enc, programKind); err != nil {
		return err
	}
	return enc.Encode(p)
}

// DeserializeProgram reads a compiled program from the provided reader.
func DeserializeProgram(r io.Reader) (*aqasm.Program, error) {
	dec := cbor.NewDecoder(r)
	if err := checkHeader(dec, programKind); err != nil {
		return nil, err
	}
	var p aqasm.Program
	if err := dec.Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

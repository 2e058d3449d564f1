// Package qlume provides a translation layer between a local quantum circuit
// representation and AQASM-style execution stacks.
//
// qlume ships three pieces:
//   - a circuit intermediate representation (qlume/circuit)
//   - a compiler from that representation to a vendor-native program (qlume/aqasm)
//   - a backend adapter that submits compiled programs to an execution engine
//     and marshals per-shot results into classical registers (qlume/backend)
package qlume

import (
	"github.com/blang/semver/v4"
)

var Version = semver.MustParse("0.1.0")

// Package test provides doubles and assertion helpers for exercising qlume
// backends without a vendor execution stack.
package test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quantsim/qlume/registers"
)

// Assert is a helper to test backends
type Assert struct {
	t *testing.T
	*require.Assertions
}

// NewAssert returns an Assert helper embedding a testify/require object for convenience
func NewAssert(t *testing.T) *Assert {
	return &Assert{t: t, Assertions: require.New(t)}
}

// Readout returns the reserved "ro" register from a bit dictionary, failing
// the test if it is missing.
func (a *Assert) Readout(bits registers.Bit) [][]bool {
	a.t.Helper()
	shots, ok := bits["ro"]
	a.True(ok, "bit registers have no \"ro\" readout")
	return shots
}

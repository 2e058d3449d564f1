// Package registers holds the classical register dictionaries produced by
// circuit execution.
//
// Each dictionary maps a register name to per-shot values: the outer slice is
// indexed by shot, the inner slice by position within the register.
package registers

// Bit maps a register name to per-shot bit readouts.
type Bit map[string][][]bool

// Float maps a register name to per-shot float values.
type Float map[string][][]float64

// Complex maps a register name to per-shot complex values.
type Complex map[string][][]complex128

// Merge copies every register of other into r. On name collision the entry
// from other replaces the existing one entirely; values are never
// concatenated across circuits.
func (r Bit) Merge(other Bit) {
	for name, values := range other {
		r[name] = values
	}
}

// Merge copies every register of other into r, replacing colliding names.
func (r Float) Merge(other Float) {
	for name, values := range other {
		r[name] = values
	}
}

// Merge copies every register of other into r, replacing colliding names.
func (r Complex) Merge(other Complex) {
	for name, values := range other {
		r[name] = values
	}
}

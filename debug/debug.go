// Package debug exposes the "debug" build tag as a constant; components log
// more and keep logging under go test when it is set.
package debug

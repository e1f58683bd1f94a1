//go:build debug

// Package debug includes debugging helpers used by the tree and node
// packages to assert internal invariants during development.
package debug

import "fmt"

// Enabled is true when the compiler is being built with the debug tag.
const Enabled = true

// Assert panics if cond is false, but only in debug builds.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Errorf("goart: internal assertion failed: "+format, args...))
	}
}

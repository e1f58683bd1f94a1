//go:build !debug

package debug

// Enabled is false in release builds; Assert below compiles away to nothing.
const Enabled = false

// Assert is a no-op outside of debug builds.
func Assert(cond bool, format string, args ...any) {}

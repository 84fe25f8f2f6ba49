package paramstring

import (
	"fmt"
	"sync"
	"sync/atomic"
)

var (
	builtinDefaults = Delimiters{Open: "{", Close: "}", Escape: "!"}

	defaultsMu sync.Mutex
	defaults   atomic.Pointer[Delimiters]
)

func init() {
	ResetDefaultDelimiters()
}

// DefaultDelimiters returns the delimiters used by Parse and New
// for tokens the caller does not set.
func DefaultDelimiters() Delimiters {
	return *defaults.Load()
}

// SetDefaultDelimiters replaces the tokens named by opts in the
// process-wide defaults; other tokens keep their current value.
// Templates parsed earlier keep the delimiters they were parsed
// with. Options other than delimiter options are ignored.
func SetDefaultDelimiters(opts ...Option) error {
	const errCtx = "setting default delimiters"

	defaultsMu.Lock()
	defer defaultsMu.Unlock()

	cfg := newConfig(opts)

	de := cfg.delimiters(*defaults.Load())
	if err := de.Validate(); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	defaults.Store(&de)

	return nil
}

// ResetDefaultDelimiters restores the built-in defaults
// "{", "}" and "!".
func ResetDefaultDelimiters() {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()

	de := builtinDefaults
	defaults.Store(&de)
}

package paramstring

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// ErrUnknownParameter marks an update naming a parameter the
// template does not have.
var ErrUnknownParameter = errors.New("unknown parameter")

// Diagnostic is a non-fatal problem found while binding values.
type Diagnostic struct {
	Param string
	Err   error
}

func (dg Diagnostic) Error() string {
	return fmt.Sprintf("%s: %q", dg.Err, dg.Param)
}

func (dg Diagnostic) Unwrap() error {
	return dg.Err
}

// Diagnostics lists the problems reported by one update.
type Diagnostics []Diagnostic

// Err combines the diagnostics into a single error, or returns
// nil when there are none.
func (ds Diagnostics) Err() error {
	var err error

	for _, dg := range ds {
		err = multierr.Append(err, dg)
	}

	return err
}

func unknownParameter(name string) Diagnostic {
	return Diagnostic{Param: name, Err: ErrUnknownParameter}
}

package paramstring

import (
	"errors"
	"fmt"
)

// ErrEmptyDelimiter is returned when any of the open, close or
// escape tokens is empty.
var ErrEmptyDelimiter = errors.New("empty delimiter")

// Delimiters holds the tokens that open and close a
// placeholder, and the token that escapes one.
type Delimiters struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Escape string `json:"escape"`
}

// NewDelimiters validates and returns a delimiter set. The
// tokens may be equal to or overlap one another.
func NewDelimiters(
	open string,
	closeTok string,
	escape string,
) (Delimiters, error) {
	de := Delimiters{Open: open, Close: closeTok, Escape: escape}

	if err := de.Validate(); err != nil {
		return Delimiters{}, err
	}

	return de, nil
}

// Validate reports ErrEmptyDelimiter if any token is empty.
func (de Delimiters) Validate() error {
	if de.Open == "" || de.Close == "" || de.Escape == "" {
		return fmt.Errorf(
			"%w: open=%q close=%q escape=%q",
			ErrEmptyDelimiter, de.Open, de.Close, de.Escape,
		)
	}

	return nil
}

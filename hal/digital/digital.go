// Package digital defines the error classification for digital I/O pins.
package digital

import "errors"

// ErrorKind is a stable classification for digital I/O failures.
// It implements error so it can terminate a cause chain.
type ErrorKind uint8

const (
	// Other covers failures with no more specific classification.
	Other ErrorKind = iota
)

func (k ErrorKind) String() string {
	switch k {
	case Other:
		return "other digital error"
	default:
		return "unknown digital error"
	}
}

func (k ErrorKind) Error() string { return k.String() }

// Error is implemented by digital I/O error types that can classify
// themselves.
type Error interface {
	error
	Kind() ErrorKind
}

// Of extracts a classification from anywhere in an error chain,
// defaulting to Other.
func Of(err error) ErrorKind {
	var k ErrorKind
	if errors.As(err, &k) {
		return k
	}
	var e Error
	if errors.As(err, &e) {
		return e.Kind()
	}
	return Other
}

// ------------------------
// Pin operations
// ------------------------

// OutputPin drives a single digital output.
type OutputPin interface {
	SetHigh() error
	SetLow() error
}

// InputPin reads a single digital input.
type InputPin interface {
	IsHigh() (bool, error)
	IsLow() (bool, error)
}

// StatefulOutputPin can read back its own latched output level.
type StatefulOutputPin interface {
	OutputPin
	IsSetHigh() (bool, error)
	IsSetLow() (bool, error)
}

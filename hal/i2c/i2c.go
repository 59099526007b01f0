// Package i2c defines the error classification for I²C transactions.
//
// The package carries no bus implementation of its own; transactions run
// through tinygo.org/x/drivers.I2C-shaped buses (see x/driversx for the
// classifying bridge).
package i2c

import "errors"

// ErrorKind is a stable classification for I²C failures.
// It implements error so it can terminate a cause chain.
type ErrorKind uint8

const (
	// Bus covers misplaced start/stop conditions and similar bus faults.
	Bus ErrorKind = iota
	// ArbitrationLoss means the controller lost arbitration mid-transaction.
	ArbitrationLoss
	// NoAcknowledge means the target did not acknowledge an address or byte.
	NoAcknowledge
	// Overrun means data was lost because it was not read in time.
	Overrun
	// Other covers failures with no more specific classification.
	Other
)

func (k ErrorKind) String() string {
	switch k {
	case Bus:
		return "bus error"
	case ArbitrationLoss:
		return "arbitration lost"
	case NoAcknowledge:
		return "no acknowledge"
	case Overrun:
		return "overrun"
	case Other:
		return "other i2c error"
	default:
		return "unknown i2c error"
	}
}

func (k ErrorKind) Error() string { return k.String() }

// Error is implemented by I²C error types that can classify themselves.
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

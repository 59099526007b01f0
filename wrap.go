package halwrap

import (
	"fmt"

	"halwrap/hal/can"
	"halwrap/hal/digital"
	"halwrap/hal/i2c"
	halio "halwrap/hal/io"
	"halwrap/hal/pwm"
	"halwrap/hal/serial"
	"halwrap/hal/spi"
)

// Classified is the capability a peripheral error must provide to be
// wrapped: it is an error that can report its own classification.
type Classified[K error] interface {
	error
	Kind() K
}

// Error pairs a peripheral error with the classification it reported at
// wrap time. The classification is captured exactly once; wrapping never
// re-queries it.
//
// Error participates in the standard error chain: Unwrap returns the
// stored kind, so a composed driver error that wraps an *Error always walks
// driver → *Error → kind → nil, whichever peripheral family produced the
// failure. Rendering delegates to the inner error; the kind is visible only
// through the chain, never printed twice.
type Error[E error, K error] struct {
	inner E
	kind  K
}

// Wrap captures inner's classification and returns the adapter. It never
// fails and has no side effects. The kind parameter K must be named when the
// call site passes a concrete error type, e.g.
// Wrap[digital.ErrorKind](pinErr); the per-family constructors below spare
// callers that spelling.
func Wrap[K error, E Classified[K]](inner E) *Error[E, K] {
	return &Error[E, K]{inner: inner, kind: inner.Kind()}
}

// Error renders the inner error unchanged.
func (e *Error[E, K]) Error() string { return e.inner.Error() }

// GoString renders the inner error's debug form unchanged.
func (e *Error[E, K]) GoString() string { return fmt.Sprintf("%#v", e.inner) }

// Unwrap exposes the stored kind as the reportable cause. Kinds implement
// error and unwrap no further, so the chain ends one hop below the adapter.
func (e *Error[E, K]) Unwrap() error { return e.kind }

// Kind returns the classification captured at wrap time.
func (e *Error[E, K]) Kind() K { return e.kind }

// Inner returns the wrapped error as stored. For pointer-typed errors this
// is the same object that was wrapped, so reads and writes through it reach
// the original value.
func (e *Error[E, K]) Inner() E { return e.inner }

// ------------------------
// One conversion per peripheral family
// ------------------------

// Digital wraps a digital I/O error.
func Digital[E digital.Error](err E) *Error[E, digital.ErrorKind] {
	return Wrap[digital.ErrorKind](err)
}

// I2C wraps an I²C error.
func I2C[E i2c.Error](err E) *Error[E, i2c.ErrorKind] {
	return Wrap[i2c.ErrorKind](err)
}

// SPI wraps an SPI error.
func SPI[E spi.Error](err E) *Error[E, spi.ErrorKind] {
	return Wrap[spi.ErrorKind](err)
}

// PWM wraps a PWM error.
func PWM[E pwm.Error](err E) *Error[E, pwm.ErrorKind] {
	return Wrap[pwm.ErrorKind](err)
}

// CAN wraps a CAN bus error.
func CAN[E can.Error](err E) *Error[E, can.ErrorKind] {
	return Wrap[can.ErrorKind](err)
}

// Serial wraps a non-blocking serial error.
func Serial[E serial.Error](err E) *Error[E, serial.ErrorKind] {
	return Wrap[serial.ErrorKind](err)
}

// IO wraps a generic I/O error.
func IO[E halio.Error](err E) *Error[E, halio.ErrorKind] {
	return Wrap[halio.ErrorKind](err)
}

// Package halwrap adapts peripheral errors into the standard error chain.
//
// Peripheral error families (hal/digital, hal/i2c, hal/spi, hal/pwm,
// hal/can, hal/serial, hal/io) each expose a classification enum and an
// Error interface, but a classified error alone gives generic tooling no
// way to reach the classification. Wrap pairs the error with its kind so
// errors.Unwrap, errors.Is and errors.As see the kind as the error's cause:
//
//	if perr := pin.SetHigh(); perr != nil { // perr is a *PinError
//	    return fmt.Errorf("drive pin: %w", halwrap.Digital(perr))
//	}
//
//	var kind digital.ErrorKind
//	if errors.As(err, &kind) {
//	    // kind == digital.Other
//	}
//
// The chain below a wrapped error is always exactly two hops: the adapter,
// then the kind, then nothing.
package halwrap

// Package pwm defines the error classification for PWM outputs.
package pwm

import (
	"errors"

	"halwrap/x/mathx"
)

// ErrorKind is a stable classification for PWM failures.
// It implements error so it can terminate a cause chain.
type ErrorKind uint8

const (
	// Other covers failures with no more specific classification.
	Other ErrorKind = iota
)

func (k ErrorKind) String() string {
	switch k {
	case Other:
		return "other pwm error"
	default:
		return "unknown pwm error"
	}
}

func (k ErrorKind) Error() string { return k.String() }

// Error is implemented by PWM error types that can classify themselves.
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

// Output is a single PWM channel.
type Output interface {
	// MaxDutyCycle is the duty value that produces a 100% duty cycle.
	MaxDutyCycle() uint16
	// SetDutyCycle sets the duty to duty/MaxDutyCycle().
	SetDutyCycle(duty uint16) error
}

// SetDutyFraction sets out to num/denom of full scale. The computed duty is
// clamped to [0, MaxDutyCycle]; a zero denom clamps to full scale. The
// product is widened to 64 bits so large numerators cannot overflow.
func SetDutyFraction(out Output, num, denom uint32) error {
	max := uint64(out.MaxDutyCycle())
	duty := max
	if denom != 0 {
		duty = mathx.Clamp(max*uint64(num)/uint64(denom), 0, max)
	}
	return out.SetDutyCycle(uint16(duty))
}

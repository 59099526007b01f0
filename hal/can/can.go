// Package can defines the error classification for CAN bus controllers.
package can

import "errors"

// ErrorKind is a stable classification for CAN failures.
// It implements error so it can terminate a cause chain.
type ErrorKind uint8

const (
	// Overrun means a received frame was lost before it was read.
	Overrun ErrorKind = iota
	// Acknowledge means no node acknowledged a transmitted frame.
	Acknowledge
	// Stuff means a bit stuffing violation was seen on the bus.
	Stuff
	// Form means a fixed-form bit field held an illegal value.
	Form
	// Crc means a frame checksum did not match.
	Crc
	// Bit means the controller read back a different bit than it drove.
	Bit
	// Other covers failures with no more specific classification.
	Other
)

func (k ErrorKind) String() string {
	switch k {
	case Overrun:
		return "overrun"
	case Acknowledge:
		return "acknowledge error"
	case Stuff:
		return "bit stuffing error"
	case Form:
		return "form error"
	case Crc:
		return "crc mismatch"
	case Bit:
		return "bit error"
	case Other:
		return "other can error"
	default:
		return "unknown can error"
	}
}

func (k ErrorKind) Error() string { return k.String() }

// Error is implemented by CAN error types that can classify themselves.
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

// Frame is a classic CAN data frame.
type Frame struct {
	ID   uint32
	Len  uint8
	Data [8]byte
}

// Transmitter queues frames for transmission.
type Transmitter interface {
	Transmit(f Frame) error
}

// Receiver yields received frames.
type Receiver interface {
	Receive() (Frame, error)
}

// Package serial defines the error classification for non-blocking serial
// ports.
package serial

import "errors"

// ErrWouldBlock reports that a non-blocking operation had no data or buffer
// space ready. It is a control-flow signal, not a classified failure.
var ErrWouldBlock = errors.New("would block")

// ErrorKind is a stable classification for serial failures.
// It implements error so it can terminate a cause chain.
type ErrorKind uint8

const (
	// Overrun means received data was lost before it was read.
	Overrun ErrorKind = iota
	// Parity means a received word failed its parity check.
	Parity
	// FrameFormat means a start/stop bit was malformed.
	FrameFormat
	// Noise means the line was noisy during reception.
	Noise
	// Other covers failures with no more specific classification.
	Other
)

func (k ErrorKind) String() string {
	switch k {
	case Overrun:
		return "overrun"
	case Parity:
		return "parity error"
	case FrameFormat:
		return "frame format error"
	case Noise:
		return "noise error"
	case Other:
		return "other serial error"
	default:
		return "unknown serial error"
	}
}

func (k ErrorKind) Error() string { return k.String() }

// Error is implemented by serial error types that can classify themselves.
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

// Port is a byte-oriented non-blocking serial port. Read and write return
// ErrWouldBlock when nothing can be moved right now.
type Port interface {
	ReadByte() (byte, error)
	WriteByte(b byte) error
	// Buffered reports bytes waiting in the receive buffer.
	Buffered() int
	// Flush blocks until queued output has been transmitted.
	Flush() error
}

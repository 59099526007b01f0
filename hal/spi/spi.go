// Package spi defines the error classification for SPI transfers.
package spi

import "errors"

// ErrorKind is a stable classification for SPI failures.
// It implements error so it can terminate a cause chain.
type ErrorKind uint8

const (
	// Overrun means received data was lost before it was read.
	Overrun ErrorKind = iota
	// ModeFault means multiple devices tried to drive the bus.
	ModeFault
	// FrameFormat means a frame did not match the configured format.
	FrameFormat
	// ChipSelectFault means the peripheral's chip-select line misbehaved.
	ChipSelectFault
	// Other covers failures with no more specific classification.
	Other
)

func (k ErrorKind) String() string {
	switch k {
	case Overrun:
		return "overrun"
	case ModeFault:
		return "mode fault"
	case FrameFormat:
		return "frame format error"
	case ChipSelectFault:
		return "chip select fault"
	case Other:
		return "other spi error"
	default:
		return "unknown spi error"
	}
}

func (k ErrorKind) Error() string { return k.String() }

// Error is implemented by SPI error types that can classify themselves.
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

// Bus performs full-duplex transfers. w and r may share length; a nil r
// discards received bytes.
type Bus interface {
	Transfer(w, r []byte) error
}

// Package io defines the error classification for generic byte I/O.
// Stream operations themselves use the standard library io interfaces; this
// package only supplies the classification layer.
package io

import "errors"

// ErrorKind is a stable classification for generic I/O failures.
// It implements error so it can terminate a cause chain.
type ErrorKind uint8

const (
	// Other covers failures with no more specific classification.
	Other ErrorKind = iota
	// NotFound means the target entity does not exist.
	NotFound
	// PermissionDenied means the operation was rejected for lack of rights.
	PermissionDenied
	// BrokenPipe means the other end of a connection went away.
	BrokenPipe
	// AlreadyExists means the entity to be created already exists.
	AlreadyExists
	// InvalidInput means a parameter was wrong for the operation.
	InvalidInput
	// InvalidData means the consumed data was malformed.
	InvalidData
	// TimedOut means the operation's deadline expired.
	TimedOut
	// Interrupted means the operation was interrupted and may be retried.
	Interrupted
	// Unsupported means the operation is not available on this target.
	Unsupported
	// OutOfMemory means an allocation failed.
	OutOfMemory
	// WriteZero means a write made no progress where progress was required.
	WriteZero
)

func (k ErrorKind) String() string {
	switch k {
	case NotFound:
		return "entity not found"
	case PermissionDenied:
		return "permission denied"
	case BrokenPipe:
		return "broken pipe"
	case AlreadyExists:
		return "entity already exists"
	case InvalidInput:
		return "invalid input parameter"
	case InvalidData:
		return "invalid data"
	case TimedOut:
		return "timed out"
	case Interrupted:
		return "operation interrupted"
	case Unsupported:
		return "unsupported"
	case OutOfMemory:
		return "out of memory"
	case WriteZero:
		return "zero-length write"
	case Other:
		return "other i/o error"
	default:
		return "unknown i/o error"
	}
}

func (k ErrorKind) Error() string { return k.String() }

// Error is implemented by I/O error types that can classify themselves.
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

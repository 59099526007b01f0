// cmd/selftest/main.go
//
// Host-runnable check that a composed driver error walks down to its
// classification: driver → adapter → kind → nothing.
package main

import (
	"errors"
	"fmt"
	"os"

	"halwrap"
	"halwrap/hal/digital"
)

// stuckPin fails to drive high, as a wedged open-drain line would.
type stuckPin struct{}

type stuckPinError struct{}

func (stuckPinError) Error() string           { return "pin stuck low" }
func (stuckPinError) Kind() digital.ErrorKind { return digital.Other }

func (*stuckPin) SetHigh() error { return stuckPinError{} }
func (*stuckPin) SetLow() error  { return nil }

func blink(p digital.OutputPin) error {
	if err := p.SetHigh(); err != nil {
		var derr digital.Error
		if errors.As(err, &derr) {
			return fmt.Errorf("blink: %w", halwrap.Digital(derr))
		}
		return fmt.Errorf("blink: %w", err)
	}
	return p.SetLow()
}

func main() {
	err := blink(&stuckPin{})
	if err == nil {
		fmt.Println("selftest: expected blink to fail")
		os.Exit(1)
	}

	fmt.Printf("top: %v\n", err)
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		fmt.Printf("  cause: %v\n", cause)
	}

	var kind digital.ErrorKind
	if !errors.As(err, &kind) || kind != digital.Other {
		fmt.Println("selftest: classification not recoverable from chain")
		os.Exit(1)
	}
	fmt.Println("selftest: ok")
}

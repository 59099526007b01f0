// Package driversx bridges tinygo.org/x/drivers buses into the classified
// error families.
package driversx

import (
	"fmt"
	"strings"

	"tinygo.org/x/drivers"

	"halwrap/hal/i2c"
)

// TxError is a failed I²C transaction with its classification attached.
type TxError struct {
	Addr uint16
	Err  error
	kind i2c.ErrorKind
}

// NewTxError classifies err and records the target address.
func NewTxError(addr uint16, err error) *TxError {
	return &TxError{Addr: addr, Err: err, kind: ClassifyI2C(err)}
}

func (e *TxError) Error() string {
	return fmt.Sprintf("i2c tx addr=0x%02x: %v", e.Addr, e.Err)
}

func (e *TxError) Kind() i2c.ErrorKind { return e.kind }

func (e *TxError) Unwrap() error { return e.Err }

// ClassifyI2C maps a raw driver error to an I²C classification by message
// heuristics. Extend per platform; unknown errors classify as Other.
func ClassifyI2C(err error) i2c.ErrorKind {
	if err == nil {
		return i2c.Other
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "arbitration"):
		return i2c.ArbitrationLoss
	case strings.Contains(msg, "nack"),
		strings.Contains(msg, "no ack"),
		strings.Contains(msg, "not acknowledge"):
		return i2c.NoAcknowledge
	case strings.Contains(msg, "overrun"):
		return i2c.Overrun
	case strings.Contains(msg, "bus"):
		return i2c.Bus
	}
	return i2c.Other
}

// I2CBus wraps a TinyGo driver bus so failed transactions come back as
// *TxError. The Tx signature matches drivers.I2C, so an *I2CBus can be
// handed to TinyGo device drivers unchanged.
type I2CBus struct {
	bus drivers.I2C
}

func NewI2CBus(bus drivers.I2C) *I2CBus { return &I2CBus{bus: bus} }

func (b *I2CBus) Tx(addr uint16, w, r []byte) error {
	if err := b.bus.Tx(addr, w, r); err != nil {
		return NewTxError(addr, err)
	}
	return nil
}

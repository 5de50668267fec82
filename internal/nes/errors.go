package nes

import (
	"errors"
	"fmt"
)

var (
	// cartridge loading
	ErrInvalidFormat     = errors.New("invalid iNES format")
	ErrUnsupportedMapper = errors.New("unsupported mapper")

	// register and memory protocol
	ErrWriteOnly = errors.New("read of write-only register")
	ErrReadOnly  = errors.New("write of read-only register")
	ErrROMWrite  = errors.New("write to ROM")

	// ErrJammed is returned once the CPU executed one of the JAM opcodes.
	// Only a reset brings it back.
	ErrJammed = errors.New("cpu jammed")
)

// Fault describes an access that broke the bus protocol.
// The access itself is dropped, the emulation keeps going and
// the caller decides whether it should stop.
type Fault struct {
	Op   string // "read" or "write"
	Addr uint16
	Err  error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s $%04X: %s", f.Op, f.Addr, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}

package cpu

import (
	"errors"

	"github.com/sis16/svm/translate"
)

var f = translate.From

var (
	// Construction errors
	ErrInvalidImageSize = errors.New(f("rom image must be exactly 65535 (0xFFFF) bytes"))
	ErrConfig           = errors.New(f("invalid configuration"))
	ErrTable            = errors.New(f("invalid control table"))

	// Pulse errors
	ErrIllegalWrite  = errors.New(f("illegal write to rom"))
	ErrUnmapped      = errors.New(f("unmapped address"))
	ErrUnknownOpcode = errors.New(f("unknown opcode"))
	ErrHalted        = errors.New(f("halted"))
	ErrPort          = errors.New(f("port"))
)

// ErrImageSize reports the length of a rejected image.
type ErrImageSize int

func (err ErrImageSize) Error() string {
	return f("image is %v bytes", int(err))
}

// ErrAddress reports the bus address of a memory fault.
type ErrAddress uint16

func (err ErrAddress) Error() string {
	return f("address 0x%04x", uint16(err))
}

// ErrOpcode reports the opcode held in the instruction register.
type ErrOpcode uint8

func (eo ErrOpcode) Error() string {
	return f("opcode 0x%02x", uint8(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrFault locates a pulse failure in the instruction stream.
type ErrFault struct {
	Pc     uint16 // Address of the faulting instruction.
	Opcode uint8  // Opcode in the instruction register.
	Step   int    // Micro-step of the faulting pulse.
	Err    error
}

func (err *ErrFault) Error() string {
	return f("pc 0x%04x opcode 0x%02x step %v: %v", err.Pc, err.Opcode, err.Step, err.Err)
}

func (err *ErrFault) Unwrap() error {
	return err.Err
}

// ErrStep reports an invalid control word in a table.
type ErrStep struct {
	Name string // Instruction name, or "fetch".
	Step int
	Err  error
}

func (err ErrStep) Error() string {
	return f("%v step %v: %v", err.Name, err.Step, err.Err)
}

func (err ErrStep) Unwrap() error {
	return err.Err
}

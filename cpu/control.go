package cpu

import (
	"errors"
	"fmt"
	"strings"
)

// AluOp selects the ALU function for a micro-step.
type AluOp int

//go:generate go tool stringer -linecomment -type=AluOp
const (
	ALU_OP_NONE = AluOp(0)  // -
	ALU_OP_ADD  = AluOp(1)  // add
	ALU_OP_SUB  = AluOp(2)  // sub
	ALU_OP_INC  = AluOp(3)  // inc
	ALU_OP_DEC  = AluOp(4)  // dec
	ALU_OP_AND  = AluOp(5)  // and
	ALU_OP_OR   = AluOp(6)  // or
	ALU_OP_XOR  = AluOp(7)  // xor
	ALU_OP_NOT  = AluOp(8)  // not
	ALU_OP_SHL  = AluOp(9)  // shl
	ALU_OP_SHR  = AluOp(10) // shr

	ALU_OP_COUNT = 11
)

// Cond gates the latches of a micro-step on the flags.
type Cond int

//go:generate go tool stringer -linecomment -type=Cond
const (
	COND_ALWAYS = Cond(0) // always
	COND_Z      = Cond(1) // z
	COND_NZ     = Cond(2) // nz
	COND_C      = Cond(3) // c
	COND_NC     = Cond(4) // nc

	COND_COUNT = 5
)

// Holds returns true if the condition is satisfied by the flags.
func (cond Cond) Holds(flags Flags) bool {
	switch cond {
	case COND_Z:
		return flags.Zero()
	case COND_NZ:
		return !flags.Zero()
	case COND_C:
		return flags.Carry()
	case COND_NC:
		return !flags.Carry()
	}
	return true
}

// Control is the set of control signals asserted for one clock pulse.
type Control struct {
	Drive Units    // Units that put their value on the bus.
	Latch Units    // Units that capture the bus.
	Count Counters // Counters applied in the latch phase.
	Alu   AluOp    // ALU function; any value but ALU_OP_NONE updates the flags.
	Cond  Cond     // Latches only happen when the condition holds.
	Last  bool     // Returns to fetch after this pulse.
	Halt  bool     // Freezes the sequencer after this pulse.
}

var (
	errDrive   = errors.New(f("unit cannot drive the bus"))
	errLatch   = errors.New(f("unit cannot latch the bus"))
	errAluIdle = errors.New(f("alu drives without an operation"))
	errAluOp   = errors.New(f("alu operation unknown"))
	errCond    = errors.New(f("condition unknown"))
	errCounter = errors.New(f("counter unknown"))
	errSpBoth  = errors.New(f("stack pointer counts both ways"))
)

// Validate checks that every signal of the control word is meaningful.
func (ctl Control) Validate() (err error) {
	if ctl.Drive&^DRIVERS != 0 {
		err = errors.Join(errDrive, errors.New((ctl.Drive &^ DRIVERS).String()))
		return
	}
	if ctl.Latch&^LATCHES != 0 {
		err = errors.Join(errLatch, errors.New((ctl.Latch &^ LATCHES).String()))
		return
	}
	if ctl.Alu < 0 || ctl.Alu >= ALU_OP_COUNT {
		err = errAluOp
		return
	}
	if ctl.Drive.Has(UNIT_ALU) && ctl.Alu == ALU_OP_NONE {
		err = errAluIdle
		return
	}
	if ctl.Cond < 0 || ctl.Cond >= COND_COUNT {
		err = errCond
		return
	}
	if ctl.Count >= 1<<COUNT_COUNT {
		err = errCounter
		return
	}
	if ctl.Count.Has(COUNT_SP_INC) && ctl.Count.Has(COUNT_SP_DEC) {
		err = errSpBoth
		return
	}
	return
}

func (ctl Control) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "drive=%v latch=%v", ctl.Drive, ctl.Latch)
	if ctl.Count != 0 {
		fmt.Fprintf(&b, " count=%v", ctl.Count)
	}
	if ctl.Alu != ALU_OP_NONE {
		fmt.Fprintf(&b, " alu=%v", ctl.Alu)
	}
	if ctl.Cond != COND_ALWAYS {
		fmt.Fprintf(&b, " if=%v", ctl.Cond)
	}
	if ctl.Last {
		b.WriteString(" last")
	}
	if ctl.Halt {
		b.WriteString(" halt")
	}
	return b.String()
}

// Table is a control table: the definition of an instruction set.
//
// The fetch prefix runs for every instruction, and its final step must
// latch the instruction register. Execute steps are looked up by the
// opcode in the low byte of the instruction register, with step numbered
// from zero after the fetch prefix.
type Table interface {
	Fetch() []Control
	Lookup(opcode uint8, step int) (ctl Control, ok bool)
}

// Mnemonics is implemented by tables that can name their opcodes.
type Mnemonics interface {
	Mnemonic(opcode uint8) (name string, ok bool)
}

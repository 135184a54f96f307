package cpu

import (
	"errors"
	"iter"
	"maps"
	"slices"
)

const (
	MAX_STEPS = 32 // Most micro-steps allowed in one instruction, fetch included.
)

var (
	errFetchEmpty = errors.New(f("fetch prefix empty"))
	errFetchIr    = errors.New(f("fetch prefix does not latch ir"))
	errFetchEnd   = errors.New(f("fetch prefix ends the instruction"))
	errNoSteps    = errors.New(f("no execute steps"))
	errTooLong    = errors.New(f("too many steps"))
	errNotLast    = errors.New(f("final step neither last nor halt"))
	errEarlyLast  = errors.New(f("last or halt before final step"))
	errDuplicate  = errors.New(f("opcode duplicated"))
)

// Instruction is one row of a control table.
type Instruction struct {
	Name  string
	Steps []Control
}

// Microcode is a control table held in memory.
type Microcode struct {
	Title        string
	FetchSteps   []Control
	Instructions map[uint8]Instruction
}

var _ Table = (*Microcode)(nil)
var _ Mnemonics = (*Microcode)(nil)

// NewMicrocode creates an empty table with the given fetch prefix.
func NewMicrocode(title string, fetch ...Control) (mc *Microcode) {
	mc = &Microcode{
		Title:        title,
		FetchSteps:   fetch,
		Instructions: map[uint8]Instruction{},
	}
	return
}

// Define adds an instruction to the table.
func (mc *Microcode) Define(opcode uint8, name string, steps ...Control) (err error) {
	if mc.Instructions == nil {
		mc.Instructions = map[uint8]Instruction{}
	}
	if _, ok := mc.Instructions[opcode]; ok {
		err = errors.Join(ErrTable, errDuplicate, ErrOpcode(opcode))
		return
	}
	mc.Instructions[opcode] = Instruction{Name: name, Steps: steps}
	return
}

// Fetch returns the fetch prefix.
func (mc *Microcode) Fetch() []Control {
	return mc.FetchSteps
}

// Lookup returns the control word of an execute step.
func (mc *Microcode) Lookup(opcode uint8, step int) (ctl Control, ok bool) {
	in, ok := mc.Instructions[opcode]
	if !ok || step < 0 || step >= len(in.Steps) {
		ok = false
		return
	}
	ctl = in.Steps[step]
	return
}

// Mnemonic returns the name of an opcode.
func (mc *Microcode) Mnemonic(opcode uint8) (name string, ok bool) {
	in, ok := mc.Instructions[opcode]
	name = in.Name
	return
}

// Opcodes iterates over the defined instructions in opcode order.
func (mc *Microcode) Opcodes() iter.Seq2[uint8, Instruction] {
	return func(yield func(opcode uint8, in Instruction) bool) {
		for _, opcode := range slices.Sorted(maps.Keys(mc.Instructions)) {
			if !yield(opcode, mc.Instructions[opcode]) {
				return
			}
		}
	}
}

// Validate checks that the table is well formed: the fetch prefix loads the
// instruction register, and every instruction terminates on its final step.
func (mc *Microcode) Validate() (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrTable, err)
		}
	}()

	if len(mc.FetchSteps) == 0 {
		err = errFetchEmpty
		return
	}
	for n, ctl := range mc.FetchSteps {
		err = ctl.Validate()
		if err == nil && (ctl.Last || ctl.Halt) {
			err = errFetchEnd
		}
		if err != nil {
			err = ErrStep{Name: "fetch", Step: n, Err: err}
			return
		}
	}
	if !mc.FetchSteps[len(mc.FetchSteps)-1].Latch.Has(UNIT_IR) {
		err = ErrStep{Name: "fetch", Step: len(mc.FetchSteps) - 1, Err: errFetchIr}
		return
	}

	for opcode, in := range mc.Opcodes() {
		err = validateSteps(in, len(mc.FetchSteps))
		if err != nil {
			err = errors.Join(ErrOpcode(opcode), err)
			return
		}
	}

	return
}

func validateSteps(in Instruction, fetch int) (err error) {
	if len(in.Steps) == 0 {
		err = ErrStep{Name: in.Name, Err: errNoSteps}
		return
	}
	if fetch+len(in.Steps) > MAX_STEPS {
		err = ErrStep{Name: in.Name, Step: len(in.Steps), Err: errTooLong}
		return
	}
	final := len(in.Steps) - 1
	for n, ctl := range in.Steps {
		err = ctl.Validate()
		switch {
		case err != nil:
		case n == final && !(ctl.Last || ctl.Halt):
			err = errNotLast
		case n != final && (ctl.Last || ctl.Halt):
			err = errEarlyLast
		}
		if err != nil {
			err = ErrStep{Name: in.Name, Step: n, Err: err}
			return
		}
	}
	return
}

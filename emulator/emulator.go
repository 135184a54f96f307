package emulator

import (
	"errors"
	"log"

	"github.com/sis16/svm/cpu"
	"github.com/sis16/svm/io"
	"github.com/sis16/svm/microcode"
)

// Emulator state. CPU + control table + IO tape.
type Emulator struct {
	Verbose  bool // If set, logs the machine state after every instruction.
	*cpu.Cpu      // Reference to the CPU simulation.

	Tape   io.Tape // Tape behind the IN and OUT units.
	Faults []error // Skipped ROM writes since the last reset.
}

// NewEmulator creates an emulator running image. A nil table selects the
// built-in SIS16 instruction set.
func NewEmulator(image []byte, table cpu.Table, options cpu.Options) (emu *Emulator, err error) {
	if table == nil {
		table = microcode.SIS16()
	}

	machine, err := cpu.NewCpu(image, table, options)
	if err != nil {
		return
	}

	emu = &Emulator{
		Verbose: options.Debug,
		Cpu:     machine,
	}
	emu.Cpu.Input = &emu.Tape
	emu.Cpu.Output = &emu.Tape

	return
}

// Reset the machine, keeping the ROM image.
func (emu *Emulator) Reset() {
	emu.Cpu.Reset()
	emu.Faults = nil
}

// Ticks returns the total clock pulses since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Pulses
}

// Pc returns the current program counter.
func (emu *Emulator) Pc() uint16 {
	return emu.Cpu.Register(cpu.UNIT_PC)
}

// Mnemonic returns the name of the instruction in the instruction register.
func (emu *Emulator) Mnemonic() (name string) {
	name = "?"
	if m, ok := emu.Cpu.Table().(cpu.Mnemonics); ok {
		if mn, ok := m.Mnemonic(emu.Cpu.Opcode()); ok {
			name = mn
		}
	}
	return
}

// Tick runs a single instruction of the emulator.
// done is set once the machine has halted.
func (emu *Emulator) Tick() (done bool, err error) {
	pulse := emu.Cpu.Pulses
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pulse: pulse, Err: err}
		}
	}()

	if emu.Cpu.Halted() {
		done = true
		return
	}

	pc := emu.Pc()
	err = emu.Cpu.Instruction()
	done = emu.Cpu.Halted()

	if emu.Verbose {
		log.Printf("emulator: %04x %v\n%v", pc, emu.Mnemonic(), emu.Cpu.String())
	}

	if errors.Is(err, cpu.ErrIllegalWrite) && !done {
		if emu.Verbose {
			log.Printf("emulator: skipped %v", err)
		}
		emu.Faults = append(emu.Faults, err)
		err = nil
	}

	return
}

// Run ticks the emulator until it halts, or until more than limit clock
// pulses have run when limit is positive.
func (emu *Emulator) Run(limit int) (err error) {
	for {
		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}
		if limit > 0 && emu.Cpu.Pulses > limit {
			err = &ErrRuntime{Pulse: emu.Cpu.Pulses, Err: ErrPulseLimit}
			return
		}
	}
}

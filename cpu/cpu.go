package cpu

import (
	"errors"
	"log"

	"github.com/sis16/svm/io"
)

// Port is an I/O port attached to the IN or OUT unit.
type Port io.Port

// Options configures a Cpu. Zero fields take their defaults.
//
// With the default split every address below 0x8000 is ROM, so a program
// that treats 0x2000 as RAM needs a lower split such as Options{Split: 0x1000}.
type Options struct {
	Debug              bool   // Log every clock pulse.
	Split              uint16 // First RAM address.
	StackBase          uint16 // Base of the stack window; must lie in RAM.
	HaltOnIllegalWrite bool   // Halt instead of skipping writes to ROM.
}

// DefaultOptions returns the options of a stock SIS16.
func DefaultOptions() Options {
	return Options{
		Split:     DEFAULT_SPLIT,
		StackBase: DEFAULT_STACK_BASE,
	}
}

func (opts *Options) normalize() (err error) {
	if opts.Split == 0 {
		opts.Split = DEFAULT_SPLIT
	}
	if opts.StackBase == 0 {
		opts.StackBase = DEFAULT_STACK_BASE
	}
	if opts.StackBase < opts.Split || int(opts.StackBase)+STACK_WINDOW > MEMORY_SIZE {
		err = errors.Join(ErrConfig, errors.New(f("stack window 0x%04x outside ram", opts.StackBase)))
		return
	}
	return
}

// Cpu is the simulation context of one SIS16 machine.
type Cpu struct {
	Verbose bool // Set to enable per-pulse logging.

	Input  Port // Port read by the IN unit.
	Output Port // Port written by the OUT unit.

	Pulses       int // Clock pulses since reset.
	Instructions int // Instructions completed since reset.

	options Options
	table   Table
	fetch   []Control

	pc  Register // Program counter.
	mar Register // Memory address register.
	ir  Register // Instruction register.
	a   Register // Accumulator.
	b   Register // ALU operand.
	t   Register // Operand assembly.
	out Register // Output latch.

	sp    StackPointer
	flags Flags
	bus   Bus
	mem   Memory

	step   int    // Micro-instruction counter.
	start  uint16 // PC at the start of the current instruction.
	halted bool
}

// NewCpu creates a machine running rom under the control table.
func NewCpu(rom []byte, table Table, options Options) (cpu *Cpu, err error) {
	if len(rom) != MEMORY_SIZE {
		err = errors.Join(ErrInvalidImageSize, ErrImageSize(len(rom)))
		return
	}

	err = options.normalize()
	if err != nil {
		return
	}

	if table == nil {
		err = errors.Join(ErrTable, errFetchEmpty)
		return
	}
	if v, ok := table.(interface{ Validate() error }); ok {
		err = v.Validate()
		if err != nil {
			return
		}
	}
	fetch := table.Fetch()
	if len(fetch) == 0 {
		err = errors.Join(ErrTable, errFetchEmpty)
		return
	}

	cpu = &Cpu{
		Verbose: options.Debug,
		options: options,
		table:   table,
		fetch:   fetch,
	}
	cpu.mem.split = options.Split
	cpu.sp.base = options.StackBase
	cpu.mem.load(rom)
	cpu.Reset()

	return
}

// Reset the machine state. ROM is kept, everything else is zeroed.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	for _, reg := range cpu.registers() {
		reg.reset()
	}
	cpu.sp.reset()
	cpu.flags = Flags{}
	cpu.bus.Reset()
	clear(cpu.mem.ram[:])

	cpu.step = 0
	cpu.start = 0
	cpu.halted = false
	cpu.Pulses = 0
	cpu.Instructions = 0

	if cpu.Input != nil {
		cpu.Input.Rewind()
	}
	if cpu.Output != nil {
		cpu.Output.Rewind()
	}
}

// registers returns the bus registers.
func (cpu *Cpu) registers() [7]*Register {
	return [7]*Register{&cpu.pc, &cpu.mar, &cpu.ir, &cpu.a, &cpu.b, &cpu.t, &cpu.out}
}

// register returns the register behind a unit, or nil.
func (cpu *Cpu) register(unit Unit) *Register {
	switch unit {
	case UNIT_PC:
		return &cpu.pc
	case UNIT_MAR:
		return &cpu.mar
	case UNIT_IR:
		return &cpu.ir
	case UNIT_A:
		return &cpu.a
	case UNIT_B:
		return &cpu.b
	case UNIT_T, UNIT_TL, UNIT_TH:
		return &cpu.t
	case UNIT_OUT:
		return &cpu.out
	}
	return nil
}

// Register returns the value of a register unit; zero for other units.
func (cpu *Cpu) Register(unit Unit) (value uint16) {
	reg := cpu.register(unit)
	if reg != nil {
		value = reg.Value()
	}
	return
}

// Sp returns the stack pointer.
func (cpu *Cpu) Sp() uint8 {
	return cpu.sp.Value()
}

// Flags returns the flag unit state.
func (cpu *Cpu) Flags() Flags {
	return cpu.flags
}

// MicroStep returns the micro-instruction counter.
func (cpu *Cpu) MicroStep() int {
	return cpu.step
}

// Opcode returns the opcode in the instruction register.
func (cpu *Cpu) Opcode() uint8 {
	return uint8(cpu.ir.value)
}

// Halted returns true once a halt signal or a fatal fault froze the machine.
func (cpu *Cpu) Halted() bool {
	return cpu.halted
}

// Fetching returns true when the next pulse starts a new instruction.
func (cpu *Cpu) Fetching() bool {
	return cpu.step == 0 && !cpu.halted
}

// Table returns the control table.
func (cpu *Cpu) Table() Table {
	return cpu.table
}

// Read returns the byte at an address, as the MEM unit would see it.
func (cpu *Cpu) Read(address uint16) (value byte, err error) {
	return cpu.mem.Read(address)
}

// Rom returns a copy of the ROM image.
func (cpu *Cpu) Rom() []byte {
	return cpu.mem.Rom()
}

// Ram returns a copy of the RAM image.
func (cpu *Cpu) Ram() []byte {
	return cpu.mem.Ram()
}

// Split returns the first RAM address.
func (cpu *Cpu) Split() uint16 {
	return cpu.mem.Split()
}

// control resolves the control word for the current opcode and step.
func (cpu *Cpu) control() (ctl Control, err error) {
	if cpu.step < len(cpu.fetch) {
		ctl = cpu.fetch[cpu.step]
		return
	}

	step := cpu.step - len(cpu.fetch)
	ctl, ok := cpu.table.Lookup(cpu.Opcode(), step)
	if !ok {
		if step == 0 {
			err = errors.Join(ErrUnknownOpcode, ErrOpcode(cpu.Opcode()))
		} else {
			err = errors.Join(ErrTable, errNotLast, ErrOpcode(cpu.Opcode()))
		}
	}
	return
}

func (cpu *Cpu) halt() {
	cpu.halted = true
	if cpu.Verbose {
		log.Printf("cpu: halt at pc 0x%04x", cpu.pc.value)
	}
}

// Step runs a single clock pulse.
//
// An illegal ROM write is skipped and returned, and the machine keeps
// running unless Options.HaltOnIllegalWrite is set. Unknown opcodes and
// unmapped addresses halt the machine. A halted machine returns ErrHalted
// without changing state.
func (cpu *Cpu) Step() (err error) {
	if cpu.halted {
		err = ErrHalted
		return
	}

	if cpu.step == 0 {
		cpu.start = cpu.pc.value
	}

	step := cpu.step
	defer func() {
		if err != nil {
			err = &ErrFault{Pc: cpu.start, Opcode: cpu.Opcode(), Step: step, Err: err}
		}
	}()

	// Phase 1: control signals.
	ctl, err := cpu.control()
	if err != nil {
		cpu.halt()
		return
	}

	cpu.assert(ctl)
	defer cpu.release()

	// Phase 2: settle the bus.
	var result uint16
	var carry bool
	if ctl.Alu != ALU_OP_NONE {
		result, carry = Alu(ctl.Alu, cpu.a.value, cpu.b.value, cpu.flags.Carry())
	}

	err = cpu.settle(ctl, result)
	if err != nil {
		cpu.halt()
		return
	}
	bus := cpu.bus.Value()

	if cpu.Verbose {
		cpu.trace(ctl, bus)
	}

	// Phase 3: latch.
	err = cpu.latch(ctl, bus)
	if err != nil && (!errors.Is(err, ErrIllegalWrite) || cpu.options.HaltOnIllegalWrite) {
		cpu.halt()
		return
	}

	// Phase 4: flags.
	if ctl.Alu != ALU_OP_NONE {
		cpu.flags.Update(result, carry)
	}

	// Phase 5: sequence.
	cpu.Pulses++
	switch {
	case ctl.Halt:
		cpu.halt()
	case ctl.Last:
		cpu.step = 0
		cpu.Instructions++
	default:
		cpu.step++
	}

	return
}

// Instruction runs clock pulses until the sequencer re-enters fetch or the
// machine halts. Skipped ROM writes are reported once the instruction ends.
func (cpu *Cpu) Instruction() (err error) {
	var skipped error
	for {
		err = cpu.Step()
		if err != nil && !errors.Is(err, ErrIllegalWrite) {
			return
		}
		if err != nil && skipped == nil {
			skipped = err
		}
		if cpu.step == 0 || cpu.halted {
			err = skipped
			return
		}
	}
}

// assert sets the drive and latch lines of the registers.
func (cpu *Cpu) assert(ctl Control) {
	for unit := range ctl.Drive.All() {
		if reg := cpu.register(unit); reg != nil {
			reg.drive = true
		}
	}

	if !ctl.Cond.Holds(cpu.flags) {
		return
	}

	for unit := range ctl.Latch.All() {
		reg := cpu.register(unit)
		if reg == nil {
			continue
		}
		switch unit {
		case UNIT_TL:
			reg.latch = latchLow
		case UNIT_TH:
			reg.latch = latchHigh
		default:
			reg.latch = latchWord
		}
	}
}

// release deasserts every register at the end of a pulse.
func (cpu *Cpu) release() {
	for _, reg := range cpu.registers() {
		reg.release()
	}
}

// settle drives the bus from every asserting unit.
func (cpu *Cpu) settle(ctl Control, result uint16) (err error) {
	cpu.bus.Reset()

	for _, reg := range cpu.registers() {
		reg.output(&cpu.bus)
	}

	if ctl.Drive.Has(UNIT_MEM) {
		var value byte
		value, err = cpu.mem.Read(cpu.mar.value)
		if err != nil {
			return
		}
		cpu.bus.Drive(uint16(value))
	}
	if ctl.Drive.Has(UNIT_ALU) {
		cpu.bus.Drive(result)
	}
	if ctl.Drive.Has(UNIT_STACK) {
		cpu.bus.Drive(cpu.sp.Address())
	}
	if ctl.Drive.Has(UNIT_IN) {
		var value uint16
		if cpu.Input != nil {
			var perr error
			value, _, perr = cpu.Input.Receive()
			if perr != nil {
				err = errors.Join(ErrPort, perr)
				return
			}
		}
		cpu.bus.Drive(value)
	}

	if cpu.Verbose && cpu.bus.Conflict() {
		log.Printf("cpu: bus conflict, %v drivers: %v", cpu.bus.Drivers(), ctl.Drive)
	}

	return
}

// latch captures the settled bus into every latching unit. A memory fault
// is checked before any register changes.
func (cpu *Cpu) latch(ctl Control, bus uint16) (err error) {
	if ctl.Cond.Holds(cpu.flags) && ctl.Latch.Has(UNIT_MEM) {
		err = cpu.mem.Write(cpu.mar.value, byte(bus))
		if err != nil {
			if cpu.Verbose {
				log.Printf("cpu: %v", err)
			}
			if !errors.Is(err, ErrIllegalWrite) || cpu.options.HaltOnIllegalWrite {
				return
			}
		}
	}

	pcLatched := cpu.pc.Latching()
	for _, reg := range cpu.registers() {
		reg.capture(bus)
	}

	if ctl.Count.Has(COUNT_PC_INC) && !pcLatched {
		cpu.pc.value++
	}
	if ctl.Count.Has(COUNT_SP_INC) {
		cpu.sp.inc()
	}
	if ctl.Count.Has(COUNT_SP_DEC) {
		cpu.sp.dec()
	}

	if cpu.out.Latching() && cpu.Output != nil {
		perr := cpu.Output.Send(cpu.out.value)
		if perr != nil {
			err = errors.Join(err, ErrPort, perr)
		}
	}

	return
}

// trace logs one pulse.
func (cpu *Cpu) trace(ctl Control, bus uint16) {
	name := "?"
	if cpu.step >= len(cpu.fetch) {
		if m, ok := cpu.table.(Mnemonics); ok {
			if mn, ok := m.Mnemonic(cpu.Opcode()); ok {
				name = mn
			}
		}
	} else {
		name = "fetch"
	}
	log.Printf("cpu: %04x %-6s %2d bus=%04x/%d %v", cpu.start, name, cpu.step, bus, cpu.bus.Drivers(), ctl)
}

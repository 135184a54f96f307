package cpu

type latchMode int

const (
	latchNone latchMode = iota
	latchWord           // Capture the whole bus.
	latchLow            // Capture the bus low byte into the low byte.
	latchHigh           // Capture the bus low byte into the high byte.
)

// Register is a 16-bit bus register. Its value only changes by latching
// the bus during a clock pulse.
type Register struct {
	value uint16
	drive bool
	latch latchMode
}

// Value returns the register contents.
func (reg *Register) Value() uint16 {
	return reg.value
}

// Driving returns true while the register asserts its value on the bus.
func (reg *Register) Driving() bool {
	return reg.drive
}

// Latching returns true while the register is set to capture the bus.
func (reg *Register) Latching() bool {
	return reg.latch != latchNone
}

// output drives the bus if asserted.
func (reg *Register) output(bus *Bus) {
	if reg.drive {
		bus.Drive(reg.value)
	}
}

// capture latches the settled bus value.
func (reg *Register) capture(bus uint16) {
	switch reg.latch {
	case latchWord:
		reg.value = bus
	case latchLow:
		reg.value = (reg.value & 0xff00) | (bus & 0x00ff)
	case latchHigh:
		reg.value = (reg.value & 0x00ff) | ((bus & 0x00ff) << 8)
	}
}

// release deasserts drive and latch at the end of a pulse.
func (reg *Register) release() {
	reg.drive = false
	reg.latch = latchNone
}

func (reg *Register) reset() {
	*reg = Register{}
}

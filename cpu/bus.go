package cpu

// Bus is the shared 16-bit bus for a single clock pulse.
//
// Drivers that conflict are combined with a bitwise OR instead of faulting.
type Bus struct {
	value   uint16
	drivers int
}

// Resolve combines driver values the way the bus does.
func Resolve(values ...uint16) (value uint16) {
	for _, v := range values {
		value |= v
	}
	return
}

// Drive asserts a value onto the bus.
func (bus *Bus) Drive(value uint16) {
	bus.value = Resolve(bus.value, value)
	bus.drivers++
}

// Value returns the settled bus value; zero when undriven.
func (bus *Bus) Value() uint16 {
	return bus.value
}

// Drivers returns the number of units driving this pulse.
func (bus *Bus) Drivers() int {
	return bus.drivers
}

// Conflict returns true if more than one unit is driving.
func (bus *Bus) Conflict() bool {
	return bus.drivers > 1
}

// Reset floats the bus for the next pulse.
func (bus *Bus) Reset() {
	bus.value = 0
	bus.drivers = 0
}

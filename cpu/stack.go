package cpu

// StackPointer is the 8-bit offset into the stack window of RAM.
// The stack grows down: a push decrements before writing, a pop
// increments after reading.
type StackPointer struct {
	value uint8
	base  uint16
}

// Value returns the stack pointer.
func (sp *StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the RAM address the stack pointer selects.
func (sp *StackPointer) Address() uint16 {
	return sp.base + uint16(sp.value)
}

func (sp *StackPointer) inc() {
	sp.value++
}

func (sp *StackPointer) dec() {
	sp.value--
}

func (sp *StackPointer) reset() {
	sp.value = 0
}

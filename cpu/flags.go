package cpu

// Flags holds the sticky carry and zero flags.
type Flags struct {
	carry bool
	zero  bool
}

// Carry returns the carry out of the last ALU operation.
func (fl Flags) Carry() bool {
	return fl.carry
}

// Zero returns true if the last ALU result was zero.
func (fl Flags) Zero() bool {
	return fl.zero
}

// Update records an ALU result.
func (fl *Flags) Update(result uint16, carry bool) {
	fl.zero = result == 0
	fl.carry = carry
}

func (fl Flags) String() (text string) {
	text = "--"
	if fl.carry {
		text = "C" + text[1:]
	}
	if fl.zero {
		text = text[:1] + "Z"
	}
	return
}

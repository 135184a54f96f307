package cpu

import (
	"iter"
	"strings"
)

// Unit is anything that can drive or latch the bus.
type Unit int

//go:generate go tool stringer -linecomment -type=Unit
const (
	UNIT_PC    = Unit(0)  // pc
	UNIT_MAR   = Unit(1)  // mar
	UNIT_IR    = Unit(2)  // ir
	UNIT_A     = Unit(3)  // a
	UNIT_B     = Unit(4)  // b
	UNIT_T     = Unit(5)  // t
	UNIT_TL    = Unit(6)  // tl
	UNIT_TH    = Unit(7)  // th
	UNIT_OUT   = Unit(8)  // out
	UNIT_MEM   = Unit(9)  // mem
	UNIT_ALU   = Unit(10) // alu
	UNIT_STACK = Unit(11) // stack
	UNIT_IN    = Unit(12) // in

	UNIT_COUNT = 13
)

// Units is a set of bus units.
type Units uint32

// Units that are able to drive the bus.
var DRIVERS = MakeUnits(UNIT_PC, UNIT_MAR, UNIT_IR, UNIT_A, UNIT_B, UNIT_T,
	UNIT_MEM, UNIT_ALU, UNIT_STACK, UNIT_IN)

// Units that are able to latch the bus.
var LATCHES = MakeUnits(UNIT_PC, UNIT_MAR, UNIT_IR, UNIT_A, UNIT_B, UNIT_T,
	UNIT_TL, UNIT_TH, UNIT_OUT, UNIT_MEM)

// MakeUnits returns the set of the given units.
func MakeUnits(units ...Unit) (set Units) {
	for _, unit := range units {
		set |= 1 << unit
	}
	return
}

// Has returns true if unit is a member of the set.
func (set Units) Has(unit Unit) bool {
	return (set & (1 << unit)) != 0
}

// Empty returns true if no unit is a member of the set.
func (set Units) Empty() bool {
	return set == 0
}

// All iterates over the members of the set, in unit order.
func (set Units) All() iter.Seq[Unit] {
	return func(yield func(unit Unit) bool) {
		for unit := range Unit(UNIT_COUNT) {
			if set.Has(unit) && !yield(unit) {
				return
			}
		}
	}
}

func (set Units) String() string {
	if set.Empty() {
		return "-"
	}
	var names []string
	for unit := range set.All() {
		names = append(names, unit.String())
	}
	return strings.Join(names, "|")
}

// Counter is a register increment or decrement applied in the latch phase.
type Counter int

//go:generate go tool stringer -linecomment -type=Counter
const (
	COUNT_PC_INC = Counter(0) // pc+
	COUNT_SP_INC = Counter(1) // sp+
	COUNT_SP_DEC = Counter(2) // sp-

	COUNT_COUNT = 3
)

// Counters is a set of counters.
type Counters uint8

// MakeCounters returns the set of the given counters.
func MakeCounters(counters ...Counter) (set Counters) {
	for _, counter := range counters {
		set |= 1 << counter
	}
	return
}

// Has returns true if counter is a member of the set.
func (set Counters) Has(counter Counter) bool {
	return (set & (1 << counter)) != 0
}

func (set Counters) String() string {
	if set == 0 {
		return "-"
	}
	var names []string
	for counter := range Counter(COUNT_COUNT) {
		if set.Has(counter) {
			names = append(names, counter.String())
		}
	}
	return strings.Join(names, "|")
}

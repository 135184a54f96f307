package cpu

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Snapshot is a copy of the machine state between two pulses.
type Snapshot struct {
	Pc, Mar, Ir uint16
	A, B, T     uint16
	Out         uint16
	Sp          uint8
	Flags       Flags
	Step        int
	Halted      bool
	Pulses      int
}

// Snapshot captures the register, flag and sequencer state.
func (cpu *Cpu) Snapshot() Snapshot {
	return Snapshot{
		Pc:     cpu.pc.value,
		Mar:    cpu.mar.value,
		Ir:     cpu.ir.value,
		A:      cpu.a.value,
		B:      cpu.b.value,
		T:      cpu.t.value,
		Out:    cpu.out.value,
		Sp:     cpu.sp.value,
		Flags:  cpu.flags,
		Step:   cpu.step,
		Halted: cpu.halted,
		Pulses: cpu.Pulses,
	}
}

// String returns the snapshot as one register per line.
func (snap Snapshot) String() (text string) {
	regs := []string{
		"pc", "mar", "ir",
		"a", "b", "t", "out",
		"sp", "flags", "step",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%04X", snap.Pc)
		case "mar":
			strval = fmt.Sprintf("%04X", snap.Mar)
		case "ir":
			strval = fmt.Sprintf("%04X", snap.Ir)
		case "a":
			strval = fmt.Sprintf("%04X", snap.A)
		case "b":
			strval = fmt.Sprintf("%04X", snap.B)
		case "t":
			strval = fmt.Sprintf("%04X", snap.T)
		case "out":
			strval = fmt.Sprintf("%04X", snap.Out)
		case "sp":
			strval = fmt.Sprintf("%02X", snap.Sp)
		case "flags":
			strval = snap.Flags.String()
		case "step":
			strval = fmt.Sprintf("%v", snap.Step)
			if snap.Halted {
				strval += " halted"
			}
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// String returns the current machine state as a string.
func (cpu *Cpu) String() string {
	return cpu.Snapshot().String()
}

// DumpRam returns a hex dump of a window of RAM, clipped to the image.
func (cpu *Cpu) DumpRam(from uint16, length int) string {
	start := min(int(from), MEMORY_SIZE)
	end := min(start+max(length, 0), MEMORY_SIZE)

	dump := hex.Dump(cpu.mem.ram[start:end])

	// Rebase the dump offsets onto the bus address.
	var b strings.Builder
	for _, line := range strings.SplitAfter(dump, "\n") {
		if line == "" {
			continue
		}
		var offset int
		if _, err := fmt.Sscanf(line, "%08x", &offset); err == nil && len(line) > 8 {
			fmt.Fprintf(&b, "%04x%v", start+offset, line[8:])
			continue
		}
		b.WriteString(line)
	}
	return b.String()
}

package cpu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Opcodes of the test control table.
const (
	tLDA  = uint8(0x01) // a = imm8
	tLDB  = uint8(0x02) // b = imm8
	tADD  = uint8(0x03) // a = a + b
	tBOTH = uint8(0x04) // t = a | b, by driving both
	tLDT  = uint8(0x05) // t = imm16
	tSTA  = uint8(0x06) // [t] = a
	tCMP  = uint8(0x07) // flags of a - b
	tJZ   = uint8(0x08) // pc = t if zero
	tPUSH = uint8(0x09) // push a
	tPOPB = uint8(0x0a) // pop b
	tOUT  = uint8(0x0b) // out = a
	tIN   = uint8(0x0c) // a = in
	tINC  = uint8(0x0d) // a = a + 1
	tLDAT = uint8(0x0e) // a = [t]
	tHLT  = uint8(0xff)
)

func xfer(src Unit, dst ...Unit) Control {
	return Control{Drive: MakeUnits(src), Latch: MakeUnits(dst...)}
}

func testTable(t *testing.T) *Microcode {
	t.Helper()

	pcinc := MakeCounters(COUNT_PC_INC)
	mc := NewMicrocode("test",
		xfer(UNIT_PC, UNIT_MAR),
		Control{Drive: MakeUnits(UNIT_MEM), Latch: MakeUnits(UNIT_IR), Count: pcinc},
	)

	imm := func(dst Unit) []Control {
		return []Control{
			xfer(UNIT_PC, UNIT_MAR),
			{Drive: MakeUnits(UNIT_MEM), Latch: MakeUnits(dst), Count: pcinc, Last: true},
		}
	}

	define := func(opcode uint8, name string, steps ...Control) {
		require.NoError(t, mc.Define(opcode, name, steps...))
	}

	define(tLDA, "lda", imm(UNIT_A)...)
	define(tLDB, "ldb", imm(UNIT_B)...)
	define(tADD, "add", Control{Drive: MakeUnits(UNIT_ALU), Latch: MakeUnits(UNIT_A), Alu: ALU_OP_ADD, Last: true})
	define(tBOTH, "both", Control{Drive: MakeUnits(UNIT_A, UNIT_B), Latch: MakeUnits(UNIT_T), Last: true})
	define(tLDT, "ldt",
		xfer(UNIT_PC, UNIT_MAR),
		Control{Drive: MakeUnits(UNIT_MEM), Latch: MakeUnits(UNIT_TL), Count: pcinc},
		xfer(UNIT_PC, UNIT_MAR),
		Control{Drive: MakeUnits(UNIT_MEM), Latch: MakeUnits(UNIT_TH), Count: pcinc, Last: true},
	)
	define(tSTA, "sta",
		xfer(UNIT_T, UNIT_MAR),
		Control{Drive: MakeUnits(UNIT_A), Latch: MakeUnits(UNIT_MEM), Last: true},
	)
	define(tCMP, "cmp", Control{Alu: ALU_OP_SUB, Last: true})
	define(tJZ, "jz", Control{Drive: MakeUnits(UNIT_T), Latch: MakeUnits(UNIT_PC), Cond: COND_Z, Last: true})
	define(tPUSH, "push",
		Control{Count: MakeCounters(COUNT_SP_DEC)},
		xfer(UNIT_STACK, UNIT_MAR),
		Control{Drive: MakeUnits(UNIT_A), Latch: MakeUnits(UNIT_MEM), Last: true},
	)
	define(tPOPB, "pop b",
		xfer(UNIT_STACK, UNIT_MAR),
		Control{Drive: MakeUnits(UNIT_MEM), Latch: MakeUnits(UNIT_B), Count: MakeCounters(COUNT_SP_INC), Last: true},
	)
	define(tOUT, "out", Control{Drive: MakeUnits(UNIT_A), Latch: MakeUnits(UNIT_OUT), Last: true})
	define(tIN, "in", Control{Drive: MakeUnits(UNIT_IN), Latch: MakeUnits(UNIT_A), Last: true})
	define(tINC, "inc", Control{Drive: MakeUnits(UNIT_ALU), Latch: MakeUnits(UNIT_A), Alu: ALU_OP_INC, Last: true})
	define(tLDAT, "lda [t]",
		xfer(UNIT_T, UNIT_MAR),
		Control{Drive: MakeUnits(UNIT_MEM), Latch: MakeUnits(UNIT_A), Last: true},
	)
	define(tHLT, "hlt", Control{Halt: true})

	require.NoError(t, mc.Validate())

	return mc
}

// romImage returns a full size image starting with code.
func romImage(code ...byte) []byte {
	rom := make([]byte, MEMORY_SIZE)
	copy(rom, code)
	return rom
}

// newTestCpu creates a cpu on the test table.
func newTestCpu(t *testing.T, options Options, code ...byte) *Cpu {
	t.Helper()

	cpu, err := NewCpu(romImage(code...), testTable(t), options)
	require.NoError(t, err)
	return cpu
}

// runToHalt steps the cpu until it halts.
func runToHalt(t *testing.T, cpu *Cpu) {
	t.Helper()

	for range 10000 {
		err := cpu.Step()
		require.NoError(t, err)
		if cpu.Halted() {
			return
		}
	}
	t.Fatalf("cpu did not halt:\n%v", cpu)
}

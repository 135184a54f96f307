// Package microcode holds SIS16 control tables: the built-in instruction set,
// and tables authored as Starlark scripts.
package microcode

import (
	"github.com/sis16/svm/cpu"
)

// SIS16 opcodes. Operands follow the opcode byte; addresses are
// little-endian.
const (
	OP_NOP    = uint8(0x00) // nop
	OP_LDI_A  = uint8(0x01) // ldi a, imm8
	OP_LDI_B  = uint8(0x02) // ldi b, imm8
	OP_LDA    = uint8(0x03) // lda addr
	OP_STA    = uint8(0x04) // sta addr
	OP_LDB    = uint8(0x05) // ldb addr
	OP_STB    = uint8(0x06) // stb addr
	OP_ADD    = uint8(0x07) // a = a + b
	OP_SUB    = uint8(0x08) // a = a - b
	OP_AND    = uint8(0x09) // a = a & b
	OP_OR     = uint8(0x0a) // a = a | b
	OP_XOR    = uint8(0x0b) // a = a ^ b
	OP_SHL    = uint8(0x0c) // a = a << 1
	OP_SHR    = uint8(0x0d) // a = a >> 1
	OP_INC    = uint8(0x0e) // a = a + 1
	OP_DEC    = uint8(0x0f) // a = a - 1
	OP_NOT    = uint8(0x10) // a = ^a
	OP_CMP    = uint8(0x11) // flags of a - b
	OP_MOV_BA = uint8(0x12) // b = a
	OP_MOV_AB = uint8(0x13) // a = b
	OP_JMP    = uint8(0x14) // jmp addr
	OP_JZ     = uint8(0x15) // jz addr
	OP_JNZ    = uint8(0x16) // jnz addr
	OP_JC     = uint8(0x17) // jc addr
	OP_JNC    = uint8(0x18) // jnc addr
	OP_PUSH_A = uint8(0x19) // push a
	OP_POP_A  = uint8(0x1a) // pop a
	OP_PUSH_B = uint8(0x1b) // push b
	OP_POP_B  = uint8(0x1c) // pop b
	OP_OUT    = uint8(0x1d) // out = a
	OP_IN     = uint8(0x1e) // a = in
	OP_HLT    = uint8(0xff) // halt
)

func units(u ...cpu.Unit) cpu.Units {
	return cpu.MakeUnits(u...)
}

// move transfers src to every dst.
func move(src cpu.Unit, dst ...cpu.Unit) cpu.Control {
	return cpu.Control{Drive: units(src), Latch: units(dst...)}
}

// counting adds counters to a control word.
func counting(ctl cpu.Control, counters ...cpu.Counter) cpu.Control {
	ctl.Count |= cpu.MakeCounters(counters...)
	return ctl
}

// last ends the instruction after the control word.
func last(ctl cpu.Control) cpu.Control {
	ctl.Last = true
	return ctl
}

func when(cond cpu.Cond, ctl cpu.Control) cpu.Control {
	ctl.Cond = cond
	return ctl
}

func alu(op cpu.AluOp, dst ...cpu.Unit) cpu.Control {
	ctl := cpu.Control{Alu: op, Latch: units(dst...)}
	if len(dst) > 0 {
		ctl.Drive = units(cpu.UNIT_ALU)
	}
	return ctl
}

// Fetch is the SIS16 fetch prefix: the PC addresses memory, the byte read
// becomes the instruction register, and the PC counts past it.
func Fetch() []cpu.Control {
	return []cpu.Control{
		move(cpu.UNIT_PC, cpu.UNIT_MAR),
		counting(move(cpu.UNIT_MEM, cpu.UNIT_IR), cpu.COUNT_PC_INC),
	}
}

// immediate reads the next instruction byte into dst.
func immediate(dst cpu.Unit) []cpu.Control {
	return []cpu.Control{
		move(cpu.UNIT_PC, cpu.UNIT_MAR),
		last(counting(move(cpu.UNIT_MEM, dst), cpu.COUNT_PC_INC)),
	}
}

// address reads a little-endian address operand into T.
func address() []cpu.Control {
	return []cpu.Control{
		move(cpu.UNIT_PC, cpu.UNIT_MAR),
		counting(move(cpu.UNIT_MEM, cpu.UNIT_TL), cpu.COUNT_PC_INC),
		move(cpu.UNIT_PC, cpu.UNIT_MAR),
		counting(move(cpu.UNIT_MEM, cpu.UNIT_TH), cpu.COUNT_PC_INC),
	}
}

func load(dst cpu.Unit) []cpu.Control {
	return append(address(),
		move(cpu.UNIT_T, cpu.UNIT_MAR),
		last(move(cpu.UNIT_MEM, dst)),
	)
}

func store(src cpu.Unit) []cpu.Control {
	return append(address(),
		move(cpu.UNIT_T, cpu.UNIT_MAR),
		last(move(src, cpu.UNIT_MEM)),
	)
}

func jump(cond cpu.Cond) []cpu.Control {
	return append(address(),
		last(when(cond, move(cpu.UNIT_T, cpu.UNIT_PC))),
	)
}

func push(src cpu.Unit) []cpu.Control {
	return []cpu.Control{
		{Count: cpu.MakeCounters(cpu.COUNT_SP_DEC)},
		move(cpu.UNIT_STACK, cpu.UNIT_MAR),
		last(move(src, cpu.UNIT_MEM)),
	}
}

func pop(dst cpu.Unit) []cpu.Control {
	return []cpu.Control{
		move(cpu.UNIT_STACK, cpu.UNIT_MAR),
		last(counting(move(cpu.UNIT_MEM, dst), cpu.COUNT_SP_INC)),
	}
}

// SIS16 returns the built-in SIS16 control table.
func SIS16() (mc *cpu.Microcode) {
	mc = cpu.NewMicrocode("sis16", Fetch()...)

	define := func(opcode uint8, name string, steps ...cpu.Control) {
		err := mc.Define(opcode, name, steps...)
		if err != nil {
			panic(err)
		}
	}

	define(OP_NOP, "nop", last(cpu.Control{}))
	define(OP_LDI_A, "ldi a", immediate(cpu.UNIT_A)...)
	define(OP_LDI_B, "ldi b", immediate(cpu.UNIT_B)...)
	define(OP_LDA, "lda", load(cpu.UNIT_A)...)
	define(OP_STA, "sta", store(cpu.UNIT_A)...)
	define(OP_LDB, "ldb", load(cpu.UNIT_B)...)
	define(OP_STB, "stb", store(cpu.UNIT_B)...)

	define(OP_ADD, "add", last(alu(cpu.ALU_OP_ADD, cpu.UNIT_A)))
	define(OP_SUB, "sub", last(alu(cpu.ALU_OP_SUB, cpu.UNIT_A)))
	define(OP_AND, "and", last(alu(cpu.ALU_OP_AND, cpu.UNIT_A)))
	define(OP_OR, "or", last(alu(cpu.ALU_OP_OR, cpu.UNIT_A)))
	define(OP_XOR, "xor", last(alu(cpu.ALU_OP_XOR, cpu.UNIT_A)))
	define(OP_SHL, "shl", last(alu(cpu.ALU_OP_SHL, cpu.UNIT_A)))
	define(OP_SHR, "shr", last(alu(cpu.ALU_OP_SHR, cpu.UNIT_A)))
	define(OP_INC, "inc", last(alu(cpu.ALU_OP_INC, cpu.UNIT_A)))
	define(OP_DEC, "dec", last(alu(cpu.ALU_OP_DEC, cpu.UNIT_A)))
	define(OP_NOT, "not", last(alu(cpu.ALU_OP_NOT, cpu.UNIT_A)))
	define(OP_CMP, "cmp", last(alu(cpu.ALU_OP_SUB)))

	define(OP_MOV_BA, "mov b,a", last(move(cpu.UNIT_A, cpu.UNIT_B)))
	define(OP_MOV_AB, "mov a,b", last(move(cpu.UNIT_B, cpu.UNIT_A)))

	define(OP_JMP, "jmp", jump(cpu.COND_ALWAYS)...)
	define(OP_JZ, "jz", jump(cpu.COND_Z)...)
	define(OP_JNZ, "jnz", jump(cpu.COND_NZ)...)
	define(OP_JC, "jc", jump(cpu.COND_C)...)
	define(OP_JNC, "jnc", jump(cpu.COND_NC)...)

	define(OP_PUSH_A, "push a", push(cpu.UNIT_A)...)
	define(OP_POP_A, "pop a", pop(cpu.UNIT_A)...)
	define(OP_PUSH_B, "push b", push(cpu.UNIT_B)...)
	define(OP_POP_B, "pop b", pop(cpu.UNIT_B)...)

	define(OP_OUT, "out", last(move(cpu.UNIT_A, cpu.UNIT_OUT)))
	define(OP_IN, "in", last(move(cpu.UNIT_IN, cpu.UNIT_A)))

	define(OP_HLT, "hlt", cpu.Control{Halt: true})

	return
}

package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlags(t *testing.T) {
	assert := assert.New(t)

	fl := Flags{}
	assert.Equal("--", fl.String())

	fl.Update(0, false)
	assert.True(fl.Zero())
	assert.False(fl.Carry())
	assert.Equal("-Z", fl.String())

	fl.Update(0, true)
	assert.Equal("CZ", fl.String())

	fl.Update(0x8000, true)
	assert.False(fl.Zero())
	assert.True(fl.Carry())
	assert.Equal("C-", fl.String())
}

func TestCond_Holds(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		zero, carry bool
		holds       []Cond
	}{
		{false, false, []Cond{COND_ALWAYS, COND_NZ, COND_NC}},
		{true, false, []Cond{COND_ALWAYS, COND_Z, COND_NC}},
		{false, true, []Cond{COND_ALWAYS, COND_NZ, COND_C}},
		{true, true, []Cond{COND_ALWAYS, COND_Z, COND_C}},
	}

	for _, entry := range table {
		fl := Flags{zero: entry.zero, carry: entry.carry}
		for cond := range Cond(COND_COUNT) {
			expect := false
			for _, c := range entry.holds {
				expect = expect || c == cond
			}
			assert.Equal(expect, cond.Holds(fl), "%v %v", cond, fl)
		}
	}
}

func FuzzFlags(f *testing.F) {
	f.Add(uint8(ALU_OP_ADD), uint16(0), uint16(0), false)
	f.Add(uint8(ALU_OP_SUB), uint16(7), uint16(7), true)
	f.Add(uint8(ALU_OP_SHL), uint16(0x8000), uint16(0), false)

	f.Fuzz(func(t *testing.T, op uint8, a uint16, b uint16, carryIn bool) {
		assert := assert.New(t)

		aluOp := AluOp(op % ALU_OP_COUNT)
		result, carry := Alu(aluOp, a, b, carryIn)

		fl := Flags{}
		fl.Update(result, carry)
		assert.Equal(result == 0, fl.Zero())
		assert.Equal(carry, fl.Carry())
	})
}

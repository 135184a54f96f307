package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBus(t *testing.T) {
	assert := assert.New(t)

	bus := &Bus{}
	assert.Equal(uint16(0), bus.Value())
	assert.Equal(0, bus.Drivers())
	assert.False(bus.Conflict())

	bus.Drive(0x1200)
	assert.Equal(uint16(0x1200), bus.Value())
	assert.False(bus.Conflict())

	bus.Drive(0x0034)
	assert.Equal(uint16(0x1234), bus.Value())
	assert.Equal(2, bus.Drivers())
	assert.True(bus.Conflict())

	bus.Reset()
	assert.Equal(uint16(0), bus.Value())
	assert.Equal(0, bus.Drivers())
}

func TestResolve(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		values []uint16
		value  uint16
	}{
		{nil, 0},
		{[]uint16{0xabcd}, 0xabcd},
		{[]uint16{0x00ff, 0xff00}, 0xffff},
		{[]uint16{0x0001, 0x0002, 0x0004}, 0x0007},
		{[]uint16{0x5555, 0x5555}, 0x5555},
	}

	for _, entry := range table {
		assert.Equal(entry.value, Resolve(entry.values...), "%v", entry.values)
	}
}

func FuzzBus(f *testing.F) {
	f.Add(uint16(0), uint16(0))
	f.Add(uint16(0xffff), uint16(0))
	f.Add(uint16(0x1234), uint16(0x4321))
	f.Add(uint16(0x8000), uint16(0x0001))

	f.Fuzz(func(t *testing.T, a uint16, b uint16) {
		assert := assert.New(t)

		assert.Equal(a|b, Resolve(a, b))
		assert.Equal(Resolve(a, b), Resolve(b, a))

		bus := &Bus{}
		bus.Drive(a)
		bus.Drive(b)
		assert.Equal(a|b, bus.Value())
	})
}

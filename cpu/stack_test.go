package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStackPointer(t *testing.T) {
	assert := assert.New(t)

	sp := &StackPointer{base: DEFAULT_STACK_BASE}
	assert.Equal(uint8(0), sp.Value())
	assert.Equal(uint16(0xfe00), sp.Address())

	sp.dec()
	assert.Equal(uint8(0xff), sp.Value())
	assert.Equal(uint16(0xfeff), sp.Address())

	sp.dec()
	assert.Equal(uint16(0xfefe), sp.Address())

	sp.inc()
	sp.inc()
	assert.Equal(uint8(0), sp.Value())

	sp.dec()
	sp.reset()
	assert.Equal(uint8(0), sp.Value())
	assert.Equal(uint16(0xfe00), sp.Address())
}

func TestStackPointer_Window(t *testing.T) {
	assert := assert.New(t)

	sp := &StackPointer{base: 0x9000}
	for range 0x100 {
		address := sp.Address()
		assert.GreaterOrEqual(address, uint16(0x9000))
		assert.Less(address, uint16(0x9000+STACK_WINDOW))
		sp.inc()
	}
	assert.Equal(uint8(0), sp.Value())
}

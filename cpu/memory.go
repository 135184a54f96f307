package cpu

import (
	"errors"
	"slices"
)

// Memory is the ROM and RAM address spaces behind the address decoder.
//
// Addresses below the split select ROM, the rest select RAM; in both the
// address is the array index. 0xffff lies past the end of both images.
type Memory struct {
	rom   [MEMORY_SIZE]byte
	ram   [MEMORY_SIZE]byte
	split uint16
}

// Split returns the first RAM address.
func (mem *Memory) Split() uint16 {
	return mem.split
}

// Decode selects the arena and offset of an address.
func (mem *Memory) Decode(address uint16) (arena Arena, offset int, err error) {
	switch {
	case int(address) >= MEMORY_SIZE:
		arena = ARENA_NONE
		err = errors.Join(ErrUnmapped, ErrAddress(address))
		return
	case address < mem.split:
		arena = ARENA_ROM
	default:
		arena = ARENA_RAM
	}
	offset = int(address)
	return
}

// Read returns the byte at an address.
func (mem *Memory) Read(address uint16) (value byte, err error) {
	arena, offset, err := mem.Decode(address)
	if err != nil {
		return
	}

	switch arena {
	case ARENA_ROM:
		value = mem.rom[offset]
	case ARENA_RAM:
		value = mem.ram[offset]
	}
	return
}

// Write stores a byte at a RAM address. ROM is never modified.
func (mem *Memory) Write(address uint16, value byte) (err error) {
	arena, offset, err := mem.Decode(address)
	if err != nil {
		return
	}

	if arena == ARENA_ROM {
		err = errors.Join(ErrIllegalWrite, ErrAddress(address))
		return
	}
	mem.ram[offset] = value
	return
}

// Rom returns a copy of the ROM image.
func (mem *Memory) Rom() []byte {
	return slices.Clone(mem.rom[:])
}

// Ram returns a copy of the RAM image.
func (mem *Memory) Ram() []byte {
	return slices.Clone(mem.ram[:])
}

func (mem *Memory) load(rom []byte) {
	copy(mem.rom[:], rom)
	clear(mem.ram[:])
}

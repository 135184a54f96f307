package cpu

const (
	MEMORY_SIZE        = 0xffff // Size of the ROM and RAM images, in bytes.
	DEFAULT_SPLIT      = 0x8000 // First RAM address; the top address bit selects RAM.
	DEFAULT_STACK_BASE = 0xfe00 // Base address of the 256-byte stack window.
	STACK_WINDOW       = 0x100  // Bytes addressable through the stack pointer.
)

// Arena is an address space selected by the address decoder.
type Arena int

//go:generate go tool stringer -linecomment -type=Arena
const (
	ARENA_NONE = Arena(0) // none
	ARENA_ROM  = Arena(1) // rom
	ARENA_RAM  = Arena(2) // ram
)

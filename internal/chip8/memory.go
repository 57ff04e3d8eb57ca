package chip8

import "fmt"

// Memory layout constants.
const (
	// MemorySize is the size of the addressable store in bytes.
	MemorySize = 4096

	// ProgramStart is the memory address where programs begin execution.
	// Programs are loaded at address 0x200 in the virtual machine's
	// memory space, but stored starting at offset 0x0 in ROM files.
	ProgramStart Address = 0x200

	// ProgramStartETI is the alternative program address used by ROMs
	// written for the ETI-660 computer.
	ProgramStartETI Address = 0x600

	// MaxAddress is the highest valid address in the memory space.
	MaxAddress Address = 0xFFF
)

// MemoryError reports an access outside the addressable store.
type MemoryError struct {
	Access string // the failed access kind: read, write or load
	Addr   uint16
}

func (e MemoryError) Error() string {
	return fmt.Sprintf("memory %s at address %04x out of range", e.Access, e.Addr)
}

// Memory is the 4KB addressable store of the machine. The reserved
// space below ProgramStart holds the font glyphs, programs occupy the
// space above. Every access is bounds checked, multi byte operations
// fail if any touched byte falls outside the store.
type Memory struct {
	data [MemorySize]byte
}

// NewMemory returns a zeroed memory with the font glyphs installed.
func NewMemory() *Memory {
	m := &Memory{}
	m.Reset()
	return m
}

// Reset zeroes the store and reinstalls the font glyphs. A loaded
// program does not survive a reset.
func (m *Memory) Reset() {
	m.data = [MemorySize]byte{}
	copy(m.data[FontStart:], fontSprites[:])
}

// Read returns the byte at the given address.
func (m *Memory) Read(addr Address) (byte, error) {
	if addr >= MemorySize {
		return 0, MemoryError{Access: "read", Addr: uint16(addr)}
	}
	return m.data[addr], nil
}

// Write stores a byte at the given address.
func (m *Memory) Write(addr Address, value byte) error {
	if addr >= MemorySize {
		return MemoryError{Access: "write", Addr: uint16(addr)}
	}
	m.data[addr] = value
	return nil
}

// ReadWord returns the big-endian 16 bit word at the given address.
func (m *Memory) ReadWord(addr Address) (uint16, error) {
	if addr+1 >= MemorySize || addr+1 < addr {
		return 0, MemoryError{Access: "read", Addr: uint16(addr)}
	}
	return uint16(m.data[addr])<<8 | uint16(m.data[addr+1]), nil
}

// WriteWord stores a 16 bit word big-endian at the given address.
func (m *Memory) WriteWord(addr Address, value uint16) error {
	if addr+1 >= MemorySize || addr+1 < addr {
		return MemoryError{Access: "write", Addr: uint16(addr)}
	}
	m.data[addr] = byte(value >> 8)
	m.data[addr+1] = byte(value)
	return nil
}

// Load copies a program image into the store starting at origin. The
// store is not modified if the image does not fit.
func (m *Memory) Load(origin Address, image []byte) error {
	if int(origin)+len(image) > MemorySize {
		return MemoryError{Access: "load", Addr: uint16(origin)}
	}
	copy(m.data[origin:], image)
	return nil
}

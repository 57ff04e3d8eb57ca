package chip8

import "fmt"

// InstructionSize is the size of an encoded instruction in bytes.
// Every CHIP-8 instruction occupies exactly one 16 bit word.
const InstructionSize = 2

// Opcode is the raw 16 bit encoding of a single instruction.
// Words are stored in memory big-endian, the most significant byte first.
type Opcode uint16

// X returns the first register selector, bits 8-11 of the word.
func (o Opcode) X() Register {
	return Register(o >> 8 & 0x0F)
}

// Y returns the second register selector, bits 4-7 of the word.
func (o Opcode) Y() Register {
	return Register(o >> 4 & 0x0F)
}

// N returns the 4 bit literal in the lowest nibble of the word.
func (o Opcode) N() Nibble {
	return Nibble(o & 0x0F)
}

// NN returns the 8 bit literal in the low byte of the word.
func (o Opcode) NN() byte {
	return byte(o)
}

// NNN returns the 12 bit address in the low three nibbles of the word.
func (o Opcode) NNN() Address {
	return Address(o) & AddressMask
}

// HighByte returns the byte stored at the lower memory address.
func (o Opcode) HighByte() byte {
	return byte(o >> 8)
}

// LowByte returns the byte stored at the higher memory address.
func (o Opcode) LowByte() byte {
	return byte(o)
}

// String returns the word as a 4 digit hex literal, for example 0x00E0.
func (o Opcode) String() string {
	return fmt.Sprintf("0x%04X", uint16(o))
}

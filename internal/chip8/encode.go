package chip8

// The instruction set reuses a small number of word layouts. Each
// builder assembles one layout from its operand fields, masking every
// field to its width.

// opWord builds a fixed word without operand fields.
func opWord(w uint16) Opcode {
	return Opcode(w)
}

// opNibble builds a word from a 12 bit prefix and a 4 bit literal.
func opNibble(prefix uint16, n Nibble) Opcode {
	return Opcode(prefix | uint16(n&0x0F))
}

// opAddr builds a word from a group nibble and a 12 bit address.
func opAddr(group uint16, addr Address) Opcode {
	return Opcode(group | uint16(addr&AddressMask))
}

// opRegByte builds a word from a group nibble, a register selector and
// a byte. The byte holds either an 8 bit literal or a sub-opcode.
func opRegByte(group uint16, x Register, b byte) Opcode {
	return Opcode(group | uint16(x&0x0F)<<8 | uint16(b))
}

// opRegRegNibble builds a word from a group nibble, two register
// selectors and a nibble. The nibble holds either a 4 bit literal or a
// sub-opcode.
func opRegRegNibble(group uint16, x, y Register, n Nibble) Opcode {
	return Opcode(group | uint16(x&0x0F)<<8 | uint16(y&0x0F)<<4 | uint16(n&0x0F))
}

// Encode returns the opcode word of the instruction. It is defined for
// every instruction built by this package's constructors, an Op outside
// the instruction set encodes as the zero word.
func Encode(in Instruction) Opcode {
	switch in.Op {
	case OpSys:
		return opAddr(0x0000, in.Addr)
	case OpScrollDown:
		return opNibble(0x00C0, in.N)
	case OpScrollRight:
		return opWord(0x00FB)
	case OpScrollLeft:
		return opWord(0x00FC)
	case OpExit:
		return opWord(0x00FD)
	case OpLowRes:
		return opWord(0x00FE)
	case OpHighRes:
		return opWord(0x00FF)
	case OpClearScreen:
		return opWord(0x00E0)
	case OpReturn:
		return opWord(0x00EE)
	case OpJump:
		return opAddr(0x1000, in.Addr)
	case OpCall:
		return opAddr(0x2000, in.Addr)
	case OpSkipEqualByte:
		return opRegByte(0x3000, in.X, in.B)
	case OpSkipNotEqualByte:
		return opRegByte(0x4000, in.X, in.B)
	case OpSkipEqual:
		return opRegRegNibble(0x5000, in.X, in.Y, 0x0)
	case OpLoadByte:
		return opRegByte(0x6000, in.X, in.B)
	case OpAddByte:
		return opRegByte(0x7000, in.X, in.B)
	case OpLoad:
		return opRegRegNibble(0x8000, in.X, in.Y, 0x0)
	case OpOr:
		return opRegRegNibble(0x8000, in.X, in.Y, 0x1)
	case OpAnd:
		return opRegRegNibble(0x8000, in.X, in.Y, 0x2)
	case OpXor:
		return opRegRegNibble(0x8000, in.X, in.Y, 0x3)
	case OpAdd:
		return opRegRegNibble(0x8000, in.X, in.Y, 0x4)
	case OpSub:
		return opRegRegNibble(0x8000, in.X, in.Y, 0x5)
	case OpShiftRight:
		return opRegRegNibble(0x8000, in.X, in.Y, 0x6)
	case OpSubN:
		return opRegRegNibble(0x8000, in.X, in.Y, 0x7)
	case OpShiftLeft:
		return opRegRegNibble(0x8000, in.X, in.Y, 0xE)
	case OpSkipNotEqual:
		return opRegRegNibble(0x9000, in.X, in.Y, 0x0)
	case OpLoadI:
		return opAddr(0xA000, in.Addr)
	case OpJumpV0:
		return opAddr(0xB000, in.Addr)
	case OpRandom:
		return opRegByte(0xC000, in.X, in.B)
	case OpDraw:
		return opRegRegNibble(0xD000, in.X, in.Y, in.N)
	case OpSkipKeyPressed:
		return opRegByte(0xE000, in.X, 0x9E)
	case OpSkipKeyNotPressed:
		return opRegByte(0xE000, in.X, 0xA1)
	case OpLoadDelay:
		return opRegByte(0xF000, in.X, 0x07)
	case OpWaitKey:
		return opRegByte(0xF000, in.X, 0x0A)
	case OpSetDelay:
		return opRegByte(0xF000, in.X, 0x15)
	case OpSetSound:
		return opRegByte(0xF000, in.X, 0x18)
	case OpAddI:
		return opRegByte(0xF000, in.X, 0x1E)
	case OpLoadSprite:
		return opRegByte(0xF000, in.X, 0x29)
	case OpStoreBCD:
		return opRegByte(0xF000, in.X, 0x33)
	case OpStoreRegisters:
		return opRegByte(0xF000, in.X, 0x55)
	case OpLoadRegisters:
		return opRegByte(0xF000, in.X, 0x65)
	default:
		return 0
	}
}

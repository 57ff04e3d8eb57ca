package chip8

import "fmt"

// DecodeError reports an opcode word whose bit pattern matches no
// instruction of the CHIP-8 and Super-CHIP instruction set.
type DecodeError struct {
	Opcode Opcode
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("unsupported opcode %s", e.Opcode)
}

// Decode translates an opcode word into its instruction. Every word
// maps to exactly one instruction or fails with a DecodeError, there is
// no silent fallback for unknown patterns. Decode and Encode are
// inverse to each other over the instruction set.
func Decode(op Opcode) (Instruction, error) {
	switch uint16(op) >> 12 {
	case 0x0:
		return decodeSystem(op), nil
	case 0x1:
		return Jump(op.NNN()), nil
	case 0x2:
		return Call(op.NNN()), nil
	case 0x3:
		return SkipEqualByte(op.X(), op.NN()), nil
	case 0x4:
		return SkipNotEqualByte(op.X(), op.NN()), nil
	case 0x5:
		if op.N() != 0x0 {
			return Instruction{}, DecodeError{Opcode: op}
		}
		return SkipEqual(op.X(), op.Y()), nil
	case 0x6:
		return LoadByte(op.X(), op.NN()), nil
	case 0x7:
		return AddByte(op.X(), op.NN()), nil
	case 0x8:
		return decodeArithmetic(op)
	case 0x9:
		if op.N() != 0x0 {
			return Instruction{}, DecodeError{Opcode: op}
		}
		return SkipNotEqual(op.X(), op.Y()), nil
	case 0xA:
		return LoadI(op.NNN()), nil
	case 0xB:
		return JumpV0(op.NNN()), nil
	case 0xC:
		return Random(op.X(), op.NN()), nil
	case 0xD:
		return Draw(op.X(), op.Y(), op.N()), nil
	case 0xE:
		return decodeKey(op)
	default:
		return decodeTimerMemory(op)
	}
}

// decodeSystem decodes the 0nnn group. The fixed display and flow words
// occupy the space below 0x100, every other word of the group is a
// machine code routine call.
func decodeSystem(op Opcode) Instruction {
	if op.HighByte() != 0 {
		return Sys(op.NNN())
	}

	switch op.NN() {
	case 0xE0:
		return ClearScreen
	case 0xEE:
		return Return
	case 0xFB:
		return ScrollRight
	case 0xFC:
		return ScrollLeft
	case 0xFD:
		return Exit
	case 0xFE:
		return LowRes
	case 0xFF:
		return HighRes
	}

	if op.NN()&0xF0 == 0xC0 {
		return ScrollDown(op.N())
	}
	return Sys(op.NNN())
}

// decodeArithmetic decodes the 8xyn register operation group.
func decodeArithmetic(op Opcode) (Instruction, error) {
	x, y := op.X(), op.Y()

	switch op.N() {
	case 0x0:
		return Load(x, y), nil
	case 0x1:
		return Or(x, y), nil
	case 0x2:
		return And(x, y), nil
	case 0x3:
		return Xor(x, y), nil
	case 0x4:
		return Add(x, y), nil
	case 0x5:
		return Sub(x, y), nil
	case 0x6:
		return ShiftRight(x, y), nil
	case 0x7:
		return SubN(x, y), nil
	case 0xE:
		return ShiftLeft(x, y), nil
	default:
		return Instruction{}, DecodeError{Opcode: op}
	}
}

// decodeKey decodes the Exnn key state group.
func decodeKey(op Opcode) (Instruction, error) {
	switch op.NN() {
	case 0x9E:
		return SkipKeyPressed(op.X()), nil
	case 0xA1:
		return SkipKeyNotPressed(op.X()), nil
	default:
		return Instruction{}, DecodeError{Opcode: op}
	}
}

// decodeTimerMemory decodes the Fxnn timer and memory group.
func decodeTimerMemory(op Opcode) (Instruction, error) {
	switch op.NN() {
	case 0x07:
		return LoadDelay(op.X()), nil
	case 0x0A:
		return WaitKey(op.X()), nil
	case 0x15:
		return SetDelay(op.X()), nil
	case 0x18:
		return SetSound(op.X()), nil
	case 0x1E:
		return AddI(op.X()), nil
	case 0x29:
		return LoadSprite(op.X()), nil
	case 0x33:
		return StoreBCD(op.X()), nil
	case 0x55:
		return StoreRegisters(op.X()), nil
	case 0x65:
		return LoadRegisters(op.X()), nil
	default:
		return Instruction{}, DecodeError{Opcode: op}
	}
}

package chip8

import "fmt"

// Register selects one of the 16 general purpose registers V0-VF.
// Constructors and Decode mask the value to its low 4 bits.
type Register uint8

// VF is the flag register. Arithmetic, shift and draw instructions
// overwrite it, programs should not keep data in it.
const VF Register = 0xF

// Address is a 12 bit memory address. All address producers mask the
// value with AddressMask.
type Address uint16

// AddressMask limits addresses to the 4KB address space.
const AddressMask Address = 0xFFF

// Nibble is a 4 bit literal operand.
type Nibble uint8

// Op identifies an operation of the CHIP-8 and Super-CHIP instruction set.
type Op uint8

// The operations in instruction set order. The zero value is OpSys,
// matching the all-zero opcode word.
const (
	OpSys              Op = iota // 0nnn - call machine code routine (ignored)
	OpScrollDown                 // 00Cn - scroll display n lines down
	OpScrollRight                // 00FB - scroll display 4 pixels right
	OpScrollLeft                 // 00FC - scroll display 4 pixels left
	OpExit                       // 00FD - exit the interpreter
	OpLowRes                     // 00FE - switch to 64x32 display mode
	OpHighRes                    // 00FF - switch to 128x64 display mode
	OpClearScreen                // 00E0 - clear the display
	OpReturn                     // 00EE - return from subroutine
	OpJump                       // 1nnn - jump to address
	OpCall                       // 2nnn - call subroutine
	OpSkipEqualByte              // 3xkk - skip next instruction if Vx == kk
	OpSkipNotEqualByte           // 4xkk - skip next instruction if Vx != kk
	OpSkipEqual                  // 5xy0 - skip next instruction if Vx == Vy
	OpLoadByte                   // 6xkk - Vx = kk
	OpAddByte                    // 7xkk - Vx += kk, no carry flag
	OpLoad                       // 8xy0 - Vx = Vy
	OpOr                         // 8xy1 - Vx |= Vy
	OpAnd                        // 8xy2 - Vx &= Vy
	OpXor                        // 8xy3 - Vx ^= Vy
	OpAdd                        // 8xy4 - Vx += Vy, VF = carry
	OpSub                        // 8xy5 - Vx -= Vy, VF = no borrow
	OpShiftRight                 // 8xy6 - Vx >>= 1, VF = shifted out bit
	OpSubN                       // 8xy7 - Vx = Vy - Vx, VF = no borrow
	OpShiftLeft                  // 8xyE - Vx <<= 1, VF = shifted out bit
	OpSkipNotEqual               // 9xy0 - skip next instruction if Vx != Vy
	OpLoadI                      // Annn - I = nnn
	OpJumpV0                     // Bnnn - jump to nnn + V0
	OpRandom                     // Cxkk - Vx = random byte AND kk
	OpDraw                       // Dxyn - draw n byte sprite at (Vx, Vy), VF = collision
	OpSkipKeyPressed             // Ex9E - skip next instruction if key Vx is down
	OpSkipKeyNotPressed          // ExA1 - skip next instruction if key Vx is up
	OpLoadDelay                  // Fx07 - Vx = delay timer
	OpWaitKey                    // Fx0A - suspend until a key press, Vx = key
	OpSetDelay                   // Fx15 - delay timer = Vx
	OpSetSound                   // Fx18 - sound timer = Vx
	OpAddI                       // Fx1E - I += Vx
	OpLoadSprite                 // Fx29 - I = address of the glyph for digit Vx
	OpStoreBCD                   // Fx33 - memory[I..I+2] = decimal digits of Vx
	OpStoreRegisters             // Fx55 - memory[I..I+x] = V0..Vx
	OpLoadRegisters              // Fx65 - V0..Vx = memory[I..I+x]
)

// Instruction is the decoded form of an opcode word. Only the operand
// fields of the instruction's encoding are set, all others stay zero,
// so two instructions are equal exactly if they assemble to the same
// word. The zero value is sys $000.
type Instruction struct {
	Op Op

	X    Register // first register operand
	Y    Register // second register operand
	B    byte     // 8 bit literal
	N    Nibble   // 4 bit literal
	Addr Address  // 12 bit address operand
}

// Instructions that carry no operands.
var (
	ScrollRight = Instruction{Op: OpScrollRight}
	ScrollLeft  = Instruction{Op: OpScrollLeft}
	Exit        = Instruction{Op: OpExit}
	LowRes      = Instruction{Op: OpLowRes}
	HighRes     = Instruction{Op: OpHighRes}
	ClearScreen = Instruction{Op: OpClearScreen}
	Return      = Instruction{Op: OpReturn}
)

// Sys returns the machine code routine call for the given address.
// It exists for completeness, the CPU executes it as a no-op.
func Sys(addr Address) Instruction {
	return Instruction{Op: OpSys, Addr: addr & AddressMask}
}

// ScrollDown returns the instruction scrolling the display down by n lines.
func ScrollDown(n Nibble) Instruction {
	return Instruction{Op: OpScrollDown, N: n & 0x0F}
}

// Jump returns the unconditional jump to the given address.
func Jump(addr Address) Instruction {
	return Instruction{Op: OpJump, Addr: addr & AddressMask}
}

// Call returns the subroutine call of the given address.
func Call(addr Address) Instruction {
	return Instruction{Op: OpCall, Addr: addr & AddressMask}
}

// SkipEqualByte returns the skip of the next instruction if Vx equals b.
func SkipEqualByte(x Register, b byte) Instruction {
	return Instruction{Op: OpSkipEqualByte, X: x & 0x0F, B: b}
}

// SkipNotEqualByte returns the skip of the next instruction if Vx does
// not equal b.
func SkipNotEqualByte(x Register, b byte) Instruction {
	return Instruction{Op: OpSkipNotEqualByte, X: x & 0x0F, B: b}
}

// SkipEqual returns the skip of the next instruction if Vx equals Vy.
func SkipEqual(x, y Register) Instruction {
	return Instruction{Op: OpSkipEqual, X: x & 0x0F, Y: y & 0x0F}
}

// SkipNotEqual returns the skip of the next instruction if Vx does not
// equal Vy.
func SkipNotEqual(x, y Register) Instruction {
	return Instruction{Op: OpSkipNotEqual, X: x & 0x0F, Y: y & 0x0F}
}

// LoadByte returns the load of the literal b into Vx.
func LoadByte(x Register, b byte) Instruction {
	return Instruction{Op: OpLoadByte, X: x & 0x0F, B: b}
}

// AddByte returns the add of the literal b to Vx. The add wraps and
// leaves the flag register untouched.
func AddByte(x Register, b byte) Instruction {
	return Instruction{Op: OpAddByte, X: x & 0x0F, B: b}
}

// Load returns the copy of Vy into Vx.
func Load(x, y Register) Instruction {
	return Instruction{Op: OpLoad, X: x & 0x0F, Y: y & 0x0F}
}

// Or returns the bitwise or of Vy into Vx.
func Or(x, y Register) Instruction {
	return Instruction{Op: OpOr, X: x & 0x0F, Y: y & 0x0F}
}

// And returns the bitwise and of Vy into Vx.
func And(x, y Register) Instruction {
	return Instruction{Op: OpAnd, X: x & 0x0F, Y: y & 0x0F}
}

// Xor returns the bitwise exclusive or of Vy into Vx.
func Xor(x, y Register) Instruction {
	return Instruction{Op: OpXor, X: x & 0x0F, Y: y & 0x0F}
}

// Add returns the add of Vy to Vx, setting VF to the carry.
func Add(x, y Register) Instruction {
	return Instruction{Op: OpAdd, X: x & 0x0F, Y: y & 0x0F}
}

// Sub returns the subtract of Vy from Vx, setting VF to 1 if no borrow
// occurred.
func Sub(x, y Register) Instruction {
	return Instruction{Op: OpSub, X: x & 0x0F, Y: y & 0x0F}
}

// ShiftRight returns the right shift of Vx by one bit, setting VF to
// the shifted out bit. The y operand is part of the encoding but does
// not take part in the operation.
func ShiftRight(x, y Register) Instruction {
	return Instruction{Op: OpShiftRight, X: x & 0x0F, Y: y & 0x0F}
}

// SubN returns the reversed subtract Vx = Vy - Vx, setting VF to 1 if
// no borrow occurred.
func SubN(x, y Register) Instruction {
	return Instruction{Op: OpSubN, X: x & 0x0F, Y: y & 0x0F}
}

// ShiftLeft returns the left shift of Vx by one bit, setting VF to the
// shifted out bit. The y operand is part of the encoding but does not
// take part in the operation.
func ShiftLeft(x, y Register) Instruction {
	return Instruction{Op: OpShiftLeft, X: x & 0x0F, Y: y & 0x0F}
}

// LoadI returns the load of the address into the index register I.
func LoadI(addr Address) Instruction {
	return Instruction{Op: OpLoadI, Addr: addr & AddressMask}
}

// JumpV0 returns the indexed jump to addr + V0.
func JumpV0(addr Address) Instruction {
	return Instruction{Op: OpJumpV0, Addr: addr & AddressMask}
}

// Random returns the load of a random byte masked with b into Vx.
func Random(x Register, b byte) Instruction {
	return Instruction{Op: OpRandom, X: x & 0x0F, B: b}
}

// Draw returns the draw of an n byte sprite from memory at I to the
// display position (Vx, Vy). With n = 0 a Super-CHIP 16 row sprite is
// drawn instead.
func Draw(x, y Register, n Nibble) Instruction {
	return Instruction{Op: OpDraw, X: x & 0x0F, Y: y & 0x0F, N: n & 0x0F}
}

// SkipKeyPressed returns the skip of the next instruction if the key
// named by Vx is held down.
func SkipKeyPressed(x Register) Instruction {
	return Instruction{Op: OpSkipKeyPressed, X: x & 0x0F}
}

// SkipKeyNotPressed returns the skip of the next instruction if the key
// named by Vx is not held down.
func SkipKeyNotPressed(x Register) Instruction {
	return Instruction{Op: OpSkipKeyNotPressed, X: x & 0x0F}
}

// LoadDelay returns the load of the delay timer value into Vx.
func LoadDelay(x Register) Instruction {
	return Instruction{Op: OpLoadDelay, X: x & 0x0F}
}

// WaitKey returns the instruction suspending execution until a key is
// pressed, storing the key in Vx.
func WaitKey(x Register) Instruction {
	return Instruction{Op: OpWaitKey, X: x & 0x0F}
}

// SetDelay returns the load of Vx into the delay timer.
func SetDelay(x Register) Instruction {
	return Instruction{Op: OpSetDelay, X: x & 0x0F}
}

// SetSound returns the load of Vx into the sound timer.
func SetSound(x Register) Instruction {
	return Instruction{Op: OpSetSound, X: x & 0x0F}
}

// AddI returns the add of Vx to the index register I.
func AddI(x Register) Instruction {
	return Instruction{Op: OpAddI, X: x & 0x0F}
}

// LoadSprite returns the load of the font glyph address for digit Vx
// into the index register I.
func LoadSprite(x Register) Instruction {
	return Instruction{Op: OpLoadSprite, X: x & 0x0F}
}

// StoreBCD returns the store of the three decimal digits of Vx to
// memory at I, I+1 and I+2.
func StoreBCD(x Register) Instruction {
	return Instruction{Op: OpStoreBCD, X: x & 0x0F}
}

// StoreRegisters returns the store of V0 through Vx to memory starting
// at I. I itself is not changed.
func StoreRegisters(x Register) Instruction {
	return Instruction{Op: OpStoreRegisters, X: x & 0x0F}
}

// LoadRegisters returns the load of V0 through Vx from memory starting
// at I. I itself is not changed.
func LoadRegisters(x Register) Instruction {
	return Instruction{Op: OpLoadRegisters, X: x & 0x0F}
}

// IsJump returns whether the instruction redirects control flow
// unconditionally.
func (in Instruction) IsJump() bool {
	return in.Op == OpJump || in.Op == OpJumpV0
}

// IsCall returns whether the instruction calls a subroutine.
func (in Instruction) IsCall() bool {
	return in.Op == OpCall
}

// IsReturn returns whether the instruction returns from a subroutine.
func (in Instruction) IsReturn() bool {
	return in.Op == OpReturn
}

// IsSkip returns whether the instruction conditionally skips the
// following instruction.
func (in Instruction) IsSkip() bool {
	switch in.Op {
	case OpSkipEqualByte, OpSkipNotEqualByte, OpSkipEqual, OpSkipNotEqual,
		OpSkipKeyPressed, OpSkipKeyNotPressed:
		return true
	default:
		return false
	}
}

// IsDataReference returns whether the instruction references memory as
// data through the index register.
func (in Instruction) IsDataReference() bool {
	return in.Op == OpLoadI
}

// String returns the instruction in assembly notation, for example
// "ld V2, $34" or "drw V2, V3, $5". An Op outside the instruction set
// formats as an empty string.
func (in Instruction) String() string {
	switch in.Op {
	case OpSys:
		return fmt.Sprintf("sys $%03X", uint16(in.Addr))
	case OpScrollDown:
		return fmt.Sprintf("scd $%X", uint8(in.N))
	case OpScrollRight:
		return "scr"
	case OpScrollLeft:
		return "scl"
	case OpExit:
		return "exit"
	case OpLowRes:
		return "low"
	case OpHighRes:
		return "high"
	case OpClearScreen:
		return "cls"
	case OpReturn:
		return "ret"
	case OpJump:
		return fmt.Sprintf("jp $%03X", uint16(in.Addr))
	case OpCall:
		return fmt.Sprintf("call $%03X", uint16(in.Addr))
	case OpSkipEqualByte:
		return fmt.Sprintf("se V%X, $%02X", uint8(in.X), in.B)
	case OpSkipNotEqualByte:
		return fmt.Sprintf("sne V%X, $%02X", uint8(in.X), in.B)
	case OpSkipEqual:
		return fmt.Sprintf("se V%X, V%X", uint8(in.X), uint8(in.Y))
	case OpLoadByte:
		return fmt.Sprintf("ld V%X, $%02X", uint8(in.X), in.B)
	case OpAddByte:
		return fmt.Sprintf("add V%X, $%02X", uint8(in.X), in.B)
	case OpLoad:
		return fmt.Sprintf("ld V%X, V%X", uint8(in.X), uint8(in.Y))
	case OpOr:
		return fmt.Sprintf("or V%X, V%X", uint8(in.X), uint8(in.Y))
	case OpAnd:
		return fmt.Sprintf("and V%X, V%X", uint8(in.X), uint8(in.Y))
	case OpXor:
		return fmt.Sprintf("xor V%X, V%X", uint8(in.X), uint8(in.Y))
	case OpAdd:
		return fmt.Sprintf("add V%X, V%X", uint8(in.X), uint8(in.Y))
	case OpSub:
		return fmt.Sprintf("sub V%X, V%X", uint8(in.X), uint8(in.Y))
	case OpShiftRight:
		return fmt.Sprintf("shr V%X", uint8(in.X))
	case OpSubN:
		return fmt.Sprintf("subn V%X, V%X", uint8(in.X), uint8(in.Y))
	case OpShiftLeft:
		return fmt.Sprintf("shl V%X", uint8(in.X))
	case OpSkipNotEqual:
		return fmt.Sprintf("sne V%X, V%X", uint8(in.X), uint8(in.Y))
	case OpLoadI:
		return fmt.Sprintf("ld I, $%03X", uint16(in.Addr))
	case OpJumpV0:
		return fmt.Sprintf("jp V0, $%03X", uint16(in.Addr))
	case OpRandom:
		return fmt.Sprintf("rnd V%X, $%02X", uint8(in.X), in.B)
	case OpDraw:
		return fmt.Sprintf("drw V%X, V%X, $%X", uint8(in.X), uint8(in.Y), uint8(in.N))
	case OpSkipKeyPressed:
		return fmt.Sprintf("skp V%X", uint8(in.X))
	case OpSkipKeyNotPressed:
		return fmt.Sprintf("sknp V%X", uint8(in.X))
	case OpLoadDelay:
		return fmt.Sprintf("ld V%X, DT", uint8(in.X))
	case OpWaitKey:
		return fmt.Sprintf("ld V%X, K", uint8(in.X))
	case OpSetDelay:
		return fmt.Sprintf("ld DT, V%X", uint8(in.X))
	case OpSetSound:
		return fmt.Sprintf("ld ST, V%X", uint8(in.X))
	case OpAddI:
		return fmt.Sprintf("add I, V%X", uint8(in.X))
	case OpLoadSprite:
		return fmt.Sprintf("ld F, V%X", uint8(in.X))
	case OpStoreBCD:
		return fmt.Sprintf("ld B, V%X", uint8(in.X))
	case OpStoreRegisters:
		return fmt.Sprintf("ld [I], V%X", uint8(in.X))
	case OpLoadRegisters:
		return fmt.Sprintf("ld V%X, [I]", uint8(in.X))
	default:
		return ""
	}
}

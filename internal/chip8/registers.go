package chip8

import (
	"errors"
	"fmt"
)

// Register file constants.
const (
	// NumRegisters is the number of general purpose registers.
	NumRegisters = 16

	// StackDepth is the maximum number of nested subroutine calls.
	StackDepth = 16
)

// Call stack errors.
var (
	ErrStackOverflow  = errors.New("call stack overflow")
	ErrStackUnderflow = errors.New("call stack underflow")
)

// RegisterFile bundles the register state of one machine: the general
// purpose registers V0-VF, the index register I, the delay and sound
// timers, the program counter and the call stack. The index register
// and the program counter are kept masked to the 12 bit address space,
// use the setters to change them.
type RegisterFile struct {
	// V contains the general purpose registers. VF doubles as the flag
	// register of arithmetic, shift and draw instructions.
	V [NumRegisters]uint8

	// DT is the delay timer, decremented by TickTimers until it
	// reaches zero.
	DT uint8

	// ST is the sound timer, a tone plays while it is non-zero.
	ST uint8

	i     Address
	pc    Address
	sp    uint8
	stack [StackDepth]Address
}

// NewRegisterFile returns a zeroed register file with the program
// counter set to the given origin.
func NewRegisterFile(origin Address) *RegisterFile {
	r := &RegisterFile{}
	r.Reset(origin)
	return r
}

// Reset zeroes all registers, empties the call stack and sets the
// program counter to the given origin.
func (r *RegisterFile) Reset(origin Address) {
	*r = RegisterFile{pc: origin & AddressMask}
}

// I returns the index register.
func (r *RegisterFile) I() Address {
	return r.i
}

// SetI stores an address in the index register, masked to 12 bits.
func (r *RegisterFile) SetI(addr Address) {
	r.i = addr & AddressMask
}

// PC returns the program counter.
func (r *RegisterFile) PC() Address {
	return r.pc
}

// SetPC stores an address in the program counter, masked to 12 bits.
func (r *RegisterFile) SetPC(addr Address) {
	r.pc = addr & AddressMask
}

// AdvancePC moves the program counter to the next instruction word.
func (r *RegisterFile) AdvancePC() {
	r.SetPC(r.pc + InstructionSize)
}

// SP returns the number of return addresses on the call stack.
func (r *RegisterFile) SP() uint8 {
	return r.sp
}

// Push stores a return address on the call stack. Exceeding the stack
// depth fails with ErrStackOverflow.
func (r *RegisterFile) Push(addr Address) error {
	if r.sp >= StackDepth {
		return ErrStackOverflow
	}
	r.stack[r.sp] = addr & AddressMask
	r.sp++
	return nil
}

// Pop removes and returns the most recently pushed return address.
// Popping an empty stack fails with ErrStackUnderflow.
func (r *RegisterFile) Pop() (Address, error) {
	if r.sp == 0 {
		return 0, ErrStackUnderflow
	}
	r.sp--
	return r.stack[r.sp], nil
}

// String returns a compact register dump for tracing.
func (r *RegisterFile) String() string {
	return fmt.Sprintf("pc=$%03X i=$%03X sp=%d dt=%d st=%d v=%X",
		uint16(r.pc), uint16(r.i), r.sp, r.DT, r.ST, r.V[:])
}

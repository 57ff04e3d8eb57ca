package disasm

import (
	"github.com/lovesegfault/chirp/internal/chip8"
	"github.com/lovesegfault/chirp/internal/program"
)

// offset defines the content of an offset in a program that can represent data or code.
type offset struct {
	program.Offset

	instruction chip8.Instruction // instruction that starts at this offset

	branchFrom  []uint16 // list of all addresses that branch to this offset
	branchingTo string   // label to jump to if instruction branches
}

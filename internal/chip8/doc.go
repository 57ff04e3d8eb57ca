// Package chip8 implements the CHIP-8 and Super-CHIP virtual machine.
// CHIP-8 is an interpreted programming language from the 1970s designed
// for simple games, extended in the early 1990s by the Super-CHIP
// instructions of the HP48 calculator community.
//
// The package covers the instruction set codec and the execution engine:
//
//   - Opcode is the raw 16 bit instruction word, stored in memory most
//     significant byte first.
//   - Instruction is the decoded form, built by per-instruction
//     constructors and turned back into words by Encode.
//   - Decode classifies every word as exactly one instruction or fails
//     with a DecodeError.
//   - CPU executes instructions against its register file, memory and
//     the Display and Keypad collaborators.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x1FF: Interpreter and font data (512 bytes)
//	0x200-0xFFF: User program space (3584 bytes)
//
// The display buffer and the call stack are maintained outside of the
// 4KB main memory address space.
package chip8

package disasm

import (
	"context"
	"fmt"

	"github.com/lovesegfault/chirp/internal/chip8"
	"github.com/lovesegfault/chirp/internal/program"
	"github.com/retroenv/retrogolib/log"
)

// followExecutionFlow parses the instructions of the program, starting
// at the entry point and following all reachable branches.
func (dis *Disasm) followExecutionFlow(ctx context.Context) error {
	for address := dis.addressToDisassemble(); address != 0; address = dis.addressToDisassemble() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("following execution flow: %w", err)
		}

		index := dis.addressToIndex(address)
		offsetInfo, inspectCode := dis.initializeOffsetInfo(index)
		if !inspectCode {
			continue
		}

		offsetInfo.Code = offsetInfo.instruction.String()

		dis.logger.Debug("Disassembled instruction",
			log.String("address", fmt.Sprintf("$%04X", address)),
			log.String("code", offsetInfo.Code))

		dis.handleControlFlow(address, offsetInfo.instruction)
		dis.checkInstructionOverlap(offsetInfo, index)
		dis.changeIndexRangeToCode(offsetInfo.Data, index)
	}
	return nil
}

// addressToDisassemble returns the next address to disassemble, if there
// are no more addresses to parse, 0 will be returned.
func (dis *Disasm) addressToDisassemble() uint16 {
	if len(dis.offsetsToParse) == 0 {
		return 0
	}
	address := dis.offsetsToParse[0]
	dis.offsetsToParse = dis.offsetsToParse[1:]
	return address
}

// addAddressToParse adds an address to the list to be processed if the
// address has not been processed yet.
func (dis *Disasm) addAddressToParse(address, from uint16, fromInstruction chip8.Instruction,
	isABranchDestination bool) {

	if !dis.addressInImage(address) {
		if isABranchDestination {
			dis.logger.Debug("Branch destination outside of ROM image",
				log.String("address", fmt.Sprintf("$%04X", address)),
				log.String("from", fmt.Sprintf("$%04X", from)))
		}
		return
	}

	offsetInfo := &dis.offsets[dis.addressToIndex(address)]

	if isABranchDestination {
		if fromInstruction.IsCall() {
			offsetInfo.SetType(program.CallDestination)
		}
		if from > 0 {
			offsetInfo.branchFrom = append(offsetInfo.branchFrom, from)
		}
		dis.branchDestinations.Add(address)
	}

	if dis.offsetsToParseAdded.Contains(address) {
		return
	}
	dis.offsetsToParseAdded.Add(address)
	dis.offsetsToParse = append(dis.offsetsToParse, address)
}

// initializeOffsetInfo initializes the offset info for the given offset and
// returns whether the offset should be inspected as code.
func (dis *Disasm) initializeOffsetInfo(index int) (*offset, bool) {
	offsetInfo := &dis.offsets[index]

	if offsetInfo.IsType(program.CodeOffset) {
		return offsetInfo, false // already part of an instruction
	}

	b1 := dis.image[index]
	offsetInfo.Data = make([]byte, 1, chip8.InstructionSize)
	offsetInfo.Data[0] = b1

	if offsetInfo.IsType(program.DataOffset) {
		return offsetInfo, false // was identified as a data reference target
	}

	if index+1 >= len(dis.image) {
		// an instruction would exceed the ROM image, consider it data
		offsetInfo.SetType(program.DataOffset)
		return offsetInfo, false
	}
	b2 := dis.image[index+1]

	opcode := chip8.Opcode(uint16(b1)<<8 | uint16(b2))
	in, err := chip8.Decode(opcode)
	if err != nil {
		// consider an unknown instruction as start of data
		offsetInfo.SetType(program.DataOffset)
		return offsetInfo, false
	}

	offsetInfo.Data = append(offsetInfo.Data, b2)
	offsetInfo.instruction = in
	return offsetInfo, true
}

// handleControlFlow adds the addresses that the execution can continue
// at after the instruction to the parse queue.
func (dis *Disasm) handleControlFlow(address uint16, in chip8.Instruction) {
	nextAddress := address + chip8.InstructionSize

	switch {
	case in.IsJump():
		// for a jump table dispatch the base address is followed, the
		// register offset targets stay undiscovered
		dis.addAddressToParse(uint16(in.Addr), address, in, true)

	case in.IsCall():
		dis.addAddressToParse(uint16(in.Addr), address, in, true)
		dis.addAddressToParse(nextAddress, address, in, false)

	case in.IsSkip():
		dis.addAddressToParse(nextAddress, address, in, false)
		dis.addAddressToParse(nextAddress+chip8.InstructionSize, address, in, false)

	case in.IsDataReference():
		dis.handleDataReference(uint16(in.Addr), address, in)
		dis.addAddressToParse(nextAddress, address, in, false)

	case in.IsReturn() || in.Op == chip8.OpExit:
		// execution does not continue behind this instruction

	default:
		dis.addAddressToParse(nextAddress, address, in, false)
	}
}

// handleDataReference marks the target of an index register load as data
// and registers it as a label destination.
func (dis *Disasm) handleDataReference(target, from uint16, in chip8.Instruction) {
	if !dis.addressInImage(target) {
		return
	}

	dis.addAddressToParse(target, from, in, true)

	offsetInfo := &dis.offsets[dis.addressToIndex(target)]
	if !offsetInfo.IsType(program.CodeOffset) {
		offsetInfo.SetType(program.DataOffset)
	}
}

// checkInstructionOverlap cuts the instruction short in case it overlaps with an
// already parsed instruction.
func (dis *Disasm) checkInstructionOverlap(offsetInfo *offset, index int) {
	for i := 1; i < len(offsetInfo.Data) && index+i < len(dis.offsets); i++ {
		offsetInfoFollowing := &dis.offsets[index+i]
		if !offsetInfoFollowing.IsType(program.CodeOffset) {
			continue
		}

		offsetInfoFollowing.Comment = "branch into instruction detected"
		offsetInfo.Comment = offsetInfo.Code
		offsetInfo.Data = offsetInfo.Data[:i]
		offsetInfo.Code = ""
		offsetInfo.ClearType(program.CodeOffset)
		offsetInfo.SetType(program.CodeAsData | program.DataOffset)
		return
	}
}

// changeIndexRangeToCode sets a range of offsets to code types.
func (dis *Disasm) changeIndexRangeToCode(data []byte, index int) {
	if dis.offsets[index].IsType(program.CodeAsData) {
		return
	}
	for i := 0; i < len(data) && index+i < len(dis.offsets); i++ {
		offsetInfo := &dis.offsets[index+i]
		offsetInfo.SetType(program.CodeOffset)
	}
}

// addressInImage returns whether the address lies inside the ROM image.
func (dis *Disasm) addressInImage(address uint16) bool {
	return address >= dis.origin && int(address) < int(dis.origin)+len(dis.image)
}

// addressToIndex converts an address to an index into the ROM image.
func (dis *Disasm) addressToIndex(address uint16) int {
	return int(address - dis.origin)
}

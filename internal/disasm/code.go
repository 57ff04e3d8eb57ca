package disasm

import (
	"fmt"
	"slices"

	"github.com/lovesegfault/chirp/internal/program"
)

const (
	entryName   = "Start"
	funcNaming  = "_func_%04x"
	labelNaming = "_label_%04x"
	dataNaming  = "_data_%04x"
)

// processJumpDestinations processes all branch destinations and updates the
// callers with the generated destination label name.
func (dis *Disasm) processJumpDestinations() {
	branchDestinations := make([]uint16, 0, len(dis.branchDestinations))
	for dest := range dis.branchDestinations {
		branchDestinations = append(branchDestinations, dest)
	}
	slices.Sort(branchDestinations)

	for _, address := range branchDestinations {
		offsetInfo := &dis.offsets[dis.addressToIndex(address)]

		name := offsetInfo.Label
		if name == "" {
			switch {
			case offsetInfo.IsType(program.CallDestination):
				name = fmt.Sprintf(funcNaming, address)
			case offsetInfo.IsType(program.DataOffset) && !offsetInfo.IsType(program.CodeOffset):
				name = fmt.Sprintf(dataNaming, address)
			default:
				name = fmt.Sprintf(labelNaming, address)
			}
			offsetInfo.Label = name
		}

		// if the offset is marked as code but does not have opcode bytes, the
		// branch destination is inside the second byte of an instruction.
		if offsetInfo.IsType(program.CodeOffset) && len(offsetInfo.Data) == 0 {
			dis.handleJumpIntoInstruction(dis.addressToIndex(address))
		}

		for _, caller := range offsetInfo.branchFrom {
			callerInfo := &dis.offsets[dis.addressToIndex(caller)]
			callerInfo.branchingTo = name
		}
	}
}

// handleJumpIntoInstruction converts an instruction that has a branch
// destination inside its second opcode byte into data.
func (dis *Disasm) handleJumpIntoInstruction(index int) {
	// look backwards for the instruction start
	instructionStart := index - 1
	for ; len(dis.offsets[instructionStart].Data) == 0; instructionStart-- {
	}

	offsetInfo := &dis.offsets[instructionStart]
	offsetInfo.Comment = fmt.Sprintf("branch into instruction detected: %s", offsetInfo.Code)
	offsetInfo.Code = ""
	dis.changeOffsetRangeToData(offsetInfo.Data, instructionStart)
}

// changeOffsetRangeToData sets a range of code offsets to data types.
// It combines all data bytes that are not split by a label.
func (dis *Disasm) changeOffsetRangeToData(data []byte, index int) {
	for i := 0; i < len(data); i++ {
		offsetInfo := &dis.offsets[index+i]

		noLabelOffsets := 1
		for j := i + 1; j < len(data); j++ {
			offsetInfoNext := &dis.offsets[index+j]
			if offsetInfoNext.Label == "" {
				offsetInfoNext.Data = nil
				offsetInfoNext.ClearType(program.CodeOffset)
				offsetInfoNext.SetType(program.CodeAsData | program.DataOffset)
				noLabelOffsets++
				continue
			}
			break
		}

		offsetInfo.Data = data[i : i+noLabelOffsets]
		offsetInfo.ClearType(program.CodeOffset)
		offsetInfo.SetType(program.CodeAsData | program.DataOffset)
		i += noLabelOffsets - 1
	}
}

// Package disasm implements a tracing disassembler for CHIP-8 ROM images.
package disasm

import (
	"context"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"strings"

	"github.com/lovesegfault/chirp/internal/chip8"
	"github.com/lovesegfault/chirp/internal/options"
	"github.com/lovesegfault/chirp/internal/program"
	"github.com/lovesegfault/chirp/internal/writer"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// Disasm implements a disassembler.
type Disasm struct {
	logger  *log.Logger
	options options.Disassembler

	name   string
	image  []byte
	origin uint16

	offsets []offset // one entry per byte of the ROM image

	branchDestinations set.Set[uint16] // set of all addresses that are branched to

	offsetsToParse      []uint16
	offsetsToParseAdded set.Set[uint16]
}

// New creates a new disassembler for a ROM image that is loaded at the
// given origin address.
func New(logger *log.Logger, name string, image []byte, origin uint16,
	options options.Disassembler) (*Disasm, error) {

	if len(image) == 0 {
		return nil, errors.New("ROM image is empty")
	}
	if int(origin)+len(image) > chip8.MemorySize {
		return nil, fmt.Errorf("ROM image of %d bytes does not fit into memory at origin $%03X",
			len(image), origin)
	}

	dis := &Disasm{
		logger:              logger,
		options:             options,
		name:                name,
		image:               image,
		origin:              origin,
		offsets:             make([]offset, len(image)),
		branchDestinations:  set.New[uint16](),
		offsetsToParseAdded: set.New[uint16](),
	}

	// the entry point label is fixed, labels of branch destinations are generated
	dis.offsets[0].Label = entryName
	dis.addAddressToParse(origin, 0, chip8.Instruction{}, false)
	return dis, nil
}

// Process disassembles the ROM image and writes the assembly listing to the writer.
func (dis *Disasm) Process(ctx context.Context, mainWriter io.Writer) (*program.Program, error) {
	if err := dis.followExecutionFlow(ctx); err != nil {
		return nil, err
	}

	dis.processData()
	dis.processJumpDestinations()

	app, err := dis.convertToProgram()
	if err != nil {
		return nil, err
	}

	fileWriter := writer.New(app, mainWriter, writer.Options{OffsetComments: dis.options.OffsetComments})
	if err := fileWriter.Write(); err != nil {
		return nil, fmt.Errorf("writing program to file: %w", err)
	}
	return app, nil
}

// processData sets all data bytes for offsets that have not been identified as code.
func (dis *Disasm) processData() {
	for i := range dis.offsets {
		offsetInfo := &dis.offsets[i]
		if offsetInfo.IsType(program.CodeOffset) || len(offsetInfo.Data) > 0 {
			continue
		}

		offsetInfo.SetType(program.DataOffset)
		offsetInfo.Data = []byte{dis.image[i]}
	}
}

// converts the internal disassembly representation to a program type that
// is used to generate the asm file.
func (dis *Disasm) convertToProgram() (*program.Program, error) {
	app := program.New(dis.name, dis.origin, len(dis.image))

	crc32q := crc32.MakeTable(crc32.IEEE)
	app.Checksum = crc32.Checksum(dis.image, crc32q)

	for i := range dis.offsets {
		offsetInfo := &dis.offsets[i]

		programOffset := offsetInfo.Offset
		if offsetInfo.branchingTo != "" {
			programOffset.Code = strings.Replace(programOffset.Code,
				fmt.Sprintf("$%03X", uint16(offsetInfo.instruction.Addr)), offsetInfo.branchingTo, 1)
		}

		if programOffset.IsType(program.CodeOffset) && !programOffset.IsType(program.DataOffset) &&
			len(programOffset.Data) > 0 {

			if err := dis.setComment(dis.origin+uint16(i), &programOffset); err != nil {
				return nil, err
			}
		}

		app.Offsets[i] = programOffset
	}
	return app, nil
}

// setComment generates and sets the comment of a code offset, containing the
// offset address and the hex encoded opcode bytes based on the options.
func (dis *Disasm) setComment(address uint16, programOffset *program.Offset) error {
	var comments []string

	if dis.options.OffsetComments {
		comments = []string{fmt.Sprintf("$%04X", address)}
	}

	if dis.options.HexComments {
		hexComment, err := programOffset.HexCodeComment()
		if err != nil {
			return fmt.Errorf("generating hex comment: %w", err)
		}
		comments = append(comments, hexComment)
	}

	if programOffset.Comment != "" {
		comments = append(comments, programOffset.Comment)
	}
	programOffset.Comment = strings.Join(comments, "  ")
	return nil
}

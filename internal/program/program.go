// Package program represents a disassembled program.
package program

import (
	"fmt"
	"strings"
)

// Offset defines the content of an offset in a program that can represent data or code.
type Offset struct {
	Data []byte // data byte or both opcode bytes of an instruction starting at this offset

	Type OffsetType

	Label        string // name of label or subroutine if identified as a branch destination
	Code         string // asm output of this instruction
	Comment      string
	LabelComment string
}

// HexCodeComment returns the offset data bytes as hex values for usage in comments.
func (o *Offset) HexCodeComment() (string, error) {
	buf := &strings.Builder{}

	for _, b := range o.Data {
		if _, err := fmt.Fprintf(buf, "%02X ", b); err != nil {
			return "", fmt.Errorf("writing hex comment: %w", err)
		}
	}

	return strings.TrimRight(buf.String(), " "), nil
}

// Program defines a disassembled program that contains code or data.
type Program struct {
	Name     string // name of the ROM file the program was loaded from
	Origin   uint16 // memory address the first image byte is loaded at
	Checksum uint32 // CRC32 checksum to identify the ROM image

	// Offsets has one entry per image byte. The entry at the start of
	// an instruction carries both opcode bytes and the asm output, the
	// entry of the second opcode byte stays empty.
	Offsets []Offset
}

// New creates a new program initialized for an image size.
func New(name string, origin uint16, size int) *Program {
	return &Program{
		Name:    name,
		Origin:  origin,
		Offsets: make([]Offset, size),
	}
}

// Address returns the memory address of the offset at the given index.
func (p *Program) Address(index int) uint16 {
	return p.Origin + uint16(index)
}

package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestOpcodeFields(t *testing.T) {
	tests := []struct {
		word uint16
		x    Register
		y    Register
		n    Nibble
		nn   byte
		nnn  Address
	}{
		{word: 0x0000, x: 0x0, y: 0x0, n: 0x0, nn: 0x00, nnn: 0x000},
		{word: 0xDABC, x: 0xA, y: 0xB, n: 0xC, nn: 0xBC, nnn: 0xABC},
		{word: 0x1234, x: 0x2, y: 0x3, n: 0x4, nn: 0x34, nnn: 0x234},
		{word: 0xFFFF, x: 0xF, y: 0xF, n: 0xF, nn: 0xFF, nnn: 0xFFF},
		{word: 0x8A7E, x: 0xA, y: 0x7, n: 0xE, nn: 0x7E, nnn: 0xA7E},
	}

	for _, tt := range tests {
		op := Opcode(tt.word)

		t.Run(op.String(), func(t *testing.T) {
			assert.Equal(t, tt.x, op.X())
			assert.Equal(t, tt.y, op.Y())
			assert.Equal(t, tt.n, op.N())
			assert.Equal(t, tt.nn, op.NN())
			assert.Equal(t, tt.nnn, op.NNN())
		})
	}
}

func TestOpcodeBytes(t *testing.T) {
	op := Opcode(0x1234)

	assert.Equal(t, byte(0x12), op.HighByte())
	assert.Equal(t, byte(0x34), op.LowByte())
}

func TestOpcodeString(t *testing.T) {
	assert.Equal(t, "0x00E0", Opcode(0x00E0).String())
	assert.Equal(t, "0xDABC", Opcode(0xDABC).String())
}

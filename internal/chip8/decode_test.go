package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		word     uint16
		expected Instruction
	}{
		{word: 0x0000, expected: Sys(0x000)},
		{word: 0x0123, expected: Sys(0x123)},
		{word: 0x01E0, expected: Sys(0x1E0)},
		{word: 0x00E0, expected: ClearScreen},
		{word: 0x00EE, expected: Return},
		{word: 0x00C5, expected: ScrollDown(0x5)},
		{word: 0x00FB, expected: ScrollRight},
		{word: 0x00FC, expected: ScrollLeft},
		{word: 0x00FD, expected: Exit},
		{word: 0x00FE, expected: LowRes},
		{word: 0x00FF, expected: HighRes},
		{word: 0x1ABC, expected: Jump(0xABC)},
		{word: 0x2ABC, expected: Call(0xABC)},
		{word: 0x3234, expected: SkipEqualByte(0x2, 0x34)},
		{word: 0x4234, expected: SkipNotEqualByte(0x2, 0x34)},
		{word: 0x5230, expected: SkipEqual(0x2, 0x3)},
		{word: 0x6234, expected: LoadByte(0x2, 0x34)},
		{word: 0x7234, expected: AddByte(0x2, 0x34)},
		{word: 0x8230, expected: Load(0x2, 0x3)},
		{word: 0x8231, expected: Or(0x2, 0x3)},
		{word: 0x8236, expected: ShiftRight(0x2, 0x3)},
		{word: 0x823E, expected: ShiftLeft(0x2, 0x3)},
		{word: 0x9230, expected: SkipNotEqual(0x2, 0x3)},
		{word: 0xA234, expected: LoadI(0x234)},
		{word: 0xB234, expected: JumpV0(0x234)},
		{word: 0xC234, expected: Random(0x2, 0x34)},
		{word: 0xDABC, expected: Draw(0xA, 0xB, 0xC)},
		{word: 0xE29E, expected: SkipKeyPressed(0x2)},
		{word: 0xE2A1, expected: SkipKeyNotPressed(0x2)},
		{word: 0xF207, expected: LoadDelay(0x2)},
		{word: 0xF20A, expected: WaitKey(0x2)},
		{word: 0xFA65, expected: LoadRegisters(0xA)},
	}

	for _, tt := range tests {
		op := Opcode(tt.word)

		t.Run(op.String(), func(t *testing.T) {
			in, err := Decode(op)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, in)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	words := []uint16{
		0x5231, // 5xyn with n != 0
		0x523F,
		0x8238, // 8xyn with undefined sub-opcode
		0x823D,
		0x823F,
		0x9235, // 9xyn with n != 0
		0xE200, // Exnn with unknown low byte
		0xE29F,
		0xE2FF,
		0xF200, // Fxnn with unknown low byte
		0xF230,
		0xF266,
		0xF2FF,
	}

	for _, word := range words {
		op := Opcode(word)

		t.Run(op.String(), func(t *testing.T) {
			_, err := Decode(op)
			assert.Error(t, err)

			var decodeErr DecodeError
			assert.True(t, errors.As(err, &decodeErr))
			assert.Equal(t, op, decodeErr.Opcode)
		})
	}
}

func TestDecodeErrorMessage(t *testing.T) {
	_, err := Decode(Opcode(0x8238))

	assert.Error(t, err)
	assert.Equal(t, "unsupported opcode 0x8238", err.Error())
}

// TestDecodeEncodeIdentity sweeps the whole opcode space: every word
// that decodes has to encode back to the identical word.
func TestDecodeEncodeIdentity(t *testing.T) {
	decoded := 0

	for word := 0; word <= 0xFFFF; word++ {
		op := Opcode(word)

		in, err := Decode(op)
		if err != nil {
			continue
		}
		decoded++
		assert.Equal(t, op, Encode(in), "decode/encode mismatch for "+op.String())
	}

	// All words decode except the undefined patterns in the 5, 8, 9,
	// E and F groups.
	assert.True(t, decoded > 0x8000)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, tt := range instructionEncodings {
		t.Run(tt.in.String(), func(t *testing.T) {
			in, err := Decode(Encode(tt.in))
			assert.NoError(t, err)
			assert.Equal(t, tt.in, in)
		})
	}
}

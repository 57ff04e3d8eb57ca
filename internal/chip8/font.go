package chip8

// Font glyph layout constants. The interpreter installs 5 byte high
// glyphs for the hex digits 0-F into the reserved memory below the
// program space.
const (
	// FontStart is the memory address of the first font glyph.
	FontStart Address = 0x050

	// GlyphSize is the height of a font glyph in bytes. Each byte holds
	// one 8 pixel row, of which the glyphs use the leftmost 4.
	GlyphSize = 5
)

// FontAddress returns the memory address of the glyph for the given hex
// digit. Only the low 4 bits of the digit are used.
func FontAddress(digit byte) Address {
	return FontStart + Address(digit&0x0F)*GlyphSize
}

// fontSprites contains the glyphs for the hex digits 0-F, 5 bytes each.
var fontSprites = [16 * GlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

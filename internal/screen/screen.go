// Package screen provides an in-memory framebuffer display for the
// CHIP-8 virtual machine. It implements the drawing contract of the
// CPU without any output device, renderers read the pixels through
// Pixel or String.
package screen

import (
	"strings"

	"github.com/lovesegfault/chirp/internal/chip8"
)

// Display dimensions of the two resolution modes.
const (
	Width  = 64
	Height = 32

	HighResWidth  = 128
	HighResHeight = 64
)

// Compile-time check to ensure Screen implements chip8.Display.
var _ chip8.Display = (*Screen)(nil)

// Screen is a monochrome framebuffer with a low and a high resolution
// mode. The buffer keeps the high resolution size at all times, mode
// switches only change the active window and leave pixels alone.
type Screen struct {
	hires  bool
	pixels [HighResHeight][HighResWidth]bool
}

// New returns a cleared screen in low resolution mode.
func New() *Screen {
	return &Screen{}
}

// SetPixel inverts the pixel at the given position and returns whether
// it was lit before. Coordinates have to lie inside the active
// resolution.
func (s *Screen) SetPixel(x, y int) bool {
	was := s.pixels[y][x]
	s.pixels[y][x] = !was
	return was
}

// Pixel returns whether the pixel at the given position is lit.
func (s *Screen) Pixel(x, y int) bool {
	return s.pixels[y][x]
}

// Clear unsets every pixel of the buffer, including pixels outside the
// active window.
func (s *Screen) Clear() {
	s.pixels = [HighResHeight][HighResWidth]bool{}
}

// Resolution returns the active width and height in pixels.
func (s *Screen) Resolution() (int, int) {
	if s.hires {
		return HighResWidth, HighResHeight
	}
	return Width, Height
}

// HighRes returns whether the high resolution mode is active.
func (s *Screen) HighRes() bool {
	return s.hires
}

// SetHighRes switches between the resolution modes. The pixels are not
// touched, programs clear the screen themselves when they care.
func (s *Screen) SetHighRes(enabled bool) {
	s.hires = enabled
}

// ScrollDown moves the active window down by the given number of lines.
// The vacated top lines are cleared.
func (s *Screen) ScrollDown(lines int) {
	if lines <= 0 {
		return
	}

	width, height := s.Resolution()
	for y := height - 1; y >= 0; y-- {
		for x := range width {
			if y >= lines {
				s.pixels[y][x] = s.pixels[y-lines][x]
			} else {
				s.pixels[y][x] = false
			}
		}
	}
}

// ScrollRight moves the active window right by 4 columns. The vacated
// left columns are cleared.
func (s *Screen) ScrollRight() {
	width, height := s.Resolution()
	for y := range height {
		for x := width - 1; x >= 0; x-- {
			if x >= 4 {
				s.pixels[y][x] = s.pixels[y][x-4]
			} else {
				s.pixels[y][x] = false
			}
		}
	}
}

// ScrollLeft moves the active window left by 4 columns. The vacated
// right columns are cleared.
func (s *Screen) ScrollLeft() {
	width, height := s.Resolution()
	for y := range height {
		for x := range width {
			if x < width-4 {
				s.pixels[y][x] = s.pixels[y][x+4]
			} else {
				s.pixels[y][x] = false
			}
		}
	}
}

// String renders the active window as text, one line per pixel row
// with '#' for lit pixels.
func (s *Screen) String() string {
	width, height := s.Resolution()

	var sb strings.Builder
	sb.Grow((width + 1) * height)

	for y := range height {
		for x := range width {
			if s.pixels[y][x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

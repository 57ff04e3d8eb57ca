package chip8

// Display is the rendering surface the CPU draws onto. Sprite drawing
// composites pixels with exclusive or, the CPU uses the SetPixel return
// value to report collisions in the flag register. Implementations
// decide how and when pixels reach an actual output device.
type Display interface {
	// SetPixel inverts the pixel at the given position and returns
	// whether it was lit before. Callers pass coordinates inside the
	// active resolution.
	SetPixel(x, y int) bool

	// Clear unsets every pixel.
	Clear()

	// Resolution returns the active width and height in pixels.
	Resolution() (width, height int)

	// HighRes returns whether the 128x64 Super-CHIP mode is active.
	HighRes() bool

	// SetHighRes switches between the 64x32 and 128x64 modes.
	SetHighRes(enabled bool)

	// ScrollDown moves all pixels down by the given number of lines,
	// clearing the vacated top lines.
	ScrollDown(lines int)

	// ScrollRight moves all pixels right by 4 columns, clearing the
	// vacated left columns.
	ScrollRight()

	// ScrollLeft moves all pixels left by 4 columns, clearing the
	// vacated right columns.
	ScrollLeft()
}

// Keypad reports the held state of the 16 key hex keypad. Key presses
// that wake a waiting CPU are delivered separately through
// CPU.PressKey.
type Keypad interface {
	// IsDown returns whether the key 0x0-0xF is currently held.
	IsDown(key byte) bool
}

// Default low resolution display dimensions.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

var (
	_ Display = noDisplay{}
	_ Keypad  = noKeypad{}
)

// noDisplay discards all drawing. It stands in when a CPU is created
// without a display, every sprite pixel reports no collision.
type noDisplay struct{}

func (noDisplay) SetPixel(_, _ int) bool { return false }
func (noDisplay) Clear()                 {}
func (noDisplay) Resolution() (int, int) { return DisplayWidth, DisplayHeight }
func (noDisplay) HighRes() bool          { return false }
func (noDisplay) SetHighRes(_ bool)      {}
func (noDisplay) ScrollDown(_ int)       {}
func (noDisplay) ScrollRight()           {}
func (noDisplay) ScrollLeft()            {}

// noKeypad reports all keys as released.
type noKeypad struct{}

func (noKeypad) IsDown(_ byte) bool { return false }

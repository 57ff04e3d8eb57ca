// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"os"

	"github.com/lovesegfault/chirp/internal/chip8"
)

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads a ROM file and validates that its image fits into the
// machine memory at the given origin. ROM files carry raw opcode and
// data bytes without any header, the file content is the image.
func (l *Loader) Load(path string, origin chip8.Address) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	image, err := l.LoadFromBytes(data, origin)
	if err != nil {
		return nil, fmt.Errorf("loading ROM %s: %w", path, err)
	}
	return image, nil
}

// LoadFromBytes validates an in memory ROM image against the machine
// memory limits.
func (l *Loader) LoadFromBytes(data []byte, origin chip8.Address) ([]byte, error) {
	if len(data) == 0 {
		return nil, errors.New("ROM image is empty")
	}

	if int(origin)+len(data) > chip8.MemorySize {
		return nil, fmt.Errorf("ROM image of %d bytes does not fit into memory at origin $%03X",
			len(data), uint16(origin))
	}
	return data, nil
}

package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lovesegfault/chirp/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load ROM file", func(t *testing.T) {
		tmpFile := createTempFile(t, []byte{0x12, 0x34, 0x56, 0x78})

		loader := New()
		image, err := loader.Load(tmpFile, chip8.ProgramStart)
		assert.NoError(t, err)
		assert.Len(t, image, 4)
		assert.Equal(t, byte(0x12), image[0])
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		loader := New()
		_, err := loader.Load("/nonexistent/file.ch8", chip8.ProgramStart)
		assert.Error(t, err)
	})

	t.Run("error on empty file", func(t *testing.T) {
		tmpFile := createTempFile(t, nil)

		loader := New()
		_, err := loader.Load(tmpFile, chip8.ProgramStart)
		assert.Error(t, err)
	})
}

func TestLoadFromBytes(t *testing.T) {
	t.Run("image fits exactly", func(t *testing.T) {
		data := make([]byte, chip8.MemorySize-int(chip8.ProgramStart))
		data[0] = 0xE0

		loader := New()
		image, err := loader.LoadFromBytes(data, chip8.ProgramStart)
		assert.NoError(t, err)
		assert.Equal(t, byte(0xE0), image[0])
	})

	t.Run("image too large for origin", func(t *testing.T) {
		data := make([]byte, chip8.MemorySize-int(chip8.ProgramStart)+1)

		loader := New()
		_, err := loader.LoadFromBytes(data, chip8.ProgramStart)
		assert.Error(t, err)
	})

	t.Run("large image fits at lower origin only", func(t *testing.T) {
		data := make([]byte, chip8.MemorySize-int(chip8.ProgramStartETI)+1)

		loader := New()
		_, err := loader.LoadFromBytes(data, chip8.ProgramStartETI)
		assert.Error(t, err)

		_, err = loader.LoadFromBytes(data, chip8.ProgramStart)
		assert.NoError(t, err)
	})
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.ch8")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}

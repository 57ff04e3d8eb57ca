package fileprocessor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lovesegfault/chirp/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func createTestROM(t *testing.T, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.ch8")
	assert.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestProcessFileDisassemble(t *testing.T) {
	rom := createTestROM(t, []byte{
		0x00, 0xE0, // cls
		0x00, 0xFD, // exit
	})
	output := filepath.Join(t.TempDir(), "test.asm")

	opts := options.Program{
		Parameters: options.Parameters{
			Input:  rom,
			Output: output,
		},
		Flags: options.Flags{
			Disassemble: true,
			Quiet:       true,
		},
	}

	logger := log.NewTestLogger(t)
	err := ProcessFile(context.Background(), logger, opts, options.NewDisassembler())
	assert.NoError(t, err)

	data, err := os.ReadFile(output)
	assert.NoError(t, err)

	listing := string(data)
	assert.Contains(t, listing, "Start:")
	assert.Contains(t, listing, "cls")
	assert.Contains(t, listing, "exit")
}

func TestProcessFileRun(t *testing.T) {
	rom := createTestROM(t, []byte{0x00, 0xFD}) // exit

	opts := options.Program{
		Parameters: options.Parameters{
			Input: rom,
		},
		Flags: options.Flags{
			Quiet: true,
		},
	}

	logger := log.NewTestLogger(t)
	err := ProcessFile(context.Background(), logger, opts, options.NewDisassembler())
	assert.NoError(t, err)
}

func TestProcessFileRunStepLimit(t *testing.T) {
	rom := createTestROM(t, []byte{0x12, 0x00}) // jp $200, loops forever

	opts := options.Program{
		Parameters: options.Parameters{
			Input: rom,
		},
		Flags: options.Flags{
			Quiet: true,
			Steps: 100,
		},
	}

	logger := log.NewTestLogger(t)
	err := ProcessFile(context.Background(), logger, opts, options.NewDisassembler())
	assert.NoError(t, err)
}

func TestProcessFileRunFault(t *testing.T) {
	rom := createTestROM(t, []byte{0x82, 0x38}) // no valid instruction

	opts := options.Program{
		Parameters: options.Parameters{
			Input: rom,
		},
		Flags: options.Flags{
			Quiet: true,
		},
	}

	logger := log.NewTestLogger(t)
	err := ProcessFile(context.Background(), logger, opts, options.NewDisassembler())
	assert.Error(t, err)
}

func TestProcessFileMissingInput(t *testing.T) {
	opts := options.Program{
		Parameters: options.Parameters{
			Input: filepath.Join(t.TempDir(), "missing.ch8"),
		},
		Flags: options.Flags{
			Quiet: true,
		},
	}

	logger := log.NewTestLogger(t)
	err := ProcessFile(context.Background(), logger, opts, options.NewDisassembler())
	assert.Error(t, err)
}

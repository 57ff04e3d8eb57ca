package cli

import (
	"errors"
	"flag"
	"os"
	"testing"

	"github.com/lovesegfault/chirp/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags_DisasmOptions(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Disassembler
	}{
		{
			name: "default flags",
			args: []string{"prog", "test.ch8"},
			want: options.Disassembler{HexComments: true, OffsetComments: true},
		},
		{
			name: "nohexcomments flag",
			args: []string{"prog", "-nohexcomments", "test.ch8"},
			want: options.Disassembler{OffsetComments: true},
		},
		{
			name: "nooffsets flag",
			args: []string{"prog", "-nooffsets", "test.ch8"},
			want: options.Disassembler{HexComments: true},
		},
		{
			name: "all disasm flags",
			args: []string{"prog", "-nohexcomments", "-nooffsets", "test.ch8"},
			want: options.Disassembler{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			_, got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.want.HexComments, got.HexComments)
			assert.Equal(t, tt.want.OffsetComments, got.OffsetComments)
		})
	}
}

func TestParseFlags_ProgramOptions(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = []string{"prog", "-d", "-o", "out.asm", "-origin", "$600", "test.ch8"}

	opts, _, err := ParseFlags()
	assert.NoError(t, err)
	assert.Equal(t, "test.ch8", opts.Input)
	assert.Equal(t, "out.asm", opts.Output)
	assert.True(t, opts.Disassemble)
	assert.Equal(t, uint16(0x600), opts.OriginAddress)
	assert.Equal(t, uint64(options.DefaultMaxSteps), opts.Steps)
	assert.Equal(t, options.DefaultStepsPerTick, opts.StepsPerTick)
}

func TestParseOrigin(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		want        uint16
		expectError bool
	}{
		{
			name:  "dollar hex",
			value: "$200",
			want:  0x200,
		},
		{
			name:  "go hex",
			value: "0x600",
			want:  0x600,
		},
		{
			name:  "decimal",
			value: "512",
			want:  0x200,
		},
		{
			name:        "not a number",
			value:       "start",
			expectError: true,
		},
		{
			name:        "below program space",
			value:       "$100",
			expectError: true,
		},
		{
			name:        "outside address space",
			value:       "$1000",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseOrigin(tt.value)
			if tt.expectError {
				assert.True(t, err != nil)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNormalizeOptions(t *testing.T) {
	opts := options.Program{
		Flags: options.Flags{Origin: "$200", StepsPerTick: 0},
	}
	err := normalizeOptions(&opts)
	assert.Error(t, err)

	opts.StepsPerTick = options.DefaultStepsPerTick
	assert.NoError(t, normalizeOptions(&opts))
	assert.Equal(t, uint16(0x200), opts.OriginAddress)
}

func TestValidateArgs(t *testing.T) {
	flags := flag.NewFlagSet("prog", flag.ContinueOnError)

	assert.NoError(t, validateArgs(flags, []string{"test.ch8"}))
	assert.Error(t, validateArgs(flags, []string{"test.ch8", "-trace"}))
}

func TestParseFlags_MisorderedArgs(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = []string{"prog", "test.ch8", "-x"}

	_, _, err := ParseFlags()
	assert.Error(t, err)

	var usageErr *UsageError
	assert.True(t, errors.As(err, &usageErr))
	assert.Contains(t, usageErr.Error(), "-x")

	// printing the usage must work for every usage error
	usageErr.ShowUsage()
}

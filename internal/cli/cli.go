// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lovesegfault/chirp/internal/chip8"
	"github.com/lovesegfault/chirp/internal/options"
)

// ParseFlags parses command line flags and returns program and
// disassembler options
func ParseFlags() (options.Program, options.Disassembler, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)

	var opts options.Program
	var noHexComments, noOffsets bool
	readOptionFlags(flags, &opts)
	readDisasmOptionFlags(flags, &noHexComments, &noOffsets)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, options.Disassembler{}, &UsageError{flags: flags}
	}

	if err := validateArgs(flags, args); err != nil {
		return opts, options.Disassembler{}, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, options.Disassembler{}, err
	}

	opts.Input = args[0]

	disasmOptions := options.NewDisassembler()
	disasmOptions.HexComments = !noHexComments
	disasmOptions.OffsetComments = !noOffsets

	return opts, disasmOptions, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: chirp [options] <rom file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(flags *flag.FlagSet, args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				flags: flags,
				msg:   fmt.Sprintf("Potential argument %s found after the ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	origin, err := parseOrigin(opts.Origin)
	if err != nil {
		return err
	}
	opts.OriginAddress = origin

	if opts.StepsPerTick < 1 {
		return fmt.Errorf("instructions per timer tick must be at least 1, got %d", opts.StepsPerTick)
	}
	return nil
}

// parseOrigin parses a program origin given as $200, 0x200 or 512 and
// validates that it lies inside the program space.
func parseOrigin(value string) (uint16, error) {
	s := strings.TrimSpace(value)
	base := 0
	if rest, ok := strings.CutPrefix(s, "$"); ok {
		s = rest
		base = 16
	}

	origin, err := strconv.ParseUint(s, base, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid origin '%s': %w", value, err)
	}

	if origin >= chip8.MemorySize {
		return 0, fmt.Errorf("origin $%03X is outside the 4KB address space", origin)
	}
	if origin < uint64(chip8.ProgramStart) {
		return 0, fmt.Errorf("origin $%03X overlaps the reserved interpreter space below $%03X",
			origin, uint16(chip8.ProgramStart))
	}
	return uint16(origin), nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Output, "o", "", "name of the output .asm file, printed on console if no name given")
	flags.BoolVar(&opts.Disassemble, "d", false, "disassemble the ROM instead of running it")
	flags.StringVar(&opts.Origin, "origin", "$200", "program load address ($200, or $600 for ETI-660 ROMs)")
	flags.Uint64Var(&opts.Steps, "steps", options.DefaultMaxSteps, "maximum number of instructions to execute, 0 for no limit")
	flags.IntVar(&opts.StepsPerTick, "cycle", options.DefaultStepsPerTick, "instructions executed per 60Hz timer tick")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, implies -debug")
	flags.BoolVar(&opts.Lenient, "lenient", false, "keep running after faulting instructions")
	flags.BoolVar(&opts.DumpScreen, "screen", false, "print the final display as text after the run")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}

func readDisasmOptionFlags(flags *flag.FlagSet, noHexComments, noOffsets *bool) {
	flags.BoolVar(noHexComments, "nohexcomments", false, "do not output opcode bytes as hex values in comments")
	flags.BoolVar(noOffsets, "nooffsets", false, "do not output offsets in comments")
}

// Package options contains the program options.
package options

// Default runner settings.
const (
	// DefaultMaxSteps bounds a run so that looping programs terminate
	// in headless use.
	DefaultMaxSteps = 1_000_000

	// DefaultStepsPerTick is the number of executed instructions per
	// 60Hz timer tick, approximating the speed of historic interpreters.
	DefaultStepsPerTick = 10
)

// Parameters contains file path options.
type Parameters struct {
	Input  string
	Output string
}

// Flags contains behavior options.
type Flags struct {
	Disassemble bool
	Trace       bool
	Lenient     bool
	DumpScreen  bool
	Debug       bool
	Quiet       bool

	Origin        string // raw -origin flag value
	OriginAddress uint16 // parsed and validated origin

	Steps        uint64
	StepsPerTick int
}

// Program options of the emulator and disassembler.
type Program struct {
	Parameters
	Flags
}

// Runner defines options to control the execution driver.
type Runner struct {
	MaxSteps     uint64 // 0 runs until the program stops on its own
	StepsPerTick int
	Trace        bool
	Lenient      bool
}

// NewRunner returns runner options derived from the program options.
func NewRunner(opts Program) Runner {
	return Runner{
		MaxSteps:     opts.Steps,
		StepsPerTick: opts.StepsPerTick,
		Trace:        opts.Trace,
		Lenient:      opts.Lenient,
	}
}

// Disassembler defines options to control the disassembler.
type Disassembler struct {
	HexComments    bool
	OffsetComments bool
}

// NewDisassembler returns a new options instance with default options.
func NewDisassembler() Disassembler {
	return Disassembler{
		HexComments:    true,
		OffsetComments: true,
	}
}

package chip8

import (
	"fmt"
	"math/rand/v2"
)

// State identifies the execution state of a CPU.
type State uint8

const (
	// StateReady executes instructions on every step.
	StateReady State = iota

	// StateAwaitingKey suspends execution until a key press is
	// delivered through PressKey.
	StateAwaitingKey

	// StateHalted stops execution, either cleanly through the exit
	// instruction or because an instruction failed.
	StateHalted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateAwaitingKey:
		return "awaiting key"
	case StateHalted:
		return "halted"
	default:
		return fmt.Sprintf("state %d", uint8(s))
	}
}

// Config parameterizes a new CPU.
type Config struct {
	// Display receives all drawing. A nil display discards it.
	Display Display

	// Keypad provides the held key state. A nil keypad reports all
	// keys as released.
	Keypad Keypad

	// Origin is the program counter reset address, ProgramStart if
	// zero. ROMs for the ETI-660 use ProgramStartETI.
	Origin Address

	// Rand is the source for the rnd instruction. A nil source falls
	// back to a newly seeded generator.
	Rand *rand.Rand
}

// CPU executes CHIP-8 and Super-CHIP instructions against its register
// file and memory. It owns both for the lifetime of the machine, load a
// program image through Memory before stepping.
//
// A CPU never aborts on bad programs: an instruction that fails to
// decode or execute halts the machine with the error recorded, the
// caller decides whether to stop or to Resume.
type CPU struct {
	regs *RegisterFile
	mem  *Memory

	display Display
	keypad  Keypad
	rand    *rand.Rand

	state   State
	err     error
	waitReg Register
	origin  Address
}

// New returns a ready CPU with zeroed registers, the font glyphs
// installed and the program counter at the configured origin.
func New(cfg Config) *CPU {
	if cfg.Display == nil {
		cfg.Display = noDisplay{}
	}
	if cfg.Keypad == nil {
		cfg.Keypad = noKeypad{}
	}
	if cfg.Origin == 0 {
		cfg.Origin = ProgramStart
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &CPU{
		regs:    NewRegisterFile(cfg.Origin),
		mem:     NewMemory(),
		display: cfg.Display,
		keypad:  cfg.Keypad,
		rand:    cfg.Rand,
		origin:  cfg.Origin,
	}
}

// Registers returns the register file of the CPU.
func (c *CPU) Registers() *RegisterFile {
	return c.regs
}

// Memory returns the memory of the CPU.
func (c *CPU) Memory() *Memory {
	return c.mem
}

// State returns the execution state.
func (c *CPU) State() State {
	return c.state
}

// Err returns the error that halted the CPU. It is nil while the CPU
// runs and after a clean exit.
func (c *CPU) Err() error {
	return c.err
}

// SoundActive returns whether a tone should play, which is the case
// while the sound timer is non-zero.
func (c *CPU) SoundActive() bool {
	return c.regs.ST > 0
}

// Step executes a single instruction. In the ready state it fetches the
// word at the program counter, advances the counter past it, decodes
// and executes. A failing instruction halts the CPU and returns the
// error, with the program counter already past the faulting word.
//
// While awaiting a key a step does nothing, while halted it returns the
// recorded error.
func (c *CPU) Step() error {
	switch c.state {
	case StateAwaitingKey:
		return nil
	case StateHalted:
		return c.err
	}

	pc := c.regs.PC()
	word, err := c.mem.ReadWord(pc)
	if err != nil {
		return c.halt(fmt.Errorf("fetching opcode at address %04x: %w", uint16(pc), err))
	}
	c.regs.AdvancePC()

	in, err := Decode(Opcode(word))
	if err != nil {
		return c.halt(fmt.Errorf("decoding opcode at address %04x: %w", uint16(pc), err))
	}

	if err := c.execute(in); err != nil {
		return c.halt(fmt.Errorf("executing %s at address %04x: %w", in, uint16(pc), err))
	}
	return nil
}

// TickTimers decrements the delay and sound timers by one if they are
// non-zero. Drivers call it at the 60Hz timer rate, independently of
// the instruction rate.
func (c *CPU) TickTimers() {
	if c.regs.DT > 0 {
		c.regs.DT--
	}
	if c.regs.ST > 0 {
		c.regs.ST--
	}
}

// PressKey delivers a key press to a CPU waiting on the ld Vx, K
// instruction. The low 4 bits of the key are stored in the destination
// register and execution resumes. Key presses in other states only
// matter to the Keypad collaborator and are ignored here.
func (c *CPU) PressKey(key byte) {
	if c.state != StateAwaitingKey {
		return
	}
	c.regs.V[c.waitReg] = key & 0x0F
	c.state = StateReady
}

// Resume returns a halted CPU to the ready state and clears the
// recorded error. The program counter is already past the instruction
// that halted the machine, so execution continues behind it.
func (c *CPU) Resume() {
	if c.state != StateHalted {
		return
	}
	c.state = StateReady
	c.err = nil
}

// Reset returns the machine to its power-on state: registers zeroed,
// program counter at the origin, memory cleared with the font glyphs
// reinstalled. The program image has to be loaded again afterwards.
func (c *CPU) Reset() {
	c.regs.Reset(c.origin)
	c.mem.Reset()
	c.state = StateReady
	c.err = nil
	c.waitReg = 0
}

func (c *CPU) halt(err error) error {
	c.state = StateHalted
	c.err = err
	return err
}

// Package runner drives a CHIP-8 machine headlessly at a fixed
// instruction to timer tick ratio.
package runner

import (
	"context"
	"fmt"

	"github.com/lovesegfault/chirp/internal/chip8"
	"github.com/lovesegfault/chirp/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Summary describes a finished run.
type Summary struct {
	Steps       uint64 // instructions executed
	Ticks       uint64 // timer ticks delivered
	SoundStarts uint64 // times the sound timer became active
	State       chip8.State
}

// Runner executes a program on a CHIP-8 machine until it halts, waits
// for a key press or reaches the step limit.
type Runner struct {
	logger  *log.Logger
	options options.Runner

	cpu *chip8.CPU
}

// New creates a new runner for the machine.
func New(logger *log.Logger, cpu *chip8.CPU, opts options.Runner) *Runner {
	if opts.StepsPerTick < 1 {
		opts.StepsPerTick = options.DefaultStepsPerTick
	}

	return &Runner{
		logger:  logger,
		options: opts,
		cpu:     cpu,
	}
}

// Run steps the machine until it stops or hits the configured step
// limit. The timers are ticked once per StepsPerTick executed
// instructions.
//
// A fault halts the machine and ends the run with the fault returned,
// in lenient mode the machine is resumed behind the faulting
// instruction instead.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	var summary Summary
	var soundActive bool

	for r.options.MaxSteps == 0 || summary.Steps < r.options.MaxSteps {
		if err := ctx.Err(); err != nil {
			summary.State = r.cpu.State()
			return summary, fmt.Errorf("running program: %w", err)
		}

		if r.options.Trace {
			r.traceInstruction()
		}

		err := r.cpu.Step()
		summary.Steps++

		if err != nil {
			if !r.options.Lenient {
				summary.State = r.cpu.State()
				return summary, err
			}
			r.logger.Warn("Resuming after fault", log.Err(err))
			r.cpu.Resume()
		}

		if active := r.cpu.SoundActive(); active != soundActive {
			if active {
				summary.SoundStarts++
			}
			soundActive = active
		}

		if summary.Steps%uint64(r.options.StepsPerTick) == 0 {
			r.cpu.TickTimers()
			summary.Ticks++
		}

		state := r.cpu.State()
		if state == chip8.StateReady {
			continue
		}
		if state == chip8.StateAwaitingKey {
			r.logger.Info("Program waits for a key press, stopping execution")
		}
		break
	}

	summary.State = r.cpu.State()
	return summary, nil
}

// traceInstruction logs the instruction at the program counter before
// it gets executed.
func (r *Runner) traceInstruction() {
	pc := r.cpu.Registers().PC()
	word, err := r.cpu.Memory().ReadWord(pc)
	if err != nil {
		return // the step reports the fault
	}
	in, err := chip8.Decode(chip8.Opcode(word))
	if err != nil {
		return
	}

	r.logger.Debug("Executing instruction",
		log.String("address", fmt.Sprintf("$%04X", uint16(pc))),
		log.String("code", in.String()))
}

// Package fileprocessor handles ROM loading and processing operations.
package fileprocessor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/lovesegfault/chirp/internal/chip8"
	"github.com/lovesegfault/chirp/internal/disasm"
	"github.com/lovesegfault/chirp/internal/loader"
	"github.com/lovesegfault/chirp/internal/options"
	"github.com/lovesegfault/chirp/internal/runner"
	"github.com/lovesegfault/chirp/internal/screen"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete ROM processing workflow, the ROM is
// either disassembled or executed depending on the options.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program,
	disasmOptions options.Disassembler) error {

	// the CLI always sets an origin, direct callers may not
	if opts.OriginAddress == 0 {
		opts.OriginAddress = uint16(chip8.ProgramStart)
	}

	image, err := loader.New().Load(opts.Input, chip8.Address(opts.OriginAddress))
	if err != nil {
		return err
	}

	logger.Debug("Loaded ROM",
		log.String("file", opts.Input),
		log.Int("size", len(image)),
		log.String("origin", fmt.Sprintf("$%03X", opts.OriginAddress)))

	if opts.Disassemble {
		return disassembleImage(ctx, logger, opts, disasmOptions, image)
	}
	return runImage(ctx, logger, opts, image)
}

func disassembleImage(ctx context.Context, logger *log.Logger, opts options.Program,
	disasmOptions options.Disassembler, image []byte) error {

	writer, err := createWriter(opts)
	if err != nil {
		return err
	}
	defer func() {
		if file, ok := writer.(*os.File); ok && file != os.Stdout {
			_ = file.Close()
		}
	}()

	dis, err := disasm.New(logger, filepath.Base(opts.Input), image, opts.OriginAddress, disasmOptions)
	if err != nil {
		return fmt.Errorf("creating disassembler: %w", err)
	}

	buffered := bufio.NewWriter(writer)
	app, err := dis.Process(ctx, buffered)
	if err != nil {
		return fmt.Errorf("disassembling: %w", err)
	}
	if err := buffered.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}

	logger.Debug("Disassembled ROM",
		log.Int("bytes", len(image)),
		log.String("checksum", fmt.Sprintf("%08x", app.Checksum)))
	return nil
}

func runImage(ctx context.Context, logger *log.Logger, opts options.Program, image []byte) error {
	scr := screen.New()
	origin := chip8.Address(opts.OriginAddress)

	cpu := chip8.New(chip8.Config{
		Display: scr,
		Origin:  origin,
	})
	if err := cpu.Memory().Load(origin, image); err != nil {
		return fmt.Errorf("loading ROM into memory: %w", err)
	}

	run := runner.New(logger, cpu, options.NewRunner(opts))
	summary, err := run.Run(ctx)
	if err != nil {
		return err
	}

	logger.Info("Execution finished",
		log.Uint64("steps", summary.Steps),
		log.Uint64("ticks", summary.Ticks),
		log.Uint64("sound_starts", summary.SoundStarts),
		log.Stringer("state", summary.State))

	if opts.DumpScreen {
		if _, err := fmt.Fprint(os.Stdout, scr.String()); err != nil {
			return fmt.Errorf("writing screen dump: %w", err)
		}
	}
	return nil
}

func createWriter(opts options.Program) (io.Writer, error) {
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// PrintBanner prints the application name and version information.
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("chirp", log.String("version", buildinfo.Version(version, commit, date)))
}

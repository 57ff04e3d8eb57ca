// Package main implements the main entry point for a CHIP-8 emulator and disassembler.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/lovesegfault/chirp/internal/cli"
	"github.com/lovesegfault/chirp/internal/config"
	"github.com/lovesegfault/chirp/internal/fileprocessor"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, disasmOptions, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fileprocessor.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts)
	fileprocessor.PrintBanner(logger, opts, version, commit, date)

	if err := fileprocessor.ProcessFile(ctx, logger, opts, disasmOptions); err != nil {
		// handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}

		logger.Error("Processing failed", log.Err(err))
		os.Exit(1)
	}
}

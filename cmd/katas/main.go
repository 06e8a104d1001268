// Command katas runs snaking-word searches over HCL puzzle files and
// generates new puzzles.
//
// Usage:
//
//	katas [options] PUZZLE_PATH
//	katas -generate -rows 6 -cols 6 -words SNAKE,GRID [-seed 7] [PUZZLE_PATH]
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// main is the entrypoint for the katas command.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the command logic for easier testing and error handling.
func run(outW, errW io.Writer, args []string) error {
	cfg, shouldExit, err := parseArgs(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)

	if cfg.Generate {
		return generate(outW, logger, cfg)
	}

	return solve(outW, logger, cfg)
}

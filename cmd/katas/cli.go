package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// config holds everything a single run needs.
type config struct {
	PuzzlePath string
	LogLevel   string
	LogFormat  string
	MaxSteps   int
	ShowPath   bool

	Generate bool
	Name     string
	Rows     int
	Cols     int
	Seed     int64
	Words    []string
}

// parseArgs processes command-line arguments. It returns a populated config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func parseArgs(args []string, output io.Writer) (*config, bool, error) {
	flagSet := flag.NewFlagSet("katas", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
katas - snaking-word puzzle solver and generator.

Usage:
  katas [options] PUZZLE_PATH
  katas -generate -rows R -cols C -words W1,W2 [options] [PUZZLE_PATH]

Arguments:
  PUZZLE_PATH
    A .hcl puzzle file or a directory of them. With -generate, the file to
    write (stdout when omitted).

Options:
`)
		flagSet.PrintDefaults()
	}

	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	maxStepsFlag := flagSet.Int("max-steps", 0, "Neighbour probes allowed per word. 0 is unlimited.")
	showPathFlag := flagSet.Bool("show-path", false, "Print the cells of every path found.")
	generateFlag := flagSet.Bool("generate", false, "Generate a puzzle instead of solving one.")
	nameFlag := flagSet.String("name", "generated", "Puzzle name used with -generate.")
	rowsFlag := flagSet.Int("rows", 5, "Grid rows used with -generate.")
	colsFlag := flagSet.Int("cols", 5, "Grid columns used with -generate.")
	seedFlag := flagSet.Int64("seed", 1, "Random seed used with -generate.")
	wordsFlag := flagSet.String("words", "", "Comma-separated words to plant with -generate.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfg := &config{
		PuzzlePath: flagSet.Arg(0),
		LogLevel:   strings.ToLower(*logLevelFlag),
		LogFormat:  strings.ToLower(*logFormatFlag),
		MaxSteps:   *maxStepsFlag,
		ShowPath:   *showPathFlag,
		Generate:   *generateFlag,
		Name:       *nameFlag,
		Rows:       *rowsFlag,
		Cols:       *colsFlag,
		Seed:       *seedFlag,
	}
	for _, w := range strings.Split(*wordsFlag, ",") {
		if w = strings.TrimSpace(w); w != "" {
			cfg.Words = append(cfg.Words, w)
		}
	}

	if cfg.PuzzlePath == "" && !cfg.Generate {
		flagSet.Usage()
		return nil, true, nil
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	if cfg.MaxSteps < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid max-steps: must be 0 or positive"}
	}
	if cfg.Generate && len(cfg.Words) == 0 {
		return nil, false, &ExitError{Code: 2, Message: "-generate needs at least one word in -words"}
	}

	return cfg, false, nil
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/katas/builder"
	"github.com/katalvlaran/katas/puzzlefile"
	"github.com/katalvlaran/katas/snake"
)

// solve loads every puzzle under cfg.PuzzlePath, searches each word and
// prints one tab-separated line per word. Violated expectations turn into
// exit code 1 after all puzzles have been reported.
func solve(outW io.Writer, logger *slog.Logger, cfg *config) error {
	puzzles, err := puzzlefile.Load(cfg.PuzzlePath)
	if err != nil {
		return err
	}
	logger.Debug("Puzzles loaded.", "path", cfg.PuzzlePath, "count", len(puzzles))

	var opts []snake.Option
	if cfg.MaxSteps > 0 {
		opts = append(opts, snake.WithMaxSteps(cfg.MaxSteps))
	}

	failed := 0
	for _, p := range puzzles {
		logger.Debug("Solving puzzle.", "puzzle", p.Name, "height", p.Grid.Height, "width", p.Grid.Width, "words", len(p.Words))
		found, err := snake.FindAll(p.Grid, p.Words, opts...)
		if err != nil {
			return fmt.Errorf("puzzle %q: %w", p.Name, err)
		}
		for _, word := range p.Words {
			line := fmt.Sprintf("%s\t%s\t%t", p.Name, word, found[word])
			if cfg.ShowPath && found[word] {
				path, err := snake.FindPath(p.Grid, word, opts...)
				if err != nil {
					return fmt.Errorf("puzzle %q word %q: %w", p.Name, word, err)
				}
				line += "\t" + formatPath(path)
			}
			fmt.Fprintln(outW, line)

			if want, ok := p.Expect[word]; ok && want != found[word] {
				logger.Warn("Expectation failed.", "puzzle", p.Name, "word", word, "want", want, "got", found[word])
				failed++
			}
		}
	}
	if failed > 0 {
		return &ExitError{Code: 1, Message: fmt.Sprintf("%d expectation(s) failed", failed)}
	}
	logger.Info("All puzzles solved.", "count", len(puzzles))

	return nil
}

// generate plants cfg.Words into a fresh grid and writes it as HCL, every
// planted word expected to be found.
func generate(outW io.Writer, logger *slog.Logger, cfg *config) error {
	rows, err := builder.Puzzle(cfg.Rows, cfg.Cols, cfg.Words, builder.WithSeed(cfg.Seed))
	if err != nil {
		return err
	}
	expect := make(map[string]bool, len(cfg.Words))
	for _, w := range cfg.Words {
		expect[w] = true
	}
	p := &puzzlefile.Puzzle{Name: cfg.Name, Rows: rows, Words: cfg.Words, Expect: expect}
	logger.Debug("Puzzle generated.", "name", cfg.Name, "rows", cfg.Rows, "cols", cfg.Cols, "seed", cfg.Seed)

	if cfg.PuzzlePath == "" {
		return puzzlefile.Write(outW, []*puzzlefile.Puzzle{p})
	}
	f, err := os.Create(cfg.PuzzlePath)
	if err != nil {
		return fmt.Errorf("create %s: %w", cfg.PuzzlePath, err)
	}
	if err := puzzlefile.Write(f, []*puzzlefile.Puzzle{p}); err != nil {
		_ = f.Close()
		return err
	}
	logger.Info("Puzzle written.", "path", cfg.PuzzlePath)

	return f.Close()
}

func formatPath(p snake.Path) string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}

	return strings.Join(parts, " ")
}

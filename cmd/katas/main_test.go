package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const angularFixture = "../../puzzlefile/testdata/angular.hcl"

func TestRun_Solve(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, []string{angularFixture})

	// --- Assert ---
	require.NoError(t, err, "stderr: %s", errOut.String())
	want := []string{
		"angular\tANGULAR\ttrue",
		"angular\tREACT\ttrue",
		"angular\tUNDEFINED\ttrue",
		"angular\tRED\ttrue",
		"angular\tSTRING\ttrue",
		"angular\tCLASS\ttrue",
		"angular\tARRAY\ttrue",
		"angular\tFUNCTION\tfalse",
		"angular\tNULL\tfalse",
		"square\tabdc\ttrue",
		"square\tad\tfalse",
	}
	got := strings.Split(strings.TrimSpace(out.String()), "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_ShowPath(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, &bytes.Buffer{}, []string{"-show-path", angularFixture})

	require.NoError(t, err)
	require.Contains(t, out.String(), "angular\tANGULAR\ttrue\t0,0 0,1 0,2 0,3 0,4 0,5 0,6\n")
	require.Contains(t, out.String(), "square\tabdc\ttrue\t0,0 0,1 1,1 1,0\n")
	require.Contains(t, out.String(), "angular\tNULL\tfalse\n")
}

func TestRun_ExpectationFailed(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	src := `
puzzle "wrong" {
  rows  = ["AB", "CD"]
  words = ["ABDC"]

  expect = {
    ABDC = false
  }
}
`
	path := filepath.Join(t.TempDir(), "wrong.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0600))
	errOut := &bytes.Buffer{}

	// --- Act ---
	err := run(&bytes.Buffer{}, errOut, []string{"-log-format", "json", path})

	// --- Assert ---
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr), "expected *ExitError, got %v", err)
	require.Equal(t, 1, exitErr.Code)
	require.Equal(t, "1 expectation(s) failed", exitErr.Message)
	require.Contains(t, errOut.String(), `"msg":"Expectation failed."`)
}

func TestRun_StepBudget(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"-max-steps", "1", angularFixture})

	require.Error(t, err)
	require.Contains(t, err.Error(), "step budget")
}

func TestRun_GenerateThenSolve(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "gen.hcl")
	args := []string{"-generate", "-name", "gen", "-rows", "5", "-cols", "6", "-seed", "7", "-words", "SNAKE, GRID,PATH", path}

	// --- Act ---
	require.NoError(t, run(&bytes.Buffer{}, &bytes.Buffer{}, args))
	out := &bytes.Buffer{}
	err := run(out, &bytes.Buffer{}, []string{path})

	// --- Assert ---
	require.NoError(t, err)
	want := []string{"gen\tSNAKE\ttrue", "gen\tGRID\ttrue", "gen\tPATH\ttrue"}
	got := strings.Split(strings.TrimSpace(out.String()), "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_GenerateToStdout(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, &bytes.Buffer{}, []string{"-generate", "-words", "GO"})

	require.NoError(t, err)
	require.Contains(t, out.String(), `puzzle "generated" {`)
	require.Contains(t, out.String(), `GO = true`)
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	errOut := &bytes.Buffer{}
	err := run(&bytes.Buffer{}, errOut, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, errOut.String(), "Usage:", "Expected help text to be printed")
}

func TestRun_ParseErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		args []string
		want string
	}{
		{"UnknownFlag", []string{"--no-such-flag"}, "flag provided but not defined: -no-such-flag"},
		{"BadFormat", []string{"-log-format", "xml", "p.hcl"}, "invalid log-format"},
		{"BadLevel", []string{"-log-level", "loud", "p.hcl"}, "invalid log-level"},
		{"NegativeSteps", []string{"-max-steps", "-1", "p.hcl"}, "invalid max-steps"},
		{"GenerateNoWords", []string{"-generate"}, "needs at least one word"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := run(&bytes.Buffer{}, &bytes.Buffer{}, tc.args)

			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr), "expected *ExitError, got %v", err)
			require.Equal(t, 2, exitErr.Code)
			require.Contains(t, exitErr.Message, tc.want)
		})
	}
}

func TestRun_MissingFile(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{filepath.Join(t.TempDir(), "absent.hcl")})

	require.Error(t, err)
}

// SPDX-License-Identifier: MIT
package cli_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ghep/cli"
	"github.com/katalvlaran/ghep/config"
	"github.com/katalvlaran/ghep/eigen"
	"github.com/katalvlaran/ghep/matio"
	"github.com/katalvlaran/ghep/matrix"
)

// run executes cmd with args and returns the exit code, stdout and stderr.
func run(t *testing.T, cmd *cobra.Command, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	code := cli.Execute(cmd, args)
	return code, stdout.String(), stderr.String()
}

func TestNormalizeArgs(t *testing.T) {
	t.Parallel()
	fs := pflag.NewFlagSet("t", pflag.ContinueOnError)
	fs.Int("n", 0, "")
	fs.String("fileA", "", "")
	fs.BoolP("verbose", "x", false, "")

	got := cli.NormalizeArgs([]string{"-n", "30", "-fileA=A.bin", "--fileA", "B", "-x", "-", "--", "-n"}, fs)
	require.Equal(t, []string{"--n", "30", "--fileA=A.bin", "--fileA", "B", "-x", "-", "--", "-n"}, got)
	require.Empty(t, cli.NormalizeArgs(nil, fs))
}

func TestExitCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err  error
		want int
	}{
		{nil, cli.ExitOK},
		{errors.New("boom"), cli.ExitFailure},
		{config.ErrMissingFiles, cli.ExitUsage},
		{fmt.Errorf("x: %w", matrix.ErrInvalidDimensions), cli.ExitOutOfRange},
		{config.ErrOutOfRange, cli.ExitOutOfRange},
		{fmt.Errorf("Load: %w: %w", matio.ErrOpen, os.ErrNotExist), cli.ExitFileOpen},
		{fmt.Errorf("read: %w", io.ErrUnexpectedEOF), cli.ExitFileRead},
		{matio.ErrWrite, cli.ExitFileWrite},
		{matio.ErrBadHeader, cli.ExitFileUnexpected},
		{eigen.ErrNotPositiveDefinite, cli.ExitNotSPD},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, cli.ExitCode(tc.err), "%v", tc.err)
	}
}

func TestEx1_Default(t *testing.T) {
	t.Parallel()
	code, stdout, stderr := run(t, cli.NewEx1Command())
	require.Equal(t, cli.ExitOK, code, stderr)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "niterations=1", lines[0])
	require.Equal(t, "npairs=1", lines[1])
	require.True(t, strings.HasPrefix(lines[2], "   11.908119 "), lines[2])
}

func TestEx1_Options(t *testing.T) {
	t.Parallel()
	code, stdout, stderr := run(t, cli.NewEx1Command(),
		"-n", "10", "-ranks", "3", "-eps_nev", "2", "-eps_which", "smallest_real", "-pairs_label", "neigenpairs")
	require.Equal(t, cli.ExitOK, code, stderr)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, "neigenpairs=2", lines[1])
	require.True(t, strings.HasPrefix(lines[2], "    0.082123 "), lines[2])

	code, stdout, _ = run(t, cli.NewEx1Command(), "-n", "10", "-eps_problem_type", "hep", "-output", "json")
	require.Equal(t, cli.ExitOK, code)
	require.Contains(t, stdout, `"problem": "hep"`)
}

func TestEx1_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"zero dimension", []string{"-n", "0"}, cli.ExitOutOfRange},
		{"zero ranks", []string{"-ranks", "0"}, cli.ExitOutOfRange},
		{"zero nev", []string{"-eps_nev", "0"}, cli.ExitOutOfRange},
		{"unknown flag", []string{"-bogus"}, cli.ExitUsage},
		{"positional", []string{"extra"}, cli.ExitUsage},
		{"bad which", []string{"-eps_which", "middle"}, cli.ExitUsage},
		{"missing config", []string{"-config", "/nonexistent/ghep.yaml"}, cli.ExitFileOpen},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			code, stdout, stderr := run(t, cli.NewEx1Command(), tc.args...)
			require.Equal(t, tc.want, code, stderr)
			require.Empty(t, stdout)
			require.True(t, strings.HasPrefix(stderr, "ex1: "), stderr)
		})
	}
}

func TestSolve_MissingFiles(t *testing.T) {
	t.Parallel()
	for _, args := range [][]string{nil, {"-fileA", "A.bin"}, {"-fileB", "B.bin"}} {
		code, stdout, stderr := run(t, cli.NewSolveCommand(), args...)
		require.Equal(t, cli.ExitUsage, code)
		require.Empty(t, stdout)
		require.Equal(t, config.MissingFilesMessage+"\n", stderr)
	}
}

func TestGenerateThenSolve(t *testing.T) {
	t.Parallel()
	for _, format := range []string{"petsc", "gonum"} {
		dir := t.TempDir()
		a, b := filepath.Join(dir, "A.bin"), filepath.Join(dir, "B.bin")

		code, stdout, stderr := run(t, cli.NewGenerateCommand(), "-n", "30", "-ranks", "2", "-outA", a, "-outB", b, "-format", format)
		require.Equal(t, cli.ExitOK, code, stderr)
		require.Empty(t, stdout)
		require.FileExists(t, a)
		require.FileExists(t, b)

		code, fromFiles, stderr := run(t, cli.NewSolveCommand(), "-fileA", a, "-fileB", b, "-ranks", "4")
		require.Equal(t, cli.ExitOK, code, stderr)

		_, inProcess, _ := run(t, cli.NewEx1Command(), "-n", "30")
		require.Equal(t, inProcess, fromFiles, format)
	}
}

func TestSolve_FileErrors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	a, b := filepath.Join(dir, "A.bin"), filepath.Join(dir, "B.bin")
	code, _, stderr := run(t, cli.NewGenerateCommand(), "-n", "8", "-outA", a, "-outB", b)
	require.Equal(t, cli.ExitOK, code, stderr)

	raw, err := os.ReadFile(b)
	require.NoError(t, err)
	truncated := filepath.Join(dir, "truncated.bin")
	require.NoError(t, os.WriteFile(truncated, raw[:len(raw)-5], 0o644))
	garbage := filepath.Join(dir, "garbage.bin")
	require.NoError(t, os.WriteFile(garbage, []byte("not a matrix file"), 0o644))

	tests := []struct {
		name         string
		fileA, fileB string
		want         int
	}{
		{"missing", filepath.Join(dir, "nope.bin"), b, cli.ExitFileOpen},
		{"truncated", a, truncated, cli.ExitFileRead},
		{"garbage", garbage, b, cli.ExitFileUnexpected},
	}
	for _, tc := range tests {
		code, stdout, stderr := run(t, cli.NewSolveCommand(), "-fileA", tc.fileA, "-fileB", tc.fileB)
		require.Equal(t, tc.want, code, "%s: %s", tc.name, stderr)
		require.Empty(t, stdout)
	}
}

func TestSolve_NotPositiveDefinite(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	a, b := filepath.Join(dir, "A.bin"), filepath.Join(dir, "B.bin")
	code, _, stderr := run(t, cli.NewGenerateCommand(), "-n", "6", "-scale", "-1", "-outA", a, "-outB", b)
	require.Equal(t, cli.ExitOK, code, stderr)

	code, stdout, _ := run(t, cli.NewSolveCommand(), "-fileA", a, "-fileB", b)
	require.Equal(t, cli.ExitNotSPD, code)
	require.Empty(t, stdout)
}

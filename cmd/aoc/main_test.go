package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2025/config"
	"github.com/katalvlaran/aoc2025/puzzle"
)

const squareInput = "0,0,0\n1,0,0\n0,1,0\n1,1,0\n"

func inputDir(t *testing.T, day int, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(puzzle.InputPath(dir, day), []byte(content), 0o600))

	return dir
}

func TestRun_PrintsAnswers(t *testing.T) {
	dir := inputDir(t, 8, squareInput)
	var out, errOut bytes.Buffer

	code := run([]string{"-day", "8", "-input-dir", dir, "-threshold", "1", "-log-level", "error"}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	assert.Equal(t, "=== Day 8 ===\nPart 1: 2\nPart 2: 1\n", out.String())
}

// TestRun_ConfigFileAndOverride verifies flags win over the YAML file.
func TestRun_ConfigFileAndOverride(t *testing.T) {
	dir := inputDir(t, 8, squareInput)
	cfgPath := filepath.Join(t.TempDir(), "aoc.yaml")
	yaml := "day: 8\ninput_dir: " + dir + "\nthreshold: 1\nlog_level: error\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(yaml), 0o600))
	var out, errOut bytes.Buffer

	code := run([]string{"-config", cfgPath, "-threshold", "2"}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	// After two unit edges the square holds circuits of 3 and 1.
	assert.Contains(t, out.String(), "Part 1: 3\n")
}

func TestRun_Failures(t *testing.T) {
	var out, errOut bytes.Buffer

	assert.Equal(t, 2, run([]string{"-day", "40"}, &out, &errOut))
	assert.Contains(t, errOut.String(), "day must be at most 25")

	errOut.Reset()
	assert.Equal(t, 1, run([]string{"-day", "3", "-input-dir", t.TempDir(), "-log-level", "error"}, &out, &errOut))
	assert.Contains(t, errOut.String(), "unknown day")

	errOut.Reset()
	dir := inputDir(t, 8, "1,2\n")
	assert.Equal(t, 1, run([]string{"-input-dir", dir, "-log-level", "error"}, &out, &errOut))
	assert.True(t, strings.Contains(errOut.String(), "record is not three integers"))
	assert.Empty(t, out.String())
}

// TestNewRegistry_ReportsRegistrationErrors verifies duplicate and out-of-range days surface as errors.
func TestNewRegistry_ReportsRegistrationErrors(t *testing.T) {
	cfg := config.Default()
	nop := zap.NewNop()

	reg, err := newRegistry(cfg, nop)
	require.NoError(t, err)
	assert.Equal(t, []int{8}, reg.Days())

	dup := append([]solverFactory{}, solvers[0], solvers[0])
	_, err = newRegistry(cfg, nop, dup...)
	assert.ErrorIs(t, err, puzzle.ErrDuplicateDay)

	bad := solverFactory{day: 0, build: solvers[0].build}
	_, err = newRegistry(cfg, nop, bad)
	assert.ErrorIs(t, err, puzzle.ErrUnknownDay)
}

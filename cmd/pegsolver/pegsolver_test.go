package main

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-ricrob/pegsolver/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args. Unless args name one, the config
// is the default file, which does not exist in the test directory.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRunFourRows(t *testing.T) {
	for _, args := range [][]string{
		{"run", "--rows", "4", "--empty-row", "2", "--empty-hole", "1"},
		{"--rows", "4", "--empty-row", "2", "--empty-hole", "1"},
		{"run", "--rows", "4", "--empty-row", "2", "--empty-hole", "1", "--strategy", "stack", "--workers", "2"},
	} {
		stdout, _, err := execute(t, args...)
		require.NoError(t, err, args)
		assert.Contains(t, stdout, "Games played:        93\n", args)
		assert.Contains(t, stdout, "Solutions found:     14\n", args)
		assert.Contains(t, stdout, "Time elapsed:    ", args)
	}
}

func TestRunDefaultBoard(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full five row search")
	}

	stdout, _, err := execute(t)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "Games played:    137846\nSolutions found:   1550\nTime elapsed:    "), stdout)
}

func TestRunShowSolutions(t *testing.T) {
	stdout, _, err := execute(t, "run", "--rows", "4", "--empty-row", "2", "--empty-hole", "1",
		"--show-solutions", "2", "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Solution 1:")
	assert.Contains(t, stdout, "Solution 2:")
	assert.NotContains(t, stdout, "Solution 3:")
	assert.NotContains(t, stdout, "\x1b[")
}

func TestRunWithConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pegsolver.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows: 4\nempty_row: 2\nempty_hole: 1\nlog_level: debug\n"), 0o600))

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"run", "--config", path})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "Games played:        93\n")
	assert.Contains(t, stderr.String(), "search finished")
	assert.Contains(t, stderr.String(), "most frequent end position")

	// flags win over the file
	stdout.Reset()
	cmd = newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"run", "--config", path, "--rows", "3", "--empty-row", "1", "--empty-hole", "1"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "Games played:         2\n")
}

func TestRunMissingConfigFile(t *testing.T) {
	_, _, err := execute(t, "run", "--config", filepath.Join(t.TempDir(), "pegsovler.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestRunShowEnds(t *testing.T) {
	stdout, _, err := execute(t, "run", "--rows", "4", "--empty-row", "2", "--empty-hole", "1",
		"--show-ends=-1", "--color", "never")
	require.NoError(t, err)
	assert.Equal(t, 10, strings.Count(stdout, "End position "))
	assert.Contains(t, stdout, "games, 1 pegs left\n")
	assert.Contains(t, stdout, "Games played:        93\n")
}

func TestRunInvalidBoard(t *testing.T) {
	_, _, err := execute(t, "run", "--rows", "4", "--empty-row", "5", "--empty-hole", "1")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = execute(t, "run", "--rows", "4", "--empty-row", "2", "--empty-hole", "1", "--strategy", "bfs")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = execute(t, "run", "--rows", "4", "--empty-row", "2", "--empty-hole", "1", "--color", "sepia")
	assert.Error(t, err)
}

func TestRunMetrics(t *testing.T) {
	_, stderr, err := execute(t, "run", "--rows", "4", "--empty-row", "2", "--empty-hole", "1",
		"--metrics-addr", "127.0.0.1:0")
	require.NoError(t, err)
	assert.Contains(t, stderr, "serving metrics")
}

func TestBench(t *testing.T) {
	stdout, _, err := execute(t, "bench", "--rows", "4", "--empty-row", "2", "--empty-hole", "1", "--iterations", "3")
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(stdout, "Time elapsed:"))
	assert.Contains(t, stdout, "Trimmed mean of 3 runs:\nGames played:        93\nSolutions found:     14\n")

	_, _, err = execute(t, "bench", "--iterations", "0")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "pegsolver version dev\n", stdout)
}

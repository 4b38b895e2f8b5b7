package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// scenarioFile writes a concrete n=7/m=4 example hypergraph in
// hMetis format to dir and returns its path.
func scenarioFile(t *testing.T, dir string) string {
	t.Helper()
	content := "4 7 1\n" +
		"1 1 3\n" +
		"1000 1 2 4 5\n" +
		"1 4 5 7\n" +
		"1000 3 6 7\n"
	path := filepath.Join(dir, "scenario.hgr")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun_ProducesFeasiblePartitionFile(t *testing.T) {
	dir := t.TempDir()
	input := scenarioFile(t, dir)
	output := filepath.Join(dir, "out.part")

	stdout, err := os.CreateTemp(dir, "stdout")
	require.NoError(t, err)
	defer stdout.Close()
	stderr, err := os.CreateTemp(dir, "stderr")
	require.NoError(t, err)
	defer stderr.Close()

	code := run([]string{
		"-hypergraph", input,
		"-blocks", "2",
		"-epsilon", "0.5",
		"-seed", "42",
		"-output", output,
	}, stdout, stderr)
	require.Equal(t, exitOK, code)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 7)
	for _, line := range lines {
		require.Contains(t, []string{"0", "1"}, line)
	}
}

func TestRun_RejectsMissingHypergraph(t *testing.T) {
	dir := t.TempDir()
	stdout, _ := os.CreateTemp(dir, "stdout")
	defer stdout.Close()
	stderr, _ := os.CreateTemp(dir, "stderr")
	defer stderr.Close()

	code := run([]string{"-blocks", "2", "-epsilon", "0.5"}, stdout, stderr)
	require.Equal(t, exitInvalidConfig, code)
}

func TestRun_RejectsBadK(t *testing.T) {
	dir := t.TempDir()
	input := scenarioFile(t, dir)
	stdout, _ := os.CreateTemp(dir, "stdout")
	defer stdout.Close()
	stderr, _ := os.CreateTemp(dir, "stderr")
	defer stderr.Close()

	code := run([]string{"-hypergraph", input, "-blocks", "1", "-epsilon", "0.5"}, stdout, stderr)
	require.Equal(t, exitInvalidConfig, code)
}

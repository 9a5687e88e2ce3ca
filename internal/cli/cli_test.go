package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleProgram = "G01\nX10.000Y5.000\nX60.000Y5.000T01\nX20.000Y8.000\nG00\n"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(normalizeArgs(args))
	err := cmd.Execute()
	return stdout.String(), err
}

func writeProgram(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "prog.nc")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNormalizeArgs(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"single dash", []string{"-funkce1", "a.nc"}, []string{"--funkce1", "a.nc"}},
		{"with equals", []string{"-funkce2=a.nc"}, []string{"--funkce2=a.nc"}},
		{"already double", []string{"--funkce1", "a.nc"}, []string{"--funkce1", "a.nc"}},
		{"other flags untouched", []string{"-h"}, []string{"-h"}},
		{"path values untouched", []string{"-funkce1", "-funkce2.nc"}, []string{"--funkce1", "-funkce2.nc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeArgs(tt.in))
		})
	}
}

func TestRewriteCommand(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := writeProgram(t, dir, sampleProgram)

	stdout, err := run(t, "-funkce1", path)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(filepath.Join(dir, OutputFile))
	require.NoError(t, err)
	assert.Equal(t, "G01\nX10.000Y5.000\nX60.000Y15.000T01\nX20.000Y8.000\nG00\n", string(data))
}

func TestRewriteCommand_MissingInput(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	missing := filepath.Join(dir, "missing.nc")

	stdout, err := run(t, "-funkce1", missing)
	require.NoError(t, err)
	assert.Equal(t, "Cannot open/read file "+missing+"\n", stdout)

	_, statErr := os.Stat(filepath.Join(dir, OutputFile))
	assert.True(t, os.IsNotExist(statErr))
}

func TestReportCommand(t *testing.T) {
	path := writeProgram(t, t.TempDir(), sampleProgram)

	stdout, err := run(t, "-funkce2", path)
	require.NoError(t, err)
	assert.Equal(t, "20.000/60.000/5.000/8.000\n", stdout)
}

func TestReportCommand_MissingInputPrintsSentinel(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.nc")

	stdout, err := run(t, "-funkce2", missing)
	require.NoError(t, err)
	assert.Equal(t, "Cannot open/read file "+missing+"\ninf/-inf/inf/-inf\n", stdout)
}

func TestRewriteTakesPrecedence(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := writeProgram(t, dir, sampleProgram)

	stdout, err := run(t, "-funkce2", path, "-funkce1", path)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.FileExists(t, filepath.Join(dir, OutputFile))
}

func TestNoFlagsDoesNothing(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	stdout, err := run(t)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.NoFileExists(t, filepath.Join(dir, OutputFile))
}

func TestPositionalArgsRejected(t *testing.T) {
	_, err := run(t, "prog.nc")
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(prev))
	})
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"figcentroid/internal/calculator"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", cfg}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestDemoCommand(t *testing.T) {
	out, err := run(t, "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "Y = 39.66")
	assert.Contains(t, out, "CIR_MAJOR")
}

func TestDemoSaveThenCalc(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	_, err := run(t, "demo", "--save", path)
	require.NoError(t, err)

	out, err := run(t, "calc", path, "--precision", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Y = 39.657")
}

func TestCalcZeroArea(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zero.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: zero
shapes:
  - {name: a, kind: circle, radius: 1}
  - {name: b, kind: circle, radius: 1, subtract: true}
`), 0o644))

	_, err := run(t, "calc", path)
	assert.ErrorIs(t, err, calculator.ErrZeroArea)
}

func TestCalcRequiresFile(t *testing.T) {
	_, err := run(t, "calc")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "figcentroid 0.1.0")
}

func TestInvalidPrecisionFlag(t *testing.T) {
	_, err := run(t, "demo", "--precision", "40")
	assert.Error(t, err)
}

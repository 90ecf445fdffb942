package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestRootCmdFindings(t *testing.T) {
	path := writeSource(t, "bad.go", `package bad

const x = 1000
const y = 0xDEAD_BEEF
`)

	out, err := runCmd(t, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "found 1 ungrouped numeric literals")

	assert.Contains(t, out, path+":3:11: NUM001: use underscores every 3 digits in large numeric literals (1000) for better readability")
	// tablewriter upcases footers on render.
	assert.Contains(t, strings.ToUpper(out), "TOTAL FILES 1")
}

func TestRootCmdClean(t *testing.T) {
	path := writeSource(t, "clean.go", `package clean

const x = 100_000
`)

	out, err := runCmd(t, path)
	require.NoError(t, err)

	assert.NotContains(t, out, "NUM001")
	assert.Contains(t, strings.ToUpper(out), "TOTAL FILES 1")
}

func TestRootCmdParallel(t *testing.T) {
	one := writeSource(t, "one.go", "package one\n\nconst x = 10000\n")
	two := writeSource(t, "two.go", "package two\n\nconst y = 0xDEADBEEF\nconst z = 0b10101010\n")

	out, err := runCmd(t, "--parallel", "4", one, two)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "found 3 ungrouped numeric literals")

	// Concurrent runs still report in stable position order.
	first := strings.Index(out, one+":3")
	second := strings.Index(out, two+":3")
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, second, 0)
	assert.Less(t, first, second)
}

func TestRootCmdConfig(t *testing.T) {
	src := writeSource(t, "cfg.go", "package cfg\n\nconst x = 1000\n")
	cfg := writeSource(t, "numgroup.yaml", "widths:\n  decimal: 4\n")

	out, err := runCmd(t, "--config", cfg, src)
	require.NoError(t, err)
	assert.NotContains(t, out, "NUM001")
}

func TestRootCmdParseError(t *testing.T) {
	path := writeSource(t, "broken.go", "package broken\n\nconst = = =\n")

	_, err := runCmd(t, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

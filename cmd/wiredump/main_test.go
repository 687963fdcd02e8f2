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

func TestRunFields(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-fields", "u16,bool,script?", "0102 01"}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "258")
	assert.Contains(t, lines[1], "true")
	assert.Contains(t, lines[2], "absent")
}

func TestRunStdin(t *testing.T) {
	var stdout, stderr bytes.Buffer
	in := strings.NewReader(strings.Repeat("ab", 32) + "\n" + strings.Repeat("cd", 64) + "\n")
	code := run([]string{"-layout", "funding_signed"}, in, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), strings.Repeat("ab", 32))
}

func TestRunDecodeError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-fields", "bool", "02"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "invalid value")
	assert.Empty(t, stdout.String())
}

func TestRunUsageErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run(nil, strings.NewReader(""), &stdout, &stderr))
	assert.Equal(t, 2, run([]string{"-layout", "a", "-fields", "u8"}, strings.NewReader(""), &stdout, &stderr))
	assert.Equal(t, 2, run([]string{"-layout", "nope", "00"}, strings.NewReader(""), &stdout, &stderr))
	assert.Equal(t, 2, run([]string{"-bogus"}, strings.NewReader(""), &stdout, &stderr))
}

func TestRunList(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layouts.toml")
	require.NoError(t, os.WriteFile(path, []byte("[layouts.custom]\nfields = [\"u8\", \"hash\"]\n"), 0o600))

	var stdout, stderr bytes.Buffer
	code := run([]string{"-config", path, "-list"}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "custom")
	assert.Contains(t, stdout.String(), "u8,hash")
	assert.Contains(t, stdout.String(), "script?")
}

func TestReadInput(t *testing.T) {
	data, err := readInput([]string{"0x01", "02"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, data)

	_, err = readInput([]string{"zz"}, nil)
	assert.Error(t, err)
}

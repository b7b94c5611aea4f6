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

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeProgram(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCLIStdin(t *testing.T) {
	code, stdout, stderr := runCLI(t, `
- [def, x, 10]
- [print, ["*", ["+", x, ["/", 100, x]], ["-", ["+", x, 5], 5]]]
`)
	assert.Equal(t, 0, code)
	assert.Equal(t, "200\n", stdout)
	assert.Empty(t, stderr)
}

func TestCLIFiles(t *testing.T) {
	first := writeProgram(t, "first.yaml", "- [def, x, 1]\n- [print, x]\n")
	second := writeProgram(t, "second.json", `[["print", 2]]`)

	code, stdout, stderr := runCLI(t, "", first, second)
	assert.Equal(t, 0, code)
	assert.Equal(t, "1\n2\n", stdout)
	assert.Empty(t, stderr)
}

func TestCLIFreshEnvPerFile(t *testing.T) {
	first := writeProgram(t, "first.yaml", "- [def, x, 1]\n")
	second := writeProgram(t, "second.yaml", "- [print, x]\n")

	code, _, stderr := runCLI(t, "", first, second)
	assert.Equal(t, 1, code)
	assert.Equal(t, "Error: expression 0: undefined variable: x\n", stderr)
}

func TestCLIStopsOnError(t *testing.T) {
	code, stdout, stderr := runCLI(t, "- [print, 1]\n- [nope]\n- [print, 2]\n")
	assert.Equal(t, 1, code)
	assert.Equal(t, "1\n", stdout)
	assert.Equal(t, "Error: expression 1: unknown operator: nope\n", stderr)
}

func TestCLIKeepGoing(t *testing.T) {
	bad := writeProgram(t, "bad.yaml", "- [print, 1]\n- [nope]\n- [print, 2]\n")
	good := writeProgram(t, "good.yaml", "- [print, 3]\n")

	code, stdout, stderr := runCLI(t, "", "-k", bad, good)
	assert.Equal(t, 1, code)
	assert.Equal(t, "1\n2\n3\n", stdout)
	assert.Contains(t, stderr, "unknown operator: nope")
}

func TestCLIEcho(t *testing.T) {
	code, stdout, _ := runCLI(t, `[["+", 1, 2], [def, x, 4], x, [print, x], null]`, "-echo")
	assert.Equal(t, 0, code)
	assert.Equal(t, "3\n4\n4\nnull\n", stdout)
}

func TestCLIReadError(t *testing.T) {
	code, stdout, stderr := runCLI(t, "x: 1\n")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.True(t, strings.HasPrefix(stderr, "Error: read: line 1"), stderr)
}

func TestCLIMissingFile(t *testing.T) {
	code, _, stderr := runCLI(t, "", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "missing.yaml")
}

func TestCLIFlags(t *testing.T) {
	code, _, stderr := runCLI(t, "", "-bogus")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "usage: sexpeval")

	code, _, stderr = runCLI(t, "", "-h")
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr, "usage: sexpeval")
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestRun_List(t *testing.T) {
	code, out, _ := runCLI(t, "", "-list")
	require.Equal(t, 0, code)
	require.Equal(t, "add\nsubtract\nmultiply\nscalar\ntranspose\ndeterminant\ninverse\n", out)
}

func TestRun_Stdin(t *testing.T) {
	code, out, errOut := runCLI(t, "op: determinant\na: [[1, 2], [3, 4]]\n")
	require.Equal(t, 0, code, errOut)
	require.Equal(t, "-2.0000\n", out)
}

func TestRun_RequestFileAndDecimals(t *testing.T) {
	path := filepath.Join(t.TempDir(), "req.yaml")
	require.NoError(t, os.WriteFile(path, []byte("op: inverse\na: [[4, 7], [2, 6]]\n"), 0o600))

	code, out, errOut := runCLI(t, "", "-f", path, "-decimals", "1")
	require.Equal(t, 0, code, errOut)
	require.Equal(t, " 0.6  -0.7\n-0.2   0.4\n", out)
}

func TestRun_Config(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("decimals: 0\nsingular_tolerance: 1e-3\n"), 0o600))

	code, _, errOut := runCLI(t, "op: inverse\na: [[0.01, 0], [0, 0.01]]\n", "-config", cfg)
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "matrixcalc: ")
	require.Contains(t, errOut, "singular")

	code, out, errOut := runCLI(t, "op: scalar\na: [[1.4, 2.6]]\nscalar: 1\n", "-config", cfg)
	require.Equal(t, 0, code, errOut)
	require.Equal(t, "1  3\n", out)
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"non-square", "op: determinant\na: [[1, 2, 3], [4, 5, 6]]\n", nil, "determinant requires a square matrix, got 2x3"},
		{"unknown op", "op: power\na: [[1]]\n", nil, "unknown operation"},
		{"empty input", "", nil, "missing operand"},
		{"missing file", "", []string{"-f", filepath.Join(os.TempDir(), "matrixcalc-missing.yaml")}, "matrixcalc-missing.yaml"},
		{"bad decimals", "op: transpose\na: [[1]]\n", []string{"-decimals", "99"}, "invalid config"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, tc.stdin, tc.args...)
			require.Equal(t, 1, code)
			require.Empty(t, out)
			require.Contains(t, errOut, tc.want)
		})
	}
}

func TestRun_BadFlag(t *testing.T) {
	code, _, errOut := runCLI(t, "", "-nope")
	require.Equal(t, 2, code)
	require.Contains(t, errOut, "flag provided but not defined")
}

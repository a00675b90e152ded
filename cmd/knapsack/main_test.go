package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/config"
)

const instanceLines = "9000 4 5 2 3 3 4 4 5 5 6\n9001 2 10 1 2 10 15\n"

func writeInstances(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "knap.inst.dat")
	require.NoError(t, os.WriteFile(path, []byte(instanceLines), 0o644))

	return path
}

func TestRun_WritesSolutions(t *testing.T) {
	t.Setenv(config.EnvPath, "")
	dir := t.TempDir()
	in := writeInstances(t, dir)
	out := filepath.Join(dir, "out.sol.dat")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-f", in, "-o", out, "-m", "dynamic", "-r", "2", "-log-level", "error"}, &stdout, &stderr)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "9000 4 7  1 1 0 0\n9001 2 15  0 1\n", string(data))
	assert.True(t, strings.HasPrefix(stdout.String(), "Average solving time: "))
	assert.Contains(t, stdout.String(), "s (repetitions count 2)\n")
}

func TestRun_ConfigFileAndFlagOverride(t *testing.T) {
	dir := t.TempDir()
	in := writeInstances(t, dir)
	out := filepath.Join(dir, "out.sol.dat.gz")
	metrics := filepath.Join(dir, "metrics.prom")

	cfgPath := filepath.Join(dir, "run.yaml")
	doc := "method: ratio\ninst_file: " + in + "\nsolution_file: " + out + "\nmetrics_file: " + metrics + "\nlog:\n  level: error\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(doc), 0o644))
	t.Setenv(config.EnvPath, cfgPath)

	var stdout bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-m", "bandb", "-frontier", "depth"}, &stdout, &bytes.Buffer{}))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "9000 4 7", "solution file is gzip-compressed")

	prom, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `knapsack_solves_total{method="bandb",status="ok"} 2`)
}

func TestRun_Errors(t *testing.T) {
	t.Setenv(config.EnvPath, "")
	dir := t.TempDir()
	in := writeInstances(t, dir)
	out := filepath.Join(dir, "out.sol.dat")

	cases := map[string][]string{
		"missing instance file": {"-o", out},
		"unknown method":        {"-f", in, "-o", out, "-m", "genetic"},
		"scaling factor":        {"-f", in, "-o", out, "-m", "fptas", "-s", "1"},
		"temperature":           {"-f", in, "-o", out, "-m", "sa", "-t", "0"},
		"steps":                 {"-f", in, "-o", out, "-m", "sa", "-n", "0"},
		"unknown flag":          {"-f", in, "-x"},
		"stray argument":        {"-f", in, "extra"},
		"no such file":          {"-f", filepath.Join(dir, "nope.dat"), "-o", out},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			err := run(context.Background(), append(args, "-log-level", "error"), &bytes.Buffer{}, &bytes.Buffer{})
			assert.Error(t, err)
		})
	}
}

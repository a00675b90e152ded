package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/config"
	"github.com/katalvlaran/knapsack/knapsack"
)

const sample = `
method: sa
inst_file: data/knap_20.inst.dat
repeat: 3
workers: 2
temperature: 250
steps: 40
seed: 17
log:
  level: debug
  format: json
`

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "brute", cfg.Method)
	assert.Equal(t, "output.sol.dat", cfg.SolutionFile)
	assert.Equal(t, 1, cfg.Repeat)
	assert.Equal(t, "best", cfg.Frontier)
}

func TestLoadFromBytes_OverlaysDefaults(t *testing.T) {
	cfg, err := config.LoadFromBytes([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "sa", cfg.Method)
	assert.Equal(t, "data/knap_20.inst.dat", cfg.InstFile)
	assert.Equal(t, 3, cfg.Repeat)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 250.0, cfg.Temperature)
	assert.Equal(t, 40, cfg.Steps)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)

	// Untouched keys keep their defaults.
	assert.Equal(t, knapsack.DefaultScalingFactor, cfg.ScalingFactor)
	assert.Equal(t, knapsack.DefaultCoolingRate, cfg.CoolingRate)
	assert.Equal(t, "output.sol.dat", cfg.SolutionFile)
	assert.Equal(t, "stderr", cfg.Log.Output)
}

func TestLoadFromBytes_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown method":   "method: genetic",
		"unknown frontier": "frontier: random",
		"scaling factor":   "scaling_factor: 1",
		"temperature":      "temperature: 0.5",
		"steps":            "steps: 0",
		"cooling rate":     "cooling_rate: 1.5",
		"repeat":           "repeat: 0",
		"workers":          "workers: 0",
		"cache size":       "cache_size: -1",
		"log level":        "log:\n  level: loud",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.LoadFromBytes([]byte(doc))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	_, err := config.LoadFromBytes([]byte("method: [unterminated"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalid)
}

func TestLoad_Paths(t *testing.T) {
	t.Setenv(config.EnvPath, "")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	cfg, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))
	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sa", cfg.Method)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("steps: -4"), 0o644))
	_, err = config.Load(bad)
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), bad)
}

func TestLoad_EnvOverridesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.yaml")
	require.NoError(t, os.WriteFile(path, []byte("method: dynamic"), 0o644))
	t.Setenv(config.EnvPath, path)

	cfg, err := config.Load("ignored.yaml")
	require.NoError(t, err)
	assert.Equal(t, "dynamic", cfg.Method)
}

func TestSolverOptions(t *testing.T) {
	cfg, err := config.LoadFromBytes([]byte(sample + "frontier: breadth\nscaling_factor: 2.5\n"))
	require.NoError(t, err)

	opts, err := cfg.SolverOptions()
	require.NoError(t, err)
	assert.Equal(t, knapsack.Options{
		Method:        knapsack.MethodAnnealing,
		ScalingFactor: 2.5,
		InitTemp:      250,
		Steps:         40,
		CoolingRate:   knapsack.DefaultCoolingRate,
		Seed:          17,
		Frontier:      knapsack.BreadthFirst,
	}, opts)
}

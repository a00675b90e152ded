// Package config loads the YAML run configuration of the knapsack CLI and
// converts it into solver options.
//
// A configuration file is optional. Keys absent from the file keep their
// Default values, and command-line flags override both.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/knapsack/knapsack"
	"github.com/katalvlaran/knapsack/logging"
)

// EnvPath names the environment variable that overrides the config path.
const EnvPath = "KNAPSACK_CONFIG"

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is one run of the solver over an instance file.
type Config struct {
	Method        string  `yaml:"method"`
	InstFile      string  `yaml:"inst_file"`
	SolutionFile  string  `yaml:"solution_file"`
	Repeat        int     `yaml:"repeat"`
	Workers       int     `yaml:"workers"`
	ScalingFactor float64 `yaml:"scaling_factor"`
	Temperature   float64 `yaml:"temperature"`
	Steps         int     `yaml:"steps"`
	CoolingRate   float64 `yaml:"cooling_rate"`
	Seed          int64   `yaml:"seed"`
	Frontier      string  `yaml:"frontier"`
	CacheSize     int     `yaml:"cache_size"`
	MetricsFile   string  `yaml:"metrics_file"`

	Log logging.Config `yaml:"log"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Method:        knapsack.MethodBruteForce.String(),
		SolutionFile:  "output.sol.dat",
		Repeat:        1,
		Workers:       runtime.GOMAXPROCS(0),
		ScalingFactor: knapsack.DefaultScalingFactor,
		Temperature:   knapsack.DefaultInitTemp,
		Steps:         knapsack.DefaultSteps,
		CoolingRate:   knapsack.DefaultCoolingRate,
		Frontier:      knapsack.BestFirst.String(),
		Log:           logging.DefaultConfig(),
	}
}

// Load reads the configuration at path. KNAPSACK_CONFIG, when set, replaces
// path. An empty path or a missing file yields Default. The result is
// validated before it is returned.
func Load(path string) (*Config, error) {
	if env := os.Getenv(EnvPath); env != "" {
		path = env
	}
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := LoadFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// LoadFromBytes parses a YAML document over Default and validates it.
func LoadFromBytes(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate applies the run rules: a known method and frontier policy,
// scaling_factor > 1, temperature ≥ 1, steps ≥ 1, cooling_rate in (0, 1),
// repeat ≥ 1, workers ≥ 1 and cache_size ≥ 0.
func (c *Config) Validate() error {
	if _, err := knapsack.ParseMethod(c.Method); err != nil {
		return fmt.Errorf("%w: method: %w", ErrInvalid, err)
	}
	if _, err := knapsack.ParseFrontierPolicy(c.Frontier); err != nil {
		return fmt.Errorf("%w: frontier: %w", ErrInvalid, err)
	}

	switch {
	case !(c.ScalingFactor > 1):
		return fmt.Errorf("%w: scaling_factor must be greater than 1, got %v", ErrInvalid, c.ScalingFactor)
	case !(c.Temperature >= 1):
		return fmt.Errorf("%w: temperature must be at least 1, got %v", ErrInvalid, c.Temperature)
	case c.Steps < 1:
		return fmt.Errorf("%w: steps must be at least 1, got %d", ErrInvalid, c.Steps)
	case !(c.CoolingRate > 0 && c.CoolingRate < 1):
		return fmt.Errorf("%w: cooling_rate must lie in (0, 1), got %v", ErrInvalid, c.CoolingRate)
	case c.Repeat < 1:
		return fmt.Errorf("%w: repeat must be at least 1, got %d", ErrInvalid, c.Repeat)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalid, c.Workers)
	case c.CacheSize < 0:
		return fmt.Errorf("%w: cache_size must not be negative, got %d", ErrInvalid, c.CacheSize)
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log: %w", ErrInvalid, err)
	}

	return nil
}

// SolverOptions converts the solver-related fields into knapsack.Options.
func (c *Config) SolverOptions() (knapsack.Options, error) {
	method, err := knapsack.ParseMethod(c.Method)
	if err != nil {
		return knapsack.Options{}, err
	}
	frontier, err := knapsack.ParseFrontierPolicy(c.Frontier)
	if err != nil {
		return knapsack.Options{}, err
	}

	return knapsack.Options{
		Method:        method,
		ScalingFactor: c.ScalingFactor,
		InitTemp:      c.Temperature,
		Steps:         c.Steps,
		CoolingRate:   c.CoolingRate,
		Seed:          c.Seed,
		Frontier:      frontier,
	}, nil
}

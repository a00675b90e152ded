// Command knapsack solves every 0/1 knapsack instance of an instance file
// with one method and writes the solutions to a solution file.
//
// Usage:
//
//	knapsack -f knap_20.inst.dat [-o output.sol.dat] [-m brute|ratio|dynamic|bandb|fptas|sa]
//	         [-r repeat] [-s scaling] [-t temperature] [-n steps] [-config run.yaml]
//
// Flags given on the command line override the YAML configuration, which
// overrides the built-in defaults.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/knapsack/config"
	"github.com/katalvlaran/knapsack/instance"
	"github.com/katalvlaran/knapsack/knapsack"
	"github.com/katalvlaran/knapsack/logging"
	"github.com/katalvlaran/knapsack/runner"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "knapsack:", err)
		}
		stop()
		os.Exit(1)
	}
}

// flags mirrors the command line. Only flags that were set explicitly are
// applied over the configuration.
type flags struct {
	configPath string
	instFile   string
	solFile    string
	repeat     int
	method     string
	scaling    float64
	temp       float64
	steps      int
	workers    int
	seed       int64
	frontier   string
	cacheSize  int
	metrics    string
	logLevel   string
}

func parseFlags(args []string, stderr io.Writer) (*flags, map[string]bool, error) {
	var (
		f   flags
		def = config.Default()
		fs  = flag.NewFlagSet("knapsack", flag.ContinueOnError)
	)
	fs.SetOutput(stderr)

	fs.StringVar(&f.configPath, "config", "", "Path to a YAML run configuration (env "+config.EnvPath+" overrides)")
	fs.StringVar(&f.instFile, "f", def.InstFile, "Path to inst *.dat file (.gz, .zst and .lz4 are decompressed)")
	fs.StringVar(&f.solFile, "o", def.SolutionFile, "Path to file where solutions will be saved")
	fs.IntVar(&f.repeat, "r", def.Repeat, "Number of repetitions")
	fs.StringVar(&f.method, "m", def.Method, "Solving method: brute, ratio, dynamic, bandb, fptas or sa")
	fs.Float64Var(&f.scaling, "s", def.ScalingFactor, "Scaling factor for FPTAS algorithm")
	fs.Float64Var(&f.temp, "t", def.Temperature, "Initial temperature for annealing approach")
	fs.IntVar(&f.steps, "n", def.Steps, "Number of steps for annealing approach iteration")
	fs.IntVar(&f.workers, "workers", def.Workers, "Number of instances solved concurrently")
	fs.Int64Var(&f.seed, "seed", def.Seed, "Annealing seed; 0 selects the fixed default")
	fs.StringVar(&f.frontier, "frontier", def.Frontier, "Branch-and-bound node order: best, breadth or depth")
	fs.IntVar(&f.cacheSize, "cache", def.CacheSize, "Result cache size; 0 disables caching")
	fs.StringVar(&f.metrics, "metrics", def.MetricsFile, "Write Prometheus metrics to this file after the run")
	fs.StringVar(&f.logLevel, "log-level", def.Log.Level, "Log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if fs.NArg() > 0 {
		return nil, nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	set := make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	return &f, set, nil
}

// apply copies the explicitly set flags into cfg.
func (f *flags) apply(cfg *config.Config, set map[string]bool) {
	if set["f"] {
		cfg.InstFile = f.instFile
	}
	if set["o"] {
		cfg.SolutionFile = f.solFile
	}
	if set["r"] {
		cfg.Repeat = f.repeat
	}
	if set["m"] {
		cfg.Method = f.method
	}
	if set["s"] {
		cfg.ScalingFactor = f.scaling
	}
	if set["t"] {
		cfg.Temperature = f.temp
	}
	if set["n"] {
		cfg.Steps = f.steps
	}
	if set["workers"] {
		cfg.Workers = f.workers
	}
	if set["seed"] {
		cfg.Seed = f.seed
	}
	if set["frontier"] {
		cfg.Frontier = f.frontier
	}
	if set["cache"] {
		cfg.CacheSize = f.cacheSize
	}
	if set["metrics"] {
		cfg.MetricsFile = f.metrics
	}
	if set["log-level"] {
		cfg.Log.Level = f.logLevel
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	f, set, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	f.apply(cfg, set)
	if err = cfg.Validate(); err != nil {
		return err
	}
	if cfg.InstFile == "" {
		return errors.New("an instance file is required (-f or inst_file)")
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	opts, err := cfg.SolverOptions()
	if err != nil {
		return err
	}

	instances, err := instance.ReadFile(cfg.InstFile)
	if err != nil {
		return err
	}
	logger.Debug("instances loaded", zap.String("file", cfg.InstFile), zap.Int("count", len(instances)))

	var (
		reg     *prometheus.Registry
		metrics runner.MetricsCollector
	)
	if cfg.MetricsFile != "" {
		reg = prometheus.NewRegistry()
		metrics = runner.NewPrometheusMetrics(reg)
	}

	r, err := runner.New(opts,
		runner.WithWorkers(cfg.Workers),
		runner.WithRepeat(cfg.Repeat),
		runner.WithCacheSize(cfg.CacheSize),
		runner.WithLogger(logger),
		runner.WithMetrics(metrics),
	)
	if err != nil {
		return err
	}

	report, err := r.Run(ctx, instances)
	if err != nil {
		return err
	}

	if err = writeSolutions(cfg.SolutionFile, instances, report.Solutions); err != nil {
		return err
	}
	logger.Info("solutions written", zap.String("file", cfg.SolutionFile))

	if reg != nil {
		if err = prometheus.WriteToTextfile(cfg.MetricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	fmt.Fprintf(stdout, "Average solving time: %vs (repetitions count %d)\n", report.Average.Seconds(), report.Repetitions)

	return nil
}

func writeSolutions(path string, instances []knapsack.Instance, results []knapsack.Result) (err error) {
	wc, err := instance.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := wc.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	w := instance.NewSolutionWriter(wc)
	for i, inst := range instances {
		if err = w.Write(inst, results[i]); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	return w.Flush()
}

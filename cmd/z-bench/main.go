// Package main implements the z-bench command line interface.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/zzenonn/z-bench/benchmark"
	"github.com/zzenonn/z-bench/config"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 1 {
		usage()
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch args[0] {
	case "generate":
		err = runGenerate(args[1:])
	case "benchmark":
		err = runBenchmark(ctx, args[1:])
	case "all":
		err = runAll(ctx, args[1:])
	case "help", "-h", "--help":
		usage()
		return 0
	default:
		logrus.Errorf("Unknown subcommand: %s", args[0])
		usage()
		return 1
	}

	if err != nil {
		if ctx.Err() != nil || errors.Is(err, context.Canceled) {
			logrus.Error("Benchmark interrupted by user")
			return 1
		}
		logrus.Errorf("Error: %v", err)
		return 1
	}
	return 0
}

func usage() {
	fmt.Fprintf(os.Stderr, "z-bench - Object Storage Benchmark\n\n")
	fmt.Fprintf(os.Stderr, "Usage: z-bench <generate|benchmark|all> [options]\n\n")
	fmt.Fprintf(os.Stderr, "Examples:\n")
	fmt.Fprintf(os.Stderr, "  # Generate test files\n")
	fmt.Fprintf(os.Stderr, "  z-bench generate -output-dir ./testfiles -file-size 10MB -total-size 1GB\n\n")
	fmt.Fprintf(os.Stderr, "  # Benchmark PUT operations\n")
	fmt.Fprintf(os.Stderr, "  z-bench benchmark -op put -input-dir ./testfiles -put-cmd \"aws s3 cp {file} s3://bucket/\"\n\n")
	fmt.Fprintf(os.Stderr, "  # Full benchmark cycle\n")
	fmt.Fprintf(os.Stderr, "  z-bench all -output-dir ./testfiles -file-size 10MB -total-size 1GB\n\n")
	fmt.Fprintf(os.Stderr, "Run 'z-bench <subcommand> -h' for per-subcommand options.\n")
}

// runGenerate implements the generate subcommand.
func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	flagCfg := config.DefaultConfig()
	configFile := fs.String("config", "", "Path to configuration file (YAML or JSON)")
	fs.StringVar(&flagCfg.OutputDir, "output-dir", "", "Directory for generated files")
	fs.StringVar(&flagCfg.FileSize, "file-size", "", "Size per file (e.g. 10MB)")
	fs.StringVar(&flagCfg.TotalSize, "total-size", "", "Total dataset size (e.g. 1GB)")
	fs.BoolVar(&flagCfg.NoLog, "no-log", false, "Disable progress output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := buildConfig(fs, *configFile, flagCfg)
	if err != nil {
		return err
	}

	_, err = benchmark.New(cfg).RunGenerate()
	return err
}

// runBenchmark implements the benchmark subcommand.
func runBenchmark(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("benchmark", flag.ExitOnError)
	flagCfg := config.DefaultConfig()
	configFile := fs.String("config", "", "Path to configuration file (YAML or JSON)")
	opName := fs.String("op", "", "Operation type to benchmark: put, get, delete")
	fs.StringVar(&flagCfg.InputDir, "input-dir", "", "Directory containing test files")
	registerCommandFlags(fs, flagCfg)
	if err := fs.Parse(args); err != nil {
		return err
	}

	op, err := benchmark.ParseOperation(*opName)
	if err != nil {
		return err
	}

	cfg, err := buildConfig(fs, *configFile, flagCfg)
	if err != nil {
		return err
	}

	if err := benchmark.SetMaxResources(); err != nil {
		logrus.Warnf("Could not adjust resource limits: %v", err)
	}

	return benchmark.New(cfg).RunBenchmark(ctx, op)
}

// runAll implements the full-cycle subcommand.
func runAll(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("all", flag.ExitOnError)
	flagCfg := config.DefaultConfig()
	configFile := fs.String("config", "", "Path to configuration file (YAML or JSON)")
	fs.StringVar(&flagCfg.OutputDir, "output-dir", "", "Directory for generated files")
	fs.StringVar(&flagCfg.InputDir, "input-dir", "", "Directory with existing files (skips generation)")
	fs.StringVar(&flagCfg.FileSize, "file-size", "", "Size per file (e.g. 10MB)")
	fs.StringVar(&flagCfg.TotalSize, "total-size", "", "Total dataset size (e.g. 1GB)")
	fs.BoolVar(&flagCfg.ReuseFiles, "reuse-files", false, "Skip file generation if files exist")
	registerCommandFlags(fs, flagCfg)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := buildConfig(fs, *configFile, flagCfg)
	if err != nil {
		return err
	}

	return benchmark.New(cfg).RunFullCycle(ctx)
}

// registerCommandFlags registers the flags shared by the benchmark and
// full-cycle subcommands.
func registerCommandFlags(fs *flag.FlagSet, cfg *config.Config) {
	fs.StringVar(&cfg.PutCmd, "put-cmd", "", "PUT command template ({file} is replaced with the file path)")
	fs.StringVar(&cfg.GetCmd, "get-cmd", "", "GET command template")
	fs.StringVar(&cfg.DelCmd, "del-cmd", "", "DELETE command template")
	fs.StringVar(&cfg.OutFile, "out", cfg.OutFile, "Output file (CSV or JSONL)")
	fs.IntVar(&cfg.Warmup, "warmup", cfg.Warmup, "Number of warm-up operations per type")
	fs.IntVar(&cfg.Wait, "wait", cfg.Wait, "Wait time between phases (seconds)")
	fs.IntVar(&cfg.RateLimit, "rate-limit", 0, "Max command launches per second (0 means no limit)")
	fs.BoolVar(&cfg.NoLog, "no-log", false, "Disable logging for ultra-low-overhead timing")
}

// buildConfig layers configuration sources: defaults, then an optional
// config file, then environment variables, then any flag set explicitly on
// the command line.
func buildConfig(fs *flag.FlagSet, configFile string, flagCfg *config.Config) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if configFile != "" {
		loaded, err := config.LoadFromFile(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	config.LoadFromEnv(cfg)

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "output-dir":
			cfg.OutputDir = flagCfg.OutputDir
		case "input-dir":
			cfg.InputDir = flagCfg.InputDir
		case "file-size":
			cfg.FileSize = flagCfg.FileSize
		case "total-size":
			cfg.TotalSize = flagCfg.TotalSize
		case "put-cmd":
			cfg.PutCmd = flagCfg.PutCmd
		case "get-cmd":
			cfg.GetCmd = flagCfg.GetCmd
		case "del-cmd":
			cfg.DelCmd = flagCfg.DelCmd
		case "out":
			cfg.OutFile = flagCfg.OutFile
		case "warmup":
			cfg.Warmup = flagCfg.Warmup
		case "wait":
			cfg.Wait = flagCfg.Wait
		case "rate-limit":
			cfg.RateLimit = flagCfg.RateLimit
		case "no-log":
			cfg.NoLog = flagCfg.NoLog
		case "reuse-files":
			cfg.ReuseFiles = flagCfg.ReuseFiles
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Package config provides the immutable run configuration for z-bench.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds every parameter a z-bench run can take. The CLI layer builds
// it once from file, environment and flags; it is never mutated afterwards.
// Sizes stay as strings and are parsed lazily by the generator, so only the
// fields relevant to the active mode need to be populated.
type Config struct {
	// OutputDir is the directory generated files are written to.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// InputDir is the directory benchmark mode discovers files in.
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// FileSize is the per-file size expression, e.g. "10MB".
	FileSize string `json:"file_size" yaml:"file_size"`

	// TotalSize is the total dataset size expression, e.g. "1GB".
	TotalSize string `json:"total_size" yaml:"total_size"`

	// Warmup is the number of warm-up operations before measurement.
	Warmup int `json:"warmup" yaml:"warmup"`

	// Wait is the wait time between full-cycle phases, in seconds.
	Wait int `json:"wait" yaml:"wait"`

	// RateLimit caps command launches per second (0 means no limit).
	RateLimit int `json:"rate_limit" yaml:"rate_limit"`

	// OutFile is the result sink path; ".csv" selects CSV, anything else
	// JSON-Lines.
	OutFile string `json:"out" yaml:"out"`

	// NoLog disables result logging and progress output for
	// ultra-low-overhead timing runs.
	NoLog bool `json:"no_log" yaml:"no_log"`

	// ReuseFiles skips generation in full-cycle mode when files exist.
	ReuseFiles bool `json:"reuse_files" yaml:"reuse_files"`

	// Command templates. The literal "{file}" token is replaced with the
	// target file path before execution.
	PutCmd string `json:"put_cmd" yaml:"put_cmd"`
	GetCmd string `json:"get_cmd" yaml:"get_cmd"`
	DelCmd string `json:"del_cmd" yaml:"del_cmd"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Warmup:  3,
		Wait:    5,
		OutFile: "results.csv",
	}
}

// Validate checks the parameters shared by all modes.
func (c *Config) Validate() error {
	if c.Warmup < 0 {
		return fmt.Errorf("warmup must not be negative, got %d", c.Warmup)
	}
	if c.Wait < 0 {
		return fmt.Errorf("wait must not be negative, got %d", c.Wait)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate limit must not be negative, got %d", c.RateLimit)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML or JSON file on top of the
// defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", ext)
	}

	return cfg, nil
}

// LoadFromEnv applies environment overrides. Variables use the Z_BENCH_
// prefix.
func LoadFromEnv(cfg *Config) {
	if v := os.Getenv("Z_BENCH_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("Z_BENCH_INPUT_DIR"); v != "" {
		cfg.InputDir = v
	}
	if v := os.Getenv("Z_BENCH_FILE_SIZE"); v != "" {
		cfg.FileSize = v
	}
	if v := os.Getenv("Z_BENCH_TOTAL_SIZE"); v != "" {
		cfg.TotalSize = v
	}
	if v := os.Getenv("Z_BENCH_WARMUP"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Warmup = n
		}
	}
	if v := os.Getenv("Z_BENCH_WAIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Wait = n
		}
	}
	if v := os.Getenv("Z_BENCH_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RateLimit = n
		}
	}
	if v := os.Getenv("Z_BENCH_OUT"); v != "" {
		cfg.OutFile = v
	}
	if v := os.Getenv("Z_BENCH_NO_LOG"); v != "" {
		cfg.NoLog = v == "true" || v == "1"
	}
	if v := os.Getenv("Z_BENCH_REUSE_FILES"); v != "" {
		cfg.ReuseFiles = v == "true" || v == "1"
	}
	if v := os.Getenv("Z_BENCH_PUT_CMD"); v != "" {
		cfg.PutCmd = v
	}
	if v := os.Getenv("Z_BENCH_GET_CMD"); v != "" {
		cfg.GetCmd = v
	}
	if v := os.Getenv("Z_BENCH_DEL_CMD"); v != "" {
		cfg.DelCmd = v
	}
}

// Package config loads the degrees CLI configuration from a TOML file, with
// an optional .env file naming that file, and sets up logging.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// EnvConfigPath names the environment variable that may point at the TOML file.
const EnvConfigPath = "DEGREES_CONFIG"

// Algorithm names accepted in [sampling] algorithms.
const (
	AlgorithmBFS      = "bfs"
	AlgorithmDijkstra = "dijkstra"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the parsed TOML configuration.
type Config struct {
	Input    InputConfig
	Sampling SamplingConfig
	Output   OutputConfig
	Timing   TimingConfig
	Logging  LogConfig
}

// InputConfig locates and describes the edge list.
type InputConfig struct {
	Path   string
	Comma  string
	Header bool
}

// SamplingConfig controls the sampled shortest-path runs.
// Seed 0 asks the CLI to seed from the clock.
type SamplingConfig struct {
	Size       int
	Seed       int64
	Workers    int
	Algorithms []string
}

// OutputConfig controls where reports go.
type OutputConfig struct {
	Dir     string
	Listing bool `toml:"print_listing"`
}

// TimingConfig enables the repeated-trial timing mode.
type TimingConfig struct {
	Enabled    bool
	Sizes      []int
	Iterations int
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Input: InputConfig{
			Path:   "musae_git_edges.csv",
			Comma:  ",",
			Header: true,
		},
		Sampling: SamplingConfig{
			Size:       200,
			Workers:    1,
			Algorithms: []string{AlgorithmBFS, AlgorithmDijkstra},
		},
		Output: OutputConfig{Dir: "."},
		Timing: TimingConfig{
			Sizes:      []int{10, 100},
			Iterations: 5,
		},
		Logging: LogConfig{MaxSize: 100, MaxAge: 30},
	}
}

// Load decodes the TOML file at path over Default. An empty path returns
// Default unchanged. Unknown keys are rejected.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, c.Validate()
	}
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}
	return c, c.Validate()
}

// Validate checks value ranges and algorithm names.
func (c *Config) Validate() error {
	if c.Sampling.Size < 0 {
		return fmt.Errorf("%w: sampling.size=%d", ErrInvalidConfig, c.Sampling.Size)
	}
	if c.Sampling.Workers < 1 {
		return fmt.Errorf("%w: sampling.workers=%d", ErrInvalidConfig, c.Sampling.Workers)
	}
	if len(c.Sampling.Algorithms) == 0 {
		return fmt.Errorf("%w: sampling.algorithms is empty", ErrInvalidConfig)
	}
	for _, a := range c.Sampling.Algorithms {
		if a != AlgorithmBFS && a != AlgorithmDijkstra {
			return fmt.Errorf("%w: unknown algorithm %q", ErrInvalidConfig, a)
		}
	}
	if len([]rune(c.Input.Comma)) != 1 {
		return fmt.Errorf("%w: input.comma=%q must be one character", ErrInvalidConfig, c.Input.Comma)
	}
	if c.Timing.Enabled && c.Timing.Iterations < 1 {
		return fmt.Errorf("%w: timing.iterations=%d", ErrInvalidConfig, c.Timing.Iterations)
	}
	return nil
}

// CommaRune returns the input delimiter.
func (c *Config) CommaRune() rune { return []rune(c.Input.Comma)[0] }

// LoadEnv loads the given .env files into the process environment. With no
// files it loads ./.env when present. Variables already set are kept.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
	}
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("config: load env: %w", err)
	}
	return nil
}

// Path resolves the config file location: the explicit value when set,
// otherwise $DEGREES_CONFIG.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return os.Getenv(EnvConfigPath)
}

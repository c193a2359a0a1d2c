package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Repository settings
	RepoPath string

	// Output settings
	Format         string
	OutputJSONFile string
	OutputJSONDir  string

	// Execution settings
	Workers int

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Commit    string
	Repo      string
	Format    string
	Machine   bool
	Filter    string
	Save      bool
	Workers   int
	Verbose   bool
	TestCases bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		RepoPath:       DefaultRepoPath,
		Format:         DefaultFormat,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		Workers:        DefaultWorkers,
	}
}

// Load creates a config from defaults, the .env file, the environment and
// flags, later sources overriding earlier ones.
func Load(flags Flags) (*Config, error) {
	// A missing .env file is fine; variables already set in the environment win.
	_ = godotenv.Load(DefaultEnvFile)

	cfg := New()
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return nil, err
	}
	cfg.Apply(flags)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv(EnvRepo); v != "" {
		c.RepoPath = v
	}
	if v := getenv(EnvFormat); v != "" {
		c.Format = v
	}
	if v := getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvWorkers, v, err)
		}
		c.Workers = n
	}
	return nil
}

// Apply copies non-zero flags over the config
func (c *Config) Apply(flags Flags) {
	c.Flags = flags

	if flags.Repo != "" {
		c.RepoPath = flags.Repo
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Machine {
		c.Format = FormatMachine
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
}

// Validate checks settings that cannot be fixed up silently
func (c *Config) Validate() error {
	switch c.Format {
	case FormatHuman, FormatMachine, FormatJSON:
	default:
		return fmt.Errorf("unknown format %q (want %s, %s or %s)", c.Format, FormatHuman, FormatMachine, FormatJSON)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	return nil
}

// GetRepoPath returns the repository path, made absolute when possible
func (c *Config) GetRepoPath() string {
	if abs, err := filepath.Abs(c.RepoPath); err == nil {
		return abs
	}
	return c.RepoPath
}

// GetOutputPath returns the full path to the saved report file.
// Resolves to an absolute path so save and view agree regardless of cwd changes.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

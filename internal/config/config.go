// Package config resolves generator settings from defaults, an optional YAML
// file and SLIPGEN_* environment variables. Command-line flags are applied
// on top by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"pkg.jsn.cam/slippage/pkg/generator"
)

const (
	DefaultSeed        = 42
	DefaultSlips       = 200
	DefaultMembers     = 225
	DefaultSlipsFile   = "complex_test_slips.csv"
	DefaultMembersFile = "complex_test_members.csv"
	DefaultEnvFile     = ".env"

	envPrefix = "SLIPGEN_"
)

// ErrOutsideDir is returned by Validate for an output file name that is
// absolute or climbs out of Dir
var ErrOutsideDir = errors.New("output file must be a relative path inside the output directory")

// Config holds everything a generation run needs
type Config struct {
	Seed        uint64 `yaml:"seed"`
	Slips       int    `yaml:"slips"`
	Members     int    `yaml:"members"`
	Dir         string `yaml:"dir"`
	SlipsFile   string `yaml:"slips_file"`
	MembersFile string `yaml:"members_file"`

	// Profile names a registered profile; ProfileFile, when set, wins
	Profile     string `yaml:"profile"`
	ProfileFile string `yaml:"profile_file"`
	Strategy    string `yaml:"strategy"`

	// Ledger is a bbolt path; empty means runs are not recorded
	Ledger string `yaml:"ledger"`

	// CRLF row endings, matching the historical fixture files
	CRLF bool `yaml:"crlf"`
}

// Options points Load at its inputs
type Options struct {
	// ConfigPath is a YAML file; empty falls back to SLIPGEN_CONFIG, then none
	ConfigPath string
	// EnvFile is loaded into the environment when present; empty means .env
	EnvFile string
}

// Default returns the fixed settings used when nothing is configured
func Default() *Config {
	return &Config{
		Seed:        DefaultSeed,
		Slips:       DefaultSlips,
		Members:     DefaultMembers,
		Dir:         ".",
		SlipsFile:   DefaultSlipsFile,
		MembersFile: DefaultMembersFile,
		Profile:     generator.DefaultProfile,
		Strategy:    string(generator.Truncate),
		CRLF:        true,
	}
}

// Load resolves defaults < YAML file < environment
func Load(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	// godotenv never overrides variables that are already set
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	cfg := Default()

	path := opts.ConfigPath
	if path == "" {
		path = os.Getenv(envPrefix + "CONFIG")
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) loadEnv() error {
	if v := os.Getenv(envPrefix + "SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %sSEED: %w", envPrefix, err)
		}
		c.Seed = seed
	}

	var err error
	if c.Slips, err = loadInt("SLIPS", c.Slips); err != nil {
		return err
	}
	if c.Members, err = loadInt("MEMBERS", c.Members); err != nil {
		return err
	}

	loadString("DIR", &c.Dir)
	loadString("SLIPS_FILE", &c.SlipsFile)
	loadString("MEMBERS_FILE", &c.MembersFile)
	loadString("PROFILE", &c.Profile)
	loadString("PROFILE_FILE", &c.ProfileFile)
	loadString("STRATEGY", &c.Strategy)
	loadString("LEDGER", &c.Ledger)

	if v := os.Getenv(envPrefix + "CRLF"); v != "" {
		crlf, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %sCRLF: %w", envPrefix, err)
		}
		c.CRLF = crlf
	}
	return nil
}

func loadInt(key string, defValue int) (int, error) {
	value := os.Getenv(envPrefix + key)
	if value == "" {
		return defValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s%s: %w", envPrefix, key, err)
	}
	return n, nil
}

func loadString(key string, dst *string) {
	if v := os.Getenv(envPrefix + key); v != "" {
		*dst = v
	}
}

// Validate rejects settings no run could satisfy
func (c *Config) Validate() error {
	if c.Slips < 0 {
		return fmt.Errorf("slip count must not be negative, got %d", c.Slips)
	}
	if c.Members < 0 {
		return fmt.Errorf("member count must not be negative, got %d", c.Members)
	}
	if c.SlipsFile == "" || c.MembersFile == "" {
		return errors.New("output file names must not be empty")
	}
	for _, name := range []string{c.SlipsFile, c.MembersFile} {
		if !filepath.IsLocal(name) {
			return fmt.Errorf("%w: %q", ErrOutsideDir, name)
		}
	}
	if _, err := generator.ParseStrategy(c.Strategy); err != nil {
		return err
	}
	return nil
}

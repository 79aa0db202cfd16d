// Package config handles intcode command configuration: defaults, overlaid
// by an optional TOML file, overlaid by INTCODE_* environment variables.
// Command line flags are applied last by the command itself.
package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gitlab.com/efronlicht/enve"
)

// Run modes, selecting which Program entry point drives execution.
const (
	ModeRun    = "run"
	ModeOutput = "output"
	ModeInput  = "input"
)

// Config represents an intcode.toml file, or equivalent flags.
type Config struct {
	// Program is the path of a program text file.
	Program string `toml:"program"`

	// Inputs are queued before the program starts.
	Inputs []int64 `toml:"inputs"`

	// Set pokes memory before the program starts, mapping addresses to values.
	Set map[string]int64 `toml:"set"`

	Mode     string        `toml:"mode"`
	ASCII    bool          `toml:"ascii"`
	Trace    bool          `toml:"trace"`
	MemLimit uint64        `toml:"mem-limit"`
	PageSize uint64        `toml:"page-size"`
	Timeout  time.Duration `toml:"timeout"`

	Dump   bool   `toml:"dump"`
	Save   string `toml:"save"`
	Resume string `toml:"resume"`
	Tee    string `toml:"tee"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{Mode: ModeInput}
}

// Load reads a TOML config file over the default configuration.
// Unknown keys are an error, so that typos don't go unnoticed.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parse error in %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return cfg, fmt.Errorf("unknown keys in %s: %v", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// FromEnv overlays any INTCODE_* environment variables onto cfg.
func FromEnv(cfg Config) Config {
	cfg.Mode = enve.StringOr("INTCODE_MODE", cfg.Mode)
	cfg.Trace = enve.BoolOr("INTCODE_TRACE", cfg.Trace)
	cfg.MemLimit = enve.Uint64Or("INTCODE_MEM_LIMIT", cfg.MemLimit)
	cfg.PageSize = enve.Uint64Or("INTCODE_PAGE_SIZE", cfg.PageSize)
	cfg.Timeout = enve.DurationOr("INTCODE_TIMEOUT", cfg.Timeout)
	return cfg
}

// Validate checks for invalid settings.
func (cfg Config) Validate() error {
	switch cfg.Mode {
	case ModeRun, ModeOutput, ModeInput:
	default:
		return fmt.Errorf("invalid mode %q, must be one of %v, %v, or %v", cfg.Mode, ModeRun, ModeOutput, ModeInput)
	}
	if cfg.Program == "" && cfg.Resume == "" {
		return fmt.Errorf("no program given")
	}
	if cfg.Timeout < 0 {
		return fmt.Errorf("invalid negative timeout %v", cfg.Timeout)
	}
	_, err := cfg.Pokes()
	return err
}

// Poke is a memory value to set before running.
type Poke struct {
	Addr  int64
	Value int64
}

// Pokes returns the Set entries in address order.
func (cfg Config) Pokes() ([]Poke, error) {
	pokes := make([]Poke, 0, len(cfg.Set))
	for key, val := range cfg.Set {
		addr, err := strconv.ParseInt(strings.TrimSpace(key), 10, 64)
		if err != nil || addr < 0 {
			return nil, fmt.Errorf("invalid set address %q", key)
		}
		pokes = append(pokes, Poke{addr, val})
	}
	sort.Slice(pokes, func(i, j int) bool { return pokes[i].Addr < pokes[j].Addr })
	return pokes, nil
}

// AddSet parses an "ADDR=VALUE" assignment into Set.
func (cfg *Config) AddSet(assign string) error {
	i := strings.IndexByte(assign, '=')
	if i < 0 {
		return fmt.Errorf("invalid assignment %q, expected ADDR=VALUE", assign)
	}
	addr, err := strconv.ParseInt(strings.TrimSpace(assign[:i]), 10, 64)
	if err != nil || addr < 0 {
		return fmt.Errorf("invalid address in %q", assign)
	}
	val, err := strconv.ParseInt(strings.TrimSpace(assign[i+1:]), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid value in %q: %w", assign, err)
	}
	if cfg.Set == nil {
		cfg.Set = make(map[string]int64)
	}
	cfg.Set[strconv.FormatInt(addr, 10)] = val
	return nil
}

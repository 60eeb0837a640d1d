// Package config loads glforward.toml.
package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/glforward/capture"
	"github.com/wippyai/glforward/errors"
)

// Backend names accepted in [backend] name.
const (
	BackendSoft  = "soft"
	BackendTrace = "trace"
)

// Defaults applied to unset fields.
const (
	DefaultLogLevel = "info"
	DefaultMemory   = 1 << 16
	DefaultWorkers  = 4
	DefaultCalls    = 100_000
)

// Config is the whole file.
type Config struct {
	Log     Log     `toml:"log"`
	Backend Backend `toml:"backend"`
	Capture Capture `toml:"capture"`
	Bench   Bench   `toml:"bench"`

	// Path is the file the config was loaded from, empty for defaults.
	Path string `toml:"-"`
}

// Log configures the zap logger.
type Log struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

// Backend selects what receives routed calls.
type Backend struct {
	Name string `toml:"name"`
	// Trace wraps the soft backend so each call is also logged.
	Trace bool `toml:"trace"`
	// Memory is the size in bytes of the soft backend's address space.
	Memory int `toml:"memory"`
	// Require lists operations the backend must wire.
	Require []string `toml:"require"`
}

// Capture configures recording of routed calls.
type Capture struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

// Bench configures the bench command.
type Bench struct {
	Workers int `toml:"workers"`
	Calls   int `toml:"calls"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads and validates the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindNotFound, err,
			fmt.Sprintf("cannot read %s", path))
	}
	c, err := Parse(data)
	if err != nil {
		if e, ok := err.(*errors.Error); ok {
			e.Path = append([]string{path}, e.Path...)
		}
		return nil, err
	}
	c.Path = path
	return c, nil
}

// Parse decodes TOML text. Keys it does not know are rejected.
func Parse(data []byte) (*Config, error) {
	var c Config
	md, err := toml.Decode(string(data), &c)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidData, err, "parse error")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.InvalidInput(errors.PhaseConfig, "unknown keys: "+strings.Join(keys, ", "))
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Backend.Name == "" {
		c.Backend.Name = BackendSoft
	}
	if c.Backend.Memory == 0 {
		c.Backend.Memory = DefaultMemory
	}
	if c.Capture.Level == "" {
		c.Capture.Level = capture.LevelAll.String()
	}
	if c.Bench.Workers == 0 {
		c.Bench.Workers = DefaultWorkers
	}
	if c.Bench.Calls == 0 {
		c.Bench.Calls = DefaultCalls
	}
}

// Validate checks field values after defaults are applied.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Path("log", "level").Cause(err).Detail("unknown level %q", c.Log.Level).Build()
	}
	switch c.Backend.Name {
	case BackendSoft, BackendTrace:
	default:
		return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Path("backend", "name").Value(c.Backend.Name).
			Detail("backend must be %q or %q", BackendSoft, BackendTrace).Build()
	}
	if c.Backend.Memory < 0 || uint64(c.Backend.Memory) > 1<<32 {
		return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Path("backend", "memory").Value(c.Backend.Memory).
			Detail("memory must fit a 32-bit address space").Build()
	}
	if _, err := c.CaptureLevel(); err != nil {
		return err
	}
	if c.Bench.Workers < 0 || c.Bench.Calls < 0 {
		return errors.InvalidInput(errors.PhaseConfig, "bench workers and calls must not be negative")
	}
	return nil
}

// CaptureLevel parses [capture] level.
func (c *Config) CaptureLevel() (capture.Level, error) {
	return capture.ParseLevel(c.Capture.Level)
}

// Logger builds the zap logger described by [log].
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "log level")
	}
	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}

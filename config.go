package main

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/jcorbin/inets/internal/inet"
)

// Config collects every runtime knob settable by a --config file; command
// line flags override it.
type Config struct {
	Profile  string        `yaml:"profile"`
	Strategy string        `yaml:"strategy"`
	MemLimit uint          `yaml:"mem_limit"`
	PageSize uint          `yaml:"page_size"`
	Lenient  bool          `yaml:"lenient"`
	Trace    bool          `yaml:"trace"`
	Timeout  time.Duration `yaml:"timeout"`
}

// DefaultConfig returns the configuration used absent any file or flag.
func DefaultConfig() Config {
	return Config{
		Profile:  inet.DefaultProfile.Name,
		Strategy: inet.LIFO.String(),
	}
}

// LoadConfig reads a YAML config file over cfg; unknown keys are errors.
func LoadConfig(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "config")
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return errors.Wrapf(err, "config %v", path)
	}
	return nil
}

// Options translates cfg into net options, logging traces to logf if enabled.
func (cfg Config) Options(logf func(mess string, args ...interface{})) (inet.Option, error) {
	prof, err := inet.ProfileNamed(cfg.Profile)
	if err != nil {
		return nil, err
	}
	strategy, err := inet.StrategyNamed(cfg.Strategy)
	if err != nil {
		return nil, err
	}
	opts := []inet.Option{
		inet.WithProfile(prof),
		inet.WithStrategy(strategy),
		inet.WithMemLimit(cfg.MemLimit),
		inet.WithStrict(!cfg.Lenient),
	}
	if cfg.PageSize != 0 {
		opts = append(opts, inet.WithPageSize(cfg.PageSize))
	}
	if cfg.Trace && logf != nil {
		opts = append(opts, inet.WithLogf(logf))
	}
	return inet.Options(opts...), nil
}

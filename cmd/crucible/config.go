package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/katalvlaran/crucible/search"
)

// envPrefix namespaces every environment override, e.g. CRUCIBLE_FORMAT.
const envPrefix = "CRUCIBLE"

// Output formats understood by writeOutcomes.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var errBadFormat = errors.New("crucible: unknown output format")

// Config is the merged view of defaults, the YAML config file, CRUCIBLE_*
// environment variables and command-line flags, in increasing precedence.
type Config struct {
	LogLevel      string       `mapstructure:"log_level"`
	Format        string       `mapstructure:"format"`
	Regimes       []string     `mapstructure:"regimes"`
	Free          FreeConfig   `mapstructure:"free"`
	Forced        ForcedConfig `mapstructure:"forced"`
	MaxExpansions int          `mapstructure:"max_expansions"`
	MaxCost       int64        `mapstructure:"max_cost"`
	Path          bool         `mapstructure:"path"`
	Trace         bool         `mapstructure:"trace"`
	Metrics       bool         `mapstructure:"metrics"`
	CPUProfile    string       `mapstructure:"cpuprofile"`
}

// FreeConfig bounds the free-turn regime.
type FreeConfig struct {
	MaxRun int `mapstructure:"max_run"`
}

// ForcedConfig bounds the forced-run regime.
type ForcedConfig struct {
	MinRun int `mapstructure:"min_run"`
	MaxRun int `mapstructure:"max_run"`
}

// newViper returns a viper instance carrying the defaults and the
// environment binding; flags are bound by the commands that own them.
func newViper() *viper.Viper {
	free, forced := search.DefaultFreeTurn(), search.DefaultForcedRun()

	v := viper.New()
	v.SetDefault("log_level", "info")
	v.SetDefault("format", formatText)
	v.SetDefault("regimes", []string{search.FreeTurnName, search.ForcedRunName})
	v.SetDefault("free.max_run", free.Max)
	v.SetDefault("forced.min_run", forced.Min)
	v.SetDefault("forced.max_run", forced.Max)
	v.SetDefault("max_expansions", 0)
	v.SetDefault("max_cost", -1)
	v.SetDefault("path", false)
	v.SetDefault("trace", false)
	v.SetDefault("metrics", false)
	v.SetDefault("cpuprofile", "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// loadConfig reads .env (if any), then the optional YAML file at path, and
// unmarshals the merged settings.
func loadConfig(v *viper.Viper, path string) (Config, error) {
	var cfg Config
	_ = godotenv.Load()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch c.Format {
	case formatText, formatJSON, formatYAML:
	default:
		return fmt.Errorf("%w: %q (want text, json or yaml)", errBadFormat, c.Format)
	}
	if c.MaxExpansions < 0 {
		return fmt.Errorf("max_expansions cannot be negative (%d)", c.MaxExpansions)
	}
	if len(c.Regimes) == 0 {
		return fmt.Errorf("%w: no regimes configured", search.ErrUnknownRegime)
	}

	return nil
}

// regime resolves one regime name and applies the configured run bounds.
func (c Config) regime(name string) (search.Regime, error) {
	r, err := search.ParseRegime(name)
	if err != nil {
		return nil, err
	}

	switch r.(type) {
	case search.FreeTurn:
		r, err = search.NewFreeTurn(c.Free.MaxRun)
	case search.ForcedRun:
		r, err = search.NewForcedRun(c.Forced.MinRun, c.Forced.MaxRun)
	}
	if err != nil {
		return nil, err
	}

	return r, nil
}

// regimes resolves every configured regime once, in configuration order.
func (c Config) regimes() ([]search.Regime, error) {
	seen := make(map[string]bool, len(c.Regimes))
	out := make([]search.Regime, 0, len(c.Regimes))
	for _, name := range c.Regimes {
		r, err := c.regime(name)
		if err != nil {
			return nil, err
		}
		if seen[r.Name()] {
			continue
		}
		seen[r.Name()] = true
		out = append(out, r)
	}

	return out, nil
}

// searchOptions turns the budget settings into search options.
func (c Config) searchOptions() []search.Option {
	var opts []search.Option
	if c.MaxExpansions > 0 {
		opts = append(opts, search.WithMaxExpansions(c.MaxExpansions))
	}
	if c.MaxCost >= 0 {
		opts = append(opts, search.WithMaxCost(c.MaxCost))
	}
	if c.Path {
		opts = append(opts, search.WithReturnPath())
	}

	return opts
}

// Package drill runs an interactive review session in a terminal against a
// remote wordflow server.
package drill

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix of environment variables read by the drill CLI.
// DRILL_SERVER_URL maps to server_url.
const EnvPrefix = "DRILL_"

// Config holds the drill CLI settings.
type Config struct {
	ServerURL     string        `koanf:"server_url"`
	Token         string        `koanf:"token"`
	Seed          uint64        `koanf:"seed"`
	FeedLimit     int           `koanf:"feed_limit"`
	MatchingEvery int           `koanf:"matching_every"`
	Timeout       time.Duration `koanf:"timeout"`
	LogLevel      string        `koanf:"log_level"`
}

// Flags registers the drill flags on fs. Flag defaults are the lowest
// priority layer; posflag only overrides config file and environment values
// with flags the user actually set.
func Flags(fs *pflag.FlagSet) {
	fs.StringP("config", "c", "", "path to a YAML config file")
	fs.String("server_url", "http://localhost:8080", "wordflow server base URL")
	fs.String("token", "", "bearer access token")
	fs.Uint64("seed", 0, "exercise generator seed; 0 picks one from the clock")
	fs.Int("feed_limit", 0, "maximum due cards per fetch; 0 uses the server default")
	fs.Int("matching_every", 5, "present a matching exercise every N turns; 0 disables")
	fs.Duration("timeout", 15*time.Second, "per-request HTTP timeout")
	fs.String("log_level", "warn", "log level (debug, info, warn, error)")
}

// LoadConfig layers the config file named by --config, DRILL_* environment
// variables and explicitly set flags, in increasing priority.
func LoadConfig(fs *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	path, err := fs.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("config flag: %w", err)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	if err := k.Load(posflag.Provider(fs, ".", k), nil); err != nil {
		return nil, fmt.Errorf("load flags: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the loaded settings.
func (c *Config) Validate() error {
	var errs []error
	if c.ServerURL == "" {
		errs = append(errs, errors.New("server_url is required"))
	}
	if c.Token == "" {
		errs = append(errs, errors.New("token is required"))
	}
	if c.FeedLimit < 0 {
		errs = append(errs, errors.New("feed_limit must not be negative"))
	}
	if c.MatchingEvery < 0 {
		errs = append(errs, errors.New("matching_every must not be negative"))
	}
	if c.Timeout <= 0 {
		errs = append(errs, errors.New("timeout must be positive"))
	}
	return errors.Join(errs...)
}

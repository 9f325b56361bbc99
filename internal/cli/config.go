package cli

import (
	"os"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/fontroute/pkg/errors"
)

// Config is the optional user configuration, read from a TOML file.
// Flags override it and it overrides the built-in defaults.
type Config struct {
	LogLevel     string      `toml:"log_level"`
	ListenAddr   string      `toml:"listen_addr"`
	DefaultLimit int         `toml:"default_limit"`
	Cache        CacheConfig `toml:"cache"`
}

// CacheConfig selects and tunes the render cache.
type CacheConfig struct {
	Dir       string `toml:"dir"`
	TTL       string `toml:"ttl"` // time.ParseDuration syntax, e.g. "72h"
	RedisAddr string `toml:"redis_addr"`
	Disabled  bool   `toml:"disabled"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		LogLevel:     "info",
		ListenAddr:   defaultListenAddr,
		DefaultLimit: 16,
	}
}

func (c CacheConfig) ttl() (time.Duration, error) {
	if c.TTL == "" {
		return 0, nil
	}
	return time.ParseDuration(c.TTL)
}

// level returns the configured log level, or info if unset.
func (c Config) level() (log.Level, error) {
	if c.LogLevel == "" {
		return log.InfoLevel, nil
	}
	return log.ParseLevel(c.LogLevel)
}

// LoadConfig reads the config file at path on top of [DefaultConfig].
//
// An empty path reads the default location and tolerates a missing file.
// An explicit path must exist.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := configFile()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidPath, err, "read config")
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return cfg, errors.New(errors.ErrCodeInvalidFormat, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "config %s", path)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if _, err := c.level(); err != nil {
		return err
	}
	if _, err := c.Cache.ttl(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "cache.ttl")
	}
	if c.DefaultLimit < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "default_limit must not be negative")
	}
	return nil
}

package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/fontroute/pkg/cache"
	"github.com/matzehuels/fontroute/pkg/services"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "fontroute"

	// defaultListenAddr is where serve listens when neither flag nor config set one.
	defaultListenAddr = ":8080"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Names under which the CLI registers its services.
const (
	configService = "Config"
	cacheService  = "Cache"
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config

	configPath string
	verbose    bool
	services   *services.Container
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{
		Logger:   newLogger(w, level),
		Config:   DefaultConfig(),
		services: services.NewContainer(),
	}
	services.Provide[services.Logger](c.services, services.LoggerService, services.NewCharmLogger(c.Logger))
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// Services returns the container commands resolve shared services from.
func (c *CLI) Services() *services.Container { return c.services }

// =============================================================================
// Cache Factory
// =============================================================================

// openCache returns the render cache selected by the configuration and
// registers it in the container. A Redis server that cannot be reached
// degrades to the file cache.
func (c *CLI) openCache(ctx context.Context, noCache bool) cache.Cache {
	ch := c.newCache(ctx, noCache)
	services.Provide(c.services, cacheService, ch)
	return ch
}

func (c *CLI) newCache(ctx context.Context, noCache bool) cache.Cache {
	if noCache || c.Config.Cache.Disabled {
		return cache.NewNullCache()
	}

	if addr := c.Config.Cache.RedisAddr; addr != "" {
		cfg := cache.DefaultRedisConfig()
		cfg.Addr = addr
		if ttl, err := c.Config.Cache.ttl(); err == nil && ttl > 0 {
			cfg.DefaultTTL = ttl
		}
		rc, err := cache.NewRedisCache(ctx, cfg)
		if err == nil {
			c.Logger.Debug("using redis cache", "addr", addr)
			return rc
		}
		c.Logger.Warn("redis cache unavailable, using file cache", "addr", addr, "err", err)
	}

	dir, err := c.cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("file cache unavailable", "dir", dir, "err", err)
		return cache.NewNullCache()
	}
	return fc
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the configured cache directory, or the XDG default.
func (c *CLI) cacheDir() (string, error) {
	if c.Config.Cache.Dir != "" {
		return c.Config.Cache.Dir, nil
	}
	return cacheDir()
}

// cacheDir returns the cache directory using XDG standard (~/.cache/fontroute/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configFile returns the default config file path (~/.config/fontroute/config.toml).
func configFile() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

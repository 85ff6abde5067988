// Package config loads the colorbars configuration file.
//
// The file is TOML, read from $XDG_CONFIG_HOME/colorbars/config.toml (or the
// platform equivalent) unless a path is given explicitly:
//
//	[chart]
//	width = 960
//	height = 500
//	limit = 200
//	formats = ["svg"]
//
//	[cache]
//	backend = "file"   # none | file | redis | mongo
//	ttl = "24h"
//
//	[cache.redis]
//	addr = "localhost:6379"
//
//	[server]
//	addr = ":8080"
//
// Values missing from the file keep their defaults. Command-line flags
// override both.
package config

import (
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/colorbars/pkg/cache"
	"github.com/matzehuels/colorbars/pkg/errors"
	"github.com/matzehuels/colorbars/pkg/freq"
)

// Config is the full configuration.
type Config struct {
	Chart  ChartConfig  `toml:"chart"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// ChartConfig holds render defaults.
type ChartConfig struct {
	Width      float64  `toml:"width"`
	Height     float64  `toml:"height"`
	Limit      int      `toml:"limit"`
	Title      string   `toml:"title"`
	Background string   `toml:"background"`
	Formats    []string `toml:"formats"`
}

// CacheConfig selects the artifact cache backend.
type CacheConfig struct {
	Backend string      `toml:"backend"`
	Dir     string      `toml:"dir"`
	TTL     Duration    `toml:"ttl"`
	Redis   RedisConfig `toml:"redis"`
	Mongo   MongoConfig `toml:"mongo"`
}

// RedisConfig configures the redis backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

// MongoConfig configures the mongo backend.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Duration is a time.Duration written as a string ("24h") in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration as a Go duration string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Defaults.
const (
	DefaultWidth      = 960.0
	DefaultHeight     = 500.0
	DefaultCacheTTL   = 24 * time.Hour
	DefaultServerAddr = ":8080"
	DefaultRedisAddr  = "localhost:6379"
	DefaultMongoURI   = "mongodb://localhost:27017"
)

// Formats lists the output formats a chart can be rendered to.
var Formats = []string{"svg", "png", "html", "pdf", "json"}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Chart: ChartConfig{
			Width:   DefaultWidth,
			Height:  DefaultHeight,
			Limit:   freq.DefaultLimit,
			Formats: []string{"svg"},
		},
		Cache: CacheConfig{
			Backend: cache.BackendNone,
			TTL:     Duration{DefaultCacheTTL},
			Redis:   RedisConfig{Addr: DefaultRedisAddr, Prefix: cache.DefaultRedisPrefix},
			Mongo: MongoConfig{
				URI:        DefaultMongoURI,
				Database:   cache.DefaultMongoDatabase,
				Collection: cache.DefaultMongoCollection,
			},
		},
		Server: ServerConfig{Addr: DefaultServerAddr},
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "colorbars", "config.toml"), nil
}

// Load reads the config at path on top of the defaults. An empty path reads
// DefaultPath, where a missing file is not an error; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && stderrors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		if stderrors.Is(err, fs.ErrNotExist) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidPath, err, "read config %s", path)
	}
	if err := Decode(string(data), &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "config %s", path)
	}
	return cfg, nil
}

// Decode parses TOML into cfg, keeping fields the document does not set.
// Unknown keys are rejected.
func Decode(data string, cfg *Config) error {
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidInput, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return cfg.Validate()
}

// Encode writes cfg as TOML.
func Encode(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// Validate checks value ranges and names.
func (c Config) Validate() error {
	if err := errors.ValidateSize(c.Chart.Width, c.Chart.Height); err != nil {
		return err
	}
	if err := errors.ValidateLimit(c.Chart.Limit); err != nil {
		return err
	}
	for _, f := range c.Chart.Formats {
		if !slices.Contains(Formats, strings.ToLower(f)) {
			return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (valid: %s)", f, strings.Join(Formats, ", "))
		}
	}
	if !slices.Contains(cache.Backends, strings.ToLower(c.Cache.Backend)) {
		return errors.New(errors.ErrCodeInvalidInput, "unknown cache backend %q (valid: %s)",
			c.Cache.Backend, strings.Join(cache.Backends, ", "))
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cache ttl cannot be negative")
	}
	return nil
}

// CacheOptions converts the cache section for cache.Open.
func (c Config) CacheOptions() cache.Options {
	return cache.Options{
		Backend: c.Cache.Backend,
		Dir:     c.Cache.Dir,
		Redis: cache.RedisOptions{
			Addr:     c.Cache.Redis.Addr,
			Password: c.Cache.Redis.Password,
			DB:       c.Cache.Redis.DB,
			Prefix:   c.Cache.Redis.Prefix,
		},
		Mongo: cache.MongoOptions{
			URI:        c.Cache.Mongo.URI,
			Database:   c.Cache.Mongo.Database,
			Collection: c.Cache.Mongo.Collection,
		},
	}
}

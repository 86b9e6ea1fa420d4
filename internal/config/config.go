// Package config loads the tally configuration.
//
// Values are layered: built-in defaults, then an optional YAML file, then
// TALLY_* environment variables. Command-line flags are applied last by the caller.
package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/aretw0/tally/internal/logging"
	"github.com/caarlos0/env/v11"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no config file is given. It is optional.
const DefaultPath = "tally.yaml"

// EnvPrefix namespaces the environment overlay.
const EnvPrefix = "TALLY_"

// Store drivers.
const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

// Config is the full runtime configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log" envPrefix:"LOG_"`
	Display DisplayConfig `mapstructure:"display" envPrefix:"DISPLAY_"`
	Server  ServerConfig  `mapstructure:"server" envPrefix:"SERVER_"`
	Store   StoreConfig   `mapstructure:"store" envPrefix:"STORE_"`
	Input   InputConfig   `mapstructure:"input" envPrefix:"INPUT_"`
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level string `mapstructure:"level" env:"LEVEL"`
	JSON  bool   `mapstructure:"json" env:"JSON"`
}

// DisplayConfig controls how results are formatted and whether the TUI shows its banner.
type DisplayConfig struct {
	Precision int  `mapstructure:"precision" env:"PRECISION"`
	Banner    bool `mapstructure:"banner" env:"BANNER"`
}

// ServerConfig is the HTTP listener. An empty MetricsPath disables the Prometheus endpoint.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr" env:"ADDR"`
	MetricsPath     string        `mapstructure:"metrics_path" env:"METRICS_PATH"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
}

// StoreConfig picks the session backend. SessionID names the session resumed by `tally run`.
type StoreConfig struct {
	Driver    string      `mapstructure:"driver" env:"DRIVER"`
	SessionID string      `mapstructure:"session_id" env:"SESSION_ID"`
	Redis     RedisConfig `mapstructure:"redis" envPrefix:"REDIS_"`

	// EncryptionKey is a base64 AES-256 key. When set, sessions are sealed at rest.
	EncryptionKey string `mapstructure:"encryption_key" env:"ENCRYPTION_KEY"`
}

// Key decodes EncryptionKey. It returns nil when encryption is disabled.
func (s StoreConfig) Key() ([]byte, error) {
	if s.EncryptionKey == "" {
		return nil, nil
	}
	key, err := base64.StdEncoding.DecodeString(s.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("store.encryption_key: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("store.encryption_key must decode to 32 bytes, got %d", len(key))
	}
	return key, nil
}

// RedisConfig is used when Driver is redis. A zero TTL keeps sessions forever;
// Lock serializes concurrent updates of one session across processes.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr" env:"ADDR"`
	Password string        `mapstructure:"password" env:"PASSWORD"`
	DB       int           `mapstructure:"db" env:"DB"`
	Prefix   string        `mapstructure:"prefix" env:"PREFIX"`
	TTL      time.Duration `mapstructure:"ttl" env:"TTL"`
	Lock     bool          `mapstructure:"lock" env:"LOCK"`
	LockTTL  time.Duration `mapstructure:"lock_ttl" env:"LOCK_TTL"`
}

// InputConfig bounds what a client may send.
type InputConfig struct {
	// MaxSize is the byte limit for one line, expression or key name.
	MaxSize int `mapstructure:"max_size" env:"MAX_SIZE"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:     LogConfig{Level: "info"},
		Display: DisplayConfig{Precision: 6, Banner: true},
		Server: ServerConfig{
			Addr:            ":8080",
			MetricsPath:     "/metrics",
			ShutdownTimeout: 5 * time.Second,
		},
		Store: StoreConfig{
			Driver: DriverMemory,
			Redis: RedisConfig{
				Addr:    "localhost:6379",
				Prefix:  "tally:session:",
				LockTTL: 30 * time.Second,
			},
		},
		Input: InputConfig{MaxSize: 4096},
	}
}

// Load builds the configuration from defaults, the file at path and the environment.
// An empty path reads DefaultPath if it exists.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decodeYAML(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeYAML(data []byte, cfg *Config) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid yaml: %w", err)
	}
	if raw == nil {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  mapstructure.StringToTimeDurationHookFunc(),
		ErrorUnused: true,
		Result:      cfg,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Display.Precision < 0 || c.Display.Precision > 15 {
		return fmt.Errorf("display.precision must be between 0 and 15, got %d", c.Display.Precision)
	}
	switch c.Store.Driver {
	case DriverMemory:
	case DriverRedis:
		if c.Store.Redis.Addr == "" {
			return errors.New("store.redis.addr is required for the redis driver")
		}
	default:
		return fmt.Errorf("store.driver must be %q or %q, got %q", DriverMemory, DriverRedis, c.Store.Driver)
	}
	if _, err := c.Store.Key(); err != nil {
		return err
	}
	if c.Input.MaxSize <= 0 {
		return fmt.Errorf("input.max_size must be positive, got %d", c.Input.MaxSize)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return errors.New("server.shutdown_timeout must be positive")
	}
	return nil
}

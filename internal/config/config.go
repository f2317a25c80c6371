package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	BackendMemory = "memory"
	BackendActor  = "actor"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	HTTPAddr        string        `toml:"http_addr"`
	ReadTimeout     time.Duration `toml:"read_timeout"`
	WriteTimeout    time.Duration `toml:"write_timeout"`
	IdleTimeout     time.Duration `toml:"idle_timeout"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout"`

	StoreBackend string `toml:"store_backend"`
	MailboxSize  int    `toml:"mailbox_size"`

	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

func New() Config {
	return Config{
		HTTPAddr:        ":8080",
		ReadTimeout:     time.Second * 5,
		WriteTimeout:    time.Second * 10,
		IdleTimeout:     time.Second * 60,
		ShutdownTimeout: time.Second * 10,
		StoreBackend:    BackendMemory,
		MailboxSize:     64,
		LogLevel:        "info",
		LogFormat:       "text",
	}
}

// Load builds the config from defaults, then the TOML file at path (skipped
// when path is empty), then TODO_API_* environment variables.
func Load(path string) (Config, error) {
	cfg := New()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := loadFromEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StoreBackend {
	case BackendMemory, BackendActor:
	default:
		return fmt.Errorf("%w: store_backend %q (want %s or %s)", ErrInvalid, c.StoreBackend, BackendMemory, BackendActor)
	}

	if c.StoreBackend == BackendActor && c.MailboxSize <= 0 {
		return fmt.Errorf("%w: mailbox_size must be positive, got %d", ErrInvalid, c.MailboxSize)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}

	switch c.LogFormat {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("%w: log_format %q", ErrInvalid, c.LogFormat)
	}

	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: shutdown_timeout must be positive", ErrInvalid)
	}

	return nil
}

func loadFromEnv(cfg *Config) error {
	if v := os.Getenv("TODO_API_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("TODO_API_STORE_BACKEND"); v != "" {
		cfg.StoreBackend = v
	}
	if v := os.Getenv("TODO_API_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TODO_API_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}

	if v := os.Getenv("TODO_API_MAILBOX_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TODO_API_MAILBOX_SIZE: %w", err)
		}
		cfg.MailboxSize = n
	}

	durations := []struct {
		env string
		dst *time.Duration
	}{
		{"TODO_API_READ_TIMEOUT", &cfg.ReadTimeout},
		{"TODO_API_WRITE_TIMEOUT", &cfg.WriteTimeout},
		{"TODO_API_IDLE_TIMEOUT", &cfg.IdleTimeout},
		{"TODO_API_SHUTDOWN_TIMEOUT", &cfg.ShutdownTimeout},
	}
	for _, d := range durations {
		v := os.Getenv(d.env)
		if v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", d.env, err)
		}
		*d.dst = parsed
	}

	return nil
}

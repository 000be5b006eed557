package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/mikekulinski/zkcli/pkg/client"
	"github.com/mikekulinski/zkcli/pkg/executor"
	"github.com/mikekulinski/zkcli/pkg/logging"
)

const (
	EnvConnectTimeout  = "ZKCLI_CONNECT_TIMEOUT"
	EnvSessionTimeout  = "ZKCLI_SESSION_TIMEOUT"
	EnvConnectAttempts = "ZKCLI_CONNECT_ATTEMPTS"
	EnvRetryDelay      = "ZKCLI_RETRY_DELAY"
	EnvOpTimeout       = "ZKCLI_OP_TIMEOUT"
)

// Config is everything one invocation needs besides the address and the command.
type Config struct {
	Client   client.Config
	Executor executor.Config
	Log      logging.Config
}

func Default() Config {
	return Config{
		Client: client.DefaultConfig(),
		Log:    logging.DefaultConfig(logging.ProfileRuntime),
	}
}

type fileConfig struct {
	ConnectTimeout     string `toml:"connect_timeout"`
	SessionTimeout     string `toml:"session_timeout"`
	MaxConnectAttempts int    `toml:"max_connect_attempts"`
	RetryDelay         string `toml:"retry_delay"`
	OperationTimeout   string `toml:"operation_timeout"`
	LogLevel           string `toml:"log_level"`
}

// Load builds a Config from the defaults, the TOML file at path (skipped when
// path is empty) and then the ZKCLI_* environment, in that order.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := applyFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	logging.ApplyEnvOverrides(&cfg.Log)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := c.Client.Validate(); err != nil {
		return err
	}
	return c.Executor.Validate()
}

func applyFile(path string, cfg *Config) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	durations := []struct {
		key string
		raw string
		dst *time.Duration
	}{
		{key: "connect_timeout", raw: raw.ConnectTimeout, dst: &cfg.Client.ConnectTimeout},
		{key: "session_timeout", raw: raw.SessionTimeout, dst: &cfg.Client.SessionTimeout},
		{key: "retry_delay", raw: raw.RetryDelay, dst: &cfg.Client.RetryDelay},
		{key: "operation_timeout", raw: raw.OperationTimeout, dst: &cfg.Executor.OperationTimeout},
	}
	for _, d := range durations {
		if !meta.IsDefined(d.key) {
			continue
		}
		v, err := time.ParseDuration(strings.TrimSpace(d.raw))
		if err != nil {
			return fmt.Errorf("parse %s: %w", d.key, err)
		}
		*d.dst = v
	}

	if meta.IsDefined("max_connect_attempts") {
		cfg.Client.MaxAttempts = raw.MaxConnectAttempts
	}

	if meta.IsDefined("log_level") {
		lvl, ok := logging.ParseLevel(raw.LogLevel)
		if !ok {
			return fmt.Errorf("parse log_level: unknown level %q", raw.LogLevel)
		}
		cfg.Log.Level = lvl
	}
	return nil
}

func applyEnv(cfg *Config) error {
	durations := []struct {
		env string
		dst *time.Duration
	}{
		{env: EnvConnectTimeout, dst: &cfg.Client.ConnectTimeout},
		{env: EnvSessionTimeout, dst: &cfg.Client.SessionTimeout},
		{env: EnvRetryDelay, dst: &cfg.Client.RetryDelay},
		{env: EnvOpTimeout, dst: &cfg.Executor.OperationTimeout},
	}
	for _, d := range durations {
		raw := strings.TrimSpace(os.Getenv(d.env))
		if raw == "" {
			continue
		}
		v, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("parse %s: %w", d.env, err)
		}
		*d.dst = v
	}

	if raw := strings.TrimSpace(os.Getenv(EnvConnectAttempts)); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvConnectAttempts, err)
		}
		cfg.Client.MaxAttempts = n
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultServerHost    = "127.0.0.1"
	defaultServerPort    = 8080
	defaultServerTimeout = 30 * time.Second
	defaultLogLevel      = "info"
)

type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read-timeout"`
	WriteTimeout time.Duration `mapstructure:"write-timeout"`
	LogLevel     string        `mapstructure:"log-level"`
}

func (cfg *ServerConfig) Validate() error {
	if cfg.Host == "" {
		return errors.New("server host cannot be empty")
	}

	if cfg.Port < 1024 || cfg.Port > 65535 {
		return fmt.Errorf("server port must be between 1024 and 65535, got %d", cfg.Port)
	}

	if cfg.ReadTimeout <= 0 {
		return errors.New("server read-timeout must be positive")
	}

	if cfg.WriteTimeout <= 0 {
		return errors.New("server write-timeout must be positive")
	}

	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid server log-level: %w", err)
	}

	return nil
}

func (cfg *ServerConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
}

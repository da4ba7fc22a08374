package config

import (
	"errors"
	"net/url"
	"time"
)

const (
	defaultPredictionURL           = "http://localhost:8000"
	defaultPredictionMaxRetryTimes = 1
	defaultPredictionRetryInterval = 500 * time.Millisecond
)

type PredictionConfig struct {
	URL string `mapstructure:"url"`
	// Timeout of zero keeps the transport default
	Timeout time.Duration `mapstructure:"timeout"`
	// MaxRetryTimes is the total number of attempts, 1 means a single call without retries
	MaxRetryTimes uint          `mapstructure:"max-retry-times"`
	RetryInterval time.Duration `mapstructure:"retry-interval"`
}

func (cfg *PredictionConfig) Validate() error {
	if cfg.URL == "" {
		return errors.New("prediction service url cannot be empty")
	}

	u, err := url.Parse(cfg.URL)
	if err != nil || u.Host == "" {
		return errors.New("invalid prediction service url")
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("prediction service url must use http or https scheme")
	}

	if cfg.Timeout < 0 {
		return errors.New("prediction timeout cannot be negative")
	}

	if cfg.MaxRetryTimes == 0 {
		return errors.New("prediction max-retry-times must be at least 1")
	}

	if cfg.MaxRetryTimes > 1 && cfg.RetryInterval <= 0 {
		return errors.New("prediction retry-interval must be positive when retries are enabled")
	}

	return nil
}

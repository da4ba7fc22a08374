package config

import (
	"errors"
	"time"
)

const defaultPendingChecksInterval = time.Minute

type PollerConfig struct {
	PendingChecksInterval time.Duration `mapstructure:"pending-checks-interval"`
}

func (cfg *PollerConfig) Validate() error {
	if cfg.PendingChecksInterval <= 0 {
		return errors.New("pending-checks-interval must be positive")
	}

	return nil
}

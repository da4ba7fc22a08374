package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/babylonlabs-io/wallet-risk-checker/internal/types"
)

const (
	defaultStatsMode    = string(types.StatsModeMock)
	defaultStatsMethod  = "ipc_getSubnetStats"
	defaultChainTimeout = 10 * time.Second
)

type ChainConfig struct {
	// RPCURL of the IPC subnet node, optional unless stats-mode is chain
	RPCURL      string          `mapstructure:"rpc-url"`
	StatsMode   types.StatsMode `mapstructure:"stats-mode"`
	StatsMethod string          `mapstructure:"stats-method"`
	Timeout     time.Duration   `mapstructure:"timeout"`
}

func (cfg *ChainConfig) Validate() error {
	if !cfg.StatsMode.IsValid() {
		return fmt.Errorf("invalid chain stats-mode %q, should be one of {%s, %s}",
			cfg.StatsMode, types.StatsModeMock, types.StatsModeChain)
	}

	if cfg.StatsMode == types.StatsModeChain {
		if cfg.RPCURL == "" {
			return errors.New("chain rpc-url is required when stats-mode is chain")
		}
		if cfg.StatsMethod == "" {
			return errors.New("chain stats-method is required when stats-mode is chain")
		}
	}

	if cfg.Timeout <= 0 {
		return errors.New("chain timeout must be positive")
	}

	return nil
}

func (cfg *ChainConfig) Enabled() bool {
	return cfg.RPCURL != ""
}

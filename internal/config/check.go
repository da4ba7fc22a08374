package config

import (
	"fmt"

	"github.com/babylonlabs-io/wallet-risk-checker/internal/types"
)

const (
	defaultReconcileBy = string(types.ReconcileByHandle)
)

type CheckConfig struct {
	ReconcileBy types.ReconcileStrategy `mapstructure:"reconcile-by"`
}

func (cfg *CheckConfig) Validate() error {
	if !cfg.ReconcileBy.IsValid() {
		return fmt.Errorf("invalid check reconcile-by %q, should be one of {%s, %s}",
			cfg.ReconcileBy, types.ReconcileByHandle, types.ReconcileByRecency)
	}

	return nil
}

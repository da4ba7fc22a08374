package services

import (
	"testing"

	"github.com/babylonlabs-io/wallet-risk-checker/internal/config"
	"github.com/babylonlabs-io/wallet-risk-checker/internal/types"
	"github.com/babylonlabs-io/wallet-risk-checker/tests/mocks"
	"github.com/stretchr/testify/mock"
)

// ctx passed down to mocks is wrapped with loggers, so it's matched with mock.Anything
const internalCtx = mock.Anything

type serviceMocks struct {
	db          *mocks.DbInterface
	prediction  *mocks.PredictionInterface
	subnetStats *mocks.SubnetStatsProvider
	chain       *mocks.ChainInterface
}

func newTestService(t *testing.T, reconcileBy types.ReconcileStrategy) (*Service, *serviceMocks) {
	t.Helper()

	m := &serviceMocks{
		db:          mocks.NewDbInterface(t),
		prediction:  mocks.NewPredictionInterface(t),
		subnetStats: mocks.NewSubnetStatsProvider(t),
		chain:       mocks.NewChainInterface(t),
	}
	cfg := &config.Config{
		Check: config.CheckConfig{ReconcileBy: reconcileBy},
	}

	return NewService(cfg, m.db, m.prediction, m.subnetStats, m.chain), m
}

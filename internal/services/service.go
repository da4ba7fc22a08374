package services

import (
	"context"

	"github.com/babylonlabs-io/wallet-risk-checker/internal/clients/chainclient"
	"github.com/babylonlabs-io/wallet-risk-checker/internal/clients/predictionclient"
	"github.com/babylonlabs-io/wallet-risk-checker/internal/clients/subnetclient"
	"github.com/babylonlabs-io/wallet-risk-checker/internal/config"
	"github.com/babylonlabs-io/wallet-risk-checker/internal/db"
)

type Service struct {
	cfg         *config.Config
	db          db.DbInterface
	prediction  predictionclient.PredictionInterface
	subnetStats subnetclient.SubnetStatsProvider
	// chain is nil when no rpc-url is configured
	chain chainclient.ChainInterface
}

func NewService(
	cfg *config.Config,
	db db.DbInterface,
	prediction predictionclient.PredictionInterface,
	subnetStats subnetclient.SubnetStatsProvider,
	chain chainclient.ChainInterface,
) *Service {
	return &Service{
		cfg:         cfg,
		db:          db,
		prediction:  prediction,
		subnetStats: subnetStats,
		chain:       chain,
	}
}

func (s *Service) Healthcheck(ctx context.Context) error {
	return s.db.Ping(ctx)
}

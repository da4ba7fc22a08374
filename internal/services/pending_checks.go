package services

import (
	"context"
	"fmt"

	"github.com/babylonlabs-io/wallet-risk-checker/internal/observability/metrics"
	"github.com/babylonlabs-io/wallet-risk-checker/internal/utils/poller"
	"github.com/rs/zerolog/log"
)

// StartPendingChecksPoller periodically publishes number of wallet checks without verdict
func (s *Service) StartPendingChecksPoller(ctx context.Context) *poller.Poller {
	p := poller.NewPoller(
		s.cfg.Poller.PendingChecksInterval,
		metrics.RecordPollerDuration("pending_checks", s.RecordPendingChecks),
	)
	go p.Start(ctx)

	return p
}

// RecordPendingChecks counts pending wallet checks and updates the gauge
func (s *Service) RecordPendingChecks(ctx context.Context) error {
	count, err := s.db.CountPendingWalletChecks(ctx)
	if err != nil {
		return fmt.Errorf("failed to count pending wallet checks: %w", err)
	}

	metrics.RecordPendingWalletChecks(count)
	log.Ctx(ctx).Debug().Int64("pending_checks", count).Msg("Updated pending wallet checks count")

	return nil
}

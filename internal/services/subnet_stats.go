package services

import (
	"context"

	"github.com/babylonlabs-io/wallet-risk-checker/internal/clients/subnetclient"
	"github.com/babylonlabs-io/wallet-risk-checker/internal/types"
	"github.com/rs/zerolog/log"
)

func (s *Service) GetSubnetStats(ctx context.Context, subnetID string) (*subnetclient.SubnetStats, *types.Error) {
	stats, err := s.subnetStats.GetSubnetStats(ctx, subnetID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("subnet_id", subnetID).Msg("Failed to get subnet info")
		return nil, types.NewInternalServiceError("Failed to get subnet information")
	}

	return stats, nil
}

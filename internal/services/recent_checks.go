package services

import (
	"context"
	"time"

	"github.com/babylonlabs-io/wallet-risk-checker/internal/db/model"
	"github.com/babylonlabs-io/wallet-risk-checker/internal/types"
	"github.com/rs/zerolog/log"
)

// WalletCheckPublic is the public view of a stored wallet check, optional fields are omitted until set
type WalletCheckPublic struct {
	ID               string    `json:"id"`
	Address          string    `json:"address"`
	SubnetID         *string   `json:"subnet_id,omitempty"`
	Timestamp        time.Time `json:"timestamp"`
	RiskLevel        *string   `json:"risk_level,omitempty"`
	Reason           *string   `json:"reason,omitempty"`
	IPCSpecificFlags []string  `json:"ipc_specific_flags,omitempty"`
}

func fromWalletCheckDocument(doc *model.WalletCheckDocument) *WalletCheckPublic {
	return &WalletCheckPublic{
		ID:               doc.ID.Hex(),
		Address:          doc.Address,
		SubnetID:         doc.SubnetID,
		Timestamp:        doc.Timestamp,
		RiskLevel:        doc.RiskLevel,
		Reason:           doc.Reason,
		IPCSpecificFlags: normalizeFlags(doc.IPCSpecificFlags),
	}
}

// GetRecentChecks returns latest wallet checks, pending ones included so orphans can be spotted.
// Non positive limit falls back to the default
func (s *Service) GetRecentChecks(ctx context.Context, limit int64) ([]*WalletCheckPublic, *types.Error) {
	docs, err := s.db.GetRecentWalletChecks(ctx, limit)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Int64("limit", limit).Msg("Failed to get recent checks")
		return nil, types.NewInternalServiceError(msgDatabaseError)
	}

	return toPublic(docs), nil
}

// GetPendingChecks returns latest wallet checks that never received a verdict
func (s *Service) GetPendingChecks(ctx context.Context, limit int64) ([]*WalletCheckPublic, *types.Error) {
	docs, err := s.db.GetPendingWalletChecks(ctx, limit)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Int64("limit", limit).Msg("Failed to get pending checks")
		return nil, types.NewInternalServiceError(msgDatabaseError)
	}

	return toPublic(docs), nil
}

func toPublic(docs []*model.WalletCheckDocument) []*WalletCheckPublic {
	checks := make([]*WalletCheckPublic, 0, len(docs))
	for _, doc := range docs {
		checks = append(checks, fromWalletCheckDocument(doc))
	}
	return checks
}

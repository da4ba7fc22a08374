package subnetclient

import "context"

type SubnetStats struct {
	ID               string `json:"id"`
	TotalAddresses   uint64 `json:"total_addresses"`
	ActiveValidators uint64 `json:"active_validators"`
	CrossSubnetTxs   uint64 `json:"cross_subnet_txs"`
	RiskScore        uint8  `json:"risk_score"`
}

// SubnetStatsProvider returns statistics of an IPC subnet. Implementations are chosen at start
// and are interchangeable for callers
//
//go:generate mockery --name=SubnetStatsProvider --output=../../../tests/mocks --outpkg=mocks --filename=mock_subnet_stats_provider.go
type SubnetStatsProvider interface {
	GetSubnetStats(ctx context.Context, subnetID string) (*SubnetStats, error)
}

const maxRiskScore = 100

func clampRiskScore(score uint64) uint8 {
	return uint8(min(score, maxRiskScore))
}

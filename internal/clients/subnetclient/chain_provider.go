package subnetclient

import (
	"context"
	"fmt"
)

// RPCCaller is the part of chainclient.ChainInterface used for stats queries
type RPCCaller interface {
	CallContext(ctx context.Context, result any, method string, args ...any) error
}

// chainSubnetStats mirrors SubnetStats but keeps risk score wide so out of range values are clamped, not truncated
type chainSubnetStats struct {
	ID               string `json:"id"`
	TotalAddresses   uint64 `json:"total_addresses"`
	ActiveValidators uint64 `json:"active_validators"`
	CrossSubnetTxs   uint64 `json:"cross_subnet_txs"`
	RiskScore        uint64 `json:"risk_score"`
}

// ChainProvider queries subnet statistics from the IPC node through JSON-RPC
type ChainProvider struct {
	chain  RPCCaller
	method string
}

func NewChainProvider(chain RPCCaller, method string) *ChainProvider {
	return &ChainProvider{
		chain:  chain,
		method: method,
	}
}

func (p *ChainProvider) GetSubnetStats(ctx context.Context, subnetID string) (*SubnetStats, error) {
	var result *chainSubnetStats
	if err := p.chain.CallContext(ctx, &result, p.method, subnetID); err != nil {
		return nil, fmt.Errorf("failed to query stats of subnet %s: %w", subnetID, err)
	}

	if result == nil {
		return nil, fmt.Errorf("subnet %s not found", subnetID)
	}

	id := result.ID
	if id == "" {
		id = subnetID
	}

	return &SubnetStats{
		ID:               id,
		TotalAddresses:   result.TotalAddresses,
		ActiveValidators: result.ActiveValidators,
		CrossSubnetTxs:   result.CrossSubnetTxs,
		RiskScore:        clampRiskScore(result.RiskScore),
	}, nil
}

package subnetclient

import "context"

// MockProvider derives deterministic statistics from the subnet id.
// It stands in for a chain query until one is available for the subnet
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) GetSubnetStats(_ context.Context, subnetID string) (*SubnetStats, error) {
	var seed uint64
	for _, c := range subnetID {
		seed += uint64(c)
	}

	return &SubnetStats{
		ID:               subnetID,
		TotalAddresses:   1000 + seed%9000,
		ActiveValidators: 10 + seed%90,
		CrossSubnetTxs:   500 + seed%1500,
		// seed%100 is already below the bound, clamp is a no-op kept in case the range changes
		RiskScore: clampRiskScore(seed % 100),
	}, nil
}

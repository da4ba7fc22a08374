package chainclient

import (
	"context"
	"math/big"
	"time"

	"github.com/babylonlabs-io/wallet-risk-checker/internal/observability/metrics"
	"github.com/ethereum/go-ethereum/common"
)

type chainClientWithMetrics struct {
	client ChainInterface
}

func NewChainClientWithMetrics(client ChainInterface) *chainClientWithMetrics {
	return &chainClientWithMetrics{client: client}
}

func (c *chainClientWithMetrics) BalanceAt(ctx context.Context, account common.Address) (*big.Int, error) {
	return runChainClientMethodWithMetrics("BalanceAt", func() (*big.Int, error) {
		return c.client.BalanceAt(ctx, account)
	})
}

func (c *chainClientWithMetrics) NonceAt(ctx context.Context, account common.Address) (uint64, error) {
	return runChainClientMethodWithMetrics("NonceAt", func() (uint64, error) {
		return c.client.NonceAt(ctx, account)
	})
}

func (c *chainClientWithMetrics) CallContext(ctx context.Context, result any, method string, args ...any) error {
	_, err := runChainClientMethodWithMetrics(method, func() (struct{}, error) {
		return struct{}{}, c.client.CallContext(ctx, result, method, args...)
	})
	return err
}

func runChainClientMethodWithMetrics[T any](method string, f func() (T, error)) (T, error) {
	startTime := time.Now()
	result, err := f()
	duration := time.Since(startTime)

	metrics.RecordChainClientLatency(duration, method, err != nil)
	return result, err
}

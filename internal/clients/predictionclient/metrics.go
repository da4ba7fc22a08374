package predictionclient

import (
	"context"
	"time"

	"github.com/babylonlabs-io/wallet-risk-checker/internal/observability/metrics"
)

type clientWithMetrics struct {
	client PredictionInterface
}

func NewClientWithMetrics(client PredictionInterface) *clientWithMetrics {
	return &clientWithMetrics{client: client}
}

func (c *clientWithMetrics) Predict(ctx context.Context, address string, subnetID *string) (*Verdict, error) {
	startTime := time.Now()
	verdict, err := c.client.Predict(ctx, address, subnetID)
	metrics.RecordPredictionLatency(time.Since(startTime), err != nil, FaultOf(err).String())

	return verdict, err
}

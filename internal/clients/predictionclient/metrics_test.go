package predictionclient

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPrediction struct {
	verdict *Verdict
	err     error
}

func (s *stubPrediction) Predict(context.Context, string, *string) (*Verdict, error) {
	return s.verdict, s.err
}

// predictionSeries returns status label values of prediction latency series keyed by fault label
func predictionSeries(t *testing.T) map[string]string {
	t.Helper()

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	series := make(map[string]string)
	for _, family := range families {
		if family.GetName() != "prediction_client_latency_seconds" {
			continue
		}
		for _, m := range family.GetMetric() {
			labels := make(map[string]string)
			for _, label := range m.GetLabel() {
				labels[label.GetName()] = label.GetValue()
			}
			series[labels["fault"]] = labels["status"]
		}
	}
	return series
}

func TestClientWithMetrics(t *testing.T) {
	ctx := context.Background()

	verdict, err := NewClientWithMetrics(&stubPrediction{verdict: &Verdict{RiskLevel: "Low"}}).
		Predict(ctx, testAddress, nil)
	require.NoError(t, err)
	require.NotNil(t, verdict)

	_, err = NewClientWithMetrics(&stubPrediction{err: ErrServiceUnreachable}).Predict(ctx, testAddress, nil)
	require.ErrorIs(t, err, ErrServiceUnreachable)

	series := predictionSeries(t)
	assert.Equal(t, "success", series[FaultNone.String()])
	assert.Equal(t, "error", series[FaultUnreachable.String()])
	assert.NotContains(t, series, "")
}

package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorders(t *testing.T) {
	RecordWalletCheck("predict", true)
	RecordWalletCheck("predict", true)
	assert.Equal(t, float64(2), testutil.ToFloat64(walletCheckCounter.WithLabelValues("predict", Error.String())))

	before := testutil.ToFloat64(orphanedChecksCounter)
	IncOrphanedWalletChecks()
	assert.Equal(t, before+1, testutil.ToFloat64(orphanedChecksCounter))

	RecordPendingWalletChecks(7)
	assert.Equal(t, float64(7), testutil.ToFloat64(pendingChecksGauge))

	RecordDbLatency(time.Millisecond, "SaveNewWalletCheck", false)
	RecordPredictionLatency(time.Millisecond, true, "rejected")
	RecordChainClientLatency(time.Millisecond, "BalanceAt", false)
	RecordHttpRequestDuration(time.Millisecond, "/check", 200)
	StartClientRequestDurationTimer("http://localhost", "POST", "/predict")(200)
}

func TestRecordPollerDuration(t *testing.T) {
	expected := errors.New("poll failed")
	f := RecordPollerDuration("test", func(ctx context.Context) error {
		return expected
	})

	err := f(context.Background())
	require.ErrorIs(t, err, expected)
}

package metrics

import (
	"context"
	"time"
)

type pollFunc = func(ctx context.Context) error

// RecordPollerDuration wraps a poll method so every run is observed under the given poller type
func RecordPollerDuration(pollerType string, poll pollFunc) pollFunc {
	return func(ctx context.Context) error {
		registerMetrics()

		start := time.Now()
		err := poll(ctx)
		pollerDurationHistogram.
			WithLabelValues(pollerType, outcome(err != nil).String()).
			Observe(time.Since(start).Seconds())

		return err
	}
}

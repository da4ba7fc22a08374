package db

import (
	"context"
	"time"

	"github.com/babylonlabs-io/wallet-risk-checker/internal/db/model"
	"github.com/babylonlabs-io/wallet-risk-checker/internal/observability/metrics"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.db.Ping(ctx)
}

func (d *DbWithMetrics) SaveNewWalletCheck(ctx context.Context, address string, subnetID *string) (result primitive.ObjectID, err error) {
	//nolint:errcheck
	d.run("SaveNewWalletCheck", func() error {
		result, err = d.db.SaveNewWalletCheck(ctx, address, subnetID)
		return err
	})
	return
}

func (d *DbWithMetrics) ReconcileWalletCheck(ctx context.Context, id primitive.ObjectID, verdict *model.Verdict) (found bool, err error) {
	//nolint:errcheck
	d.run("ReconcileWalletCheck", func() error {
		found, err = d.db.ReconcileWalletCheck(ctx, id, verdict)
		return err
	})
	return
}

func (d *DbWithMetrics) ReconcileLatestWalletCheck(ctx context.Context, address string, verdict *model.Verdict) (found bool, err error) {
	//nolint:errcheck
	d.run("ReconcileLatestWalletCheck", func() error {
		found, err = d.db.ReconcileLatestWalletCheck(ctx, address, verdict)
		return err
	})
	return
}

func (d *DbWithMetrics) GetRecentWalletChecks(ctx context.Context, limit int64) (result []*model.WalletCheckDocument, err error) {
	//nolint:errcheck
	d.run("GetRecentWalletChecks", func() error {
		result, err = d.db.GetRecentWalletChecks(ctx, limit)
		return err
	})
	return
}

func (d *DbWithMetrics) GetPendingWalletChecks(ctx context.Context, limit int64) (result []*model.WalletCheckDocument, err error) {
	//nolint:errcheck
	d.run("GetPendingWalletChecks", func() error {
		result, err = d.db.GetPendingWalletChecks(ctx, limit)
		return err
	})
	return
}

func (d *DbWithMetrics) CountPendingWalletChecks(ctx context.Context) (result int64, err error) {
	//nolint:errcheck
	d.run("CountPendingWalletChecks", func() error {
		result, err = d.db.CountPendingWalletChecks(ctx)
		return err
	})
	return
}

// run is private method that executes passed lambda function and send metrics data with spent time, method name
// and an error if any. It returns the error from the lambda function for convenience
func (d *DbWithMetrics) run(method string, f func() error) error {
	startTime := time.Now()
	err := f()
	duration := time.Since(startTime)

	metrics.RecordDbLatency(duration, method, err != nil)
	return err
}

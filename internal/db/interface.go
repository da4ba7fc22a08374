package db

import (
	"context"

	"github.com/babylonlabs-io/wallet-risk-checker/internal/db/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockery --name=DbInterface --output=../../tests/mocks --outpkg=mocks --filename=mock_db_client.go
type DbInterface interface {
	/**
	 * Ping checks the database connection.
	 * @param ctx The context
	 * @return An error if the operation failed
	 */
	Ping(ctx context.Context) error
	/**
	 * SaveNewWalletCheck inserts a pending wallet check record.
	 * @param ctx The context
	 * @param address The wallet address as submitted by the caller
	 * @param subnetID The subnet identifier, nil for plain addresses
	 * @return The identity assigned to the record or an error
	 */
	SaveNewWalletCheck(ctx context.Context, address string, subnetID *string) (primitive.ObjectID, error)
	/**
	 * ReconcileWalletCheck attaches the verdict to the record with the given identity.
	 * Missing record is not an error, found reports whether anything was updated.
	 * @param ctx The context
	 * @param id The record identity returned by SaveNewWalletCheck
	 * @param verdict The verdict to attach
	 * @return Whether the record was found or an error
	 */
	ReconcileWalletCheck(ctx context.Context, id primitive.ObjectID, verdict *model.Verdict) (bool, error)
	/**
	 * ReconcileLatestWalletCheck attaches the verdict to the most recent record of the address.
	 * Missing record is not an error, found reports whether anything was updated.
	 * @param ctx The context
	 * @param address The wallet address as submitted by the caller
	 * @param verdict The verdict to attach
	 * @return Whether the record was found or an error
	 */
	ReconcileLatestWalletCheck(ctx context.Context, address string, verdict *model.Verdict) (bool, error)
	/**
	 * GetRecentWalletChecks returns records ordered by timestamp, newest first.
	 * @param ctx The context
	 * @param limit The maximum number of records, non positive value means default limit
	 * @return The records or an error
	 */
	GetRecentWalletChecks(ctx context.Context, limit int64) ([]*model.WalletCheckDocument, error)
	/**
	 * GetPendingWalletChecks returns records without verdict ordered by timestamp, newest first.
	 * @param ctx The context
	 * @param limit The maximum number of records, non positive value means default limit
	 * @return The records or an error
	 */
	GetPendingWalletChecks(ctx context.Context, limit int64) ([]*model.WalletCheckDocument, error)
	/**
	 * CountPendingWalletChecks counts records without verdict.
	 * @param ctx The context
	 * @return The number of pending records or an error
	 */
	CountPendingWalletChecks(ctx context.Context) (int64, error)
}

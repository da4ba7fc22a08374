package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/babylonlabs-io/wallet-risk-checker/internal/db/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const DefaultRecentChecksLimit = 10

var newestFirst = bson.D{{Key: "timestamp", Value: -1}}

func (db *Database) SaveNewWalletCheck(
	ctx context.Context, address string, subnetID *string,
) (primitive.ObjectID, error) {
	doc := model.NewWalletCheckDocument(address, subnetID)

	res, err := db.collection(model.WalletChecksCollection).InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	return id, nil
}

func (db *Database) ReconcileWalletCheck(
	ctx context.Context, id primitive.ObjectID, verdict *model.Verdict,
) (bool, error) {
	filter := bson.M{"_id": id}
	return db.reconcile(ctx, filter, nil, verdict)
}

func (db *Database) ReconcileLatestWalletCheck(
	ctx context.Context, address string, verdict *model.Verdict,
) (bool, error) {
	filter := bson.M{"address": address}
	opts := options.FindOneAndUpdate().SetSort(newestFirst)
	return db.reconcile(ctx, filter, opts, verdict)
}

func (db *Database) reconcile(
	ctx context.Context, filter bson.M, opts *options.FindOneAndUpdateOptions, verdict *model.Verdict,
) (bool, error) {
	if verdict == nil {
		return false, errors.New("verdict is required")
	}

	updateFields := bson.M{
		"risk_level": verdict.RiskLevel,
		"reason":     verdict.Reason,
	}
	// empty list is stored as absent
	if len(verdict.IPCSpecificFlags) > 0 {
		updateFields["ipc_specific_flags"] = verdict.IPCSpecificFlags
	}

	update := bson.M{"$set": updateFields}

	var findOpts []*options.FindOneAndUpdateOptions
	if opts != nil {
		findOpts = append(findOpts, opts)
	}

	res := db.collection(model.WalletChecksCollection).FindOneAndUpdate(ctx, filter, update, findOpts...)
	if err := res.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (db *Database) GetRecentWalletChecks(ctx context.Context, limit int64) ([]*model.WalletCheckDocument, error) {
	return db.findWalletChecks(ctx, bson.M{}, limit)
}

func (db *Database) GetPendingWalletChecks(ctx context.Context, limit int64) ([]*model.WalletCheckDocument, error) {
	return db.findWalletChecks(ctx, pendingFilter(), limit)
}

func (db *Database) CountPendingWalletChecks(ctx context.Context) (int64, error) {
	return db.collection(model.WalletChecksCollection).CountDocuments(ctx, pendingFilter())
}

func (db *Database) findWalletChecks(ctx context.Context, filter bson.M, limit int64) ([]*model.WalletCheckDocument, error) {
	if limit <= 0 {
		limit = DefaultRecentChecksLimit
	}

	opts := options.Find().SetSort(newestFirst).SetLimit(limit)
	cursor, err := db.collection(model.WalletChecksCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var checks []*model.WalletCheckDocument
	if err := cursor.All(ctx, &checks); err != nil {
		return nil, err
	}

	return checks, nil
}

func pendingFilter() bson.M {
	return bson.M{"risk_level": bson.M{"$exists": false}}
}

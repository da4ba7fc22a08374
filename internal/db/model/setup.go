package model

import (
	"context"
	"fmt"
	"time"

	"github.com/babylonlabs-io/wallet-risk-checker/internal/config"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const setupTimeout = 30 * time.Second

var collections = map[string][]mongo.IndexModel{
	WalletChecksCollection: {
		// reconcile by recency and per address history
		{Keys: bson.D{{Key: "address", Value: 1}, {Key: "timestamp", Value: -1}}},
		// recent checks
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
	},
}

// Setup creates collections and indexes, it's safe to call it multiple times
func Setup(ctx context.Context, cfg *config.DbConfig) error {
	ctx, cancel := context.WithTimeout(ctx, setupTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, ClientOptions(cfg))
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Ctx(ctx).Err(err).Msg("failed to disconnect setup client")
		}
	}()

	database := client.Database(cfg.DbName)

	for collection, indexes := range collections {
		if err := createCollection(ctx, database, collection); err != nil {
			return err
		}

		for _, idx := range indexes {
			if err := createIndex(ctx, database, collection, idx); err != nil {
				return err
			}
		}
	}

	log.Ctx(ctx).Info().Msg("Collections and Indexes created successfully")
	return nil
}

// ClientOptions builds mongo client options from config
func ClientOptions(cfg *config.DbConfig) *options.ClientOptions {
	opts := options.Client().ApplyURI(cfg.Address)
	if cfg.Username != "" {
		opts.SetAuth(options.Credential{
			Username: cfg.Username,
			Password: cfg.Password,
		})
	}

	return opts
}

func createCollection(ctx context.Context, database *mongo.Database, collectionName string) error {
	names, err := database.ListCollectionNames(ctx, bson.M{"name": collectionName})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	if len(names) > 0 {
		log.Ctx(ctx).Debug().Str("collection", collectionName).Msg("Collection already exists")
		return nil
	}

	if err := database.CreateCollection(ctx, collectionName); err != nil {
		return fmt.Errorf("failed to create collection %s: %w", collectionName, err)
	}

	log.Ctx(ctx).Debug().Str("collection", collectionName).Msg("Collection created")
	return nil
}

func createIndex(ctx context.Context, database *mongo.Database, collectionName string, idx mongo.IndexModel) error {
	if _, err := database.Collection(collectionName).Indexes().CreateOne(ctx, idx); err != nil {
		return fmt.Errorf("failed to create index on %s: %w", collectionName, err)
	}

	return nil
}

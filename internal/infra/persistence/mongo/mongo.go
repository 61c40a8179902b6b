// Package mongo stores posts and user locations in MongoDB.
package mongo

import (
	"context"
	"log/slog"

	"lostfound/config"
	"lostfound/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

const (
	postsCollection = "posts"
	usersCollection = "users"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects to MongoDB and returns the configured database.
func New(params Params) (*mongo.Database, error) {
	cfg := params.Config.Mongo
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo.uri is required")
	}

	clientOpts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.Timeout).
		SetServerSelectionTimeout(cfg.Timeout)
	if cfg.MaxPool > 0 {
		clientOpts.SetMaxPoolSize(cfg.MaxPool)
	}

	client, err := mongo.Connect(context.Background(), clientOpts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	db := client.Database(cfg.Database)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := ensureIndexes(ctx, db); err != nil {
				return err
			}

			params.Logger.Info("Connected to MongoDB", slog.String("database", cfg.Database))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(client.Disconnect(ctx), "failed to disconnect MongoDB")
		},
	})

	return db, nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(postsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "kind", Value: 1}, {Key: "resolved", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "author_id", Value: 1}}},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create post indexes")
	}

	_, err = db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "gps", Value: 1}},
	})

	return errors.Wrap(err, "failed to create user indexes")
}

// Package mongo contains the concrete implementation of the persistence layer
// using the official MongoDB driver. Each repository owns one collection;
// references between collections are plain object ids with no relational
// constraints.
package mongo

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"

	"salesapi/config"
	"salesapi/internal/domain/lifecycle"
)

// Collection names; one per record kind.
const (
	CollectionCustomers = "customers"
	CollectionProducts  = "products"
	CollectionOrders    = "orders"
	CollectionUsers     = "users"
)

// Params defines the dependencies for the database handle.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects to MongoDB, verifies the connection, ensures indexes and
// registers a graceful disconnect on shutdown.
func New(ctx context.Context, params Params) (*mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(params.Config.Mongo.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to mongodb")
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, errors.Wrap(err, "failed to ping mongodb")
	}

	db := client.Database(params.Config.Mongo.Database)

	if err := ensureIndexes(connectCtx, db); err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(stopCtx context.Context) error {
			params.Logger.Info("Disconnecting from MongoDB")

			return errors.WithStack(client.Disconnect(stopCtx))
		},
	})

	return db, nil
}

// ensureIndexes creates the indexes the domain invariants rely on.
// The unique login index backs the duplicate-login rejection.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(CollectionUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "login", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create unique login index")
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CemWebDev

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/CemWebDev/python-todo-backend/internal/config"
	"github.com/CemWebDev/python-todo-backend/internal/logger"
	"github.com/CemWebDev/python-todo-backend/models"
)

// MongoDB is a connected MongoDB client bound to the application database.
type MongoDB struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *logger.Logger
}

// NewConnectMongo connects to the deployment addressed by cfg.DSN, verifies
// it with a ping and makes sure the indexes the repositories rely on exist.
func NewConnectMongo(ctx context.Context, cfg config.DB, log *logger.Logger) (*MongoDB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occured during mongo connection")
		return nil, fmt.Errorf("%w: %w", ErrConnectingStore, err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting mongo (ping)")
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%w: %w", ErrConnectingStore, err)
	}

	name := cfg.Name
	if name == "" {
		name = config.DefaultDatabaseName
	}

	db := &MongoDB{
		client:   client,
		database: client.Database(name),
		logger:   log,
	}

	if err = EnsureIndexes(ctx, db.database); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error creating indexes")
		_ = client.Disconnect(ctx)
		return nil, err
	}

	log.Info().Str("func", "NewConnectMongo").Str("database", name).Msg("connected to mongo successfully")

	return db, nil
}

// EnsureIndexes creates the unique index on users.email and the owner index
// on todos.user_id. Creating an existing index is a no-op.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(models.User{}.TableName()).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return fmt.Errorf("%w: users: %w", ErrCreatingIndexes, err)
	}

	_, err = db.Collection(models.Todo{}.TableName()).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetName("user_id"),
	})
	if err != nil {
		return fmt.Errorf("%w: todos: %w", ErrCreatingIndexes, err)
	}

	return nil
}

// Users returns the users collection.
func (m *MongoDB) Users() *mongo.Collection {
	return m.database.Collection(models.User{}.TableName())
}

// Todos returns the todos collection.
func (m *MongoDB) Todos() *mongo.Collection {
	return m.database.Collection(models.Todo{}.TableName())
}

func (m *MongoDB) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

package db

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"case-studio/internal/logger"
	"case-studio/config"
	"case-studio/repositories"
)

// ErrDisabled is returned by Init when no Mongo URI is configured.
var ErrDisabled = errors.New("mongo: no uri configured")

var (
	clientOnce sync.Once
	client     *mongo.Client
	db         *mongo.Database
	initErr    error
)

// Init connects the global Mongo client used for generation audit logs.
// It returns ErrDisabled when cfg.URI is empty; the service runs without
// audit logging in that case.
func Init(ctx context.Context, cfg config.MongoConfig) error {
	clientOnce.Do(func() {
		if cfg.URI == "" {
			initErr = ErrDisabled
			return
		}
		dbName := cfg.DBName
		if dbName == "" {
			dbName = config.DefaultMongoDBName
		}

		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		cl, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
		if err != nil {
			initErr = err
			return
		}
		if err := cl.Ping(ctx, readpref.Primary()); err != nil {
			_ = cl.Disconnect(context.Background())
			initErr = err
			return
		}
		client = cl
		db = client.Database(dbName)

		if err := ensureIndexes(ctx, db); err != nil {
			initErr = err
			return
		}
		logger.InfoWithFields("MongoDB connected and indexes ensured", logger.Fields{"db": dbName})
	})
	return initErr
}

func Client() *mongo.Client     { return client }
func Database() *mongo.Database { return db }

// Close disconnects the global client if Init succeeded.
func Close(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

// Ping reports whether the audit store is reachable. A disabled store is healthy.
func Ping(ctx context.Context) error {
	if db == nil {
		return nil
	}
	return db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

func ensureIndexes(ctx context.Context, d *mongo.Database) error {
	col := d.Collection(repositories.GenerationLogsCollection)
	// generation_logs: requested_at desc
	if _, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "requested_at", Value: -1}},
		Options: options.Index().SetName("idx_requested_at_desc"),
	}); err != nil {
		return err
	}
	// generation_logs: route + success
	if _, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "route", Value: 1}, {Key: "success", Value: 1}},
		Options: options.Index().SetName("idx_route_success"),
	}); err != nil {
		return err
	}
	return nil
}

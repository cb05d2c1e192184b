package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/jobtasks/backend/internal/config"
)

// Connect establishes the process-wide Mongo client and verifies the
// deployment with a ping. The client is shared by all request handlers
// and closed only at shutdown.
func Connect(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*mongo.Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI)

	if cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(cfg.ConnectTimeout)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	logger.Info("connected to mongodb", zap.String("db", cfg.Name))
	return client, nil
}

// Disconnect releases the client and logs the result.
func Disconnect(ctx context.Context, client *mongo.Client, logger *zap.Logger) error {
	if client == nil {
		return nil
	}
	err := client.Disconnect(ctx)
	if err == nil && logger != nil {
		logger.Info("mongodb client closed")
	}
	return err
}

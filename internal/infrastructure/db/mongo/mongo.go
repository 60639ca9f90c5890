package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	connectTimeout  = 10 * time.Second
	queryTimeout    = 10 * time.Second
	defaultDatabase = "realty_marketplace"
)

// Config holds the connection settings for the marketplace document store.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect opens a client against the configured deployment and pings it before
// handing back the database holding the roles, users, and auth_audit
// collections. The caller owns the client and must Disconnect it on shutdown.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = connectTimeout
	}
	dbName := cfg.Database
	if dbName == "" {
		dbName = defaultDatabase
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(dbName), nil
}

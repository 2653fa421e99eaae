package database

import (
	"context"
	"fmt"
	"time"

	"fleet-booking/pkg/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoIface is what the application needs from the database handle
type MongoIface interface {
	Database() *mongo.Database
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// DB wraps the client together with the selected database
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// Database implements MongoIface
func (db *DB) Database() *mongo.Database {
	return db.db
}

// Ping implements MongoIface
func (db *DB) Ping(ctx context.Context) error {
	return db.client.Ping(ctx, readpref.Primary())
}

// Close implements MongoIface
func (db *DB) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}

// InitDB connects the client pool and checks the server answers
func InitDB(config utils.DatabaseConfig) (MongoIface, error) {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	clientOpts := options.Client().
		ApplyURI(config.URI).
		SetMaxPoolSize(config.MaxConns).
		SetMinPoolSize(1).
		SetMaxConnIdleTime(5 * time.Minute).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	connectCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	// Test connection
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancelPing()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping database failed: %w", err)
	}

	return &DB{client: client, db: client.Database(config.Name)}, nil
}

// Package repository provides the MongoDB data access layer.
package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	LocationsCollection = "locations"
	PalletsCollection   = "pallets"
	RunsCollection      = "optimization_runs"
	LogsCollection      = "logs"
	UsersCollection     = "users"
)

// MongoConfig holds MongoDB connection pool configuration.
type MongoConfig struct {
	// MaxPoolSize is the maximum number of connections in the pool.
	MaxPoolSize uint64
	// MinPoolSize is the minimum number of connections to keep in the pool.
	MinPoolSize uint64
	// MaxConnIdleTime is how long a connection can remain idle before being closed.
	MaxConnIdleTime time.Duration
	// ConnectTimeout bounds connecting, pinging and index creation at startup.
	ConnectTimeout time.Duration
	// ServerSelectionTimeout is how long to wait for server selection.
	ServerSelectionTimeout time.Duration
	// SocketTimeout is the timeout for socket read/write operations.
	SocketTimeout time.Duration
	// EnableCompression enables wire protocol compression.
	EnableCompression bool
}

// DefaultMongoConfig returns the production MongoDB configuration.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            50,
		MinPoolSize:            5,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          30 * time.Second,
		EnableCompression:      true,
	}
}

// MongoDB provides MongoDB client and collection access.
type MongoDB struct {
	Client    *mongo.Client
	Database  *mongo.Database
	Locations *mongo.Collection
	Pallets   *mongo.Collection
	Runs      *mongo.Collection
	Logs      *mongo.Collection
	Users     *mongo.Collection
}

// NewMongoDB connects with the default configuration.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig connects, pings and ensures indexes.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout).
		SetRetryWrites(true).
		SetRetryReads(true)
	if cfg.EnableCompression {
		clientOptions.SetCompressors([]string{"zstd", "snappy", "zlib"})
	}

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	db := client.Database(databaseName)
	m := &MongoDB{
		Client:    client,
		Database:  db,
		Locations: db.Collection(LocationsCollection),
		Pallets:   db.Collection(PalletsCollection),
		Runs:      db.Collection(RunsCollection),
		Logs:      db.Collection(LogsCollection),
		Users:     db.Collection(UsersCollection),
	}

	if err := m.createIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("create indexes: %w", err)
	}
	return m, nil
}

func (m *MongoDB) createIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)
	indexes := []struct {
		coll  *mongo.Collection
		model mongo.IndexModel
	}{
		{m.Locations, mongo.IndexModel{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique}},
		{m.Pallets, mongo.IndexModel{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique}},
		{m.Runs, mongo.IndexModel{Keys: bson.D{{Key: "run_id", Value: 1}}, Options: unique}},
		{m.Runs, mongo.IndexModel{Keys: bson.D{{Key: "location_name", Value: 1}, {Key: "created_at", Value: -1}}}},
		{m.Runs, mongo.IndexModel{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}}},
		{m.Logs, mongo.IndexModel{Keys: bson.D{{Key: "request_id", Value: 1}}}},
		{m.Users, mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique}},
	}

	for _, idx := range indexes {
		if _, err := idx.coll.Indexes().CreateOne(ctx, idx.model); err != nil {
			return fmt.Errorf("%s: %w", idx.coll.Name(), err)
		}
	}
	return nil
}

// SetLogsTTL expires log entries ttl after their timestamp.
func (m *MongoDB) SetLogsTTL(ctx context.Context, ttl time.Duration) error {
	return ensureTTLIndex(ctx, m.Logs, "timestamp", ttl)
}

// SetRunsTTL expires optimization runs ttl after creation.
func (m *MongoDB) SetRunsTTL(ctx context.Context, ttl time.Duration) error {
	return ensureTTLIndex(ctx, m.Runs, "created_at", ttl)
}

// ensureTTLIndex replaces the single-field index on field with a TTL index.
// A zero ttl only drops the existing index.
func ensureTTLIndex(ctx context.Context, coll *mongo.Collection, field string, ttl time.Duration) error {
	name := field + "_1"
	_, _ = coll.Indexes().DropOne(ctx, name)
	if ttl <= 0 {
		return nil
	}

	idx := mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: 1}},
		Options: options.Index().SetName(name).SetExpireAfterSeconds(int32(ttl / time.Second)),
	}
	if _, err := coll.Indexes().CreateOne(ctx, idx); err != nil {
		return fmt.Errorf("ttl index %s.%s: %w", coll.Name(), field, err)
	}
	return nil
}

// Close closes the MongoDB connection.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck pings the server with a short timeout.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}

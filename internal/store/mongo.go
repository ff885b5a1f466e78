package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	productCollection = "products"
	connectTimeout    = 10 * time.Second
)

// MongoStore is the process-wide handle on the MongoDB catalog store. The
// client is established lazily on the first Collection call and memoized for
// the process lifetime; concurrent first callers share a single connection
// attempt. A failed attempt clears the memo so a later call may retry.
type MongoStore struct {
	uri      string
	database string
	logger   *zap.Logger

	mu     sync.Mutex
	client *mongo.Client
}

// NewMongoStore creates a store handle without connecting. An empty uri is
// valid and selects fallback mode: every Collection call returns
// ErrNotConfigured.
func NewMongoStore(uri, database string, logger *zap.Logger) *MongoStore {
	return &MongoStore{
		uri:      uri,
		database: database,
		logger:   logger,
	}
}

// Collection returns the product collection, connecting on first use.
func (s *MongoStore) Collection(ctx context.Context) (Collection, error) {
	client, err := s.connect(ctx)
	if err != nil {
		return nil, err
	}

	return &mongoCollection{
		col: client.Database(s.database).Collection(productCollection),
	}, nil
}

// connect establishes and memoizes the client. The mutex is held across the
// whole attempt so concurrent first callers observe the same in-flight
// connection rather than dialing twice.
func (s *MongoStore) connect(ctx context.Context) (*mongo.Client, error) {
	if s.uri == "" {
		return nil, ErrNotConfigured
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return s.client, nil
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.uri))
	if err != nil {
		s.logger.Error("Failed to create mongo client", zap.Error(err))
		return nil, fmt.Errorf("connect catalog store: %w", err)
	}

	// Connect does not dial; ping so an unreachable store is caught here and
	// the memo stays clear for a later retry.
	if err := client.Ping(ctx, nil); err != nil {
		s.logger.Error("Catalog store unreachable", zap.Error(err))
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping catalog store: %w", err)
	}

	s.logger.Info("Connected to catalog store", zap.String("database", s.database))
	s.client = client
	return client, nil
}

// Close disconnects the memoized client if one was ever established.
func (s *MongoStore) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		return nil
	}

	client := s.client
	s.client = nil
	return client.Disconnect(ctx)
}

type mongoCollection struct {
	col *mongo.Collection
}

func (c *mongoCollection) EstimatedCount(ctx context.Context) (int64, error) {
	count, err := c.col.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}

func (c *mongoCollection) InsertMany(ctx context.Context, docs []interface{}) error {
	if _, err := c.col.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert products: %w", err)
	}
	return nil
}

func (c *mongoCollection) FindAll(ctx context.Context) ([]Document, error) {
	cursor, err := c.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}

	var docs []Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return docs, nil
}

func (c *mongoCollection) FindMatching(ctx context.Context, pattern string, limit int64) ([]Document, error) {
	regex := primitive.Regex{Pattern: pattern, Options: "i"}
	filter := bson.M{
		"$or": bson.A{
			bson.M{"name": regex},
			bson.M{"description": regex},
			bson.M{"category": regex},
			bson.M{"tags": bson.M{"$elemMatch": bson.M{"$regex": regex}}},
		},
	}

	cursor, err := c.col.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}

	var docs []Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode search results: %w", err)
	}
	return docs, nil
}

// Package store wraps the document store holding the product catalog. The
// absence of a configured store is a supported state, not an error: callers
// receive ErrNotConfigured and are expected to degrade to the generated
// sample dataset.
package store

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by Collection when no connection string was
// provided. It signals permanent fallback mode for the process, not a fault.
var ErrNotConfigured = errors.New("catalog store not configured")

// Document is a loosely-typed record as read back from the store. The store
// does not enforce the product schema; translating a Document into a
// domain.Product is the repository's job.
type Document map[string]interface{}

// Collection exposes the read and insert operations the repository needs on
// the product collection.
type Collection interface {
	// EstimatedCount returns the approximate number of documents in the
	// collection. A zero count marks the store as uninitialized.
	EstimatedCount(ctx context.Context) (int64, error)

	// InsertMany writes the given documents. Used only for the one-time seed.
	InsertMany(ctx context.Context, docs []interface{}) error

	// FindAll returns every document in the collection.
	FindAll(ctx context.Context) ([]Document, error)

	// FindMatching returns up to limit documents whose name, description,
	// category, or any tag matches the given regex pattern
	// case-insensitively. The pattern must already be metacharacter-escaped.
	FindMatching(ctx context.Context, pattern string, limit int64) ([]Document, error)
}

// Store hands out the product collection, establishing the underlying
// connection lazily on first use.
type Store interface {
	Collection(ctx context.Context) (Collection, error)
}

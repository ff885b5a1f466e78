package repository

import (
	"context"
	"regexp"
	"strings"

	"storefront/internal/catalog"
	"storefront/internal/domain"
	"storefront/internal/store"

	"github.com/google/uuid"
	"github.com/spf13/cast"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// searchLimit caps the number of results a search may return, on either the
// store-side or the in-memory path.
const searchLimit = 12

// ProductRepository is the catalog read layer. Every operation degrades
// transparently to the generated sample dataset when the store is absent,
// unreachable, or failing; store I/O errors are logged here and never
// surfaced to callers.
type ProductRepository interface {
	ListAll(ctx context.Context) []domain.Product
	ListFeatured(ctx context.Context) []domain.Product
	GetBySlug(ctx context.Context, slug string) (domain.Product, bool)
	Search(ctx context.Context, term string) []domain.Product
}

type productRepository struct {
	store  store.Store
	logger *zap.Logger
	sample []domain.Product
}

// NewProductRepository creates a repository backed by the given store, with
// the generated sample dataset as fallback and seed payload.
func NewProductRepository(st store.Store, logger *zap.Logger) ProductRepository {
	return &productRepository{
		store:  st,
		logger: logger,
		sample: catalog.SampleProducts(),
	}
}

// ListAll returns the full catalog. Store read failures of any kind fall
// back to the sample dataset. A reachable but empty collection is treated as
// uninitialized: the sample dataset is inserted as a one-time seed and
// returned directly, with no second round-trip.
func (r *productRepository) ListAll(ctx context.Context) []domain.Product {
	col, err := r.store.Collection(ctx)
	if err != nil {
		r.logFallback("list", err)
		return r.sample
	}

	count, err := col.EstimatedCount(ctx)
	if err != nil {
		r.logFallback("count", err)
		return r.sample
	}

	if count == 0 {
		// Two concurrent first-reads can both observe zero and both seed.
		// The duplicate rows are accepted in this demo-grade design; reads
		// key products by their own id/slug, not the store identifier.
		docs := make([]interface{}, len(r.sample))
		for i, p := range r.sample {
			docs[i] = p
		}
		if err := col.InsertMany(ctx, docs); err != nil {
			r.logger.Error("Failed to seed catalog store", zap.Error(err))
		} else {
			r.logger.Info("Seeded catalog store", zap.Int("products", len(r.sample)))
		}
		return r.sample
	}

	docs, err := col.FindAll(ctx)
	if err != nil {
		r.logFallback("list", err)
		return r.sample
	}

	products := make([]domain.Product, len(docs))
	for i, doc := range docs {
		products[i] = sanitizeProduct(doc)
	}
	return products
}

// ListFeatured filters ListAll by the featured flag. There is no independent
// store query for the featured subset.
func (r *productRepository) ListFeatured(ctx context.Context) []domain.Product {
	featured := []domain.Product{}
	for _, p := range r.ListAll(ctx) {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured
}

// GetBySlug returns the first product with an exact slug match. A missing
// slug is not an error; the second return value reports presence.
func (r *productRepository) GetBySlug(ctx context.Context, slug string) (domain.Product, bool) {
	for _, p := range r.ListAll(ctx) {
		if p.Slug == slug {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Search finds up to 12 products whose name, description, category, or any
// tag contains the trimmed term as a case-insensitive substring. The term is
// regex-escaped before matching, so metacharacters match only literally. An
// empty trimmed term returns nothing without touching the store.
func (r *productRepository) Search(ctx context.Context, term string) []domain.Product {
	normalized := strings.TrimSpace(term)
	if normalized == "" {
		return []domain.Product{}
	}

	pattern := regexp.QuoteMeta(normalized)

	col, err := r.store.Collection(ctx)
	if err == nil {
		docs, findErr := col.FindMatching(ctx, pattern, searchLimit)
		if findErr == nil {
			products := make([]domain.Product, len(docs))
			for i, doc := range docs {
				products[i] = sanitizeProduct(doc)
			}
			return products
		}
		r.logFallback("search", findErr)
	} else {
		r.logFallback("search", err)
	}

	// In-memory path: the identical case-insensitive substring test over the
	// full catalog, with the same cap.
	matcher := regexp.MustCompile("(?i)" + pattern)

	matches := []domain.Product{}
	for _, p := range r.ListAll(ctx) {
		if len(matches) == searchLimit {
			break
		}
		if productMatches(p, matcher) {
			matches = append(matches, p)
		}
	}
	return matches
}

func productMatches(p domain.Product, matcher *regexp.Regexp) bool {
	if matcher.MatchString(p.Name) ||
		matcher.MatchString(p.Description) ||
		matcher.MatchString(p.Category) {
		return true
	}
	for _, tag := range p.Tags {
		if matcher.MatchString(tag) {
			return true
		}
	}
	return false
}

func (r *productRepository) logFallback(op string, err error) {
	if err == store.ErrNotConfigured {
		r.logger.Debug("Catalog store not configured, using sample dataset",
			zap.String("op", op))
		return
	}
	r.logger.Error("Catalog store unavailable, using sample dataset",
		zap.String("op", op),
		zap.Error(err),
	)
}

// sanitizeProduct is a total mapping from a loosely-typed store document to a
// Product. The store is never assumed to enforce the product schema: every
// field has an explicit defaulting rule, and the id falls back from the
// document's id to its slug, then the stringified store identifier, then a
// fresh random token, so a returned product always carries a non-empty id.
func sanitizeProduct(doc store.Document) domain.Product {
	p := domain.Product{
		Name:        cast.ToString(doc["name"]),
		Slug:        cast.ToString(doc["slug"]),
		Description: cast.ToString(doc["description"]),
		Price:       cast.ToFloat64(doc["price"]),
		Currency:    cast.ToString(doc["currency"]),
		Category:    cast.ToString(doc["category"]),
		Tags:        toStringSlice(doc["tags"]),
		Image:       cast.ToString(doc["image"]),
		Gallery:     toStringSlice(doc["gallery"]),
		Rating:      cast.ToFloat64(doc["rating"]),
		RatingCount: cast.ToInt(doc["ratingCount"]),
		Inventory:   cast.ToInt(doc["inventory"]),
		Featured:    cast.ToBool(doc["featured"]),
		Brand:       cast.ToString(doc["brand"]),
		Colors:      toStringSlice(doc["colors"]),
	}

	p.ID = cast.ToString(doc["id"])
	if p.ID == "" {
		p.ID = p.Slug
	}
	if p.ID == "" {
		p.ID = stringifyStoreID(doc["_id"])
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	if p.Currency == "" {
		p.Currency = "USD"
	}
	if p.Price < 0 {
		p.Price = 0
	}
	if p.Rating < 0 {
		p.Rating = 0
	}
	if p.Rating > 5 {
		p.Rating = 5
	}
	if p.RatingCount < 0 {
		p.RatingCount = 0
	}
	if p.Inventory < 0 {
		p.Inventory = 0
	}

	return p
}

// toStringSlice widens cast.ToStringSlice to cover bson array decoding,
// which yields primitive.A rather than []interface{}.
func toStringSlice(v interface{}) []string {
	if a, ok := v.(primitive.A); ok {
		return cast.ToStringSlice([]interface{}(a))
	}
	return cast.ToStringSlice(v)
}

func stringifyStoreID(id interface{}) string {
	switch v := id.(type) {
	case nil:
		return ""
	case primitive.ObjectID:
		return v.Hex()
	default:
		return cast.ToString(v)
	}
}

package transport

import (
	"net/http"

	"storefront/internal/middleware"
	"storefront/internal/repository"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Façade operation names. Each maps 1:1 onto a ProductRepository method.
const (
	OpProducts         = "products"
	OpFeaturedProducts = "featuredProducts"
	OpProduct          = "product"
	OpSearchProducts   = "searchProducts"
)

// QueryRequest is the uniform request envelope: a named operation plus a
// key-value argument set.
type QueryRequest struct {
	Operation string            `json:"operation" validate:"required"`
	Args      map[string]string `json:"args"`
}

// QueryResponse carries either the requested data or a list of field-level
// errors, never both.
type QueryResponse struct {
	Data   interface{}                  `json:"data"`
	Errors []middleware.ValidationError `json:"errors,omitempty"`
}

// QueryHandler is the query façade: the single entry point the presentation
// surfaces call instead of talking to the repository directly. It shapes
// arguments and output only; no caching, authorization, or rate limiting
// happens here.
type QueryHandler struct {
	products repository.ProductRepository
	logger   *zap.Logger
}

// NewQueryHandler creates a query façade over the product repository.
func NewQueryHandler(products repository.ProductRepository, logger *zap.Logger) *QueryHandler {
	return &QueryHandler{
		products: products,
		logger:   logger,
	}
}

// RegisterRoutes mounts the façade endpoint on the router.
func (h *QueryHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/query", h.HandleQuery)
}

// HandleQuery dispatches a named operation. A missing required argument or an
// unknown operation is a caller error, answered with field-level errors; a
// product that does not exist is a data condition, answered with null data.
func (h *QueryHandler) HandleQuery(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("Invalid query request", zap.Error(err))

		errs := middleware.FormatValidationErrors(err)
		if len(errs) == 0 {
			errs = []middleware.ValidationError{{Field: "body", Message: "Invalid request body"}}
		}
		middleware.RespondWithValidationErrors(w, errs)
		return
	}

	ctx := r.Context()

	switch req.Operation {
	case OpProducts:
		middleware.RespondWithJSON(w, http.StatusOK, QueryResponse{
			Data: h.products.ListAll(ctx),
		})

	case OpFeaturedProducts:
		middleware.RespondWithJSON(w, http.StatusOK, QueryResponse{
			Data: h.products.ListFeatured(ctx),
		})

	case OpProduct:
		slug, ok := req.Args["slug"]
		if !ok || slug == "" {
			middleware.RespondWithValidationErrors(w, []middleware.ValidationError{
				{Field: "slug", Message: "This field is required"},
			})
			return
		}

		product, found := h.products.GetBySlug(ctx, slug)
		if !found {
			// Absent is not an error; the page renders its not-found state.
			middleware.RespondWithJSON(w, http.StatusOK, QueryResponse{Data: nil})
			return
		}
		middleware.RespondWithJSON(w, http.StatusOK, QueryResponse{Data: product})

	case OpSearchProducts:
		term, ok := req.Args["term"]
		if !ok {
			middleware.RespondWithValidationErrors(w, []middleware.ValidationError{
				{Field: "term", Message: "This field is required"},
			})
			return
		}
		middleware.RespondWithJSON(w, http.StatusOK, QueryResponse{
			Data: h.products.Search(ctx, term),
		})

	default:
		h.logger.Warn("Unknown query operation", zap.String("operation", req.Operation))
		middleware.RespondWithValidationErrors(w, []middleware.ValidationError{
			{Field: "operation", Message: "Unknown operation"},
		})
	}
}

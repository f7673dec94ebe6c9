package router

import (
	"net/http"

	"fashionhub/internal/handler"
	"fashionhub/internal/middleware"
	"fashionhub/internal/tracing"

	"github.com/rs/zerolog"
)

// Deps holds everything the router wires into routes.
type Deps struct {
	Products     *handler.ProductHandler
	Orders       *handler.OrderHandler
	Auth         *handler.AuthHandler
	RequireAdmin func(http.Handler) http.Handler

	// Optional; nil skips the middleware.
	Tracer  tracing.Tracer
	Metrics *middleware.HTTPMetrics
}

// New creates a new HTTP router with all routes and middleware configured.
func New(deps Deps, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()
	admin := func(h http.HandlerFunc) http.Handler {
		return deps.RequireAdmin(h)
	}

	// Public endpoints
	mux.HandleFunc("GET /api/health", handler.Health(logger))
	mux.HandleFunc("POST /api/admin/login", deps.Auth.Login)
	mux.HandleFunc("POST /api/auth/login", deps.Auth.Login)
	mux.HandleFunc("GET /api/products", deps.Products.List)
	mux.HandleFunc("GET /api/products/{id}", deps.Products.GetByID)
	mux.HandleFunc("POST /api/orders", deps.Orders.Create)

	// Admin endpoints
	mux.Handle("POST /api/products", admin(deps.Products.Create))
	mux.Handle("PUT /api/products/{id}", admin(deps.Products.Update))
	mux.Handle("DELETE /api/products/{id}", admin(deps.Products.Delete))
	mux.Handle("GET /api/orders", admin(deps.Orders.List))

	// Apply middleware in order: Recovery -> Tracing -> Metrics -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	if deps.Metrics != nil {
		h = deps.Metrics.Middleware(h)
	}
	if deps.Tracer != nil {
		h = middleware.Tracing(deps.Tracer)(h)
	}
	h = middleware.Recovery(logger)(h)

	return h
}

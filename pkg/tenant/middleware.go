package tenant

import (
	"log/slog"
	"net/http"
)

// ErrorHandler handles errors that occur during tenant resolution.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// config holds middleware configuration.
type config struct {
	errorHandler ErrorHandler
	logger       *slog.Logger
}

// Option configures the middleware.
type Option func(*config)

// WithErrorHandler sets a custom handler for resolver failures.
func WithErrorHandler(handler ErrorHandler) Option {
	return func(c *config) {
		c.errorHandler = handler
	}
}

// WithLogger sets a custom logger for the middleware.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	http.Error(w, "Invalid tenant identifier", http.StatusBadRequest)
}

// Middleware creates HTTP middleware that resolves the tenant identifier
// from incoming requests and stores it in the request context. Requests
// without a tenant identifier pass through unchanged; enforcement is left
// to downstream components.
func Middleware(resolver Resolver, opts ...Option) func(http.Handler) http.Handler {
	cfg := &config{
		errorHandler: defaultErrorHandler,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := resolver.Resolve(r)
			if err != nil {
				cfg.logger.ErrorContext(r.Context(), "tenant resolution failed", "error", err)
				cfg.errorHandler(w, r, err)
				return
			}

			if id == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithTenant(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

package authn

import (
	"errors"
	"log/slog"
	"net/http"
)

// MiddlewareOption configures the BasicAuth middleware.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	realm  string
	logger *slog.Logger
}

// WithRealm sets the realm announced in the WWW-Authenticate challenge.
func WithRealm(realm string) MiddlewareOption {
	return func(c *middlewareConfig) {
		if realm != "" {
			c.realm = realm
		}
	}
}

// WithMiddlewareLogger sets a custom logger for the middleware.
func WithMiddlewareLogger(logger *slog.Logger) MiddlewareOption {
	return func(c *middlewareConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// BasicAuth creates HTTP middleware that authenticates requests with
// Basic credentials via the given authenticator and stores the resulting
// Identity in the request context.
//
// Credential and tenant failures are both answered with a generic 401 so
// they stay externally indistinguishable; an unavailable authentication
// service is answered with 503 so operators can tell outages from
// attacks.
func BasicAuth(authenticator Authenticator, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{
		realm:  "restricted",
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, password, ok := r.BasicAuth()
			if !ok {
				w.Header().Set("WWW-Authenticate", `Basic realm="`+cfg.realm+`"`)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := r.Context()
			identity, err := authenticator.Authenticate(ctx, Credentials{
				Username: username,
				Password: password,
			})

			switch {
			case err == nil:
				next.ServeHTTP(w, r.WithContext(WithIdentity(ctx, identity)))
			case errors.Is(err, ErrServiceUnavailable):
				cfg.logger.ErrorContext(ctx, "authentication service failure", "error", err)
				http.Error(w, "Authentication service unavailable", http.StatusServiceUnavailable)
			case errors.Is(err, ErrInvalidCredentials):
				// The wrapped cause (wrong password, tenant mismatch) stays
				// server-side; the response body never varies.
				cfg.logger.InfoContext(ctx, "authentication rejected", "username", username, "cause", err)
				w.Header().Set("WWW-Authenticate", `Basic realm="`+cfg.realm+`"`)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
			default:
				cfg.logger.ErrorContext(ctx, "authentication error", "error", err)
				http.Error(w, "Internal server error", http.StatusInternalServerError)
			}
		})
	}
}

package lockout

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/clinicflow/seckit/pkg/clientip"
)

// lockedResponse is the structured rejection payload for locked keys.
type lockedResponse struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// MiddlewareOption configures the middleware.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	logger *slog.Logger
}

// WithMiddlewareLogger sets a custom logger for the middleware.
func WithMiddlewareLogger(logger *slog.Logger) MiddlewareOption {
	return func(c *middlewareConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Middleware creates HTTP middleware that short-circuits requests for
// locked identities before any credential check runs. Only requests
// carrying Basic credentials are inspected; the claimed username is
// checked first, then the source IP. Locked keys get HTTP 429 with the
// remaining lock time in minutes; neither check counts as a further
// failed attempt.
func Middleware(tracker *Tracker, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, _, ok := r.BasicAuth()
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()

			if tracker.Locked(ctx, username) {
				remaining := tracker.RemainingLockTime(ctx, username)
				cfg.logger.WarnContext(ctx, "blocked authentication attempt from locked account", "username", username)
				writeLocked(w, fmt.Sprintf(
					"Account is temporarily locked due to too many failed login attempts. Please try again in %d minutes.",
					remaining))
				return
			}

			ip := clientip.GetIPFromContext(ctx)
			if ip == "" {
				ip = clientip.GetIP(r)
			}
			if tracker.Locked(ctx, ip) {
				remaining := tracker.RemainingLockTime(ctx, ip)
				cfg.logger.WarnContext(ctx, "blocked authentication attempt from locked IP", "ip", ip)
				writeLocked(w, fmt.Sprintf(
					"Too many failed login attempts from your IP address. Please try again in %d minutes.",
					remaining))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeLocked(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusTooManyRequests)
	_ = json.NewEncoder(w).Encode(lockedResponse{
		Status:  http.StatusTooManyRequests,
		Error:   "Too Many Attempts",
		Message: message,
	})
}

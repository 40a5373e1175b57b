package ipallow

import (
	"log/slog"
	"net/http"

	"github.com/clinicflow/seckit/pkg/clientip"
)

// Option configures the middleware.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger sets a custom logger for the middleware.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// Middleware creates HTTP middleware that rejects requests from source
// IPs not present on the allowlist. A disabled gate or an empty
// allowlist admits everyone. Rejections carry a generic 403 body; the
// offending IP is only logged.
func Middleware(allowlist *Allowlist, enabled bool, opts ...Option) func(http.Handler) http.Handler {
	cfg := &config{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !enabled || allowlist.Empty() {
				next.ServeHTTP(w, r)
				return
			}

			ip := clientip.GetIPFromContext(r.Context())
			if ip == "" {
				ip = clientip.GetIP(r)
			}

			if !allowlist.Match(ip) {
				cfg.logger.WarnContext(r.Context(), "access denied: IP not in allowlist", "ip", ip)
				http.Error(w, "Access denied: your IP address is not allowed to access this resource", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

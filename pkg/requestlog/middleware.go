package requestlog

import (
	"log/slog"
	"net/http"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/clinicflow/seckit/pkg/clientip"
)

// Header carries the request ID on both request and response.
const Header = "X-Request-ID"

const maxIDLength = 128

var validIDRegex = regexp.MustCompile("^[a-zA-Z0-9_-]+$")

// Middleware assigns a request ID and writes one access log line per
// request after the handler completes. A nil logger disables the
// access line but the ID is still assigned.
func Middleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(Header)
			if !isValidRequestID(requestID) {
				requestID = uuid.New().String()
			}
			w.Header().Set(Header, requestID)

			ctx := WithRequestID(r.Context(), requestID)
			r = r.WithContext(ctx)

			if log == nil {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)

			log.InfoContext(ctx, "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
				slog.String("client_ip", clientip.GetIP(r)),
			)
		})
	}
}

func isValidRequestID(id string) bool {
	if len(id) == 0 || len(id) > maxIDLength {
		return false
	}
	return validIDRegex.MatchString(id)
}

// statusWriter records the status code passed to WriteHeader.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(status int) {
	if !w.wroteHeader {
		w.status = status
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

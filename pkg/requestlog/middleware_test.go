package requestlog_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicflow/seckit/pkg/requestlog"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates request ID when absent", func(t *testing.T) {
		t.Parallel()

		var captured string
		handler := requestlog.Middleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured = requestlog.RequestIDFromContext(r.Context())
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NotEmpty(t, captured)
		_, err := uuid.Parse(captured)
		require.NoError(t, err)
		assert.Equal(t, captured, rec.Header().Get(requestlog.Header))
	})

	t.Run("honors valid inbound request ID", func(t *testing.T) {
		t.Parallel()

		handler := requestlog.Middleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(requestlog.Header, "client-supplied-id_01")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "client-supplied-id_01", rec.Header().Get(requestlog.Header))
	})

	t.Run("replaces malformed inbound request ID", func(t *testing.T) {
		t.Parallel()

		handler := requestlog.Middleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(requestlog.Header, "bad id\nwith newline")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		got := rec.Header().Get(requestlog.Header)
		require.NotEmpty(t, got)
		assert.NotEqual(t, "bad id\nwith newline", got)
	})

	t.Run("rejects oversized inbound request ID", func(t *testing.T) {
		t.Parallel()

		handler := requestlog.Middleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		oversized := strings.Repeat("a", 200)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(requestlog.Header, oversized)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.NotEqual(t, oversized, rec.Header().Get(requestlog.Header))
	})

	t.Run("logs method path and status", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))

		handler := requestlog.Middleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))

		req := httptest.NewRequest(http.MethodPost, "/api/patients", nil)
		req.RemoteAddr = "10.0.0.7:51234"
		handler.ServeHTTP(httptest.NewRecorder(), req)

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "request completed", record["msg"])
		assert.Equal(t, http.MethodPost, record["method"])
		assert.Equal(t, "/api/patients", record["path"])
		assert.Equal(t, float64(http.StatusTeapot), record["status"])
		assert.Equal(t, "10.0.0.7", record["client_ip"])
	})

	t.Run("default status is 200 when handler writes body only", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))

		handler := requestlog.Middleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, float64(http.StatusOK), record["status"])
	})
}

package clientip_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clinicflow/seckit/pkg/clientip"
)

func TestGetIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		want       string
	}{
		{
			name:       "remote addr with port",
			remoteAddr: "192.0.2.10:54321",
			want:       "192.0.2.10",
		},
		{
			name:       "remote addr without port",
			remoteAddr: "192.0.2.10",
			want:       "192.0.2.10",
		},
		{
			name:       "single forwarded for entry",
			remoteAddr: "10.0.0.1:1234",
			forwarded:  "203.0.113.7",
			want:       "203.0.113.7",
		},
		{
			name:       "first hop of forwarded chain wins",
			remoteAddr: "10.0.0.1:1234",
			forwarded:  "203.0.113.7, 198.51.100.2, 10.0.0.1",
			want:       "203.0.113.7",
		},
		{
			name:       "invalid first hop skipped",
			remoteAddr: "10.0.0.1:1234",
			forwarded:  "not-an-ip, 198.51.100.2",
			want:       "198.51.100.2",
		},
		{
			name:       "garbage forwarded header falls back to peer",
			remoteAddr: "10.0.0.1:1234",
			forwarded:  "not-an-ip",
			want:       "10.0.0.1",
		},
		{
			name:       "ipv6 remote addr",
			remoteAddr: "[2001:db8::1]:443",
			want:       "2001:db8::1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}

			assert.Equal(t, tt.want, clientip.GetIP(req))
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got string
	handler := clientip.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = clientip.GetIPFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.10:54321"
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "203.0.113.7", got)
}

func TestGetIPFromContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, clientip.GetIPFromContext(context.Background()))

	ctx := clientip.SetIPToContext(context.Background(), "192.0.2.10")
	assert.Equal(t, "192.0.2.10", clientip.GetIPFromContext(ctx))
}

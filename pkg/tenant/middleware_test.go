package tenant_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicflow/seckit/pkg/tenant"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("sets tenant from header", func(t *testing.T) {
		t.Parallel()

		var got string
		handler := tenant.Middleware(tenant.NewHeaderResolver(""))(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, _ = tenant.FromContext(r.Context())
			}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Tenant-ID", "tenant-1")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, "tenant-1", got)
	})

	t.Run("proceeds without tenant when header absent", func(t *testing.T) {
		t.Parallel()

		called := false
		handler := tenant.Middleware(tenant.NewHeaderResolver(""))(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				_, ok := tenant.FromContext(r.Context())
				assert.False(t, ok)
			}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.True(t, called)
	})

	t.Run("resolver error invokes error handler", func(t *testing.T) {
		t.Parallel()

		resolver := tenant.ResolverFunc(func(r *http.Request) (string, error) {
			return "", errors.New("boom")
		})

		handler := tenant.Middleware(resolver)(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("handler must not be reached")
			}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("tenant does not leak between requests", func(t *testing.T) {
		t.Parallel()

		handler := tenant.Middleware(tenant.NewHeaderResolver(""))(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				id, _ := tenant.FromContext(r.Context())
				assert.Equal(t, r.Header.Get("X-Tenant-ID"), id)
			}))

		var wg sync.WaitGroup
		for i := range 50 {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				req := httptest.NewRequest(http.MethodGet, "/", nil)
				req.Header.Set("X-Tenant-ID", fmt.Sprintf("tenant-%d", n))
				handler.ServeHTTP(httptest.NewRecorder(), req)
			}(i)
		}
		wg.Wait()

		// A follow-up request without the header must observe no tenant.
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		handler2 := tenant.Middleware(tenant.NewHeaderResolver(""))(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, ok := tenant.FromContext(r.Context())
				require.False(t, ok)
			}))
		handler2.ServeHTTP(httptest.NewRecorder(), req)
	})
}

func TestHeaderResolver(t *testing.T) {
	t.Parallel()

	t.Run("custom header name", func(t *testing.T) {
		t.Parallel()

		resolver := tenant.NewHeaderResolver("X-Org-ID")
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Org-ID", "org-7")

		id, err := resolver.Resolve(req)
		require.NoError(t, err)
		assert.Equal(t, "org-7", id)
	})

	t.Run("defaults to X-Tenant-ID", func(t *testing.T) {
		t.Parallel()

		resolver := tenant.NewHeaderResolver("")
		assert.Equal(t, tenant.DefaultHeader, resolver.HeaderName)
	})
}

package tenant

import "net/http"

// DefaultHeader is the header consulted when no custom header is configured.
const DefaultHeader = "X-Tenant-ID"

// Resolver extracts a tenant identifier from an HTTP request.
type Resolver interface {
	// Resolve extracts the tenant identifier from the request.
	// Returns empty string if no tenant identifier is found.
	// Returns error if the extraction fails.
	Resolve(r *http.Request) (string, error)
}

// HeaderResolver extracts the tenant identifier from an HTTP header.
type HeaderResolver struct {
	// HeaderName is the name of the header to read (e.g. "X-Tenant-ID").
	HeaderName string
}

// NewHeaderResolver creates a new header resolver. An empty headerName
// falls back to DefaultHeader.
func NewHeaderResolver(headerName string) *HeaderResolver {
	if headerName == "" {
		headerName = DefaultHeader
	}
	return &HeaderResolver{HeaderName: headerName}
}

// Resolve extracts the tenant identifier from the configured header.
func (r *HeaderResolver) Resolve(req *http.Request) (string, error) {
	return req.Header.Get(r.HeaderName), nil
}

// ResolverFunc is an adapter to allow the use of ordinary functions as Resolvers.
type ResolverFunc func(r *http.Request) (string, error)

// Resolve calls the function.
func (f ResolverFunc) Resolve(r *http.Request) (string, error) {
	return f(r)
}

// Package tenant propagates a per-request tenant identifier through the
// request context.
//
// Every inbound request may declare the tenant it operates on (by default
// via the X-Tenant-ID header). The middleware resolves the identifier and
// stores it in the request context, where any component in the call path
// can read it without threading an extra parameter around. Because the
// identifier lives in the request-scoped context, it can never leak
// between concurrently handled requests and is released automatically on
// every exit path, including panics and early rejects.
//
// # Usage
//
//	mw := tenant.Middleware(tenant.NewHeaderResolver(""))
//	router.Use(mw)
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		id, ok := tenant.FromContext(r.Context())
//		if !ok {
//			// request declared no tenant
//		}
//		_ = id
//	}
//
// Absence of a tenant is not an error at this layer; downstream
// components (e.g. the tenant-validating authenticator) decide whether a
// missing tenant is acceptable for the operation at hand.
package tenant

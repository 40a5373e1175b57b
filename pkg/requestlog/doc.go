// Package requestlog tags each HTTP request with a request ID and logs
// its outcome.
//
// The middleware honors an inbound X-Request-ID header when it looks
// sane, otherwise generates a fresh UUID. The ID is echoed on the
// response, stored in the request context, and emitted on the access
// log line together with method, path, status and duration.
//
//	r.Use(requestlog.Middleware(log))
package requestlog

// Package clientip resolves the originating client IP of an HTTP request.
//
// When the service sits behind a reverse proxy the transport-layer peer
// address belongs to the proxy, not the client. GetIP therefore prefers
// the first hop of the X-Forwarded-For header and falls back to the
// connection's remote address. The middleware stores the resolved IP in
// the request context so that components deeper in the call path (e.g.
// the lockout tracker) can key their state by source address without
// re-deriving it.
package clientip

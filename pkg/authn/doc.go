// Package authn implements the authentication decision for the
// multi-tenant API: credential verification composed with tenant
// membership validation and lockout bookkeeping.
//
// The building block is the Authenticator interface. Two base strategies
// verify credentials: LocalAuthenticator against a stored credential
// lookup, SSOAuthenticator against the external sign-on service. Two
// decorators compose behavior around either one:
//
//   - TenantAuthenticator validates, after a successful credential check,
//     that the identity is registered under the tenant declared by the
//     request. A missing tenant or a failed membership check surfaces as
//     a credentials-shaped failure, indistinguishable from a wrong
//     password to the outside, so tenants cannot be enumerated by
//     probing error responses.
//   - Recorder updates the lockout tracker exactly once at the point the
//     credential check concludes: a success resets the username and
//     source-IP counters, an invalid-credentials failure increments both.
//     A service outage is never counted.
//
// BasicAuth is the HTTP middleware tying it together: it extracts Basic
// credentials, runs the configured authenticator, and either stores the
// resulting Identity in the request context or rejects the request
// (401 for credential and tenant failures alike, 503 when the
// authentication service is down).
//
//	base := authn.NewSSOAuthenticator(ssoClient)
//	auth := authn.NewRecorder(
//		authn.NewTenantAuthenticator(base, store),
//		tracker,
//	)
//	router.Use(authn.BasicAuth(auth))
package authn

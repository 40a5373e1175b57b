// Package sso delegates credential verification to an external
// single-sign-on service.
//
// The client posts the credentials as Basic auth to the configured
// endpoint and decodes the JSON verdict {authenticated, roles}. Three
// outcomes are kept strictly apart so callers can react correctly:
//
//   - Result.Authenticated false (explicit rejection or HTTP 401): a
//     normal credential failure, counted toward lockout by the caller.
//   - ErrServiceUnavailable: transport error, timeout, or an unexpected
//     status from the remote service. Never folded into a credential
//     failure, so outages are not mistaken for attacks and users are not
//     punished for them.
//   - ErrUnexpected: anything else, e.g. an undecodable response body.
//
// A single configured timeout bounds the whole outbound call; no retries
// are performed.
package sso

// Package session implements the client-side session and cross-view state
// synchronization core.
//
// The package answers "who is the current user" once per process and keeps
// every independently constructed view consistent with that answer:
//
//   - [Storage] : injected durable key-value storage (in-memory, sqlite-backed)
//   - [TokenStore] : exclusive owner of the opaque credential; also an
//     [golang.org/x/oauth2.TokenSource] for authorized HTTP clients
//   - [AuthState] : tri-state authentication signal (Unknown / Authenticated /
//     NotAuthenticated) published on a replay-last-value [Signal]
//   - [IdentityCache] : current user id + display name, mirrored to storage so
//     a fresh boot repopulates it before any network round trip
//   - [Router] / [AuthGuard] / [BrowserGuard] : navigation with guarded entry
//     into the protected route group
//   - [Transport] : http.RoundTripper that observes authentication-rejection
//     responses and forces the unauthenticated flow
//
// The process runs in one of two execution contexts ([EnvBrowser] or
// [EnvServer]). Under the server context durable storage is never touched:
// credentials are sourced read-only from inbound request cookies and route
// guarding is deferred to the browser re-evaluation.
package session

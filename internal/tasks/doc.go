// Package tasks orchestrates the client's long-running workflows with real-time progress reporting.
//
// # Core Operations
//
// The [Engine] interface defines the session workflows:
//
//  1. [Engine.Login] : Full sign-in pipeline
//     - Exchanges credentials for an opaque token
//     - Commits the token before any dependent request
//     - Resolves the account id, then the full profile
//     - Commits the identity and navigates to the plane
//
//  2. [Engine.Logout] : Sign-out
//     - Clears the credential and cached identity
//     - Redirects to the login route
//
// [SessionEngine.BulkExport] additionally exports playlists to disk through
// a rate-limited worker pool, writing JSON, CSV, Markdown, or plain text
// plus a run manifest.
//
// # Progress Reporting
//
// # All operations use non-blocking channels for progress updates
//
// The [ProgressUpdate] struct contains phase, step counters, messages, and optional data for advanced UI rendering.
// Updates use select with default to prevent blocking.
//
// # Implementation
//
// [SessionEngine] implements [Engine] with dependencies on:
//   - [session.AuthState] and [session.IdentityCache] : the session core
//   - [session.Navigator] : redirect surface
//   - [services.Authenticator], [services.IdentityProvider], [services.PlaylistReader] : API clients
package tasks

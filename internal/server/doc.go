// Package server provides HTTP routing, middleware, and the server-rendered app shell.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method-qualified patterns.
//
// # App Shell
//
// [ShellHandler] renders the HTML shell for every app route. Each request
// builds a session core from the request cookies, runs the route guards in
// the server execution context, and renders accordingly:
//
//   - Protected routes always render; the guard short-circuits to allowed
//     outside the browser and the client re-checks after hydration.
//   - Browser-only routes (login, register) render a client-side placeholder.
//   - Unknown routes return 404.
//
// # Current Usage
//
// The serve command wires [ShellHandler] behind [RequestID] and
// [RequestLogger] middleware on a [BasicRouter].
package server

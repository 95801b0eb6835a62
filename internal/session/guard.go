package session

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/filmplane/filmplane/internal/shared"
)

// Decision is the outcome of a guard evaluation. RedirectTo, when set on a
// denial, names the route the pending navigation is sent to instead.
type Decision struct {
	Allowed    bool
	RedirectTo Route
}

// AuthGuard gates entry into the protected route group.
//
// Under [EnvServer] the guard short-circuits to allowed, deferring the real
// decision to the browser re-evaluation after hydration: blocking
// server-rendered output on browser-only storage would be pointless. Under
// [EnvBrowser] it waits for the first terminal authentication status and
// never decides on [StatusUnknown].
//
// The guard performs no I/O beyond reading the already-published signal; it
// cannot fail independently of the state machine.
type AuthGuard struct {
	exec   ExecutionContext
	source StatusSource
	logger *log.Logger
}

// NewAuthGuard creates a guard over the given status source.
func NewAuthGuard(exec ExecutionContext, source StatusSource, logger *log.Logger) *AuthGuard {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &AuthGuard{
		exec:   exec,
		source: source,
		logger: shared.WithLogger(logger, "component", "authguard", "env", exec.Env.String()),
	}
}

// Evaluate resolves the guard decision. The context bounds the wait for a
// terminal status; cancellation aborts the evaluation with the context error.
func (g *AuthGuard) Evaluate(ctx context.Context) (Decision, error) {
	if !g.exec.IsBrowser() {
		g.logger.Debug("server pass, bypassing guard")
		return Decision{Allowed: true}, nil
	}

	ch, cancel := g.source.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return Decision{}, ctx.Err()
		case status := <-ch:
			if !status.Terminal() {
				continue
			}
			g.logger.Debug("terminal status received", "status", status.String())
			if status == StatusAuthenticated {
				return Decision{Allowed: true}, nil
			}
			return Decision{Allowed: false, RedirectTo: RouteLogin}, nil
		}
	}
}

// BrowserGuard gates the login and register views, which depend on
// browser-only identity state. The server-rendered pass never resolves them,
// which also prevents a flash of the login page during server rendering.
type BrowserGuard struct {
	exec ExecutionContext
}

// NewBrowserGuard creates the guard for the given execution context.
func NewBrowserGuard(exec ExecutionContext) *BrowserGuard {
	return &BrowserGuard{exec: exec}
}

// Evaluate allows entry only under [EnvBrowser].
func (g *BrowserGuard) Evaluate() Decision {
	return Decision{Allowed: g.exec.IsBrowser()}
}

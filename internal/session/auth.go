package session

import (
	"github.com/charmbracelet/log"
	"github.com/filmplane/filmplane/internal/shared"
)

// Status is the published authentication state.
type Status int

const (
	// StatusUnknown is the pre-decision state. Consumers filter it out and
	// act only on the first terminal value.
	StatusUnknown Status = iota
	StatusNotAuthenticated
	StatusAuthenticated
)

func (s Status) String() string {
	switch s {
	case StatusAuthenticated:
		return "authenticated"
	case StatusNotAuthenticated:
		return "not-authenticated"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status is a decision value.
func (s Status) Terminal() bool {
	return s != StatusUnknown
}

// StatusSource publishes authentication status to subscribers, delivering the
// current value immediately on subscription.
type StatusSource interface {
	Status() Status
	Subscribe() (<-chan Status, func())
}

// AuthState derives and publishes the authentication status from the
// [TokenStore], and owns the mutation entry points that keep signal and
// storage consistent.
//
// Construction evaluates token presence synchronously exactly once, so the
// window between [StatusUnknown] and the first terminal value is minimal and
// deterministic. After that the machine re-enters either terminal state on
// every login/logout cycle; it never returns to [StatusUnknown].
type AuthState struct {
	store  *TokenStore
	signal *Signal[Status]
	logger *log.Logger
}

// NewAuthState creates the state machine and publishes the initial decision.
func NewAuthState(store *TokenStore, logger *log.Logger) *AuthState {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	a := &AuthState{
		store:  store,
		signal: NewSignal(StatusUnknown),
		logger: shared.WithLogger(logger, "component", "authstate"),
	}

	initial := StatusNotAuthenticated
	if store.Has() {
		initial = StatusAuthenticated
	}
	a.signal.Set(initial)
	a.logger.Debug("initial status evaluated", "status", initial.String())

	return a
}

// Status returns the current published status synchronously.
func (a *AuthState) Status() Status {
	return a.signal.Get()
}

// Subscribe returns a replay-last-value subscription to the status.
func (a *AuthState) Subscribe() (<-chan Status, func()) {
	return a.signal.Subscribe()
}

// Authenticated reports whether the current status is [StatusAuthenticated].
func (a *AuthState) Authenticated() bool {
	return a.Status() == StatusAuthenticated
}

// SetToken persists the credential and publishes [StatusAuthenticated] before
// returning control to the caller.
func (a *AuthState) SetToken(token string) {
	a.store.set(token)
	a.signal.Set(StatusAuthenticated)
	a.logger.Debug("status published", "status", StatusAuthenticated.String())
}

// ClearToken removes the credential and publishes [StatusNotAuthenticated].
// Idempotent: repeated calls re-publish the same terminal value with no
// intermediate [StatusUnknown].
func (a *AuthState) ClearToken() {
	a.store.clear()
	a.signal.Set(StatusNotAuthenticated)
	a.logger.Debug("status published", "status", StatusNotAuthenticated.String())
}

// Store returns the token store owned by this state machine.
func (a *AuthState) Store() *TokenStore {
	return a.store
}

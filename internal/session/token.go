package session

import (
	"github.com/charmbracelet/log"
	"github.com/filmplane/filmplane/internal/shared"
	"golang.org/x/oauth2"
)

// TokenStore is the exclusive owner of the opaque session credential.
//
// Under [EnvBrowser] the credential lives in durable [Storage]. Under
// [EnvServer] it is sourced read-only from the inbound request cookies and
// mutations are silent no-ops, since protected-route evaluation is deferred
// to the browser pass anyway.
//
// No other component holds a durable copy of the credential; collaborators
// request it on demand, typically through the [oauth2.TokenSource]
// implementation.
type TokenStore struct {
	exec    ExecutionContext
	storage Storage
	logger  *log.Logger
}

// NewTokenStore creates a token store for the given execution context.
func NewTokenStore(exec ExecutionContext, storage Storage, logger *log.Logger) *TokenStore {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &TokenStore{
		exec:    exec,
		storage: storage,
		logger:  shared.WithLogger(logger, "component", "tokenstore", "env", exec.Env.String()),
	}
}

// Get returns the current credential, or false if absent.
func (t *TokenStore) Get() (string, bool) {
	if !t.exec.IsBrowser() {
		token, ok := t.exec.RequestCookies[KeyAccessToken]
		return token, ok && token != ""
	}

	token, ok := t.storage.Get(KeyAccessToken)
	return token, ok && token != ""
}

// Has reports whether a credential is present.
func (t *TokenStore) Has() bool {
	_, ok := t.Get()
	return ok
}

// set persists the credential. Mutation entry points live on [AuthState] so
// the published signal always moves in the same call as storage.
func (t *TokenStore) set(token string) {
	if !t.exec.IsBrowser() {
		return
	}
	t.storage.Set(KeyAccessToken, token)
	t.logger.Debug("credential saved to storage")
}

// clear removes the persisted credential.
func (t *TokenStore) clear() {
	if !t.exec.IsBrowser() {
		return
	}
	t.storage.Remove(KeyAccessToken)
	t.logger.Debug("credential removed from storage")
}

// Token implements [oauth2.TokenSource]. An absent credential yields
// [shared.ErrNotAuthenticated], which aborts the outgoing request before it
// reaches the wire.
func (t *TokenStore) Token() (*oauth2.Token, error) {
	token, ok := t.Get()
	if !ok {
		return nil, shared.ErrNotAuthenticated
	}
	return &oauth2.Token{AccessToken: token, TokenType: "Bearer"}, nil
}

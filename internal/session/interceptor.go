package session

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/filmplane/filmplane/internal/shared"
)

// sessionExpiredMessage is shown when the remote service rejects the credential.
const sessionExpiredMessage = "Your session has expired. Please sign in again."

// Transport wraps every outgoing request/response pair.
//
// Each request is tagged with an X-Request-ID. On a response carrying an
// authentication-rejection status the transport clears the credential, forces
// navigation to the login view and emits a notification, then hands the
// original response back unchanged: the failure is augmented with side
// effects, never swallowed.
//
// Clearing the credential here (rather than only redirecting) means a guard
// evaluated after the rejection denies re-entry to the previous protected
// route instead of trusting a stale token.
type Transport struct {
	base     http.RoundTripper
	auth     *AuthState
	nav      Navigator
	notifier Notifier
	logger   *log.Logger
}

// NewTransport creates the interceptor over base, which defaults to
// [http.DefaultTransport]. auth, nav and notifier may each be nil, disabling
// the corresponding side effect.
func NewTransport(base http.RoundTripper, auth *AuthState, nav Navigator, notifier Notifier, logger *log.Logger) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Transport{
		base:     base,
		auth:     auth,
		nav:      nav,
		notifier: notifier,
		logger:   shared.WithLogger(logger, "component", "transport"),
	}
}

// RoundTrip implements [http.RoundTripper].
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	tagged := req.Clone(req.Context())
	tagged.Header.Set("X-Request-ID", shared.GenerateID())

	resp, err := t.base.RoundTrip(tagged)
	if err != nil {
		return resp, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		t.logger.Warn("credential rejected", "url", req.URL.Path)

		if t.auth != nil {
			t.auth.ClearToken()
		}
		if t.nav != nil {
			if navErr := t.nav.ToLogin(req.Context()); navErr != nil {
				t.logger.Warn("login redirect failed", "err", navErr)
			}
		}
		if t.notifier != nil {
			t.notifier.Notify(sessionExpiredMessage)
		}
	}

	return resp, nil
}

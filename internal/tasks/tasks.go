// package tasks implements the long-running client workflows.
//
// The core abstraction is SessionEngine, which orchestrates the sign-in
// pipeline, sign-out, and bulk playlist exports. Operations emit progress
// updates via channels for non-blocking status reporting to CLI/UI layers.
package tasks

import (
	"context"
	"fmt"

	"github.com/filmplane/filmplane/internal/models"
	"github.com/filmplane/filmplane/internal/services"
	"github.com/filmplane/filmplane/internal/session"
	"github.com/filmplane/filmplane/internal/shared"
)

// loginPipelineSteps is the number of phases in the sign-in pipeline.
const loginPipelineSteps = 6

// LoginResult contains all data from a completed sign-in pipeline.
type LoginResult struct {
	Token    *models.Token       // Credential returned by the login exchange
	Short    *models.UserShort   // Minimal identity carried by the credential
	Profile  *models.UserProfile // Full profile, source of the display name
	Identity session.Identity    // Identity committed to the cache
}

// Engine defines the session workflows exposed to the CLI and UI layers.
type Engine interface {
	// Login runs the sign-in pipeline: credential exchange, token commit,
	// identity resolution, profile fetch, identity commit, navigation.
	Login(ctx context.Context, progress chan<- ProgressUpdate, login, password string) (*LoginResult, error)

	// Logout clears the credential and cached identity, then redirects to the login route.
	Logout(ctx context.Context) error
}

// SessionEngine implements Engine over the session core and the API services.
type SessionEngine struct {
	auth      *session.AuthState
	identity  *session.IdentityCache
	nav       session.Navigator
	service   services.Authenticator
	users     services.IdentityProvider
	playlists services.PlaylistReader
}

// NewSessionEngine creates a new SessionEngine with the provided dependencies.
func NewSessionEngine(
	auth *session.AuthState,
	identity *session.IdentityCache,
	nav session.Navigator,
	service services.Authenticator,
	users services.IdentityProvider,
	playlists services.PlaylistReader,
) *SessionEngine {
	return &SessionEngine{
		auth:      auth,
		identity:  identity,
		nav:       nav,
		service:   service,
		users:     users,
		playlists: playlists,
	}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *SessionEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
		// Sent successfully
	default:
		// Channel full or closed, skip this update
	}
}

// Login runs the sign-in pipeline as a strict sequence. Each step waits for
// the previous one; the first failure stops the pipeline.
//
// The credential is committed as soon as the exchange succeeds. A failure in
// a later step leaves the stored credential and the Authenticated status in
// place: the next launch retries identity resolution against the same token.
func (e *SessionEngine) Login(ctx context.Context, progress chan<- ProgressUpdate, login, password string) (*LoginResult, error) {
	if e.service == nil || e.users == nil {
		return nil, fmt.Errorf("%w: session services not initialized", shared.ErrServiceUnavailable)
	}

	e.sendProgress(progress, authenticatingUpdate(login))
	token, err := e.service.Login(ctx, login, password)
	if err != nil {
		return nil, err
	}

	e.auth.SetToken(token.AccessToken)
	e.sendProgress(progress, tokenStoredUpdate())

	e.sendProgress(progress, fetchIdentityUpdate())
	short, err := e.users.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve current user: %w", err)
	}

	e.sendProgress(progress, fetchProfileUpdate(short.UserID))
	profile, err := e.users.ByID(ctx, short.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile for %s: %w", short.UserID, err)
	}

	e.identity.SetCurrentUser(short.UserID, profile.Username)
	identity := e.identity.Current()
	e.sendProgress(progress, persistIdentityUpdate(identity))

	if e.nav != nil {
		e.sendProgress(progress, navigateUpdate(session.RoutePlane))
		if err := e.nav.ToPlane(ctx); err != nil {
			return nil, fmt.Errorf("signed in but navigation failed: %w", err)
		}
	}

	return &LoginResult{
		Token:    token,
		Short:    short,
		Profile:  profile,
		Identity: identity,
	}, nil
}

// Logout drops the credential and cached identity, then redirects to the
// login route. Signing out while already signed out is not an error.
func (e *SessionEngine) Logout(ctx context.Context) error {
	e.auth.ClearToken()
	e.identity.ClearUser()

	if e.nav != nil {
		return e.nav.ToLogin(ctx)
	}
	return nil
}

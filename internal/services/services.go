package services

import (
	"context"

	"github.com/filmplane/filmplane/internal/models"
)

// Authenticator is the login surface consumed by the session engine.
type Authenticator interface {
	// Login exchanges credentials for an opaque token. No retry.
	Login(ctx context.Context, login, password string) (*models.Token, error)

	// Register creates a new account.
	Register(ctx context.Context, login, email, password string) error
}

// IdentityProvider resolves the current user's identity in two steps: the
// short identity carried by the credential, then the full profile by id.
type IdentityProvider interface {
	// Current returns the short identity of the credential's owner.
	Current(ctx context.Context) (*models.UserShort, error)

	// ByID returns the full profile, including the display name.
	ByID(ctx context.Context, userID string) (*models.UserProfile, error)
}

// PlaylistReader is the read surface consumed by bulk export.
type PlaylistReader interface {
	// List returns the authenticated user's playlists.
	List(ctx context.Context) ([]models.Playlist, error)

	// Content returns the films of a playlist.
	Content(ctx context.Context, playlistID string) ([]models.PlaylistContentItem, error)
}

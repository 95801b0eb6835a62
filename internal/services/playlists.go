package services

import (
	"context"
	"net/url"
	"strconv"

	"github.com/filmplane/filmplane/internal/models"
)

// PlaylistService covers manual and attribute-generated playlists.
type PlaylistService struct {
	client *Client
}

// NewPlaylistService creates the playlist service over the given client.
func NewPlaylistService(client *Client) *PlaylistService {
	return &PlaylistService{client: client}
}

// List returns the authenticated user's playlists.
func (s *PlaylistService) List(ctx context.Context) ([]models.Playlist, error) {
	var playlists []models.Playlist
	if err := s.client.post(ctx, "playlists/get", nil, struct{}{}, &playlists); err != nil {
		return nil, err
	}
	return playlists, nil
}

// ListForUser returns another user's visible playlists.
func (s *PlaylistService) ListForUser(ctx context.Context, userID string) ([]models.Playlist, error) {
	body := map[string]any{
		"target_user": map[string]string{"userid": userID},
	}

	var playlists []models.Playlist
	if err := s.client.post(ctx, "playlists/get", nil, body, &playlists); err != nil {
		return nil, err
	}
	return playlists, nil
}

// Content returns the films of a playlist.
func (s *PlaylistService) Content(ctx context.Context, playlistID string) ([]models.PlaylistContentItem, error) {
	body := map[string]string{"playlistid": playlistID}

	var items []models.PlaylistContentItem
	if err := s.client.post(ctx, "playlists/content", nil, body, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Create creates a manually curated playlist and returns its id.
func (s *PlaylistService) Create(ctx context.Context, name, description string, isPublic bool) (string, error) {
	return s.create(ctx, name, description, isPublic, nil)
}

// Generate creates an attribute-filtered playlist and returns its id.
func (s *PlaylistService) Generate(ctx context.Context, name, description string, isPublic bool, attrs *models.GenAttrs) (string, error) {
	return s.create(ctx, name, description, isPublic, attrs)
}

func (s *PlaylistService) create(ctx context.Context, name, description string, isPublic bool, attrs *models.GenAttrs) (string, error) {
	body := map[string]any{
		"name":        name,
		"description": description,
		"is_public":   isPublic,
		"gen_attrs":   attrs,
	}

	var playlistID string
	if err := s.client.post(ctx, "playlists/create", nil, body, &playlistID); err != nil {
		return "", err
	}
	return playlistID, nil
}

// Remove deletes a playlist.
func (s *PlaylistService) Remove(ctx context.Context, playlistID string) error {
	return s.client.delete(ctx, "playlists/remove", map[string]string{"playlistid": playlistID}, nil)
}

// AddFilm adds a film to a playlist.
func (s *PlaylistService) AddFilm(ctx context.Context, playlistID, filmID string) error {
	body := map[string]any{
		"filters":     map[string]string{"playlistid": playlistID},
		"target_film": map[string]string{"filmid": filmID},
	}
	return s.client.post(ctx, "playlists/add", nil, body, nil)
}

// RemoveFilm removes a film from a playlist.
func (s *PlaylistService) RemoveFilm(ctx context.Context, playlistID, filmID string) error {
	body := map[string]any{
		"filters":     map[string]string{"playlistid": playlistID},
		"target_film": map[string]string{"filmid": filmID},
	}
	return s.client.post(ctx, "playlists/remove-film", nil, body, nil)
}

// SetPublicity toggles playlist visibility.
func (s *PlaylistService) SetPublicity(ctx context.Context, playlistID string, public bool) error {
	query := url.Values{}
	query.Set("publicity", strconv.FormatBool(public))

	return s.client.post(ctx, "playlists/set-publicity", query, map[string]string{"playlistid": playlistID}, nil)
}

// SetName renames a playlist.
func (s *PlaylistService) SetName(ctx context.Context, playlistID, name string) error {
	query := url.Values{}
	query.Set("name", name)

	return s.client.post(ctx, "playlists/set-name", query, map[string]string{"playlistid": playlistID}, nil)
}

// SetDescription updates a playlist description.
func (s *PlaylistService) SetDescription(ctx context.Context, playlistID, description string) error {
	query := url.Values{}
	query.Set("description", description)

	return s.client.post(ctx, "playlists/set-description", query, map[string]string{"playlistid": playlistID}, nil)
}

// AddCollaborator grants a user edit access to a playlist.
func (s *PlaylistService) AddCollaborator(ctx context.Context, playlistID, userID string) error {
	body := map[string]any{
		"filters":      map[string]string{"playlistid": playlistID},
		"collaborator": map[string]string{"userid": userID},
	}
	return s.client.post(ctx, "playlists/add-collaborator", nil, body, nil)
}

// RemoveCollaborator revokes a user's edit access to a playlist.
func (s *PlaylistService) RemoveCollaborator(ctx context.Context, playlistID, userID string) error {
	body := map[string]any{
		"filters":      map[string]string{"playlistid": playlistID},
		"collaborator": map[string]string{"userid": userID},
	}
	return s.client.post(ctx, "playlists/remove-collaborator", nil, body, nil)
}

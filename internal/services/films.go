package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/filmplane/filmplane/internal/models"
	"github.com/filmplane/filmplane/internal/shared"
)

// FilmService covers watchlists, film cards, ratings and search.
type FilmService struct {
	client *Client
}

// NewFilmService creates the film service over the given client.
func NewFilmService(client *Client) *FilmService {
	return &FilmService{client: client}
}

// List returns the user's watchlist, filtered by watched state.
func (s *FilmService) List(ctx context.Context, watched bool) ([]models.Film, error) {
	query := url.Values{}
	query.Set("watched", strconv.FormatBool(watched))

	var films []models.Film
	if err := s.client.get(ctx, "films/list", query, &films); err != nil {
		return nil, err
	}
	return films, nil
}

// Details returns the full film card from the local catalog.
func (s *FilmService) Details(ctx context.Context, filmID string, isSeries bool) (*models.FilmDetails, error) {
	body := map[string]any{
		"filmid":    filmID,
		"is_series": isSeries,
	}

	var details models.FilmDetails
	if err := s.client.post(ctx, "films/local/get", nil, body, &details); err != nil {
		return nil, err
	}
	if details.FilmID == "" {
		return nil, fmt.Errorf("%w: %s", shared.ErrFilmNotFound, filmID)
	}
	return &details, nil
}

// AddToWatchlist fetches the film card and adds it to the unwatched list.
// The two steps are strictly sequential; a details failure aborts the add.
func (s *FilmService) AddToWatchlist(ctx context.Context, filmID string) error {
	details, err := s.Details(ctx, filmID, false)
	if err != nil {
		return err
	}
	return s.client.post(ctx, "films/unwatched", nil, details, nil)
}

// RemoveFromWatchlist deletes a film from the watchlist.
func (s *FilmService) RemoveFromWatchlist(ctx context.Context, filmID string) error {
	return s.client.delete(ctx, "films", map[string]string{"filmid": filmID}, nil)
}

// SetWatchStatus marks a film watched or unwatched.
func (s *FilmService) SetWatchStatus(ctx context.Context, filmID string, watched bool) error {
	query := url.Values{}
	query.Set("status", strconv.FormatBool(watched))

	return s.client.post(ctx, "films/watch-status", query, map[string]string{"filmid": filmID}, nil)
}

// Rate submits a six-axis personal rating for a film.
func (s *FilmService) Rate(ctx context.Context, filmID string, rating models.UserRating) error {
	body := map[string]any{
		"film":   map[string]string{"filmid": filmID},
		"rating": rating,
	}
	return s.client.post(ctx, "films/rate", nil, body, nil)
}

// SearchLocal searches the local catalog with attribute filters.
func (s *FilmService) SearchLocal(ctx context.Context, params map[string]any) ([]models.Film, error) {
	var films []models.Film
	if err := s.client.post(ctx, "films/search/local", nil, params, &films); err != nil {
		return nil, err
	}
	return films, nil
}

// SearchExternal searches the external catalog through the service proxy.
func (s *FilmService) SearchExternal(ctx context.Context, params map[string]any) ([]models.Film, error) {
	var films []models.Film
	if err := s.client.post(ctx, "films/search/external", nil, params, &films); err != nil {
		return nil, err
	}
	return films, nil
}

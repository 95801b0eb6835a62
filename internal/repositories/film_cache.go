package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/filmplane/filmplane/internal/models"
)

// FilmCacheRepository caches film previews locally so watchlists render
// without a round trip. Entries deduplicate on filmid; the full preview is
// kept as a JSON payload alongside the columns used for filtering.
type FilmCacheRepository struct {
	db *sql.DB
}

// NewFilmCacheRepository creates a repository over an open database.
func NewFilmCacheRepository(db *sql.DB) *FilmCacheRepository {
	return &FilmCacheRepository{db: db}
}

// Put inserts or refreshes a cached film preview.
func (r *FilmCacheRepository) Put(film models.Film, watched bool) error {
	payload, err := json.Marshal(film)
	if err != nil {
		return fmt.Errorf("failed to marshal film payload: %w", err)
	}

	query := `
		INSERT INTO film_cache (filmid, name, alternative_name, poster_link, release_year, is_series, watched, payload, cached_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(filmid) DO UPDATE SET
			name = excluded.name,
			alternative_name = excluded.alternative_name,
			poster_link = excluded.poster_link,
			release_year = excluded.release_year,
			is_series = excluded.is_series,
			watched = excluded.watched,
			payload = excluded.payload,
			cached_at = CURRENT_TIMESTAMP
	`

	_, err = r.db.Exec(query, film.FilmID, film.Name, film.AlternativeName,
		film.PosterLink, film.ReleaseYear, film.IsSeries, watched, string(payload))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return nil
		}
		return fmt.Errorf("failed to cache film: %w", err)
	}

	return nil
}

// PutAll caches a list of previews, stopping at the first failure.
func (r *FilmCacheRepository) PutAll(films []models.Film, watched bool) error {
	for _, film := range films {
		if err := r.Put(film, watched); err != nil {
			return err
		}
	}
	return nil
}

// Get returns a cached preview by filmid.
func (r *FilmCacheRepository) Get(filmID string) (*models.Film, error) {
	var payload string
	err := r.db.QueryRow("SELECT payload FROM film_cache WHERE filmid = ?", filmID).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("film not cached: %s", filmID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query film cache: %w", err)
	}

	var film models.Film
	if err := json.Unmarshal([]byte(payload), &film); err != nil {
		return nil, fmt.Errorf("failed to decode film payload: %w", err)
	}

	return &film, nil
}

// List returns cached previews filtered by watched state, newest first.
func (r *FilmCacheRepository) List(watched bool) ([]models.Film, error) {
	rows, err := r.db.Query("SELECT payload FROM film_cache WHERE watched = ? ORDER BY cached_at DESC", watched)
	if err != nil {
		return nil, fmt.Errorf("failed to query film cache: %w", err)
	}
	defer rows.Close()

	var films []models.Film
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan film cache row: %w", err)
		}

		var film models.Film
		if err := json.Unmarshal([]byte(payload), &film); err != nil {
			return nil, fmt.Errorf("failed to decode film payload: %w", err)
		}
		films = append(films, film)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return films, nil
}

// Clear drops every cached preview.
func (r *FilmCacheRepository) Clear() error {
	if _, err := r.db.Exec("DELETE FROM film_cache"); err != nil {
		return fmt.Errorf("failed to clear film cache: %w", err)
	}
	return nil
}

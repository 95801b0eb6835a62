package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/filmplane/filmplane/internal/models"
	"github.com/filmplane/filmplane/internal/shared"
	"github.com/urfave/cli/v3"
)

// FilmsList lists the watchlist, either side of the watched divide.
func (r *Runner) FilmsList(ctx context.Context, cmd *cli.Command) error {
	watched := cmd.Bool("watched")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	var films []models.Film
	var err error

	if cmd.Bool("cached") {
		if r.filmCache == nil {
			return fmt.Errorf("%w: session database not initialized, run 'filmplane setup database'", shared.ErrServiceUnavailable)
		}
		films, err = r.filmCache.List(watched)
	} else {
		films, err = r.films.List(ctx, watched)
		if err == nil && r.filmCache != nil {
			if cacheErr := r.filmCache.PutAll(films, watched); cacheErr != nil {
				r.logger.Warn("failed to refresh film cache", "err", cacheErr)
			}
		}
	}
	if err != nil {
		return err
	}

	if useJSON {
		return r.writeJSON(films, pretty)
	}

	title := "Plane"
	if watched {
		title = "Watched"
	}
	r.writePlainHeader(fmt.Sprintf("%s (%d films)", title, len(films)))

	for i, film := range films {
		r.writePlain("%d. %s", i+1, film.Name)
		if film.ReleaseYear > 0 {
			r.writePlain(" (%d)", film.ReleaseYear)
		}
		if film.IsSeries {
			r.writePlain(" [series]")
		}
		r.writePlain("\n")
		if len(film.Countries) > 0 {
			r.writePlain("   %s\n", strings.Join(film.Countries, ", "))
		}
	}

	return nil
}

// FilmsShow prints the full film card.
func (r *Runner) FilmsShow(ctx context.Context, cmd *cli.Command) error {
	filmID := cmd.StringArg("id")
	if filmID == "" {
		return fmt.Errorf("%w: film id", shared.ErrMissingArgument)
	}

	details, err := r.films.Details(ctx, filmID, cmd.Bool("series"))
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(details, cmd.Bool("pretty"))
	}

	r.writePlainHeader(details.Name)
	if details.AlternativeName != "" {
		r.writePlain("Also known as: %s\n", details.AlternativeName)
	}
	r.writePlain("Year: %d\n", details.ReleaseYear)
	if details.Director != "" {
		r.writePlain("Director: %s\n", details.Director)
	}
	if len(details.Genres) > 0 {
		r.writePlain("Genres: %s\n", strings.Join(details.Genres, ", "))
	}
	r.writePlain("Runtime: %s\n", shared.FormatRuntime(details.TimeMinutes))
	if details.Ratings.KP > 0 {
		r.writePlain("KP rating: %.1f\n", details.Ratings.KP)
	}
	if details.Ratings.IMDB > 0 {
		r.writePlain("IMDB rating: %.1f\n", details.Ratings.IMDB)
	}
	if details.Description != "" {
		r.writePlainln("%s", details.Description)
	}
	if details.IsWatched {
		r.writePlain("✓ Watched\n")
	}

	return nil
}

// FilmsAdd adds a film to the watchlist.
func (r *Runner) FilmsAdd(ctx context.Context, cmd *cli.Command) error {
	filmID := cmd.StringArg("id")
	if filmID == "" {
		return fmt.Errorf("%w: film id", shared.ErrMissingArgument)
	}

	if err := r.films.AddToWatchlist(ctx, filmID); err != nil {
		return err
	}
	r.writePlain("✓ Added %s to the plane\n", filmID)
	return nil
}

// FilmsRemove removes a film from the watchlist.
func (r *Runner) FilmsRemove(ctx context.Context, cmd *cli.Command) error {
	filmID := cmd.StringArg("id")
	if filmID == "" {
		return fmt.Errorf("%w: film id", shared.ErrMissingArgument)
	}

	if err := r.films.RemoveFromWatchlist(ctx, filmID); err != nil {
		return err
	}
	r.writePlain("✓ Removed %s\n", filmID)
	return nil
}

// FilmsSetWatched moves a film across the watched divide.
func (r *Runner) FilmsSetWatched(ctx context.Context, cmd *cli.Command, watched bool) error {
	filmID := cmd.StringArg("id")
	if filmID == "" {
		return fmt.Errorf("%w: film id", shared.ErrMissingArgument)
	}

	if err := r.films.SetWatchStatus(ctx, filmID, watched); err != nil {
		return err
	}
	if watched {
		r.writePlain("✓ Marked %s as watched\n", filmID)
	} else {
		r.writePlain("✓ Moved %s back to the plane\n", filmID)
	}
	return nil
}

// FilmsRate submits the six-axis personal rating for a film.
func (r *Runner) FilmsRate(ctx context.Context, cmd *cli.Command) error {
	filmID := cmd.StringArg("id")
	if filmID == "" {
		return fmt.Errorf("%w: film id", shared.ErrMissingArgument)
	}

	rating := models.UserRating{
		Storyline:   int(cmd.Int("storyline")),
		Music:       int(cmd.Int("music")),
		Montage:     int(cmd.Int("montage")),
		ActingGame:  int(cmd.Int("acting")),
		Atmosphere:  int(cmd.Int("atmosphere")),
		Originality: int(cmd.Int("originality")),
	}

	for _, axis := range []int{rating.Storyline, rating.Music, rating.Montage, rating.ActingGame, rating.Atmosphere, rating.Originality} {
		if axis < 0 || axis > 10 {
			return fmt.Errorf("%w: ratings range from 0 to 10", shared.ErrInvalidFlag)
		}
	}

	if err := r.films.Rate(ctx, filmID, rating); err != nil {
		return err
	}
	r.writePlain("✓ Rated %s\n", filmID)
	return nil
}

// FilmsSearch searches films locally or against the external catalog.
func (r *Runner) FilmsSearch(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	if query == "" {
		return fmt.Errorf("%w: query", shared.ErrMissingArgument)
	}

	params := map[string]any{"name": query}

	var films []models.Film
	var err error
	if cmd.Bool("external") {
		films, err = r.films.SearchExternal(ctx, params)
	} else {
		films, err = r.films.SearchLocal(ctx, params)
	}
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(films, cmd.Bool("pretty"))
	}

	if len(films) == 0 {
		r.writePlain("No films found for '%s'\n", query)
		return nil
	}

	for i, film := range films {
		r.writePlain("%d. %s", i+1, film.Name)
		if film.ReleaseYear > 0 {
			r.writePlain(" (%d)", film.ReleaseYear)
		}
		r.writePlain(" [%s]\n", film.FilmID)
	}

	return nil
}

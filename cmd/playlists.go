package main

import (
	"context"
	"fmt"

	"github.com/filmplane/filmplane/internal/models"
	"github.com/filmplane/filmplane/internal/shared"
	"github.com/urfave/cli/v3"
)

// PlaylistsList lists the signed-in user's playlists, or another user's with --user.
func (r *Runner) PlaylistsList(ctx context.Context, cmd *cli.Command) error {
	var playlists []models.Playlist
	var err error

	if userID := cmd.String("user"); userID != "" {
		playlists, err = r.playlists.ListForUser(ctx, userID)
	} else {
		playlists, err = r.playlists.List(ctx)
	}
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(playlists, cmd.Bool("pretty"))
	}

	if len(playlists) == 0 {
		r.writePlain("No playlists\n")
		return nil
	}

	for i, pl := range playlists {
		kind := "manual"
		if pl.GenAttrs != nil {
			kind = "generated"
		}
		r.writePlain("%d. %s (%d films, %s, %s) [%s]\n",
			i+1, pl.Name, pl.AdditionsCount, kind,
			shared.VisibilityString(pl.IsPublic), pl.PlaylistID)
		if pl.Description != "" {
			r.writePlain("   %s\n", pl.Description)
		}
	}

	return nil
}

// PlaylistsContent prints the films inside a playlist.
func (r *Runner) PlaylistsContent(ctx context.Context, cmd *cli.Command) error {
	playlistID := cmd.StringArg("id")
	if playlistID == "" {
		return fmt.Errorf("%w: playlist id", shared.ErrMissingArgument)
	}

	items, err := r.playlists.Content(ctx, playlistID)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(items, cmd.Bool("pretty"))
	}

	r.writePlain("Films: %d\n\n", len(items))
	for i, item := range items {
		r.writePlain("%d. %s", i+1, item.Preview.Name)
		if item.Preview.ReleaseYear > 0 {
			r.writePlain(" (%d)", item.Preview.ReleaseYear)
		}
		if item.Preview.IsWatched {
			r.writePlain(" ✓")
		}
		r.writePlain("\n")
	}

	return nil
}

// PlaylistsCreate creates a manually curated playlist.
func (r *Runner) PlaylistsCreate(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	if name == "" {
		return fmt.Errorf("%w: name", shared.ErrMissingArgument)
	}

	playlistID, err := r.playlists.Create(ctx, name, cmd.String("description"), cmd.Bool("public"))
	if err != nil {
		return err
	}

	r.writePlain("✓ Playlist created: %s (ID: %s)\n", name, playlistID)
	return nil
}

// PlaylistsGenerate creates an attribute-filtered playlist.
func (r *Runner) PlaylistsGenerate(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	if name == "" {
		return fmt.Errorf("%w: name", shared.ErrMissingArgument)
	}

	attrs := &models.GenAttrs{
		Genres:    cmd.StringSlice("genre"),
		Countries: cmd.StringSlice("country"),
		Person:    cmd.String("person"),
	}
	if cmd.IsSet("year-min") || cmd.IsSet("year-max") {
		lower := float64(cmd.Int("year-min"))
		upper := float64(cmd.Int("year-max"))
		if upper == 0 {
			upper = 9999
		}
		attrs.Year = &models.RangeNumber{Lower: lower, Upper: upper}
	}
	if cmd.IsSet("unwatched") {
		watched := !cmd.Bool("unwatched")
		attrs.IsWatched = &watched
	}

	playlistID, err := r.playlists.Generate(ctx, name, cmd.String("description"), cmd.Bool("public"), attrs)
	if err != nil {
		return err
	}

	r.writePlain("✓ Generated playlist: %s (ID: %s)\n", name, playlistID)
	return nil
}

// PlaylistsRemove deletes a playlist.
func (r *Runner) PlaylistsRemove(ctx context.Context, cmd *cli.Command) error {
	playlistID := cmd.StringArg("id")
	if playlistID == "" {
		return fmt.Errorf("%w: playlist id", shared.ErrMissingArgument)
	}

	if err := r.playlists.Remove(ctx, playlistID); err != nil {
		return err
	}
	r.writePlain("✓ Playlist removed\n")
	return nil
}

// PlaylistsAddFilm adds a film to a playlist.
func (r *Runner) PlaylistsAddFilm(ctx context.Context, cmd *cli.Command) error {
	playlistID := cmd.StringArg("playlist")
	filmID := cmd.StringArg("film")
	if playlistID == "" || filmID == "" {
		return fmt.Errorf("%w: playlist and film ids", shared.ErrMissingArgument)
	}

	if err := r.playlists.AddFilm(ctx, playlistID, filmID); err != nil {
		return err
	}
	r.writePlain("✓ Added %s to playlist %s\n", filmID, playlistID)
	return nil
}

// PlaylistsRemoveFilm removes a film from a playlist.
func (r *Runner) PlaylistsRemoveFilm(ctx context.Context, cmd *cli.Command) error {
	playlistID := cmd.StringArg("playlist")
	filmID := cmd.StringArg("film")
	if playlistID == "" || filmID == "" {
		return fmt.Errorf("%w: playlist and film ids", shared.ErrMissingArgument)
	}

	if err := r.playlists.RemoveFilm(ctx, playlistID, filmID); err != nil {
		return err
	}
	r.writePlain("✓ Removed %s from playlist %s\n", filmID, playlistID)
	return nil
}

// PlaylistsSetPublicity toggles playlist visibility.
func (r *Runner) PlaylistsSetPublicity(ctx context.Context, cmd *cli.Command) error {
	playlistID := cmd.StringArg("id")
	if playlistID == "" {
		return fmt.Errorf("%w: playlist id", shared.ErrMissingArgument)
	}

	public := cmd.Bool("public")
	if err := r.playlists.SetPublicity(ctx, playlistID, public); err != nil {
		return err
	}
	r.writePlain("✓ Playlist is now %s\n", shared.VisibilityString(public))
	return nil
}

// submodule cmd contains command definitions
package main

import (
	"context"

	"github.com/urfave/cli/v3"
)

// authCommand handles session operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Sign in, sign out, and inspect the session",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Sign in and resolve the account identity",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "login"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Account password",
						Required: true,
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:   "logout",
				Usage:  "Drop the stored credential and cached identity",
				Action: r.AuthLogout,
			},
			{
				Name:  "register",
				Usage: "Create a new account",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "login"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Account password",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "email",
						Usage: "Account email",
					},
				},
				Action: r.AuthRegister,
			},
			{
				Name:  "whoami",
				Usage: "Print the cached identity",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "remote",
						Usage: "Verify the credential against the API",
					},
				},
				Action: r.AuthWhoAmI,
			},
			{
				Name:   "status",
				Usage:  "Print the authentication state",
				Action: r.AuthStatus,
			},
		},
	}
}

// filmsCommand handles watchlist operations
func filmsCommand(r *Runner) *cli.Command {
	jsonFlags := []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print output",
		},
	}

	return &cli.Command{
		Name:    "films",
		Aliases: []string{"f"},
		Usage:   "Watchlist operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List the plane or the watched pile",
				Flags: append([]cli.Flag{
					&cli.BoolFlag{
						Name:    "watched",
						Aliases: []string{"w"},
						Usage:   "List watched films instead of the plane",
					},
					&cli.BoolFlag{
						Name:  "cached",
						Usage: "Read from the local cache instead of the API",
					},
				}, jsonFlags...),
				Action: r.FilmsList,
			},
			{
				Name:  "show",
				Usage: "Print a full film card",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: append([]cli.Flag{
					&cli.BoolFlag{
						Name:  "series",
						Usage: "Treat the id as a series",
					},
				}, jsonFlags...),
				Action: r.FilmsShow,
			},
			{
				Name:  "add",
				Usage: "Add a film to the plane",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.FilmsAdd,
			},
			{
				Name:  "remove",
				Usage: "Remove a film from the watchlist",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.FilmsRemove,
			},
			{
				Name:  "watch",
				Usage: "Mark a film as watched",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return r.FilmsSetWatched(ctx, cmd, true)
				},
			},
			{
				Name:  "unwatch",
				Usage: "Move a film back to the plane",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return r.FilmsSetWatched(ctx, cmd, false)
				},
			},
			{
				Name:  "rate",
				Usage: "Rate a watched film on six axes",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "storyline", Usage: "Storyline rating (0-10)"},
					&cli.IntFlag{Name: "music", Usage: "Music rating (0-10)"},
					&cli.IntFlag{Name: "montage", Usage: "Montage rating (0-10)"},
					&cli.IntFlag{Name: "acting", Usage: "Acting rating (0-10)"},
					&cli.IntFlag{Name: "atmosphere", Usage: "Atmosphere rating (0-10)"},
					&cli.IntFlag{Name: "originality", Usage: "Originality rating (0-10)"},
				},
				Action: r.FilmsRate,
			},
			{
				Name:  "search",
				Usage: "Search films by name",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "query"},
				},
				Flags: append([]cli.Flag{
					&cli.BoolFlag{
						Name:  "external",
						Usage: "Search the external catalog",
					},
				}, jsonFlags...),
				Action: r.FilmsSearch,
			},
		},
	}
}

// playlistsCommand handles playlist operations
func playlistsCommand(r *Runner) *cli.Command {
	jsonFlags := []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print output",
		},
	}

	return &cli.Command{
		Name:    "playlists",
		Aliases: []string{"pl"},
		Usage:   "Playlist operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List playlists",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:  "user",
						Usage: "List another user's visible playlists",
					},
				}, jsonFlags...),
				Action: r.PlaylistsList,
			},
			{
				Name:  "content",
				Usage: "List the films in a playlist",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags:  jsonFlags,
				Action: r.PlaylistsContent,
			},
			{
				Name:  "create",
				Usage: "Create a manually curated playlist",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "name"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "description",
						Aliases: []string{"d"},
						Usage:   "Playlist description",
					},
					&cli.BoolFlag{
						Name:  "public",
						Usage: "Make the playlist public",
					},
				},
				Action: r.PlaylistsCreate,
			},
			{
				Name:  "generate",
				Usage: "Create an attribute-filtered playlist",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "name"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "description",
						Aliases: []string{"d"},
						Usage:   "Playlist description",
					},
					&cli.BoolFlag{
						Name:  "public",
						Usage: "Make the playlist public",
					},
					&cli.StringSliceFlag{
						Name:  "genre",
						Usage: "Filter by genre (repeatable)",
					},
					&cli.StringSliceFlag{
						Name:  "country",
						Usage: "Filter by country (repeatable)",
					},
					&cli.StringFlag{
						Name:  "person",
						Usage: "Filter by cast or crew member",
					},
					&cli.IntFlag{
						Name:  "year-min",
						Usage: "Earliest release year",
					},
					&cli.IntFlag{
						Name:  "year-max",
						Usage: "Latest release year",
					},
					&cli.BoolFlag{
						Name:  "unwatched",
						Usage: "Only include unwatched films",
					},
				},
				Action: r.PlaylistsGenerate,
			},
			{
				Name:  "remove",
				Usage: "Delete a playlist",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.PlaylistsRemove,
			},
			{
				Name:  "add-film",
				Usage: "Add a film to a playlist",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "playlist"},
					&cli.StringArg{Name: "film"},
				},
				Action: r.PlaylistsAddFilm,
			},
			{
				Name:  "remove-film",
				Usage: "Remove a film from a playlist",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "playlist"},
					&cli.StringArg{Name: "film"},
				},
				Action: r.PlaylistsRemoveFilm,
			},
			{
				Name:  "set-publicity",
				Usage: "Toggle playlist visibility",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "public",
						Usage: "Make the playlist public",
					},
				},
				Action: r.PlaylistsSetPublicity,
			},
		},
	}
}

// usersCommand handles social operations
func usersCommand(r *Runner) *cli.Command {
	jsonFlags := []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print output",
		},
	}

	return &cli.Command{
		Name:  "users",
		Usage: "Profiles and subscriptions",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Print a user profile",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags:  jsonFlags,
				Action: r.UsersShow,
			},
			{
				Name:  "subscribers",
				Usage: "List a user's subscribers (defaults to the signed-in user)",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags:  jsonFlags,
				Action: r.UsersSubscribers,
			},
			{
				Name:  "subscriptions",
				Usage: "List who a user subscribes to (defaults to the signed-in user)",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags:  jsonFlags,
				Action: r.UsersSubscriptions,
			},
			{
				Name:  "subscribe",
				Usage: "Subscribe to a user",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.UsersSubscribe,
			},
			{
				Name:  "unsubscribe",
				Usage: "Remove a subscription",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.UsersUnsubscribe,
			},
			{
				Name:  "search",
				Usage: "Search users by username",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "query"},
				},
				Flags:  jsonFlags,
				Action: r.UsersSearch,
			},
		},
	}
}

// exportCommand handles bulk playlist exports
func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export playlists to disk",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "id",
				Usage: "Playlist id to export (repeatable; defaults to all)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Export format: json, csv, markdown, txt",
				Value:   "json",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output directory",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "Concurrent export workers",
				Value: 5,
			},
			&cli.FloatFlag{
				Name:  "rate",
				Usage: "API requests per second",
				Value: 5.0,
			},
		},
		Action: r.ExportRun,
	}
}

// setupCommand handles setup operations for the session database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Initialize the session database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
			{
				Name:   "rollback",
				Usage:  "Roll back the latest migration",
				Action: r.SetupRollback,
			},
		},
	}
}

// serveCommand runs the shell-rendering HTTP server
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the server-rendered app shell",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "open",
				Usage: "Open the shell in the default browser",
			},
		},
		Action: r.Serve,
	}
}

// tuiCommand launches the interactive terminal UI
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"ui"},
		Usage:   "Browse the plane and playlists interactively",
		Action:  r.TUI,
	}
}

package main

import (
	"context"
	"errors"
	"os"

	"github.com/filmplane/filmplane/internal/repositories"
	"github.com/filmplane/filmplane/internal/session"
	"github.com/filmplane/filmplane/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	var storage session.Storage
	var filmCache *repositories.FilmCacheRepository

	// The session database is optional until setup has run; the session
	// core falls back to in-memory storage without it.
	if _, err := os.Stat(config.Database.Path); err == nil {
		if db, err := shared.NewDatabase(config.Database.Path); err == nil {
			shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)
			storage = repositories.NewSessionRepository(db, logger)
			filmCache = repositories.NewFilmCacheRepository(db)
		} else {
			logger.Warn("failed to open session database", "path", config.Database.Path, "err", err)
		}
	}

	runner := NewRunner(RunnerOpts{
		Config:    config,
		Logger:    logger,
		Storage:   storage,
		FilmCache: filmCache,
	})

	app := &cli.Command{
		Name:     "filmplane",
		Usage:    "Track films and playlists from the terminal",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}

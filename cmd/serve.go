package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/filmplane/filmplane/internal/server"
	"github.com/filmplane/filmplane/internal/shared"
	"github.com/urfave/cli/v3"
)

// Serve runs the shell-rendering HTTP server until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	shell, err := server.NewShellHandler(r.logger)
	if err != nil {
		return fmt.Errorf("failed to create shell handler: %w", err)
	}

	router := server.NewBasicRouter()
	router.Use(server.RequestID(), server.RequestLogger(r.logger))
	router.Handler(shell)

	addr := fmt.Sprintf("%s:%d", r.config.Server.Host, r.config.Server.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	serverErrors := make(chan error, 1)
	go func() {
		r.logger.Info("starting shell server", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	r.writePlain("→ Serving the app shell at http://%s\n", addr)

	if cmd.Bool("open") {
		if err := shared.OpenBrowser(fmt.Sprintf("http://%s", addr)); err != nil {
			r.logger.Warn("failed to open browser", "error", err)
		}
	}

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		r.logger.Warn("error shutting down server", "error", err)
	}

	return nil
}

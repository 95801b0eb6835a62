package main

import (
	"context"
	"fmt"

	"github.com/filmplane/filmplane/internal/shared"
	"github.com/filmplane/filmplane/internal/tasks"
	"github.com/urfave/cli/v3"
)

// AuthLogin runs the sign-in pipeline and reports each phase as it completes.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	login := cmd.StringArg("login")
	password := cmd.String("password")

	if login == "" {
		return fmt.Errorf("%w: login", shared.ErrMissingArgument)
	}
	if password == "" {
		return fmt.Errorf("%w: --password", shared.ErrMissingArgument)
	}

	progress := make(chan tasks.ProgressUpdate, 50)
	done := make(chan struct{})
	go func() {
		for update := range progress {
			r.writePlain("→ %s\n", update.Message)
		}
		close(done)
	}()

	result, err := r.engine.Login(ctx, progress, login, password)
	close(progress)
	<-done

	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	r.logger.Info("signed in", "userid", result.Identity.ID)
	r.writePlain("✓ Signed in as %s (%s)\n", result.Identity.DisplayName, result.Identity.ID)
	return nil
}

// AuthLogout clears the stored credential and cached identity.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	if err := r.engine.Logout(ctx); err != nil {
		return err
	}
	r.writePlain("✓ Signed out\n")
	return nil
}

// AuthRegister creates a new account.
func (r *Runner) AuthRegister(ctx context.Context, cmd *cli.Command) error {
	login := cmd.StringArg("login")
	email := cmd.String("email")
	password := cmd.String("password")

	if login == "" {
		return fmt.Errorf("%w: login", shared.ErrMissingArgument)
	}
	if password == "" {
		return fmt.Errorf("%w: --password", shared.ErrMissingArgument)
	}

	if err := r.authSvc.Register(ctx, login, email, password); err != nil {
		return err
	}

	r.writePlain("✓ Account created. Run 'filmplane auth login %s' to sign in.\n", login)
	return nil
}

// AuthWhoAmI prints the cached identity, optionally re-verified against the API.
func (r *Runner) AuthWhoAmI(ctx context.Context, cmd *cli.Command) error {
	identity := r.identity.Current()
	if identity.Empty() {
		r.writePlain("Not signed in\n")
		return nil
	}

	r.writePlain("User: %s\n", identity.DisplayName)
	r.writePlain("ID:   %s\n", identity.ID)

	if cmd.Bool("remote") {
		short, err := r.users.Current(ctx)
		if err != nil {
			return fmt.Errorf("credential check failed: %w", err)
		}
		if short.UserID != identity.ID {
			r.writePlain("⚠ Credential belongs to %s, not the cached user\n", short.UserID)
			return nil
		}
		r.writePlain("✓ Credential verified\n")
	}

	return nil
}

// AuthStatus prints the authentication state machine's current value.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	status := r.auth.Status()
	r.writePlain("Status: %s\n", status)
	if r.auth.Authenticated() {
		if identity := r.identity.Current(); !identity.Empty() {
			r.writePlain("User:   %s\n", identity.DisplayName)
		}
	}
	return nil
}

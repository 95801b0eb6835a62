package main

import (
	"context"
	"fmt"

	"github.com/filmplane/filmplane/internal/models"
	"github.com/filmplane/filmplane/internal/shared"
	"github.com/urfave/cli/v3"
)

// UsersShow prints another user's profile.
func (r *Runner) UsersShow(ctx context.Context, cmd *cli.Command) error {
	userID := cmd.StringArg("id")
	if userID == "" {
		return fmt.Errorf("%w: user id", shared.ErrMissingArgument)
	}

	profile, err := r.users.ByID(ctx, userID)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(profile, cmd.Bool("pretty"))
	}

	r.writePlainHeader(profile.Username)
	r.writePlain("ID: %s\n", profile.UserID)
	if profile.Bio != "" {
		r.writePlain("Bio: %s\n", profile.Bio)
	}
	if profile.Location != "" {
		r.writePlain("Location: %s\n", profile.Location)
	}
	return nil
}

// UsersSubscribers lists a user's subscribers.
func (r *Runner) UsersSubscribers(ctx context.Context, cmd *cli.Command) error {
	return r.printSubscriberList(ctx, cmd, "Subscribers", r.users.Subscribers)
}

// UsersSubscriptions lists who a user subscribes to.
func (r *Runner) UsersSubscriptions(ctx context.Context, cmd *cli.Command) error {
	return r.printSubscriberList(ctx, cmd, "Subscriptions", r.users.Subscriptions)
}

func (r *Runner) printSubscriberList(
	ctx context.Context,
	cmd *cli.Command,
	title string,
	fetch func(context.Context, string) ([]models.Subscriber, error),
) error {
	userID := cmd.StringArg("id")
	if userID == "" {
		userID = r.identity.Current().ID
	}
	if userID == "" {
		return fmt.Errorf("%w: user id (not signed in)", shared.ErrMissingArgument)
	}

	subs, err := fetch(ctx, userID)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(subs, cmd.Bool("pretty"))
	}

	r.writePlain("%s: %d\n\n", title, len(subs))
	for i, sub := range subs {
		r.writePlain("%d. %s (%d subscribers) [%s]\n", i+1, sub.Username, sub.SubscribersCount, sub.UserID)
	}
	return nil
}

// UsersSubscribe subscribes the signed-in user to another user.
func (r *Runner) UsersSubscribe(ctx context.Context, cmd *cli.Command) error {
	userID := cmd.StringArg("id")
	if userID == "" {
		return fmt.Errorf("%w: user id", shared.ErrMissingArgument)
	}

	if err := r.users.Subscribe(ctx, userID); err != nil {
		return err
	}
	r.writePlain("✓ Subscribed to %s\n", userID)
	return nil
}

// UsersUnsubscribe removes a subscription.
func (r *Runner) UsersUnsubscribe(ctx context.Context, cmd *cli.Command) error {
	userID := cmd.StringArg("id")
	if userID == "" {
		return fmt.Errorf("%w: user id", shared.ErrMissingArgument)
	}

	if err := r.users.Unsubscribe(ctx, userID); err != nil {
		return err
	}
	r.writePlain("✓ Unsubscribed from %s\n", userID)
	return nil
}

// UsersSearch searches users by username.
func (r *Runner) UsersSearch(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	if query == "" {
		return fmt.Errorf("%w: query", shared.ErrMissingArgument)
	}

	users, err := r.users.Search(ctx, query)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(users, cmd.Bool("pretty"))
	}

	if len(users) == 0 {
		r.writePlain("No users found for '%s'\n", query)
		return nil
	}

	for i, user := range users {
		r.writePlain("%d. %s (%d subscribers) [%s]\n", i+1, user.Username, user.SubscribersCount, user.UserID)
	}
	return nil
}

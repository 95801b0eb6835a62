package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/filmplane/filmplane/internal/shared"
)

// Route is a navigable view path.
type Route string

// Static routes.
const (
	RouteLogin     Route = "/login"
	RouteRegister  Route = "/register"
	RoutePlane     Route = "/plane"
	RoutePlaylists Route = "/playlists"
	RouteViews     Route = "/views"
	RouteSearch    Route = "/search"
)

// FilmRoute returns the detail route for a film.
func FilmRoute(filmID string) Route {
	return Route("/film/" + filmID)
}

// PlaylistRoute returns the detail route for a playlist.
func PlaylistRoute(playlistID string) Route {
	return Route("/playlist/" + playlistID)
}

// ProfileRoute returns the profile route for a user.
func ProfileRoute(userID string) Route {
	return Route("/profile/" + userID)
}

// SubscribersRoute returns the subscribers list route for a user.
func SubscribersRoute(userID string) Route {
	return Route("/profile/" + userID + "/subscribers")
}

// SubscriptionsRoute returns the subscriptions list route for a user.
func SubscriptionsRoute(userID string) Route {
	return Route("/profile/" + userID + "/subscriptions")
}

// Protected reports whether the route belongs to the guarded group.
func (r Route) Protected() bool {
	switch r {
	case RoutePlane, RoutePlaylists, RouteViews, RouteSearch:
		return true
	}
	for _, prefix := range []string{"/film/", "/playlist/", "/profile/"} {
		if strings.HasPrefix(string(r), prefix) && len(r) > len(prefix) {
			return true
		}
	}
	return false
}

// BrowserOnly reports whether the route only resolves under [EnvBrowser].
func (r Route) BrowserOnly() bool {
	return r == RouteLogin || r == RouteRegister
}

// Navigator is the redirect surface the session core consumes. The full
// [Router] offers the rest of the route table.
type Navigator interface {
	ToLogin(ctx context.Context) error
	ToPlane(ctx context.Context) error
}

// Router activates routes after running the guard that gates them, and
// publishes the active route on a replay-last-value [Signal] for views.
type Router struct {
	auth    *AuthGuard
	browser *BrowserGuard
	current *Signal[Route]
	logger  *log.Logger
}

// NewRouter creates a router over the two guards. No route is active until
// the first successful Navigate.
func NewRouter(auth *AuthGuard, browser *BrowserGuard, logger *log.Logger) *Router {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Router{
		auth:    auth,
		browser: browser,
		current: NewSignal(Route("")),
		logger:  shared.WithLogger(logger, "component", "router"),
	}
}

// Current returns the active route, or "" before the first navigation.
func (r *Router) Current() Route {
	return r.current.Get()
}

// Subscribe returns a replay-last-value subscription to the active route.
func (r *Router) Subscribe() (<-chan Route, func()) {
	return r.current.Subscribe()
}

// Navigate runs the guard gating the route and activates it on success.
//
// The empty and root routes resolve to [RoutePlane]. A denied protected route
// redirects the pending navigation to [RouteLogin] and returns
// [shared.ErrRouteDenied]; a denied browser-only route returns the error
// without a redirect.
func (r *Router) Navigate(ctx context.Context, route Route) error {
	if route == "" || route == "/" {
		route = RoutePlane
	}

	switch {
	case route.BrowserOnly():
		decision := r.browser.Evaluate()
		if !decision.Allowed {
			return fmt.Errorf("%w: %s", shared.ErrRouteDenied, route)
		}

	case route.Protected():
		decision, err := r.auth.Evaluate(ctx)
		if err != nil {
			return fmt.Errorf("guard evaluation aborted: %w", err)
		}
		if !decision.Allowed {
			r.logger.Info("protected route denied", "route", route, "redirect", decision.RedirectTo)
			if decision.RedirectTo != "" {
				if err := r.Navigate(ctx, decision.RedirectTo); err != nil {
					r.logger.Warn("redirect failed", "route", decision.RedirectTo, "err", err)
				}
			}
			return fmt.Errorf("%w: %s", shared.ErrRouteDenied, route)
		}

	default:
		return fmt.Errorf("%w: %s", shared.ErrUnknownRoute, route)
	}

	r.current.Set(route)
	r.logger.Debug("route activated", "route", route)
	return nil
}

// ToLogin implements [Navigator].
func (r *Router) ToLogin(ctx context.Context) error {
	return r.Navigate(ctx, RouteLogin)
}

// ToPlane implements [Navigator].
func (r *Router) ToPlane(ctx context.Context) error {
	return r.Navigate(ctx, RoutePlane)
}

// ToFilm navigates to a film detail view.
func (r *Router) ToFilm(ctx context.Context, filmID string) error {
	return r.Navigate(ctx, FilmRoute(filmID))
}

// ToPlaylist navigates to a playlist detail view.
func (r *Router) ToPlaylist(ctx context.Context, playlistID string) error {
	return r.Navigate(ctx, PlaylistRoute(playlistID))
}

// ToProfile navigates to a user profile view.
func (r *Router) ToProfile(ctx context.Context, userID string) error {
	return r.Navigate(ctx, ProfileRoute(userID))
}

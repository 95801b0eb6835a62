package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/filmplane/filmplane/internal/repositories"
	"github.com/filmplane/filmplane/internal/services"
	"github.com/filmplane/filmplane/internal/session"
	"github.com/filmplane/filmplane/internal/shared"
	"github.com/filmplane/filmplane/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
//
// The session core is wired once at construction: the token store and
// identity cache sit over the configured storage, the transport observes
// every API response, and the engine drives the sign-in pipeline.
type Runner struct {
	config    *shared.Config
	logger    *log.Logger
	output    io.Writer
	exec      session.ExecutionContext
	store     *session.TokenStore
	auth      *session.AuthState
	identity  *session.IdentityCache
	notifier  *session.FeedNotifier
	router    *session.Router
	engine    *tasks.SessionEngine
	authSvc   *services.AuthService
	users     *services.UserService
	films     *services.FilmService
	playlists *services.PlaylistService
	filmCache *repositories.FilmCacheRepository
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config        *shared.Config
	Logger        *log.Logger
	Output        io.Writer
	Storage       session.Storage    // Durable session storage (defaults to in-memory)
	FilmCache     *repositories.FilmCacheRepository
	BaseTransport http.RoundTripper // Wire transport under the session transport
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Storage == nil {
		opts.Storage = session.NewMemoryStorage()
	}
	if opts.BaseTransport == nil {
		opts.BaseTransport = http.DefaultTransport
	}

	exec := session.BrowserContext()
	store := session.NewTokenStore(exec, opts.Storage, opts.Logger)
	auth := session.NewAuthState(store, opts.Logger)
	identity := session.NewIdentityCache(opts.Storage, opts.Logger)
	notifier := session.NewFeedNotifier()
	router := session.NewRouter(
		session.NewAuthGuard(exec, auth, opts.Logger),
		session.NewBrowserGuard(exec),
		opts.Logger,
	)
	transport := session.NewTransport(opts.BaseTransport, auth, router, notifier, opts.Logger)

	apiClient := services.NewClient(opts.Config.API.BaseURL, session.AuthorizedClient(store, transport))
	plainClient := services.NewClient(opts.Config.API.BaseURL, session.PlainClient(transport))

	authSvc := services.NewAuthService(plainClient)
	users := services.NewUserService(apiClient)
	films := services.NewFilmService(apiClient)
	playlists := services.NewPlaylistService(apiClient)
	engine := tasks.NewSessionEngine(auth, identity, router, authSvc, users, playlists)

	return &Runner{
		config:    opts.Config,
		logger:    opts.Logger,
		output:    opts.Output,
		exec:      exec,
		store:     store,
		auth:      auth,
		identity:  identity,
		notifier:  notifier,
		router:    router,
		engine:    engine,
		authSvc:   authSvc,
		users:     users,
		films:     films,
		playlists: playlists,
		filmCache: opts.FilmCache,
	}
}

// SetLogger replaces the runner's logger.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, filmsCommand, playlistsCommand, usersCommand, exportCommand, serveCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}

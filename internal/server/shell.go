package server

import (
	_ "embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/filmplane/filmplane/internal/session"
	"github.com/filmplane/filmplane/internal/shared"
)

//go:embed templates/shell.html
var shellTemplate string

// ShellHandler server-renders the application shell for every app route.
//
// Each request gets its own session core built from the request cookies, so
// the render reflects the caller's credential without any cross-request
// state. Protected routes render unconditionally here: the route guard
// short-circuits to allowed outside the browser and the client re-runs the
// real check after hydration. Browser-only routes render a client-side
// placeholder instead.
type ShellHandler struct {
	logger *log.Logger
	tmpl   *template.Template
}

// shellData is the template payload for a single shell render.
type shellData struct {
	Route         session.Route
	Authenticated bool
	DisplayName   string
	ClientOnly    bool
}

// NewShellHandler creates the shell handler, parsing the embedded template.
func NewShellHandler(logger *log.Logger) (*ShellHandler, error) {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	tmpl, err := template.New("shell").Parse(shellTemplate)
	if err != nil {
		return nil, err
	}

	return &ShellHandler{
		logger: shared.WithLogger(logger, "component", "shell"),
		tmpl:   tmpl,
	}, nil
}

// Routes returns the HTTP routes this handler serves.
func (h *ShellHandler) Routes() []string {
	return []string{"/"}
}

// ServeHTTP renders the shell for the requested route.
func (h *ShellHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cookies := make(map[string]string, len(r.Cookies()))
	for _, c := range r.Cookies() {
		cookies[c.Name] = c.Value
	}

	exec := session.ServerContext(cookies)
	store := session.NewTokenStore(exec, session.NewMemoryStorage(), h.logger)
	auth := session.NewAuthState(store, h.logger)
	router := session.NewRouter(
		session.NewAuthGuard(exec, auth, h.logger),
		session.NewBrowserGuard(exec),
		h.logger,
	)

	data := shellData{
		Authenticated: auth.Authenticated(),
		DisplayName:   cookies[session.KeyCurrentUserName],
	}

	err := router.Navigate(r.Context(), session.Route(r.URL.Path))
	switch {
	case errors.Is(err, shared.ErrUnknownRoute):
		http.NotFound(w, r)
		return
	case errors.Is(err, shared.ErrRouteDenied):
		// Browser-only route: ship the shell and let the client render it.
		data.Route = session.Route(r.URL.Path)
		data.ClientOnly = true
	case err != nil:
		h.logger.Error("shell render failed", "path", r.URL.Path, "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	default:
		data.Route = router.Current()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(w, data); err != nil {
		h.logger.Error("failed to execute shell template", "err", err)
	}
}

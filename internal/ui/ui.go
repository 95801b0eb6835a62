package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/filmplane/filmplane/internal/models"
	"github.com/filmplane/filmplane/internal/services"
	"github.com/filmplane/filmplane/internal/session"
	"github.com/filmplane/filmplane/internal/tasks"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	LoginView ViewState = iota
	SigningInView
	PlaneView
	PlaylistListView
	PlaylistContentView
)

// FilmLister is the film read surface the plane view consumes.
type FilmLister interface {
	List(ctx context.Context, watched bool) ([]models.Film, error)
}

// Model represents the TUI application state.
type Model struct {
	ctx       context.Context
	view      ViewState
	engine    *tasks.SessionEngine
	films     FilmLister
	playlists services.PlaylistReader
	auth      *session.AuthState
	identity  *session.IdentityCache
	notifier  *session.FeedNotifier

	width  int
	height int

	loginInput    textinput.Model
	passwordInput textinput.Model
	focusIndex    int

	progressChan chan tasks.ProgressUpdate
	progress     tasks.ProgressUpdate
	loginResult  *tasks.LoginResult
	loginErr     error

	filmList        list.Model
	watched         bool
	playlistList    list.Model
	contentList     list.Model
	currentPlaylist models.Playlist

	who  session.Identity
	note session.Notification

	notifyCh     <-chan session.Notification
	notifyCancel func()
	whoCh        <-chan session.Identity
	whoCancel    func()

	err  error
	help help.Model
	keys keyMap
}

// NewModel creates a new TUI model with the provided dependencies.
//
// The model subscribes to the identity cache and the notification feed; call
// [Model.Close] when the program exits to release the subscriptions.
func NewModel(
	ctx context.Context,
	engine *tasks.SessionEngine,
	films FilmLister,
	playlists services.PlaylistReader,
	auth *session.AuthState,
	identity *session.IdentityCache,
	notifier *session.FeedNotifier,
) *Model {
	login := textinput.New()
	login.Placeholder = "login"
	login.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword

	notifyCh, notifyCancel := notifier.Subscribe()
	whoCh, whoCancel := identity.Subscribe()

	return &Model{
		ctx:           ctx,
		view:          LoginView,
		engine:        engine,
		films:         films,
		playlists:     playlists,
		auth:          auth,
		identity:      identity,
		notifier:      notifier,
		loginInput:    login,
		passwordInput: password,
		who:           identity.Current(),
		notifyCh:      notifyCh,
		notifyCancel:  notifyCancel,
		whoCh:         whoCh,
		whoCancel:     whoCancel,
		help:          help.New(),
		keys:          newKeyMap(),
	}
}

// Close releases the model's signal subscriptions.
func (m *Model) Close() {
	if m.notifyCancel != nil {
		m.notifyCancel()
	}
	if m.whoCancel != nil {
		m.whoCancel()
	}
}

// Init starts on the plane when a stored credential is present, otherwise on
// the login form.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.waitForNotification(), m.waitForIdentity(), textinput.Blink}
	if m.auth.Authenticated() {
		m.view = PlaneView
		cmds = append(cmds, m.fetchFilms(false))
	}
	return tea.Batch(cmds...)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for _, l := range []*list.Model{&m.filmList, &m.playlistList, &m.contentList} {
			if l.Width() == 0 {
				l.SetSize(msg.Width-4, msg.Height-8)
			}
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case LoginView:
			return m.handleLoginKeys(msg)
		case SigningInView:
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			return m, nil
		case PlaneView:
			return m.handlePlaneKeys(msg)
		case PlaylistListView:
			return m.handlePlaylistListKeys(msg)
		case PlaylistContentView:
			return m.handleContentKeys(msg)
		}

	case progressUpdateMsg:
		m.progress = tasks.ProgressUpdate(msg)
		return m, m.waitForLoginProgress()

	case loginCompleteMsg:
		m.progressChan = nil
		if msg.err != nil {
			m.err = msg.err
			m.view = LoginView
			m.passwordInput.SetValue("")
			return m, nil
		}
		m.err = nil
		m.view = PlaneView
		return m, m.fetchFilms(false)

	case filmsFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.watched = msg.watched
		items := make([]list.Item, len(msg.films))
		for i, film := range msg.films {
			items[i] = filmItem{film: film}
		}
		m.filmList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.filmList.Title = "Plane"
		if msg.watched {
			m.filmList.Title = "Watched"
		}
		m.filmList.SetSize(m.width-4, m.height-8)
		return m, nil

	case playlistsFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.view = PlaneView
			return m, nil
		}
		m.err = nil
		items := make([]list.Item, len(msg.playlists))
		for i, pl := range msg.playlists {
			items[i] = playlistItem{playlist: pl}
		}
		m.playlistList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.playlistList.Title = "Playlists"
		m.playlistList.SetSize(m.width-4, m.height-8)
		m.view = PlaylistListView
		return m, nil

	case contentFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.view = PlaylistListView
			return m, nil
		}
		m.err = nil
		m.currentPlaylist = msg.playlist
		items := make([]list.Item, len(msg.items))
		for i, item := range msg.items {
			items[i] = contentItem{item: item}
		}
		m.contentList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.contentList.Title = fmt.Sprintf("Films in '%s'", msg.playlist.Name)
		m.contentList.SetSize(m.width-4, m.height-8)
		m.view = PlaylistContentView
		return m, nil

	case signedOutMsg:
		m.err = msg.err
		m.view = LoginView
		m.focusIndex = 0
		m.passwordInput.SetValue("")
		m.passwordInput.Blur()
		return m, m.loginInput.Focus()

	case notificationMsg:
		m.note = session.Notification(msg)
		// A session-expired notification means the credential is gone.
		if !m.auth.Authenticated() && m.view != LoginView && m.view != SigningInView {
			m.view = LoginView
			m.passwordInput.SetValue("")
		}
		return m, m.waitForNotification()

	case identityChangedMsg:
		m.who = session.Identity(msg)
		return m, m.waitForIdentity()
	}

	return m.updateActive(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case LoginView:
		return m.renderLogin()
	case SigningInView:
		return m.renderSigningIn()
	case PlaneView:
		return m.renderFilms()
	case PlaylistListView:
		return m.renderPlaylists()
	case PlaylistContentView:
		return m.renderContent()
	default:
		return ""
	}
}

func (m *Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab", "shift+tab":
		m.focusIndex = (m.focusIndex + 1) % 2
		if m.focusIndex == 0 {
			m.passwordInput.Blur()
			return m, m.loginInput.Focus()
		}
		m.loginInput.Blur()
		return m, m.passwordInput.Focus()
	case "enter":
		if m.focusIndex == 0 {
			m.focusIndex = 1
			m.loginInput.Blur()
			return m, m.passwordInput.Focus()
		}
		if m.loginInput.Value() == "" || m.passwordInput.Value() == "" {
			m.err = fmt.Errorf("login and password are required")
			return m, nil
		}
		return m, m.startLogin()
	}

	var cmd tea.Cmd
	if m.focusIndex == 0 {
		m.loginInput, cmd = m.loginInput.Update(msg)
	} else {
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) handlePlaneKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.watched):
		return m, m.fetchFilms(!m.watched)
	case key.Matches(msg, m.keys.playlists):
		return m, m.fetchPlaylists()
	case key.Matches(msg, m.keys.signOut):
		return m, m.signOut()
	}

	var cmd tea.Cmd
	m.filmList, cmd = m.filmList.Update(msg)
	return m, cmd
}

func (m *Model) handlePlaylistListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.view = PlaneView
		return m, nil
	case key.Matches(msg, m.keys.signOut):
		return m, m.signOut()
	case key.Matches(msg, m.keys.enter):
		selected := m.playlistList.SelectedItem()
		if selected != nil {
			if pl, ok := selected.(playlistItem); ok {
				return m, m.fetchContent(pl.playlist)
			}
		}
	}

	var cmd tea.Cmd
	m.playlistList, cmd = m.playlistList.Update(msg)
	return m, cmd
}

func (m *Model) handleContentKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.view = PlaylistListView
		return m, nil
	}

	var cmd tea.Cmd
	m.contentList, cmd = m.contentList.Update(msg)
	return m, cmd
}

func (m *Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case LoginView:
		if m.focusIndex == 0 {
			m.loginInput, cmd = m.loginInput.Update(msg)
		} else {
			m.passwordInput, cmd = m.passwordInput.Update(msg)
		}
	case PlaneView:
		m.filmList, cmd = m.filmList.Update(msg)
	case PlaylistListView:
		m.playlistList, cmd = m.playlistList.Update(msg)
	case PlaylistContentView:
		m.contentList, cmd = m.contentList.Update(msg)
	}
	return m, cmd
}

func (m *Model) startLogin() tea.Cmd {
	m.err = nil
	m.view = SigningInView
	m.progress = tasks.ProgressUpdate{}
	m.progressChan = make(chan tasks.ProgressUpdate, 50)

	login := m.loginInput.Value()
	password := m.passwordInput.Value()

	go func() {
		result, err := m.engine.Login(m.ctx, m.progressChan, login, password)
		m.loginResult = result
		m.loginErr = err
		close(m.progressChan)
	}()

	return m.waitForLoginProgress()
}

func (m *Model) waitForLoginProgress() tea.Cmd {
	return func() tea.Msg {
		if m.progressChan == nil {
			return loginCompleteMsg{result: m.loginResult, err: m.loginErr}
		}

		update, ok := <-m.progressChan
		if !ok {
			return loginCompleteMsg{result: m.loginResult, err: m.loginErr}
		}
		return progressUpdateMsg(update)
	}
}

func (m *Model) signOut() tea.Cmd {
	return func() tea.Msg {
		return signedOutMsg{err: m.engine.Logout(m.ctx)}
	}
}

func (m *Model) fetchFilms(watched bool) tea.Cmd {
	return func() tea.Msg {
		films, err := m.films.List(m.ctx, watched)
		return filmsFetchedMsg{films: films, watched: watched, err: err}
	}
}

func (m *Model) fetchPlaylists() tea.Cmd {
	return func() tea.Msg {
		playlists, err := m.playlists.List(m.ctx)
		return playlistsFetchedMsg{playlists: playlists, err: err}
	}
}

func (m *Model) fetchContent(pl models.Playlist) tea.Cmd {
	return func() tea.Msg {
		items, err := m.playlists.Content(m.ctx, pl.PlaylistID)
		return contentFetchedMsg{playlist: pl, items: items, err: err}
	}
}

func (m *Model) waitForNotification() tea.Cmd {
	return func() tea.Msg {
		note, ok := <-m.notifyCh
		if !ok {
			return nil
		}
		return notificationMsg(note)
	}
}

func (m *Model) waitForIdentity() tea.Cmd {
	return func() tea.Msg {
		who, ok := <-m.whoCh
		if !ok {
			return nil
		}
		return identityChangedMsg(who)
	}
}

func (m *Model) renderHeader() string {
	name := "signed out"
	if !m.who.Empty() {
		name = m.who.DisplayName
	}
	header := styles.title.Render(fmt.Sprintf("filmplane · %s", name))
	if m.note.Message != "" {
		header += "\n" + styles.warn.Render(m.note.Message)
	}
	return header
}

func (m *Model) renderLogin() string {
	header := m.renderHeader()

	var errLine string
	if m.err != nil {
		errLine = styles.err.Render(fmt.Sprintf("%v", m.err)) + "\n\n"
	}

	form := fmt.Sprintf("%s\n%s\n", m.loginInput.View(), m.passwordInput.View())

	helpKeys := []key.Binding{m.keys.next, m.keys.enter, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n\n%s%s\n%s", header, errLine, form, helpView)
}

func (m *Model) renderSigningIn() string {
	title := styles.title.Render("Signing in")

	var phase string
	switch m.progress.Phase {
	case tasks.Authenticate:
		phase = "Checking credentials..."
	case tasks.StoreToken:
		phase = "Storing credential..."
	case tasks.FetchIdentity, tasks.FetchProfile:
		phase = "Resolving identity..."
	case tasks.PersistIdentity, tasks.Navigate:
		phase = "Almost there..."
	default:
		phase = "Working..."
	}

	return fmt.Sprintf("%s\n\n%s\n%s", title, phase, m.progress.Message)
}

func (m *Model) renderFilms() string {
	var errLine string
	if m.err != nil {
		errLine = "\n" + styles.err.Render(fmt.Sprintf("%v", m.err))
	}

	helpKeys := []key.Binding{m.keys.watched, m.keys.playlists, m.keys.signOut, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n%s%s\n\n%s", m.renderHeader(), m.filmList.View(), errLine, helpView)
}

func (m *Model) renderPlaylists() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n%s\n\n%s", m.renderHeader(), m.playlistList.View(), helpView)
}

func (m *Model) renderContent() string {
	helpKeys := []key.Binding{m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n%s\n\n%s", m.renderHeader(), m.contentList.View(), helpView)
}

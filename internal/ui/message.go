package ui

import (
	"github.com/filmplane/filmplane/internal/models"
	"github.com/filmplane/filmplane/internal/session"
	"github.com/filmplane/filmplane/internal/tasks"
)

// loginCompleteMsg reports the outcome of the sign-in pipeline.
type loginCompleteMsg struct {
	result *tasks.LoginResult
	err    error
}

// filmsFetchedMsg carries a fetched film list.
type filmsFetchedMsg struct {
	films   []models.Film
	watched bool
	err     error
}

// playlistsFetchedMsg carries the fetched playlist list.
type playlistsFetchedMsg struct {
	playlists []models.Playlist
	err       error
}

// contentFetchedMsg carries fetched playlist content.
type contentFetchedMsg struct {
	playlist models.Playlist
	items    []models.PlaylistContentItem
	err      error
}

// signedOutMsg reports a completed sign-out.
type signedOutMsg struct {
	err error
}

// progressUpdateMsg streams sign-in pipeline progress.
type progressUpdateMsg tasks.ProgressUpdate

// notificationMsg carries a session notification into the view.
type notificationMsg session.Notification

// identityChangedMsg carries an identity cache update into the header.
type identityChangedMsg session.Identity

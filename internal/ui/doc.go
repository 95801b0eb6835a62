// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow over the film library:
//  1. [LoginView] : Credential form feeding the sign-in pipeline
//  2. [SigningInView] : Live pipeline progress
//  3. [PlaneView] : The watchlist, toggling between unwatched and watched
//  4. [PlaylistListView] : Browse the user's playlists
//  5. [PlaylistContentView] : Films inside a playlist
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Sign-in progress flows through a channel from the SessionEngine; identity and
// notification updates arrive over session signal subscriptions, so the header
// reflects the cached identity and a 401 anywhere drops the model back onto the
// login form.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, w/p/o, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui

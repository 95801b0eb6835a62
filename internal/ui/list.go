package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/filmplane/filmplane/internal/models"
)

var (
	_ list.Item = filmItem{}
	_ list.Item = playlistItem{}
	_ list.Item = contentItem{}
)

// filmItem wraps [models.Film] to implement [list.Item].
type filmItem struct {
	film models.Film
}

func (i filmItem) FilterValue() string { return i.film.Name }
func (i filmItem) Title() string {
	if i.film.ReleaseYear > 0 {
		return fmt.Sprintf("%s (%d)", i.film.Name, i.film.ReleaseYear)
	}
	return i.film.Name
}
func (i filmItem) Description() string {
	var parts []string
	if i.film.AlternativeName != "" {
		parts = append(parts, i.film.AlternativeName)
	}
	if len(i.film.Countries) > 0 {
		parts = append(parts, strings.Join(i.film.Countries, ", "))
	}
	if i.film.IsSeries {
		parts = append(parts, "series")
	}
	return strings.Join(parts, " • ")
}

// playlistItem wraps [models.Playlist] to implement [list.Item].
type playlistItem struct {
	playlist models.Playlist
}

func (i playlistItem) FilterValue() string { return i.playlist.Name }
func (i playlistItem) Title() string       { return i.playlist.Name }
func (i playlistItem) Description() string {
	desc := fmt.Sprintf("%d films", i.playlist.AdditionsCount)
	if i.playlist.GenAttrs != nil {
		desc += " • generated"
	}
	if i.playlist.Description != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.playlist.Description)
	}
	return desc
}

// contentItem wraps [models.PlaylistContentItem] to implement [list.Item].
type contentItem struct {
	item models.PlaylistContentItem
}

func (i contentItem) FilterValue() string { return i.item.Preview.Name }
func (i contentItem) Title() string {
	if i.item.Preview.ReleaseYear > 0 {
		return fmt.Sprintf("%s (%d)", i.item.Preview.Name, i.item.Preview.ReleaseYear)
	}
	return i.item.Preview.Name
}
func (i contentItem) Description() string {
	desc := i.item.Preview.Director
	if i.item.Preview.IsWatched {
		if desc != "" {
			desc += " • "
		}
		desc += "watched"
	}
	return desc
}

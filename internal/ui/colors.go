package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var styles = NewPalette("#5A56E0", "#2ECC71", "#E74C3C", "#F39C12", "#6C6C6C")

// struct Palette is the stylesheet for the terminal views, one named
// [lipgloss.Style] per role
type Palette struct {
	title lipgloss.Style
	ok    lipgloss.Style
	err   lipgloss.Style
	warn  lipgloss.Style
	help  lipgloss.Style
}

func NewPalette(title, ok, err, warn, help string) *Palette {
	return &Palette{
		title: NewBold(title).MarginBottom(1),
		ok:    NewBold(ok),
		err:   NewBold(err),
		warn:  NewStyle(warn),
		help:  NewEm(help),
	}
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}

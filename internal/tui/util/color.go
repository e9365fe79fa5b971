package util

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// NoColor returns true if color output should be disabled.
func NoColor(explicit bool) bool {
	if explicit {
		return true
	}
	return os.Getenv("NO_COLOR") != ""
}

// Palette defines the colors used by the feed list.
type Palette struct {
	Selected lipgloss.AdaptiveColor
	Loading  lipgloss.AdaptiveColor
	Danger   lipgloss.AdaptiveColor
	Rating   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
}

func DefaultPalette() Palette {
	return Palette{
		Selected: lipgloss.AdaptiveColor{Light: "205", Dark: "213"},
		Loading:  lipgloss.AdaptiveColor{Light: "214", Dark: "221"},
		Danger:   lipgloss.AdaptiveColor{Light: "160", Dark: "203"},
		Rating:   lipgloss.AdaptiveColor{Light: "28", Dark: "114"},
		Muted:    lipgloss.AdaptiveColor{Light: "243", Dark: "245"},
	}
}

// Styles are the rendered forms of a palette.
type Styles struct {
	Title    lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Loading  lipgloss.Style
	Error    lipgloss.Style
	Rating   lipgloss.Style
	Faint    lipgloss.Style
	Status   lipgloss.Style
	Help     lipgloss.Style
}

// NewStyles builds styles from p. With noColor only attributes survive.
func NewStyles(p Palette, noColor bool) Styles {
	s := Styles{
		Title:    lipgloss.NewStyle().Bold(true),
		Item:     lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().Bold(true),
		Loading:  lipgloss.NewStyle(),
		Error:    lipgloss.NewStyle().Bold(true),
		Rating:   lipgloss.NewStyle(),
		Faint:    lipgloss.NewStyle().Faint(true),
		Status:   lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
	if noColor {
		return s
	}
	s.Selected = s.Selected.Foreground(p.Selected)
	s.Loading = s.Loading.Foreground(p.Loading)
	s.Error = s.Error.Foreground(p.Danger)
	s.Rating = s.Rating.Foreground(p.Rating)
	s.Status = s.Status.Foreground(p.Muted)
	s.Help = s.Help.BorderForeground(p.Muted)
	return s
}

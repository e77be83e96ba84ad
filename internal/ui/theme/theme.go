// Package theme holds the terminal styles shared by the trainer's output.
package theme

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/spellz/internal/mastery"
)

var (
	indigo = lipgloss.Color("#6366F1")
	cyan   = lipgloss.Color("#06B6D4")
	amber  = lipgloss.Color("#F59E0B")
	green  = lipgloss.Color("#10B981")
	red    = lipgloss.Color("#EF4444")
	paper  = lipgloss.Color("#F1F5F9")
	muted  = lipgloss.Color("#8391A7")
	track  = lipgloss.Color("#3F4A5C")
)

var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(indigo)
	Subtitle = lipgloss.NewStyle().Foreground(muted)
	Body     = lipgloss.NewStyle().Foreground(paper)
	Hint     = lipgloss.NewStyle().Italic(true).Foreground(muted)
	Prompt   = lipgloss.NewStyle().Bold(true).Foreground(cyan)

	Correct   = lipgloss.NewStyle().Bold(true).Foreground(green)
	Incorrect = lipgloss.NewStyle().Bold(true).Foreground(red)
	Warning   = lipgloss.NewStyle().Foreground(amber)
	Info      = lipgloss.NewStyle().Foreground(cyan)

	MenuKey     = lipgloss.NewStyle().Bold(true).Foreground(indigo)
	TableHeader = lipgloss.NewStyle().Bold(true).Foreground(muted)
	GaugeFill   = lipgloss.NewStyle().Foreground(cyan)
	GaugeTrack  = lipgloss.NewStyle().Foreground(track)
)

// CategoryStyle colours a category label: mastered green, struggling red.
func CategoryStyle(c mastery.Category) lipgloss.Style {
	switch c {
	case mastery.CategoryMastered:
		return Correct
	case mastery.CategoryStruggling:
		return Incorrect
	}
	return Body
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StyleConfig holds the colors for the screen.
type StyleConfig struct {
	Title    lipgloss.TerminalColor
	Accent   lipgloss.TerminalColor
	Text     lipgloss.TerminalColor
	Muted    lipgloss.TerminalColor
	Quantity lipgloss.TerminalColor
	Border   lipgloss.TerminalColor
	Selected lipgloss.TerminalColor
}

// DefaultStyles returns the classic palette.
func DefaultStyles() *StyleConfig {
	return &StyleConfig{
		Title:    lipgloss.Color("12"),
		Accent:   lipgloss.Color("12"),
		Text:     lipgloss.Color("252"),
		Muted:    lipgloss.Color("244"),
		Quantity: lipgloss.Color("214"),
		Border:   lipgloss.Color("8"),
		Selected: lipgloss.Color("42"),
	}
}

// ThemeStyles returns the palette for a theme name; unknown names get the
// classic palette.
func ThemeStyles(name string) *StyleConfig {
	switch strings.ToLower(name) {
	case "neon":
		return &StyleConfig{
			Title:    lipgloss.Color("#FF5FD7"),
			Accent:   lipgloss.Color("#5FFFFF"),
			Text:     lipgloss.Color("#E8EAED"),
			Muted:    lipgloss.Color("#9AA0A6"),
			Quantity: lipgloss.Color("#FBBC04"),
			Border:   lipgloss.Color("#A142F4"),
			Selected: lipgloss.Color("#34A853"),
		}
	case "mono":
		none := lipgloss.NoColor{}
		return &StyleConfig{
			Title: none, Accent: none, Text: none, Muted: none,
			Quantity: none, Border: none, Selected: none,
		}
	default:
		return DefaultStyles()
	}
}

func (s *StyleConfig) TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(s.Title)
}

func (s *StyleConfig) MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Faint(true).Foreground(s.Muted)
}

func (s *StyleConfig) NameStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.Text)
}

func (s *StyleConfig) SelectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(s.Selected)
}

func (s *StyleConfig) QuantityStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.Quantity)
}

// InputStyle frames the search box.
func (s *StyleConfig) InputStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Accent).
		Padding(0, 1)
}

// PanelStyle frames the whole screen.
func (s *StyleConfig) PanelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Border).
		Padding(0, 1)
}

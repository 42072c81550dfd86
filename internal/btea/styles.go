// ABOUTME: Lipgloss style set built from a theme palette
// ABOUTME: One Styles value per renderer; models receive it at construction

package btea

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/popup-go/internal/theme"
)

// Styles holds the pre-built lipgloss styles for one dialog renderer.
type Styles struct {
	Frame       lipgloss.Style
	Title       lipgloss.Style
	Body        lipgloss.Style
	Placeholder lipgloss.Style

	ButtonDefault lipgloss.Style
	ButtonCancel  lipgloss.Style
	ButtonNormal  lipgloss.Style
	ButtonFocus   lipgloss.Style

	Field       lipgloss.Style
	FieldCursor lipgloss.Style

	SelectMatch  lipgloss.Style
	SelectChoice lipgloss.Style

	Backdrop lipgloss.Color
}

// buildStyles derives the style set from a palette.
func buildStyles(p theme.Palette) Styles {
	button := func(color string) lipgloss.Style {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(color)).
			Padding(0, 1)
	}

	return Styles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Border)).
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Title)).
			Bold(true),
		Body: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Body)),
		Placeholder: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Placeholder)).
			Italic(true),

		ButtonDefault: button(p.ButtonDefault).Bold(true),
		ButtonCancel:  button(p.ButtonCancel),
		ButtonNormal:  button(p.ButtonNormal),
		ButtonFocus: button(p.ButtonFocus).
			Reverse(true),

		Field: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.FieldText)),
		FieldCursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.FieldCursor)).
			Blink(true),

		SelectMatch: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.SelectMatch)).
			Bold(true),
		SelectChoice: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.SelectChoice)),

		Backdrop: lipgloss.Color(p.Backdrop),
	}
}

package theme

import (
	"github.com/charmbracelet/lipgloss"
)

type Styles struct {
	// cli
	Success   lipgloss.Style
	Error     lipgloss.Style
	Info      lipgloss.Style
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Separator lipgloss.Style

	// tui
	TUITitle     lipgloss.Style
	TUISubtitle  lipgloss.Style
	TUIHelp      lipgloss.Style
	InputBox     lipgloss.Style
	InputError   lipgloss.Style
	EmptyMessage lipgloss.Style

	// items
	PendingItem  lipgloss.Style
	DoneItem     lipgloss.Style
	SelectedItem lipgloss.Style
	Checkbox     lipgloss.Style
	DoneCheckbox lipgloss.Style
}

// creates all styles based on the given theme
func NewStyles(t *Theme) *Styles {
	return &Styles{
		// cli
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Error)).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Secondary)).
			PaddingTop(1).
			PaddingBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SubtitleText)).
			Italic(true),

		Separator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Separator)),

		// tui
		TUITitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.HeaderFg)).
			Background(lipgloss.Color(t.HeaderBg)).
			Padding(0, 1),

		TUISubtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextSecondary)),

		TUIHelp: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.HelpText)),

		InputBox: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderColor)).
			Padding(0, 1),

		InputError: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Error)),

		EmptyMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextMuted)).
			Italic(true).
			PaddingLeft(2),

		// items
		PendingItem: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextPrimary)),

		DoneItem: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextMuted)).
			Strikethrough(true),

		SelectedItem: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SelectedFg)).
			Background(lipgloss.Color(t.SelectedBg)).
			Bold(true),

		Checkbox: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.ItemPending)),

		DoneCheckbox: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.ItemDone)).
			Bold(true),
	}
}

// returns the text style for an item row
func (s *Styles) ItemStyle(done, selected bool) lipgloss.Style {
	switch {
	case selected:
		return s.SelectedItem
	case done:
		return s.DoneItem
	default:
		return s.PendingItem
	}
}

// renders the [ ] / [x] marker
func (s *Styles) CheckboxFor(done bool) string {
	if done {
		return s.DoneCheckbox.Render("[x]")
	}
	return s.Checkbox.Render("[ ]")
}

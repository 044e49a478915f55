package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"todolist/internal/config"
	"todolist/internal/domain"
	"todolist/internal/theme"
)

// SetupModel lets the user pick a theme on first run
type SetupModel struct {
	themes        []string
	selectedIndex int
	currentTheme  *theme.Theme
	width         int
	height        int
	quitting      bool
	confirmed     bool
	saveErr       error

	// persists the chosen theme name
	save func(name string) error
}

func NewSetupModel() SetupModel {
	themes := theme.ListThemes()
	currentTheme, _ := theme.Resolve(themes[0])

	return SetupModel{
		themes:       themes,
		currentTheme: currentTheme,
		width:        100,
		height:       30,
		save:         config.UpdateTheme,
	}
}

func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Confirmed reports whether a theme was chosen (enter) rather than cancelled.
func (m SetupModel) Confirmed() bool {
	return m.confirmed
}

func (m SetupModel) Selected() string {
	return m.themes[m.selectedIndex]
}

// SaveErr is the error from persisting the choice, if any.
func (m SetupModel) SaveErr() error {
	return m.saveErr
}

func (m *SetupModel) selectTheme(i int) {
	m.selectedIndex = i
	t, _ := theme.Resolve(m.themes[i])
	m.currentTheme = t
}

func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"))):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
			if m.selectedIndex > 0 {
				m.selectTheme(m.selectedIndex - 1)
			}
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
			if m.selectedIndex < len(m.themes)-1 {
				m.selectTheme(m.selectedIndex + 1)
			}
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
			if m.save != nil {
				m.saveErr = m.save(m.Selected())
			}
			m.confirmed = true
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m SetupModel) View() string {
	if m.quitting {
		if m.confirmed {
			return ""
		}
		return "Setup cancelled.\n"
	}

	if m.width < 60 || m.height < 10 {
		return "Terminal too small. Please resize and try again.\n"
	}

	styles := theme.NewStyles(m.currentTheme)

	leftWidth := max(m.width/3, 30)
	rightWidth := max(m.width-leftWidth-4, 30)

	panel := func(w int) lipgloss.Style {
		return lipgloss.NewStyle().
			Width(w).
			Height(m.height - 4).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(m.currentTheme.BorderColor)).
			Padding(1)
	}

	main := lipgloss.JoinHorizontal(lipgloss.Top,
		panel(leftWidth).Render(m.renderThemeList(leftWidth)),
		panel(rightWidth).Render(m.renderPreview(styles)),
	)

	header := styles.TUITitle.Render("To-do Initial Setup")
	subtitle := styles.TUISubtitle.Render("Select a theme to get started")
	help := styles.TUIHelp.Render("↑/k: up • ↓/j: down • enter: confirm • q: quit")

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s", header, subtitle, main, help)
}

func (m SetupModel) renderThemeList(width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.currentTheme.Primary)).
		Render("Available Themes"))
	b.WriteString("\n\n")

	for i, name := range m.themes {
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.currentTheme.TextSecondary)).
			Width(width - 4)
		prefix := "  "
		if i == m.selectedIndex {
			prefix = "▶ "
			style = lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.currentTheme.SelectedFg)).
				Background(lipgloss.Color(m.currentTheme.SelectedBg)).
				Bold(true).
				Width(width - 4)
		}

		b.WriteString(style.Render(prefix + name))
		b.WriteString("\n")
	}

	return b.String()
}

// sample list drawn with the highlighted theme
func (m SetupModel) renderPreview(styles *theme.Styles) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.currentTheme.Primary)).
		Render("Preview"))
	b.WriteString("\n\n")

	sample := []*domain.Item{
		{ID: "1", Text: "Buy milk", IsVisible: true, IsDone: true},
		{ID: "2", Text: "Call the plumber", IsVisible: true},
		{ID: "3", Text: "Water the plants", IsVisible: true},
	}

	b.WriteString(styles.InputBox.Render("› water"))
	b.WriteString("\n\n")

	done := 0
	for i, item := range sample {
		selected := i == 1
		prefix := "  "
		if selected {
			prefix = "▶ "
		}
		if item.IsDone {
			done++
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", prefix, styles.CheckboxFor(item.IsDone),
			styles.ItemStyle(item.IsDone, selected).Render(item.Text)))
	}
	b.WriteString("\n")

	p := domain.Progress{Total: len(sample), Done: done}
	b.WriteString(styles.TUISubtitle.Render(p.String()))
	b.WriteString("\n")
	b.WriteString(styles.InputError.Render(domain.MessageItemExists))
	b.WriteString("\n")

	return b.String()
}

package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"todolist/internal/domain"
)

const statusTimeout = 2 * time.Second

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = clamp(msg.Width-10, 20, 80)
		m.progress.Width = clamp(msg.Width-24, 10, 60)
		return m, nil

	case listSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.logger.Error("failed to save list", zap.Error(msg.err))
			m.status = "✗ " + msg.err.Error()
		} else {
			m.err = nil
			m.status = "✓ Saved"
		}
		if m.quitting {
			return m, tea.Quit
		}
		return m, tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, saveListCmd(m.ctx, m.shell)
		case key.Matches(msg, m.keys.Save):
			return m, saveListCmd(m.ctx, m.shell)
		}

		if m.focus == listFocus {
			return m.updateListFocus(msg)
		}
		return m.updateInputFocus(msg)
	}

	if m.focus == inputFocus {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateInputFocus(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit()

	case key.Matches(msg, m.keys.Back):
		if m.input.Value() != "" {
			m.input.Reset()
			m.shell.InputChanged("")
			m.clampCursor()
		}
		return m, nil

	case key.Matches(msg, m.keys.Focus), msg.Type == tea.KeyDown:
		m.focusList()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.shell.InputChanged(m.input.Value())
		m.clampCursor()
	}
	return m, cmd
}

// submit adds the input text. A blank input only shows the error, the list
// is never asked to add it.
func (m Model) submit() (tea.Model, tea.Cmd) {
	text := m.input.Value()
	if domain.NormalizeText(text) == "" {
		m.shell.ShowError(domain.MessageEmptyInput)
		return m, nil
	}

	id, err := m.shell.Submit(text)
	if err != nil {
		m.logger.Debug("add rejected", zap.String("text", text), zap.Error(err))
		return m, nil
	}

	m.input.Reset()
	m.scrollToItem(id)
	return m, nil
}

func (m Model) updateListFocus(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		} else {
			m.focusInput()
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.rowCount()-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.ToggleDone):
		if row := m.shell.Target().At(m.cursor); row != nil {
			m.shell.List().ToggleDone(row.ID)
		}

	case key.Matches(msg, m.keys.Delete):
		// focus moves to the next row, or the previous one when it was last
		if row := m.shell.Target().At(m.cursor); row != nil {
			m.shell.List().Remove(row.ID)
			m.clampCursor()
		}

	case key.Matches(msg, m.keys.Focus), key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Search):
		m.focusInput()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package tui

import (
	"fmt"
	"strings"

	"todolist/internal/display"
)

// renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// title
	b.WriteString(m.styles.TUITitle.Render("  To-do  "))
	b.WriteString("\n\n")

	b.WriteString(m.renderInput())
	b.WriteString("\n")

	b.WriteString(m.renderList())
	b.WriteString("\n")

	b.WriteString(m.renderProgress())
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(m.styles.TUISubtitle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) renderInput() string {
	var b strings.Builder
	b.WriteString(m.styles.InputBox.Render(m.input.View()))
	b.WriteString("\n")

	if msg := m.shell.InputError(); msg != "" {
		b.WriteString(m.styles.InputError.Render("  " + msg))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderList() string {
	rows := m.shell.Target().Rows()
	if len(rows) == 0 {
		return m.styles.EmptyMessage.Render(m.shell.Target().EmptyMessage()) + "\n"
	}

	var b strings.Builder
	for i, row := range rows {
		selected := m.focus == listFocus && i == m.cursor

		prefix := "  "
		if selected {
			prefix = "▶ "
		}

		label := row.Text
		if m.width > 0 {
			label = display.Truncate(label, m.width-8)
		}
		text := m.styles.ItemStyle(row.Done, selected).Render(label)
		b.WriteString(fmt.Sprintf("%s%s %s\n", prefix, m.styles.CheckboxFor(row.Done), text))
	}
	return b.String()
}

func (m Model) renderProgress() string {
	p := m.shell.Progress()
	return fmt.Sprintf("%s  %s", m.progress.ViewAs(p.Ratio()), m.styles.TUISubtitle.Render(p.String()))
}

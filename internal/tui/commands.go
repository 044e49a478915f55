package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"todolist/internal/app"
)

// listSavedMsg is sent once the snapshot has been written
type listSavedMsg struct {
	err error
}

// clearStatusMsg hides a transient status line
type clearStatusMsg struct{}

// saveListCmd persists the list through the shell
func saveListCmd(ctx context.Context, shell *app.Shell) tea.Cmd {
	return func() tea.Msg {
		return listSavedMsg{err: shell.Save(ctx)}
	}
}

package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"todolist/internal/app"
	"todolist/internal/theme"
)

type focusArea int

const (
	inputFocus focusArea = iota
	listFocus
)

type Model struct {
	shell *app.Shell

	input    textinput.Model
	progress progress.Model
	help     help.Model
	keys     keyMap

	focus  focusArea
	cursor int

	status   string
	err      error
	quitting bool
	width    int
	height   int

	theme  *theme.Theme
	styles *theme.Styles
	logger *zap.Logger

	ctx context.Context
}

func NewModel(ctx context.Context, shell *app.Shell, themeObj *theme.Theme, styles *theme.Styles, logger *zap.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "Type to filter, enter to add..."
	ti.Prompt = "› "
	ti.CharLimit = 200
	ti.Width = 50
	ti.Focus()

	pb := progress.New(
		progress.WithGradient(themeObj.ProgressStart, themeObj.ItemDone),
		progress.WithoutPercentage(),
	)
	pb.Width = 40

	if logger == nil {
		logger = zap.NewNop()
	}

	return Model{
		shell:    shell,
		input:    ti,
		progress: pb,
		help:     help.New(),
		keys:     defaultKeyMap(),
		focus:    inputFocus,
		theme:    themeObj,
		styles:   styles,
		logger:   logger,
		ctx:      ctx,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Err returns the last save error, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) rowCount() int {
	return m.shell.Target().Len()
}

// keeps the cursor inside the rendered rows
func (m *Model) clampCursor() {
	n := m.rowCount()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if n == 0 && m.focus == listFocus {
		m.focusInput()
	}
}

func (m *Model) focusInput() {
	m.focus = inputFocus
	m.input.Focus()
}

func (m *Model) focusList() {
	if m.rowCount() == 0 {
		return
	}
	m.focus = listFocus
	m.input.Blur()
	m.clampCursor()
}

// moves the cursor to the row of item id
func (m *Model) scrollToItem(id string) {
	h, ok := m.shell.List().RenderedHandle(id)
	if !ok {
		return
	}
	if idx := m.shell.Target().IndexOf(h); idx >= 0 {
		m.cursor = idx
	}
}

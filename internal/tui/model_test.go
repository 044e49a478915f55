package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todolist/internal/app"
	"todolist/internal/domain"
	"todolist/internal/repository"
	"todolist/internal/theme"
)

type memRepo struct {
	blobs   map[string]*domain.Snapshot
	saveErr error
}

func (r *memRepo) Load(ctx context.Context, key string) (*domain.Snapshot, error) {
	snap, ok := r.blobs[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", repository.ErrNotFound, key)
	}
	return snap.Clone(), nil
}

func (r *memRepo) Save(ctx context.Context, key string, snap *domain.Snapshot) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.blobs[key] = snap.Clone()
	return nil
}

func (r *memRepo) Delete(ctx context.Context, key string) error {
	delete(r.blobs, key)
	return nil
}

func (r *memRepo) Keys(ctx context.Context) ([]string, error) {
	return nil, nil
}

func newTestModel(t *testing.T, items ...string) (Model, *memRepo) {
	t.Helper()
	repo := &memRepo{blobs: map[string]*domain.Snapshot{}}
	shell, err := app.NewShell(app.Config{Repo: repo, StorageKey: "todoListData"})
	require.NoError(t, err)

	for _, text := range items {
		_, err := shell.Submit(text)
		require.NoError(t, err)
	}

	th := theme.DefaultTheme()
	return NewModel(context.Background(), shell, th, theme.NewStyles(th), nil), repo
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func rowTexts(m Model) []string {
	var out []string
	for _, row := range m.shell.Target().Rows() {
		out = append(out, row.Text)
	}
	return out
}

func TestTypingFiltersList(t *testing.T) {
	m, _ := newTestModel(t, "Apple", "Orange", "Mango shake", "Mango", "World")

	m = typeText(t, m, "mang")
	assert.Equal(t, []string{"Mango", "Mango shake"}, rowTexts(m))

	m = typeText(t, m, "zzz")
	assert.Empty(t, rowTexts(m))
	assert.Contains(t, m.View(), domain.MessageNothingFound)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	assert.Equal(t, "", m.input.Value())
	assert.Len(t, rowTexts(m), 5)
}

func TestEnterAddsItem(t *testing.T) {
	m, _ := newTestModel(t, "Apple", "Orange")

	m = typeText(t, m, "Banana")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "", m.input.Value())
	assert.Equal(t, []string{"Apple", "Banana", "Orange"}, rowTexts(m))
	assert.Equal(t, 1, m.cursor, "cursor follows the new item")
}

func TestEnterErrors(t *testing.T) {
	m, _ := newTestModel(t, "Apple")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, domain.MessageEmptyInput, m.shell.InputError())
	assert.Contains(t, m.View(), domain.MessageEmptyInput)

	m = typeText(t, m, "apple")
	assert.Equal(t, "", m.shell.InputError(), "typing hides the error")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, domain.MessageItemExists, m.shell.InputError())
	assert.Equal(t, "apple", m.input.Value(), "rejected text stays in the input")
	assert.Equal(t, 1, m.shell.List().GetItemsCount())
}

func TestListNavigationToggleAndDelete(t *testing.T) {
	m, _ := newTestModel(t, "Test item C", "Test item B", "Test item A")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, listFocus, m.focus)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.cursor)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})
	done := m.shell.List().GetDoneItems()
	require.Len(t, done, 1)
	assert.Equal(t, "Test item B", done[0].Text)
	assert.Equal(t, domain.Progress{Total: 3, Done: 1}, m.shell.Progress())

	// removing moves focus to the next row
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, []string{"Test item A", "Test item C"}, rowTexts(m))
	assert.Equal(t, 1, m.cursor)

	// removing the last row moves focus up
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, []string{"Test item A"}, rowTexts(m))
	assert.Equal(t, 0, m.cursor)

	// emptying the list returns focus to the input
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Empty(t, rowTexts(m))
	assert.Equal(t, inputFocus, m.focus)
	assert.Contains(t, m.View(), domain.MessageNoItems)
}

func TestListFocusNeedsRows(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, inputFocus, m.focus)
}

func TestUpFromFirstRowReturnsToInput(t *testing.T) {
	m, _ := newTestModel(t, "Apple")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, inputFocus, m.focus)
}

func TestQuitSavesList(t *testing.T) {
	m, repo := newTestModel(t, "Apple", "Orange")

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)

	msg := cmd()
	saved, ok := msg.(listSavedMsg)
	require.True(t, ok)
	require.NoError(t, saved.err)
	assert.Equal(t, 2, repo.blobs["todoListData"].Len())

	_, cmd = send(t, m, msg)
	require.NotNil(t, cmd)
	_, isQuit := cmd().(tea.QuitMsg)
	assert.True(t, isQuit)
}

func TestSaveErrorIsShown(t *testing.T) {
	m, repo := newTestModel(t, "Apple")
	repo.saveErr = errors.New("disk full")

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)

	m, _ = send(t, m, cmd())
	assert.Error(t, m.Err())
	assert.True(t, strings.Contains(m.View(), "disk full"))
}

func TestViewShowsProgressAndRows(t *testing.T) {
	m, _ := newTestModel(t, "Apple", "Orange")
	apple := m.shell.List().GetItemsByText("apple")[0]
	m.shell.List().ToggleDone(apple.ID)

	view := m.View()
	assert.Contains(t, view, "[x]")
	assert.Contains(t, view, "Orange")
	assert.Contains(t, view, "1/2 done (50%)")
}

func TestSetupSelectsTheme(t *testing.T) {
	var saved string
	m := NewSetupModel()
	m.save = func(name string) error {
		saved = name
		return nil
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(SetupModel)
	assert.Equal(t, m.themes[1], m.Selected())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(SetupModel)
	require.NotNil(t, cmd)
	assert.True(t, m.Confirmed())
	assert.Equal(t, m.themes[1], saved)
	assert.NoError(t, m.SaveErr())
}

func TestSetupCancel(t *testing.T) {
	m := NewSetupModel()
	m.save = func(string) error {
		t.Fatal("cancel must not save")
		return nil
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = next.(SetupModel)
	assert.False(t, m.Confirmed())
	assert.Equal(t, "Setup cancelled.\n", m.View())
}

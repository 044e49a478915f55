// Package app wires a TodoList to its render target and its snapshot store.
// It carries the glue that sits around the list: the input error line, the
// progress summary, and loading/saving the list under a storage key.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"todolist/internal/domain"
	"todolist/internal/fuzzy"
	"todolist/internal/render"
	"todolist/internal/repository"
	"todolist/internal/todolist"
)

const suggestThreshold = 60

type Shell struct {
	list   *todolist.TodoList
	target *render.ListTarget
	repo   repository.SnapshotRepository
	key    string
	logger *zap.Logger

	inputError string
	progress   domain.Progress
	onChange   func()
}

type Config struct {
	Repo       repository.SnapshotRepository
	StorageKey string
	Logger     *zap.Logger
	// OnChange runs after the progress summary is refreshed.
	OnChange func()
}

func NewShell(cfg Config) (*Shell, error) {
	if cfg.Repo == nil {
		return nil, errors.New("snapshot repository is required")
	}
	if strings.TrimSpace(cfg.StorageKey) == "" {
		return nil, errors.New("storage key is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Shell{
		target:   render.NewListTarget(),
		repo:     cfg.Repo,
		key:      cfg.StorageKey,
		logger:   logger,
		onChange: cfg.OnChange,
	}

	s.list = todolist.New(
		todolist.WithErrorHandler(s.ShowError),
		todolist.WithChangeHandler(s.listChanged),
		todolist.WithLogger(logger.Named("todolist")),
	)
	// the change handler reads s.list, so bind only after it is set
	if err := s.list.Render(s.target); err != nil {
		return nil, fmt.Errorf("failed to render list: %w", err)
	}

	return s, nil
}

func (s *Shell) List() *todolist.TodoList {
	return s.list
}

func (s *Shell) Target() *render.ListTarget {
	return s.target
}

func (s *Shell) StorageKey() string {
	return s.key
}

// Load restores the saved list. A missing or unreadable blob leaves the
// list as it is; only storage failures are returned.
func (s *Shell) Load(ctx context.Context) error {
	snap, err := s.repo.Load(ctx, s.key)
	if err != nil {
		var decodeErr *repository.DecodeError
		switch {
		case errors.Is(err, repository.ErrNotFound):
			s.logger.Debug("no saved list", zap.String("key", s.key))
			return nil
		case errors.As(err, &decodeErr):
			s.logger.Warn("ignoring unreadable saved list", zap.String("key", s.key), zap.Error(err))
			return nil
		default:
			return fmt.Errorf("failed to load list: %w", err)
		}
	}

	s.list.ImportSnapshot(snap)
	s.logger.Info("list loaded", zap.String("key", s.key), zap.Int("items", snap.Len()))
	return nil
}

func (s *Shell) Save(ctx context.Context) error {
	snap := s.list.ExportSnapshot()
	if err := s.repo.Save(ctx, s.key, snap); err != nil {
		return fmt.Errorf("failed to save list: %w", err)
	}
	s.logger.Info("list saved", zap.String("key", s.key), zap.Int("items", snap.Len()))
	return nil
}

// Discard empties the list and deletes its stored blob. A key that was
// never saved is not an error.
func (s *Shell) Discard(ctx context.Context) error {
	s.list.Clear()
	if err := s.repo.Delete(ctx, s.key); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("failed to delete list: %w", err)
	}
	s.logger.Info("list discarded", zap.String("key", s.key))
	return nil
}

// StoredKeys lists the storage keys that hold a saved list.
func (s *Shell) StoredKeys(ctx context.Context) ([]string, error) {
	keys, err := s.repo.Keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stored keys: %w", err)
	}
	return keys, nil
}

// Submit adds text like the input form does. On success the input is
// considered cleared, so the filter is reset.
func (s *Shell) Submit(text string) (string, error) {
	id, err := s.list.Add(text)
	if err != nil {
		return "", err
	}
	s.InputChanged("")
	return id, nil
}

// InputChanged re-filters the list and hides a shown input error.
func (s *Shell) InputChanged(text string) {
	s.list.Filter(text)
	if s.inputError != "" {
		s.ClearError()
	}
}

// ShowError sets the message under the input; "" hides it.
func (s *Shell) ShowError(msg string) {
	s.inputError = msg
}

func (s *Shell) ClearError() {
	s.ShowError("")
}

func (s *Shell) InputError() string {
	return s.inputError
}

func (s *Shell) Progress() domain.Progress {
	return s.progress
}

// ResolveID accepts an item id or the exact text of an item.
func (s *Shell) ResolveID(ref string) (string, error) {
	if _, ok := s.list.GetItem(ref); ok {
		return ref, nil
	}
	found := s.list.GetItemsByText(ref)
	switch len(found) {
	case 0:
		if hint := s.suggest(ref); hint != "" {
			return "", fmt.Errorf("no item matches %q, did you mean %q?", ref, hint)
		}
		return "", fmt.Errorf("no item matches %q", ref)
	case 1:
		return found[0].ID, nil
	default:
		return "", fmt.Errorf("%d items match %q, use an id", len(found), ref)
	}
}

// closest item text to ref, "" when nothing is close enough
func (s *Shell) suggest(ref string) string {
	items := s.list.Items()
	todolist.SortForDisplay(items)

	texts := make([]string, len(items))
	for i, item := range items {
		texts[i] = item.Text
	}

	if best := fuzzy.Suggest(ref, texts, suggestThreshold, 1); len(best) > 0 {
		return best[0].Text
	}
	return ""
}

func (s *Shell) listChanged() {
	s.progress = s.list.Progress()
	if s.onChange != nil {
		s.onChange()
	}
}

// Package todolist holds the to-do item store and the reconciler that keeps a
// RenderTarget in sync with it.
//
// A TodoList is single-threaded: every mutation runs a full reconciliation
// pass and the change handler before returning. Callers must not share a
// TodoList between goroutines.
package todolist

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"todolist/internal/domain"
)

const maxIDAttempts = 16

type TodoList struct {
	items map[string]*domain.Item
	// insertion order, used only as the sort tie-break
	order []string

	target   RenderTarget
	rendered map[string]Handle
	query    string

	onError  func(msg string)
	onChange func()
	newID    func() string
	logger   *zap.Logger
}

type Option func(*TodoList)

// WithErrorHandler receives the message for every rejected Add.
func WithErrorHandler(fn func(msg string)) Option {
	return func(l *TodoList) { l.onError = fn }
}

// WithChangeHandler runs after every reconciliation pass.
func WithChangeHandler(fn func()) Option {
	return func(l *TodoList) { l.onChange = fn }
}

func WithIDGenerator(fn func() string) Option {
	return func(l *TodoList) { l.newID = fn }
}

func WithLogger(logger *zap.Logger) Option {
	return func(l *TodoList) { l.logger = logger }
}

func New(opts ...Option) *TodoList {
	l := &TodoList{
		items:    make(map[string]*domain.Item),
		rendered: make(map[string]Handle),
		newID:    uuid.NewString,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = zap.NewNop()
	}
	return l
}

// NewRendered creates a list and binds it to target in one step.
func NewRendered(target RenderTarget, opts ...Option) (*TodoList, error) {
	l := New(opts...)
	if err := l.Render(target); err != nil {
		return nil, err
	}
	return l, nil
}

// Render binds the list to target and draws it. A list can be bound once.
func (l *TodoList) Render(target RenderTarget) error {
	if target == nil {
		return fmt.Errorf("render target cannot be nil")
	}
	if l.target != nil {
		return domain.ErrAlreadyBound
	}
	l.target = target
	l.Reconcile()
	return nil
}

// Bound reports whether a render target is attached.
func (l *TodoList) Bound() bool {
	return l.target != nil
}

// Add inserts a new item and returns its id. Blank and duplicate texts are
// rejected: the error handler gets the user message and the id is empty.
func (l *TodoList) Add(text string) (string, error) {
	itemText := strings.TrimSpace(text)

	if itemText == "" {
		l.reject(domain.ErrEmptyInput)
		return "", domain.ErrEmptyInput
	}

	// duplicates are checked against every item, filtered out or not
	if found := l.GetItemsByText(itemText); len(found) > 0 {
		l.reject(domain.ErrDuplicateItem)
		return "", fmt.Errorf("%w: %q", domain.ErrDuplicateItem, found[0].Text)
	}

	id := l.nextID()
	l.items[id] = domain.NewItem(id, itemText)
	l.order = append(l.order, id)

	l.logger.Debug("item added", zap.String("id", id), zap.String("text", itemText))
	l.Reconcile()
	return id, nil
}

// Remove deletes the item with id and reports whether it existed.
func (l *TodoList) Remove(id string) bool {
	if _, ok := l.items[id]; !ok {
		return false
	}
	delete(l.items, id)
	l.order = slices.DeleteFunc(l.order, func(o string) bool { return o == id })

	l.logger.Debug("item removed", zap.String("id", id))
	l.Reconcile()
	return true
}

// ToggleDone flips the done flag; unknown ids are ignored.
func (l *TodoList) ToggleDone(id string) {
	item, ok := l.items[id]
	if !ok {
		return
	}
	item.IsDone = !item.IsDone
	l.Reconcile()
}

// Filter recomputes visibility of every item against query.
func (l *TodoList) Filter(query string) {
	l.query = query
	for _, item := range l.items {
		item.IsVisible = Matches(item, query)
	}
	l.Reconcile()
}

// Query returns the last filter query.
func (l *TodoList) Query() string {
	return l.query
}

func (l *TodoList) Clear() {
	l.items = make(map[string]*domain.Item)
	l.order = nil
	l.Reconcile()
}

func (l *TodoList) GetItem(id string) (*domain.Item, bool) {
	item, ok := l.items[id]
	return item, ok
}

// GetItemsByText does a case-insensitive exact match on trimmed text.
func (l *TodoList) GetItemsByText(text string) []*domain.Item {
	key := domain.NormalizeText(text)
	var found []*domain.Item
	for _, id := range l.order {
		item := l.items[id]
		if strings.ToLower(item.Text) == key {
			found = append(found, item)
		}
	}
	return found
}

func (l *TodoList) GetItemsCount() int {
	return len(l.items)
}

func (l *TodoList) GetVisibleItemsCount() int {
	n := 0
	for _, item := range l.items {
		if item.IsVisible {
			n++
		}
	}
	return n
}

func (l *TodoList) GetDoneItems() []*domain.Item {
	var done []*domain.Item
	for _, id := range l.order {
		if item := l.items[id]; item.IsDone {
			done = append(done, item)
		}
	}
	return done
}

// Items returns every item in insertion order.
func (l *TodoList) Items() []*domain.Item {
	out := make([]*domain.Item, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.items[id])
	}
	return out
}

// VisibleItems returns the visible items in display order.
func (l *TodoList) VisibleItems() []*domain.Item {
	visible := make([]*domain.Item, 0, len(l.items))
	for _, id := range l.order {
		if item := l.items[id]; item.IsVisible {
			visible = append(visible, item)
		}
	}
	SortForDisplay(visible)
	return visible
}

func (l *TodoList) Progress() domain.Progress {
	return domain.Progress{
		Total: l.GetItemsCount(),
		Done:  len(l.GetDoneItems()),
	}
}

// RenderedHandle returns the representation currently drawn for id.
func (l *TodoList) RenderedHandle(id string) (Handle, bool) {
	h, ok := l.rendered[id]
	return h, ok
}

// ExportSnapshot returns a deep copy of the item data.
func (l *TodoList) ExportSnapshot() *domain.Snapshot {
	snap := domain.NewSnapshot()
	for id, item := range l.items {
		snap.Items[id] = item.Clone()
	}
	return snap
}

// ImportSnapshot replaces the whole store with a copy of snap. Entries are
// keyed by map key; an item with an empty id takes its key.
func (l *TodoList) ImportSnapshot(snap *domain.Snapshot) {
	previous := l.items
	l.items = make(map[string]*domain.Item)
	l.order = nil

	// map order is random, ids give a deterministic tie-break
	for _, id := range snap.IDs() {
		item := snap.Items[id]
		if item == nil {
			continue
		}
		c := item.Clone()
		c.ID = id
		l.items[id] = c
		l.order = append(l.order, id)
	}

	l.dropStaleHandles(previous)

	l.logger.Debug("snapshot imported", zap.Int("items", len(l.items)))
	l.Reconcile()
}

// dropStaleHandles removes rendered rows whose item is gone or whose text
// differs from the item previously drawn under the same id.
func (l *TodoList) dropStaleHandles(previous map[string]*domain.Item) {
	for id, h := range l.rendered {
		item, ok := l.items[id]
		old, had := previous[id]
		if ok && had && old.Text == item.Text {
			continue
		}
		l.target.Remove(h)
		delete(l.rendered, id)
	}
}

func (l *TodoList) reject(err error) {
	l.logger.Debug("add rejected", zap.Error(err))
	if l.onError != nil {
		l.onError(domain.UserMessage(err))
	}
}

func (l *TodoList) nextID() string {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := l.newID()
		if _, taken := l.items[id]; !taken && id != "" {
			return id
		}
	}
	l.logger.Warn("id generator keeps colliding, falling back to uuid")
	return uuid.NewString()
}

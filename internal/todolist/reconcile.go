package todolist

import (
	"go.uber.org/zap"

	"todolist/internal/domain"
)

// Reconcile brings the render target in line with the item data.
//
// Visible items that have no representation yet are created and inserted
// right after the previous visible item. Existing representations are kept
// as long as their item stays visible, so reordering or toggling never
// recreates them. Representations of removed or hidden items are dropped.
func (l *TodoList) Reconcile() {
	if l.target == nil {
		return
	}

	created, removed := 0, 0

	var prev Handle
	for _, item := range l.VisibleItems() {
		h, ok := l.rendered[item.ID]
		if !ok {
			h = l.target.Create(*item)
			l.rendered[item.ID] = h

			var ref Handle
			if prev != nil {
				ref = l.target.Next(prev)
			} else {
				ref = l.target.First()
			}
			l.target.InsertBefore(h, ref)
			created++
		}
		prev = h
	}

	for id, h := range l.rendered {
		item, ok := l.items[id]
		if ok {
			l.target.SetDone(h, item.IsDone)
		}
		if !ok || !item.IsVisible {
			l.target.Remove(h)
			delete(l.rendered, id)
			removed++
		}
	}

	switch {
	case l.GetItemsCount() == 0:
		l.target.SetEmptyMessage(domain.MessageNoItems)
	case l.GetVisibleItemsCount() == 0:
		l.target.SetEmptyMessage(domain.MessageNothingFound)
	default:
		l.target.SetEmptyMessage("")
	}

	if created > 0 || removed > 0 {
		l.logger.Debug("reconciled",
			zap.Int("created", created),
			zap.Int("removed", removed),
			zap.Int("rendered", len(l.rendered)))
	}

	if l.onChange != nil {
		l.onChange()
	}
}

// Package render provides RenderTarget implementations.
package render

import (
	"container/list"

	"todolist/internal/domain"
	"todolist/internal/todolist"
)

// Row is one drawn item.
type Row struct {
	ID   string
	Text string
	Done bool

	elem *list.Element
}

// ListTarget keeps the rendered rows as an ordered in-memory list. The TUI
// draws it and the CLI prints it.
type ListTarget struct {
	rows         *list.List
	emptyMessage string
}

var _ todolist.RenderTarget = (*ListTarget)(nil)

func NewListTarget() *ListTarget {
	return &ListTarget{rows: list.New()}
}

func (t *ListTarget) Create(item domain.Item) todolist.Handle {
	return &Row{ID: item.ID, Text: item.Text, Done: item.IsDone}
}

func (t *ListTarget) First() todolist.Handle {
	if e := t.rows.Front(); e != nil {
		return e.Value.(*Row)
	}
	return nil
}

func (t *ListTarget) Next(h todolist.Handle) todolist.Handle {
	row := asRow(h)
	if row == nil || row.elem == nil {
		return nil
	}
	if e := row.elem.Next(); e != nil {
		return e.Value.(*Row)
	}
	return nil
}

func (t *ListTarget) InsertBefore(h, ref todolist.Handle) {
	row := asRow(h)
	if row == nil {
		return
	}
	if row.elem != nil {
		t.rows.Remove(row.elem)
	}

	if mark := asRow(ref); mark != nil && mark.elem != nil {
		row.elem = t.rows.InsertBefore(row, mark.elem)
		return
	}
	row.elem = t.rows.PushBack(row)
}

func (t *ListTarget) Remove(h todolist.Handle) {
	row := asRow(h)
	if row == nil || row.elem == nil {
		return
	}
	t.rows.Remove(row.elem)
	row.elem = nil
}

func (t *ListTarget) SetDone(h todolist.Handle, done bool) {
	if row := asRow(h); row != nil {
		row.Done = done
	}
}

func (t *ListTarget) SetEmptyMessage(msg string) {
	t.emptyMessage = msg
}

func (t *ListTarget) EmptyMessage() string {
	return t.emptyMessage
}

func (t *ListTarget) Len() int {
	return t.rows.Len()
}

// Rows returns the rows in display order.
func (t *ListTarget) Rows() []*Row {
	out := make([]*Row, 0, t.rows.Len())
	for e := t.rows.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(*Row))
	}
	return out
}

// IndexOf returns the position of h or -1 when it is not attached.
func (t *ListTarget) IndexOf(h todolist.Handle) int {
	row := asRow(h)
	if row == nil || row.elem == nil {
		return -1
	}
	i := 0
	for e := t.rows.Front(); e != nil; e = e.Next() {
		if e == row.elem {
			return i
		}
		i++
	}
	return -1
}

// At returns the row at index i or nil.
func (t *ListTarget) At(i int) *Row {
	if i < 0 || i >= t.rows.Len() {
		return nil
	}
	e := t.rows.Front()
	for ; i > 0; i-- {
		e = e.Next()
	}
	return e.Value.(*Row)
}

func asRow(h todolist.Handle) *Row {
	if h == nil {
		return nil
	}
	row, _ := h.(*Row)
	return row
}

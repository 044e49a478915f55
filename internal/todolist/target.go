package todolist

import "todolist/internal/domain"

// Handle is an opaque reference to a rendered item, owned by the RenderTarget.
// A nil Handle means "no element".
type Handle any

// RenderTarget is the surface the reconciler draws on. It only ever sees
// item id, text and done flag.
type RenderTarget interface {
	// Create builds a detached representation of item.
	Create(item domain.Item) Handle
	// First returns the first attached representation or nil.
	First() Handle
	// Next returns the representation after h or nil.
	Next(h Handle) Handle
	// InsertBefore attaches h before ref; a nil ref appends.
	InsertBefore(h, ref Handle)
	Remove(h Handle)
	SetDone(h Handle, done bool)
	// SetEmptyMessage shows msg when the list has no rows; "" clears it.
	SetEmptyMessage(msg string)
}

package todolist

import (
	"fmt"

	"todolist/internal/domain"
)

type fakeNode struct {
	id   string
	text string
	done bool
}

// recordingTarget is an ordered slice of nodes that logs every call.
type recordingTarget struct {
	nodes   []*fakeNode
	ops     []string
	message string
}

func (r *recordingTarget) Create(item domain.Item) Handle {
	r.ops = append(r.ops, "create "+item.Text)
	return &fakeNode{id: item.ID, text: item.Text, done: item.IsDone}
}

func (r *recordingTarget) First() Handle {
	if len(r.nodes) == 0 {
		return nil
	}
	return r.nodes[0]
}

func (r *recordingTarget) Next(h Handle) Handle {
	i := r.index(h)
	if i < 0 || i+1 >= len(r.nodes) {
		return nil
	}
	return r.nodes[i+1]
}

func (r *recordingTarget) InsertBefore(h, ref Handle) {
	n := h.(*fakeNode)
	if ref == nil {
		r.ops = append(r.ops, "append "+n.text)
		r.nodes = append(r.nodes, n)
		return
	}
	i := r.index(ref)
	r.ops = append(r.ops, fmt.Sprintf("insert %s before %s", n.text, ref.(*fakeNode).text))
	r.nodes = append(r.nodes[:i], append([]*fakeNode{n}, r.nodes[i:]...)...)
}

func (r *recordingTarget) Remove(h Handle) {
	i := r.index(h)
	r.ops = append(r.ops, "remove "+h.(*fakeNode).text)
	if i >= 0 {
		r.nodes = append(r.nodes[:i], r.nodes[i+1:]...)
	}
}

func (r *recordingTarget) SetDone(h Handle, done bool) {
	h.(*fakeNode).done = done
}

func (r *recordingTarget) SetEmptyMessage(msg string) {
	r.message = msg
}

func (r *recordingTarget) index(h Handle) int {
	for i, n := range r.nodes {
		if Handle(n) == h {
			return i
		}
	}
	return -1
}

func (r *recordingTarget) texts() []string {
	out := make([]string, 0, len(r.nodes))
	for _, n := range r.nodes {
		out = append(out, n.text)
	}
	return out
}

func (r *recordingTarget) resetOps() {
	r.ops = nil
}

// counter ids keep test output readable
func counterIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("item-%d", n)
	}
}

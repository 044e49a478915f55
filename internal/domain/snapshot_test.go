package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotClone(t *testing.T) {
	snap := NewSnapshot()
	snap.Items["a"] = &Item{ID: "a", Text: "Apple", IsVisible: true}

	c := snap.Clone()
	c.Items["a"].IsDone = true
	delete(c.Items, "a")

	require.Contains(t, snap.Items, "a")
	assert.False(t, snap.Items["a"].IsDone)
}

func TestSnapshotCloneNil(t *testing.T) {
	var snap *Snapshot
	c := snap.Clone()

	require.NotNil(t, c)
	assert.Equal(t, 0, c.Len())
}

func TestSnapshotJSONShape(t *testing.T) {
	snap := NewSnapshot()
	snap.Items["1"] = &Item{ID: "1", Text: "Apple", IsVisible: true, IsDone: true}

	data, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":{"1":{"id":"1","text":"Apple","isVisible":true,"isDone":true}}}`, string(data))
}

func TestSnapshotValidate(t *testing.T) {
	tests := []struct {
		name    string
		items   map[string]*Item
		wantErr bool
	}{
		{name: "empty", items: map[string]*Item{}},
		{name: "valid", items: map[string]*Item{"a": {ID: "a", Text: "Apple"}}},
		{name: "duplicate texts allowed", items: map[string]*Item{
			"a": {ID: "a", Text: "Apple"},
			"b": {ID: "b", Text: "apple"},
		}},
		{name: "null item", items: map[string]*Item{"a": nil}, wantErr: true},
		{name: "key mismatch", items: map[string]*Item{"a": {ID: "b", Text: "Apple"}}, wantErr: true},
		{name: "missing text", items: map[string]*Item{"a": {ID: "a"}}, wantErr: true},
		{name: "blank text", items: map[string]*Item{"a": {ID: "a", Text: "   "}}, wantErr: true},
		{name: "id taken from key", items: map[string]*Item{"a": {Text: "Apple"}}},
		{name: "blank key", items: map[string]*Item{" ": {Text: "Apple"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&Snapshot{Items: tt.items}).Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSnapshotValidateBlankTextIsEmptyInput(t *testing.T) {
	snap := &Snapshot{Items: map[string]*Item{"x": {Text: "   "}}}
	assert.ErrorIs(t, snap.Validate(), ErrEmptyInput)
}

func TestSnapshotIDsSorted(t *testing.T) {
	snap := NewSnapshot()
	for _, id := range []string{"c", "a", "b"} {
		snap.Items[id] = &Item{ID: id, Text: id}
	}
	assert.Equal(t, []string{"a", "b", "c"}, snap.IDs())
}

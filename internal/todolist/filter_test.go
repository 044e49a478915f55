package todolist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"todolist/internal/domain"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		query string
		want  bool
	}{
		{name: "empty query", text: "Apple", query: "", want: true},
		{name: "blank query", text: "Apple", query: "   ", want: true},
		{name: "first letter", text: "Mango", query: "m", want: true},
		{name: "first letter upper query", text: "mango", query: "M", want: true},
		{name: "single char is not substring", text: "Apple", query: "p", want: false},
		{name: "single char padded", text: "Orange", query: " o ", want: true},
		{name: "substring", text: "Orange", query: "an", want: true},
		{name: "substring mixed case", text: "Mango shake", query: "mAng", want: true},
		{name: "no match", text: "World", query: "zzz", want: false},
		{name: "unicode first letter", text: "Élan", query: "é", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &domain.Item{ID: "x", Text: tt.text}
			assert.Equal(t, tt.want, Matches(item, tt.query))
		})
	}
}

func TestSortForDisplay(t *testing.T) {
	items := []*domain.Item{
		{ID: "1", Text: "banana"},
		{ID: "2", Text: "Apple"},
		{ID: "3", Text: "cherry"},
		{ID: "4", Text: "apple"},
	}

	SortForDisplay(items)

	var ids []string
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	// equal keys keep input order
	assert.Equal(t, []string{"2", "4", "1", "3"}, ids)
}

package todolist

import (
	"sort"
	"strings"

	"todolist/internal/domain"
)

// SortForDisplay orders items by case-insensitive text. The sort is stable so
// equal texts keep the order they came in.
func SortForDisplay(items []*domain.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return strings.ToLower(items[i].Text) < strings.ToLower(items[j].Text)
	})
}

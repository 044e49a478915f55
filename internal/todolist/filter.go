package todolist

import (
	"strings"
	"unicode/utf8"

	"todolist/internal/domain"
)

// Matches reports whether item passes the search query.
//
// An empty query matches everything. A single character matches items whose
// text starts with that character, case-insensitive. Anything longer is a
// case-insensitive substring match.
func Matches(item *domain.Item, query string) bool {
	q := domain.NormalizeText(query)
	if q == "" {
		return true
	}

	text := strings.ToLower(item.Text)
	if utf8.RuneCountInString(q) == 1 {
		first, _ := utf8.DecodeRuneInString(text)
		qr, _ := utf8.DecodeRuneInString(q)
		return first == qr && text != ""
	}

	return strings.Contains(text, q)
}

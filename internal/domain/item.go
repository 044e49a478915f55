package domain

import (
	"errors"
	"strings"
)

// user facing messages
const (
	MessageEmptyInput   = "Incorrect input. Please, enter some text."
	MessageItemExists   = "Such item already exists in the list."
	MessageNothingFound = "Nothing found. Hit Enter to add."
	MessageNoItems      = "No items so far"
)

var (
	ErrEmptyInput    = errors.New("empty input")
	ErrDuplicateItem = errors.New("item already exists")
	ErrAlreadyBound  = errors.New("todo list is already bound to a render target")
)

// UserMessage maps an add rejection to the text shown next to the input.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrEmptyInput):
		return MessageEmptyInput
	case errors.Is(err, ErrDuplicateItem):
		return MessageItemExists
	case err == nil:
		return ""
	default:
		return err.Error()
	}
}

type Item struct {
	ID        string `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	IsVisible bool   `json:"isVisible" yaml:"isVisible"`
	IsDone    bool   `json:"isDone" yaml:"isDone"`
}

// create a new visible, not done item
func NewItem(id, text string) *Item {
	return &Item{
		ID:        id,
		Text:      strings.TrimSpace(text),
		IsVisible: true,
		IsDone:    false,
	}
}

func (i *Item) Clone() *Item {
	if i == nil {
		return nil
	}
	c := *i
	return &c
}

func (i *Item) Validate() error {
	if strings.TrimSpace(i.ID) == "" {
		return errors.New("item id cannot be empty")
	}
	if strings.TrimSpace(i.Text) == "" {
		return ErrEmptyInput
	}
	return nil
}

// NormalizeText is the comparison key for text lookups and duplicate detection.
func NormalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

package export

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"todolist/internal/domain"
	"todolist/internal/todolist"
)

// Read decodes a snapshot written by Write in json or yaml.
func Read(r io.Reader, format ExportFormat) (*domain.Snapshot, error) {
	var snap domain.Snapshot

	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&snap); err != nil {
			return nil, fmt.Errorf("failed to decode JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&snap); err != nil {
			return nil, fmt.Errorf("failed to decode YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("cannot import %s files", format)
	}

	if snap.Items == nil {
		snap.Items = make(map[string]*domain.Item)
	}
	if err := snap.Validate(); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}
	return &snap, nil
}

type Importer struct {
	list *todolist.TodoList
}

func NewImporter(list *todolist.TodoList) *Importer {
	return &Importer{list: list}
}

func (i *Importer) Import(r io.Reader, format ExportFormat, strategy ConflictStrategy) (ImportResult, error) {
	snap, err := Read(r, format)
	if err != nil {
		return ImportResult{}, err
	}
	return i.Apply(snap, strategy)
}

// Apply loads snap into the list. An invalid snapshot leaves the list untouched.
func (i *Importer) Apply(snap *domain.Snapshot, strategy ConflictStrategy) (ImportResult, error) {
	if err := snap.Validate(); err != nil {
		return ImportResult{}, fmt.Errorf("invalid snapshot: %w", err)
	}

	switch strategy {
	case ConflictStrategyReplace:
		i.list.ImportSnapshot(snap)
		return ImportResult{Added: snap.Len()}, nil
	case ConflictStrategyMerge:
		return i.merge(snap)
	default:
		return ImportResult{}, fmt.Errorf("unsupported strategy: %s", strategy)
	}
}

// merge adds items by text; existing texts are skipped, done flags carry over
func (i *Importer) merge(snap *domain.Snapshot) (ImportResult, error) {
	var result ImportResult

	for _, item := range orderedItems(snap) {
		if len(i.list.GetItemsByText(item.Text)) > 0 {
			result.Skipped++
			continue
		}

		id, err := i.list.Add(item.Text)
		if err != nil {
			return result, fmt.Errorf("failed to add %q: %w", item.Text, err)
		}
		if item.IsDone {
			i.list.ToggleDone(id)
		}
		result.Added++
	}

	// new items start visible, re-apply the current query
	i.list.Filter(i.list.Query())
	return result, nil
}

// Package export writes list snapshots to files and reads them back.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"todolist/internal/domain"
	"todolist/internal/todolist"
)

// Write encodes snap in the given format.
func Write(w io.Writer, format ExportFormat, snap *domain.Snapshot) error {
	if snap == nil {
		snap = domain.NewSnapshot()
	}

	switch format {
	case FormatJSON:
		return writeJSON(w, snap)
	case FormatYAML:
		return writeYAML(w, snap)
	case FormatCSV:
		return writeCSV(w, snap)
	case FormatMarkdown:
		return writeMarkdown(w, snap)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func writeJSON(w io.Writer, snap *domain.Snapshot) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(snap); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, snap *domain.Snapshot) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(snap); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return encoder.Close()
}

func writeCSV(w io.Writer, snap *domain.Snapshot) error {
	writer := csv.NewWriter(w)

	header := []string{"ID", "Text", "Visible", "Done"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, item := range orderedItems(snap) {
		row := []string{
			item.ID,
			item.Text,
			strconv.FormatBool(item.IsVisible),
			strconv.FormatBool(item.IsDone),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func writeMarkdown(w io.Writer, snap *domain.Snapshot) error {
	items := orderedItems(snap)
	done := 0
	for _, item := range items {
		if item.IsDone {
			done++
		}
	}
	progress := domain.Progress{Total: len(items), Done: done}

	if _, err := fmt.Fprintf(w, "# To-do\n\n_%s_\n\n", progress); err != nil {
		return err
	}
	if len(items) == 0 {
		_, err := fmt.Fprintf(w, "%s\n", domain.MessageNoItems)
		return err
	}

	for _, item := range items {
		mark := " "
		if item.IsDone {
			mark = "x"
		}
		if _, err := fmt.Fprintf(w, "- [%s] %s\n", mark, item.Text); err != nil {
			return err
		}
	}
	return nil
}

// all items in display order, ids break ties
func orderedItems(snap *domain.Snapshot) []*domain.Item {
	items := make([]*domain.Item, 0, snap.Len())
	for _, id := range snap.IDs() {
		if item := snap.Items[id]; item != nil {
			items = append(items, item)
		}
	}
	todolist.SortForDisplay(items)
	return items
}

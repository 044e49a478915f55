package export

import (
	"fmt"
	"path/filepath"
	"strings"
)

type ExportFormat string

const (
	FormatJSON     ExportFormat = "json"
	FormatYAML     ExportFormat = "yaml"
	FormatCSV      ExportFormat = "csv"
	FormatMarkdown ExportFormat = "markdown"
)

func (f ExportFormat) Importable() bool {
	return f == FormatJSON || f == FormatYAML
}

// parses a format name, accepting common aliases
func ParseFormat(name string) (ExportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "csv":
		return FormatCSV, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (use json, yaml, csv or markdown)", name)
	}
}

// guesses the format from a file extension, json when unknown
func FormatFromPath(path string) ExportFormat {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if f, err := ParseFormat(ext); err == nil {
		return f
	}
	return FormatJSON
}

type ConflictStrategy string

const (
	// replace the whole list with the imported one
	ConflictStrategyReplace ConflictStrategy = "replace"
	// add imported items whose text is not in the list yet
	ConflictStrategyMerge ConflictStrategy = "merge"
)

func ParseConflictStrategy(name string) (ConflictStrategy, error) {
	switch ConflictStrategy(strings.ToLower(strings.TrimSpace(name))) {
	case ConflictStrategyReplace:
		return ConflictStrategyReplace, nil
	case ConflictStrategyMerge:
		return ConflictStrategyMerge, nil
	default:
		return "", fmt.Errorf("unsupported strategy: %s (use replace or merge)", name)
	}
}

type ImportResult struct {
	Added   int
	Skipped int
}

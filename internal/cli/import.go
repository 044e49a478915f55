package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"todolist/internal/export"
)

var (
	importFormat   string
	importStrategy string
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import items from an exported file",
	Long: `Import a list written by 'todo export' in json or yaml.

Strategies:
  - merge: add items whose text is not in the list yet (default)
  - replace: replace the whole list with the file

Examples:
  todo import backup.json
  todo import backup.yaml --strategy replace`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVarP(&importFormat, "format", "F", "", "File format (json, yaml); default from extension")
	importCmd.Flags().StringVarP(&importStrategy, "strategy", "s", string(export.ConflictStrategyMerge), "Conflict strategy (merge, replace)")
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]

	format := export.FormatFromPath(path)
	if importFormat != "" {
		f, err := export.ParseFormat(importFormat)
		if err != nil {
			return err
		}
		format = f
	}
	if !format.Importable() {
		return fmt.Errorf("cannot import %s files (use json or yaml)", format)
	}

	strategy, err := export.ParseConflictStrategy(importStrategy)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	ctx := context.Background()
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	result, err := export.NewImporter(s.shell.List()).Import(f, format, strategy)
	if err != nil {
		printFailure(cmd.OutOrStdout(), s.styles, "Import failed: %v", err)
		return nil
	}

	if err := s.save(ctx); err != nil {
		return err
	}

	printSuccess(cmd.OutOrStdout(), s.styles, "Imported %d items (%d skipped, strategy %s)", result.Added, result.Skipped, strategy)
	return nil
}

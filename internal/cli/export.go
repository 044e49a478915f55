package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"todolist/internal/export"
)

var (
	exportOutput string
	exportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the list",
	Long: `Export the whole list, hidden items included.

Supported formats:
  - json: the stored snapshot document (default)
  - yaml: the same document as YAML
  - csv: one row per item, for spreadsheets
  - markdown: a checklist in display order

Without --format the format follows the --output extension.

Examples:
  todo export
  todo export --output backup.json
  todo export --format markdown --output todo.md`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default stdout)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "F", "", "Export format (json, yaml, csv, markdown)")
}

func runExport(cmd *cobra.Command, args []string) error {
	format := export.FormatJSON
	switch {
	case exportFormat != "":
		f, err := export.ParseFormat(exportFormat)
		if err != nil {
			return err
		}
		format = f
	case exportOutput != "":
		format = export.FormatFromPath(exportOutput)
	}

	ctx := context.Background()
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	snap := s.shell.List().ExportSnapshot()

	var w io.Writer = cmd.OutOrStdout()
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := export.Write(w, format, snap); err != nil {
		return fmt.Errorf("failed to export list: %w", err)
	}

	if exportOutput != "" {
		printSuccess(cmd.OutOrStdout(), s.styles, "Exported %d items to %s (%s)", snap.Len(), exportOutput, format)
	}
	return nil
}

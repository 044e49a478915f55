package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"todolist/internal/display"
)

var deleteCmd = &cobra.Command{
	Use:     "rm [id|text...]",
	Aliases: []string{"delete", "remove"},
	Short:   "Remove one or more items",
	Long: `Remove items by id or by their exact text (case-insensitive).

Examples:
  todo rm "Buy milk"
  todo rm 0b6c1c5e-3f0e-4c5b-9a43-5c0f3b1f8f2a
  todo rm "Buy milk" "Call the plumber"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	list := s.shell.List()

	var removed []string
	var failed []string
	for _, ref := range args {
		id, err := s.shell.ResolveID(ref)
		if err != nil {
			failed = append(failed, err.Error())
			continue
		}
		item, _ := list.GetItem(id)
		if list.Remove(id) {
			removed = append(removed, item.Text)
		}
	}

	if len(removed) > 0 {
		if err := s.save(ctx); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if len(removed) > 0 {
		printSuccess(out, s.styles, "Removed %s: %s", display.Count(len(removed), "item"), strings.Join(quoteAll(removed), ", "))
	}
	for _, msg := range failed {
		printFailure(out, s.styles, "%s", msg)
	}
	return nil
}

func quoteAll(texts []string) []string {
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = fmt.Sprintf("%q", t)
	}
	return out
}

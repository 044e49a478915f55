package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"todolist/internal/domain"
)

var addCmd = &cobra.Command{
	Use:   "add [text...]",
	Short: "Add an item",
	Long: `Add an item to the list. All arguments are joined with spaces.

Items are unique by text, ignoring case and surrounding spaces.

Examples:
  todo add Buy milk
  todo add "Call the plumber"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	out := cmd.OutOrStdout()
	text := strings.Join(args, " ")

	id, err := s.shell.Submit(text)
	if err != nil {
		printFailure(out, s.styles, "%s", domain.UserMessage(err))
		return nil
	}

	if err := s.save(ctx); err != nil {
		return err
	}

	item, _ := s.shell.List().GetItem(id)
	printSuccess(out, s.styles, "Added %q", item.Text)
	fmt.Fprintln(out, s.styles.Info.Render("  ID: "+id))
	return nil
}

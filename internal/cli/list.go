package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"todolist/internal/todolist"
)

var (
	listFilter string
	listAll    bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Print the list",
	Long: `Print the list in display order (alphabetical, ignoring case).

--filter applies the same rule as typing in the interactive input: one
character matches items starting with it, longer text matches anywhere.
--all also prints the items the filter hides.

Examples:
  todo list
  todo list --filter milk
  todo list --filter b --all`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "", "Only show items matching the query")
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "Include items hidden by the filter")
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	list := s.shell.List()
	list.Filter(listFilter)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)

	if listAll {
		items := list.Items()
		todolist.SortForDisplay(items)
		for _, item := range items {
			text := s.styles.ItemStyle(item.IsDone, false).Render(item.Text)
			if !item.IsVisible {
				text = s.styles.Separator.Render(item.Text + " (hidden)")
			}
			fmt.Fprintf(out, "  %s %s  %s\n", s.styles.CheckboxFor(item.IsDone), text, s.styles.Separator.Render(item.ID))
		}
		if len(items) == 0 {
			fmt.Fprintln(out, s.styles.EmptyMessage.Render("  "+s.shell.Target().EmptyMessage()))
		}
	} else {
		rows := s.shell.Target().Rows()
		for _, row := range rows {
			fmt.Fprintf(out, "  %s %s  %s\n",
				s.styles.CheckboxFor(row.Done),
				s.styles.ItemStyle(row.Done, false).Render(row.Text),
				s.styles.Separator.Render(row.ID),
			)
		}
		if len(rows) == 0 {
			fmt.Fprintln(out, s.styles.EmptyMessage.Render("  "+s.shell.Target().EmptyMessage()))
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, s.styles.Subtitle.Render("  "+s.shell.Progress().String()))
	fmt.Fprintln(out)
	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"todolist/internal/display"
)

var doneCmd = &cobra.Command{
	Use:   "done [id|text...]",
	Short: "Toggle the done state of items",
	Long: `Toggle items between done and pending, by id or exact text.

Examples:
  todo done "Buy milk"
  todo done "Buy milk" "Call the plumber"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDone,
}

func init() {
	rootCmd.AddCommand(doneCmd)
}

func runDone(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	list := s.shell.List()
	out := cmd.OutOrStdout()

	changed := 0
	for _, ref := range args {
		id, err := s.shell.ResolveID(ref)
		if err != nil {
			printFailure(out, s.styles, "%s", err)
			continue
		}

		list.ToggleDone(id)
		changed++

		item, _ := list.GetItem(id)
		line := fmt.Sprintf("%s %s: %s", display.StatusIcon(item.IsDone), display.StatusLabel(item.IsDone), item.Text)
		fmt.Fprintln(out, s.styles.ItemStyle(item.IsDone, false).Render(line))
	}

	if changed == 0 {
		return nil
	}
	if err := s.save(ctx); err != nil {
		return err
	}

	p := list.Progress()
	fmt.Fprintln(out, s.styles.Subtitle.Render("  "+p.String()))
	return nil
}

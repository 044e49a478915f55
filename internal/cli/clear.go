package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"todolist/internal/display"
)

var clearForce bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every item",
	Long: `Remove every item from the list.
You will be prompted for confirmation unless you use the --force flag.

Examples:
  todo clear
  todo clear --force`,
	Args: cobra.NoArgs,
	RunE: runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)

	clearCmd.Flags().BoolVarP(&clearForce, "force", "f", false, "Skip confirmation prompt")
}

func runClear(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	out := cmd.OutOrStdout()
	count := s.shell.List().GetItemsCount()
	if count == 0 {
		fmt.Fprintln(out, s.styles.Info.Render("The list is already empty."))
		return nil
	}

	if !clearForce {
		fmt.Fprintln(out)
		fmt.Fprintln(out, s.styles.Error.Render(fmt.Sprintf("⚠  You are about to remove %s.", display.Count(count, "item"))))
		fmt.Fprint(out, s.styles.Subtitle.Render("   Are you sure? (y/N): "))

		reader := bufio.NewReader(cmd.InOrStdin())
		response, err := reader.ReadString('\n')
		if err != nil && response == "" {
			response = "n"
		}

		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Fprintln(out)
			fmt.Fprintln(out, s.styles.Info.Render("Clear cancelled."))
			return nil
		}
		fmt.Fprintln(out)
	}

	if err := s.shell.Discard(ctx); err != nil {
		return err
	}

	printSuccess(out, s.styles, "Removed %s", display.Count(count, "item"))
	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the stored lists",
	Long: `List the storage keys that hold a saved list. Pass one of them to
--key to work on that list.

Examples:
  todo keys
  todo --key work list`,
	Args: cobra.NoArgs,
	RunE: runKeys,
}

func init() {
	rootCmd.AddCommand(keysCmd)
}

func runKeys(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	keys, err := s.shell.StoredKeys(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	if len(keys) == 0 {
		fmt.Fprintln(out, s.styles.Info.Render("  No saved lists yet."))
		fmt.Fprintln(out)
		return nil
	}

	for _, key := range keys {
		prefix := "  "
		label := key
		if key == s.shell.StorageKey() {
			prefix = "▶ "
			label = s.styles.Success.Render(key + " (current)")
		}
		fmt.Fprintf(out, "%s%s\n", prefix, label)
	}
	fmt.Fprintln(out)
	return nil
}

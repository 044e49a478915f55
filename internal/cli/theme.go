package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"todolist/internal/config"
	"todolist/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme [name]",
	Short: "List themes or switch to one",
	Long: `Without arguments, list the available themes and show the current palette.
With a name, switch to that theme.

Examples:
  todo theme
  todo theme dracula`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return setTheme(cmd, args[0])
	}

	out := cmd.OutOrStdout()
	current, styles := loadStyles()

	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Title.Render(" Available Themes "))
	fmt.Fprintln(out)

	for _, name := range theme.ListThemes() {
		prefix := "  "
		if name == current.Name {
			prefix = "▶ "
			name = styles.Success.Render(name + " (current)")
		}
		fmt.Fprintf(out, "%s%s\n", prefix, name)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Info.Render("Palette:"))

	colors := []struct{ name, value string }{
		{"Primary", current.Primary},
		{"Success", current.Success},
		{"Error", current.Error},
		{"Done", current.ItemDone},
		{"Pending", current.ItemPending},
		{"Border", current.BorderColor},
	}
	for _, c := range colors {
		sample := lipgloss.NewStyle().
			Background(lipgloss.Color(c.value)).
			Foreground(lipgloss.Color(c.value)).
			Render("  ████  ")
		fmt.Fprintf(out, "  %-10s %s %s\n", c.name+":", sample, c.value)
	}

	fmt.Fprintln(out)
	return nil
}

func setTheme(cmd *cobra.Command, name string) error {
	if !theme.ThemeExists(name) {
		return fmt.Errorf("%w: %s", theme.ErrThemeNotFound, name)
	}

	if err := config.UpdateTheme(name); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	appConfig.ThemeName = name

	_, styles := loadStyles()
	printSuccess(cmd.OutOrStdout(), styles, "Theme set to '%s'", name)
	return nil
}

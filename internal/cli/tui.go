package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"todolist/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive list",
	Long: `Launch the interactive list. This is also what plain 'todo' runs.

The input at the top filters the list while you type and adds its text
when you press enter.

Keyboard shortcuts:
  Input:
    Enter       Add the typed text
    Esc         Clear the input
    Tab/↓       Move to the list

  List:
    ↑/k ↓/j     Move
    Space/Enter Toggle done
    Backspace   Remove item
    Tab/Esc     Back to the input
    ?           Toggle help

  Global:
    Ctrl+S      Save
    Ctrl+C      Save and quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	if err := checkAndRunSetup(cmd); err != nil {
		return err
	}

	ctx := context.Background()
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	// the input starts empty, so every item is shown
	s.shell.InputChanged("")

	model := tui.NewModel(ctx, s.shell, s.theme, s.styles, logger.Named("tui"))
	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

// runs the theme picker when no theme is configured yet
func checkAndRunSetup(cmd *cobra.Command) error {
	if appConfig.ThemeName != "" {
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Welcome to todo! Let's set up your theme.")
	fmt.Fprintln(out)

	p := tea.NewProgram(tui.NewSetupModel(), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run setup: %w", err)
	}

	setup, ok := final.(tui.SetupModel)
	if !ok || !setup.Confirmed() {
		return nil
	}
	if err := setup.SaveErr(); err != nil {
		fmt.Fprintf(out, "Warning: failed to save theme: %v\n", err)
	}

	appConfig.ThemeName = setup.Selected()
	fmt.Fprintf(out, "✓ Theme configured: '%s'\n\n", appConfig.ThemeName)
	return nil
}

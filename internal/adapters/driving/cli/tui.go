package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/flobnar/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui [file]",
	Short: "Step through a program's evaluation",
	Long: `Evaluate a program while recording every cell it visits, then step
through the recording in an interactive viewer.

The current cell is highlighted on the board and cells already visited are
coloured. The run is not recorded in history.

Controls:
  ←/h, →/l     - Step back / forward
  pgup, pgdn   - Jump 10 steps
  home/g       - First step
  end/G        - Last step
  ?            - Toggle help
  q            - Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runTUI,
}

var (
	// tuiInput feeds '~' during the recorded run.
	tuiInput string
	// tuiLimit caps the recorded visits.
	tuiLimit int
)

// runTeaProgram runs a bubbletea model to completion.
var runTeaProgram = func(model tea.Model) error {
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

func init() {
	tuiCmd.Flags().StringVarP(&tuiInput, "input", "i", "", "Characters read by '~'")
	tuiCmd.Flags().IntVar(&tuiLimit, "limit", tui.DefaultEventLimit, "Maximum visits to record, 0 for all")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := &tui.Ports{
		Interpreter: interpreterService,
		Programs:    programSource,
		NewConsole:  newConsole,
	}

	app, err := tui.NewApp(ports, args[0])
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context()).
		WithInput(tuiInput).
		WithEventLimit(tuiLimit)

	if err := runTeaProgram(app); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

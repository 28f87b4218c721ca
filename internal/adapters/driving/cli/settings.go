package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the grid size, interpreter limits and history recording.

Settings are stored in ~/.flobnar/config.toml. Flags on "run" override
them for a single run.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a setting. Available keys:

  grid.rows              rows of grid storage (1 to 10000)
  grid.columns           columns of grid storage (1 to 10000)
  interpreter.max_depth  recursion limit, 0 for unlimited
  interpreter.eof_value  value '~' returns at end of input
  interpreter.seed       seed for '?', 0 for time based
  history.enabled        record runs (true or false)`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset [key]",
	Short: "Restore a setting to its default",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsReset,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List setting keys",
	RunE:  runSettingsKeys,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Grid]")
	cmd.Printf("  Rows: %d\n", settings.Grid.Rows)
	cmd.Printf("  Columns: %d\n", settings.Grid.Columns)
	cmd.Println()

	cmd.Println("[Interpreter]")
	if settings.Interpreter.MaxDepth == 0 {
		cmd.Println("  Max depth: unlimited")
	} else {
		cmd.Printf("  Max depth: %d\n", settings.Interpreter.MaxDepth)
	}
	cmd.Printf("  EOF value: %d\n", settings.Interpreter.EOFValue)
	if settings.Interpreter.Seed == 0 {
		cmd.Println("  Seed: time based")
	} else {
		cmd.Printf("  Seed: %d\n", settings.Interpreter.Seed)
	}
	cmd.Println()

	cmd.Println("[History]")
	if settings.History.Enabled {
		cmd.Println("  Enabled: yes")
	} else {
		cmd.Println("  Enabled: no")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}
	cmd.Printf("Set %s to %s\n", args[0], args[1])
	return nil
}

func runSettingsReset(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Reset(args[0]); err != nil {
		return fmt.Errorf("failed to reset %s: %w", args[0], err)
	}
	cmd.Printf("Reset %s to its default\n", args[0])
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	for _, key := range settingsService.Keys() {
		cmd.Println(key)
	}
	return nil
}

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/flobnar/internal/core/domain"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Load a program without evaluating it",
	Long: `Load a program, verify it has exactly one @ and fits the grid, and
describe its layout.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if interpreterService == nil || programSource == nil {
		return errors.New("interpreter service not configured")
	}

	name := args[0]
	source, err := programSource.Read(cmd.Context(), name)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("no such Flobnar program as '%s' was found", name)
	}
	if err != nil {
		return err
	}

	result, err := interpreterService.Check(cmd.Context(), source)
	if err != nil {
		return err
	}

	cmd.Printf("Program: %s\n\n", name)
	cmd.Printf("  Anchor:    %s\n", result.Anchor)
	cmd.Printf("  Bounds:    %s to %s\n", result.Min, result.Max)
	cmd.Printf("  Non-blank: %d cells\n", result.NonBlank)
	cmd.Println()
	for _, line := range result.Lines {
		cmd.Printf("  | %s\n", line)
	}
	return nil
}

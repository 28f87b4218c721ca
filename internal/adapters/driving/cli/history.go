package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/flobnar/internal/core/domain"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded runs",
	Long:  `List, inspect or clear the runs recorded in the local history database.`,
	RunE:  runHistoryList,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent runs",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [run-id]",
	Short: "Show a recorded run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded runs",
	RunE:  runHistoryClear,
}

// historyLimit is the number of runs listed.
var historyLimit int

func init() {
	historyCmd.PersistentFlags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of runs to list, 0 for all")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	records, err := historyService.List(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(records) == 0 {
		cmd.Println("No runs recorded.")
		return nil
	}

	for i := range records {
		r := &records[i]
		outcome := fmt.Sprintf("result %d", r.Value)
		if !r.Succeeded() {
			outcome = "error"
		}
		cmd.Printf("%s  %s  %-12s %s\n",
			r.ID, r.StartedAt.Local().Format("2006-01-02 15:04:05"), outcome, r.Program)
	}
	cmd.Printf("\nTotal: %d runs\n", len(records))
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	record, err := historyService.Get(cmd.Context(), args[0])
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("no run with id %s", args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to get run: %w", err)
	}

	cmd.Printf("Run: %s\n\n", record.ID)
	cmd.Printf("  Program:  %s\n", record.Program)
	cmd.Printf("  Digest:   %s\n", record.Digest)
	cmd.Printf("  Started:  %s\n", record.StartedAt.Local().Format("2006-01-02 15:04:05"))
	cmd.Printf("  Duration: %s\n", record.Duration)
	cmd.Printf("  Steps:    %d\n", record.Steps)
	if record.Succeeded() {
		cmd.Printf("  Result:   %d\n", record.Value)
	} else {
		cmd.Printf("  Error:    %s\n", record.Error)
	}
	if record.Output != "" {
		cmd.Println("\n  Output:")
		cmd.Print(indent(record.Output, "    "))
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	n, err := historyService.Clear(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	cmd.Printf("Deleted %d runs.\n", n)
	return nil
}

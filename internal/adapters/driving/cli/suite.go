package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/flobnar/internal/core/domain"
)

var testCmd = &cobra.Command{
	Use:   "test [file...]",
	Short: "Run literate test documents",
	Long: `Run the example programs embedded in Markdown or YAML test documents.

In Markdown, indented blocks of "    | " lines are programs, "    + " lines
are input, "    = " lines are the expected output including the
"Result: N" line, and "    ? " lines are an expected error message.
YAML documents (.yaml, .yml) hold a list of tests with name, program,
input, output and error fields.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTest,
}

// testQuiet hides passing cases.
var testQuiet bool

func init() {
	testCmd.Flags().BoolVarP(&testQuiet, "quiet", "q", false, "Only report failing cases")
	rootCmd.AddCommand(testCmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	if suiteService == nil {
		return errors.New("suite service not configured")
	}

	passed, failed := 0, 0
	for _, name := range args {
		report, err := suiteService.RunFile(cmd.Context(), name)
		if err != nil {
			return fmt.Errorf("running %s: %w", name, err)
		}
		printReport(cmd, report)
		passed += report.Passed()
		failed += report.Failed()
	}

	cmd.Printf("\n%d passed, %d failed\n", passed, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d cases failed", failed, passed+failed)
	}
	return nil
}

func printReport(cmd *cobra.Command, report *domain.SuiteReport) {
	cmd.Printf("%s\n", report.Path)
	if len(report.Outcomes) == 0 {
		cmd.Println("  no test cases found")
		return
	}
	for i := range report.Outcomes {
		outcome := &report.Outcomes[i]
		if outcome.Passed {
			if !testQuiet {
				cmd.Printf("  PASS %s\n", outcome.Case.Name)
			}
			continue
		}

		cmd.Printf("  FAIL %s", outcome.Case.Name)
		if outcome.Case.Line > 0 {
			cmd.Printf(" (line %d)", outcome.Case.Line)
		}
		cmd.Println()
		if outcome.Case.ExpectsError() {
			cmd.Printf("    expected error: %s\n", outcome.Case.Error)
		} else {
			cmd.Printf("    expected:\n%s", indent(outcome.Case.Output, "      "))
		}
		cmd.Printf("    actual:\n%s", indent(outcome.Actual, "      "))
	}
}

func indent(s, prefix string) string {
	var b strings.Builder
	for _, line := range strings.Split(s, "\n") {
		b.WriteString(prefix)
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// Package cli provides the cobra command tree for the flobnar binary.
package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/flobnar/internal/core/ports/driven"
	"github.com/custodia-labs/flobnar/internal/core/ports/driving"
	"github.com/custodia-labs/flobnar/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services wired in by main.
var (
	interpreterService driving.InterpreterService
	settingsService    driving.SettingsService
	historyService     driving.HistoryService
	suiteService       driving.SuiteService
	programSource      driven.ProgramSource
	newConsole         driven.ConsoleFactory
	newRawConsole      driven.ConsoleFactory
	enterRawMode       func() (restore func() error, err error)
)

// Services aggregates everything the commands talk to.
type Services struct {
	Interpreter driving.InterpreterService
	Settings    driving.SettingsService
	History     driving.HistoryService
	Suite       driving.SuiteService
	Programs    driven.ProgramSource

	// NewConsole builds the console for ',' and '~'.
	NewConsole driven.ConsoleFactory

	// NewRawConsole builds a console that treats Ctrl-D as end of input.
	// Optional; used with --raw.
	NewRawConsole driven.ConsoleFactory

	// EnterRawMode puts the terminal into raw mode. Optional; used with --raw.
	EnterRawMode func() (restore func() error, err error)
}

// SetServices installs the services used by all commands.
func SetServices(s Services) {
	interpreterService = s.Interpreter
	settingsService = s.Settings
	historyService = s.History
	suiteService = s.Suite
	programSource = s.Programs
	newConsole = s.NewConsole
	newRawConsole = s.NewRawConsole
	enterRawMode = s.EnterRawMode
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// verbose enables debug logging for every command.
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "flobnar [file]",
	Short: "Interpreter for the Flobnar two-dimensional language",
	Long: `flobnar evaluates programs written in Flobnar, a two-dimensional language
where every cell is an expression that pulls values from its neighbours.

Evaluation starts at the single @ in the program, taking the value of the
cell to its west. Running "flobnar FILE" is the same as "flobnar run FILE".`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runProgram(cmd, args[0], defaultRunFlags())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log load and evaluation details to stderr")
}

// Execute runs the root command under ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// SetOutput redirects command output and errors, for embedding and tests.
func SetOutput(out, errOut io.Writer) {
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
}

// SetInput redirects command input.
func SetInput(in io.Reader) {
	rootCmd.SetIn(in)
}

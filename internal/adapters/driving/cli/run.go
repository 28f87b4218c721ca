package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/flobnar/internal/adapters/driving/watch"
	"github.com/custodia-labs/flobnar/internal/core/domain"
	"github.com/custodia-labs/flobnar/internal/core/ports/driving"
	"github.com/custodia-labs/flobnar/internal/logger"
)

// stdinName selects standard input as the program source.
const stdinName = "-"

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Evaluate a program",
	Long: `Evaluate a Flobnar program and print its result.

Characters written by ',' are printed as they are produced, followed by
"Result: N" with the value the program evaluated to. Use "-" to read the
program from standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f := runOpts
		f.maxDepthSet = cmd.Flags().Changed("max-depth")
		f.seedSet = cmd.Flags().Changed("seed")
		f.eofSet = cmd.Flags().Changed("eof")
		return runProgram(cmd, args[0], f)
	},
}

// runFlags holds the run command flags.
type runFlags struct {
	maxDepth int
	seed     int64
	eof      int

	maxDepthSet bool
	seedSet     bool
	eofSet      bool

	trace     bool
	watch     bool
	raw       bool
	noHistory bool
}

var runOpts runFlags

func defaultRunFlags() runFlags {
	return runFlags{}
}

// request builds a run request carrying only the overrides that were set.
func (f runFlags) request() domain.RunRequest {
	req := domain.RunRequest{SkipHistory: f.noHistory}
	if f.maxDepthSet {
		v := f.maxDepth
		req.MaxDepth = &v
	}
	if f.seedSet {
		v := f.seed
		req.Seed = &v
	}
	if f.eofSet {
		v := f.eof
		req.EOFValue = &v
	}
	return req
}

func init() {
	runCmd.Flags().IntVar(&runOpts.maxDepth, "max-depth", domain.DefaultMaxDepth, "Recursion limit, 0 for unlimited")
	runCmd.Flags().Int64Var(&runOpts.seed, "seed", 0, "Seed for '?', 0 for time based")
	runCmd.Flags().IntVar(&runOpts.eof, "eof", domain.DefaultEOFValue, "Value '~' returns at end of input")
	runCmd.Flags().BoolVar(&runOpts.trace, "trace", false, "Log every visited cell to stderr")
	runCmd.Flags().BoolVarP(&runOpts.watch, "watch", "w", false, "Rerun whenever the file changes")
	runCmd.Flags().BoolVar(&runOpts.raw, "raw", false, "Read '~' input one keystroke at a time, Ctrl-D ends input")
	runCmd.Flags().BoolVar(&runOpts.noHistory, "no-history", false, "Do not record this run")
	rootCmd.AddCommand(runCmd)
}

func runProgram(cmd *cobra.Command, name string, f runFlags) error {
	if interpreterService == nil {
		return errors.New("interpreter service not configured")
	}
	if newConsole == nil {
		return errors.New("console not configured")
	}

	req := f.request()
	opts := driving.RunOptions{}
	if f.trace {
		logger.SetTrace(true)
		defer logger.SetTrace(false)
		opts.Tracer = logTrace
	}

	consoleFactory := newConsole
	if f.raw {
		if newRawConsole == nil || enterRawMode == nil {
			return errors.New("raw input not available")
		}
		restore, err := enterRawMode()
		if err != nil {
			return fmt.Errorf("entering raw mode: %w", err)
		}
		defer restore() //nolint:errcheck
		consoleFactory = newRawConsole
	}

	execute := func(ctx context.Context) error {
		opts.Console = consoleFactory(cmd.InOrStdin(), cmd.OutOrStdout())
		result, err := interpreterService.RunFile(ctx, name, req, opts)
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no such Flobnar program as '%s' was found", name)
		}
		if err != nil {
			return err
		}
		cmd.Printf("Result: %d\n", result.Value)
		return nil
	}

	if !f.watch {
		return execute(cmd.Context())
	}

	if name == stdinName {
		return errors.New("cannot watch standard input")
	}
	w, err := watch.New(name)
	if err != nil {
		return err
	}
	cmd.PrintErrf("Watching %s, press Ctrl-C to stop\n", w.Path())
	return w.Run(cmd.Context(), func(ctx context.Context) error {
		if err := execute(ctx); err != nil {
			cmd.PrintErrf("Error: %v\n", err)
		}
		return nil
	})
}

func logTrace(ev domain.TraceEvent) {
	logger.Trace("step %d depth %d %s from %s %q",
		ev.Step, ev.Depth, ev.Pos, ev.From, domain.Printable(ev.Symbol))
}

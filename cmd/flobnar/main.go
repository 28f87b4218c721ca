// Command flobnar runs programs written in Flobnar, a two-dimensional
// language evaluated by pulling values from neighbouring cells.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/flobnar/internal/adapters/driven/config/file"
	"github.com/custodia-labs/flobnar/internal/adapters/driven/console"
	"github.com/custodia-labs/flobnar/internal/adapters/driven/random"
	"github.com/custodia-labs/flobnar/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/flobnar/internal/adapters/driven/suite"
	"github.com/custodia-labs/flobnar/internal/adapters/driving/cli"
	"github.com/custodia-labs/flobnar/internal/core/ports/driven"
	"github.com/custodia-labs/flobnar/internal/core/services"
	"github.com/custodia-labs/flobnar/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx)
	stop()
	os.Exit(code)
}

func run(ctx context.Context) int {
	configDir, err := file.DefaultDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// History is optional; without a database runs are simply not recorded.
	var runStore driven.RunStore
	store, err := sqlite.NewStore("")
	if err != nil {
		logger.Warn("Run history disabled: %v", err)
	} else {
		defer store.Close()
		runStore = store.RunStore()
	}

	programs := file.NewProgramSource(os.Stdin)
	settings := services.NewSettingsService(configStore)
	interpreter := services.NewInterpreterService(settings, programs, runStore, random.NewChooser)

	cli.SetServices(cli.Services{
		Interpreter: interpreter,
		Settings:    settings,
		History:     services.NewHistoryService(runStore),
		Suite:       services.NewSuiteService(interpreter, programs, suite.NewLoader(), console.NewConsole),
		Programs:    programs,
		NewConsole:  console.NewConsole,

		NewRawConsole: func(in io.Reader, out io.Writer) driven.Console {
			return console.New(in, out, console.WithRawInput())
		},
		EnterRawMode: func() (func() error, error) {
			return console.MakeRaw(os.Stdin)
		},
	})
	cli.SetVersion(version)
	cli.SetOutput(os.Stdout, os.Stderr)

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

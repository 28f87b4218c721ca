package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/flobnar/internal/adapters/driven/console"
	"github.com/custodia-labs/flobnar/internal/adapters/driven/random"
	"github.com/custodia-labs/flobnar/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/flobnar/internal/adapters/driven/suite"
	"github.com/custodia-labs/flobnar/internal/core/domain"
	"github.com/custodia-labs/flobnar/internal/core/services"
)

// mapPrograms serves program text from memory.
type mapPrograms map[string]string

func (m mapPrograms) Read(_ context.Context, name string) ([]byte, error) {
	src, ok := m[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return []byte(src), nil
}

// testEnv holds the stores behind the wired services.
type testEnv struct {
	configStore *memory.ConfigStore
	runStore    *memory.RunStore
}

// setupTestServices wires real services over in-memory stores.
func setupTestServices(t *testing.T, programs map[string]string) *testEnv {
	t.Helper()

	env := &testEnv{
		configStore: memory.NewConfigStore(),
		runStore:    memory.NewRunStore(),
	}
	src := mapPrograms(programs)
	settings := services.NewSettingsService(env.configStore)
	interp := services.NewInterpreterService(settings, src, env.runStore, random.NewChooser)

	SetServices(Services{
		Interpreter: interp,
		Settings:    settings,
		History:     services.NewHistoryService(env.runStore),
		Suite:       services.NewSuiteService(interp, src, suite.NewLoader(), console.NewConsole),
		Programs:    src,
		NewConsole:  console.NewConsole,
	})
	t.Cleanup(func() {
		SetServices(Services{})
	})
	return env
}

// execute runs the root command with args and input, returning stdout and stderr.
func execute(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		resetFlags(rootCmd)
	}()

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

// resetFlags restores every flag in the tree to its default so that
// values do not leak between tests.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

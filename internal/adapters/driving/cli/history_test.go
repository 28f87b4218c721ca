package cli

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/flobnar/internal/core/domain"
	"github.com/custodia-labs/flobnar/internal/core/services"
)

func seedHistory(t *testing.T, env *testEnv) (ok, failed *domain.RunRecord) {
	t.Helper()
	ctx := context.Background()

	ok = &domain.RunRecord{
		Program:   "add.flob",
		Value:     4,
		Output:    "hi",
		Steps:     3,
		StartedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Duration:  time.Millisecond,
	}
	failed = &domain.RunRecord{
		Program:   "bad.flob",
		Error:     "evaluation failed: boom",
		StartedAt: time.Date(2026, 1, 2, 3, 5, 0, 0, time.UTC),
	}
	require.NoError(t, env.runStore.Save(ctx, ok))
	require.NoError(t, env.runStore.Save(ctx, failed))
	return ok, failed
}

func TestHistoryCmd_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range historyCmd.Commands() {
		names[c.Name()] = true
	}

	assert.True(t, names["list"])
	assert.True(t, names["show"])
	assert.True(t, names["clear"])
}

func TestHistoryCmd_LimitFlag(t *testing.T) {
	flag := historyCmd.PersistentFlags().Lookup("limit")
	require.NotNil(t, flag)
	assert.Equal(t, "n", flag.Shorthand)
	assert.Equal(t, "20", flag.DefValue)
}

func TestHistoryCmd_List(t *testing.T) {
	env := setupTestServices(t, nil)
	ok, failed := seedHistory(t, env)

	out, _, err := execute(t, "", "history")

	require.NoError(t, err)
	assert.Contains(t, out, ok.ID)
	assert.Contains(t, out, "result 4")
	assert.Contains(t, out, failed.ID)
	assert.Contains(t, out, "error")
	assert.Contains(t, out, "Total: 2 runs")
	assert.Less(t, strings.Index(out, failed.ID), strings.Index(out, ok.ID), "newest first")
}

func TestHistoryCmd_ListLimit(t *testing.T) {
	env := setupTestServices(t, nil)
	seedHistory(t, env)

	out, _, err := execute(t, "", "history", "list", "-n", "1")

	require.NoError(t, err)
	assert.Contains(t, out, "Total: 1 runs")
}

func TestHistoryCmd_ListEmpty(t *testing.T) {
	setupTestServices(t, nil)

	out, _, err := execute(t, "", "history", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "No runs recorded.")
}

func TestHistoryCmd_Show(t *testing.T) {
	env := setupTestServices(t, nil)
	ok, failed := seedHistory(t, env)

	t.Run("successful run", func(t *testing.T) {
		out, _, err := execute(t, "", "history", "show", ok.ID)

		require.NoError(t, err)
		assert.Contains(t, out, "Run: "+ok.ID)
		assert.Contains(t, out, "Program:  add.flob")
		assert.Contains(t, out, "Result:   4")
		assert.Contains(t, out, "Steps:    3")
		assert.Contains(t, out, "    hi\n")
	})

	t.Run("failed run", func(t *testing.T) {
		out, _, err := execute(t, "", "history", "show", failed.ID)

		require.NoError(t, err)
		assert.Contains(t, out, "Error:    evaluation failed: boom")
	})

	t.Run("unknown id", func(t *testing.T) {
		_, _, err := execute(t, "", "history", "show", "nope")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no run with id nope")
	})
}

func TestHistoryCmd_Clear(t *testing.T) {
	env := setupTestServices(t, nil)
	seedHistory(t, env)

	out, _, err := execute(t, "", "history", "clear")

	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 2 runs.")

	records, err := env.runStore.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestHistoryCmd_Unavailable(t *testing.T) {
	setupTestServices(t, nil)
	historyService = services.NewHistoryService(nil)

	_, _, err := execute(t, "", "history", "list")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrHistoryUnavailable)
}

func TestHistoryCmd_ServiceNotConfigured(t *testing.T) {
	SetServices(Services{})

	for _, args := range [][]string{{"history"}, {"history", "show", "x"}, {"history", "clear"}} {
		_, _, err := execute(t, "", args...)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "history service not configured")
	}
}

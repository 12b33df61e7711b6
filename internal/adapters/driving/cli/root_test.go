package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driven/config/file"
	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driven/extract"
	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driven/storage/memory"
	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
	"github.com/hirewire-labs/hirewire-cli/internal/core/services"
	"github.com/hirewire-labs/hirewire-cli/internal/testutil"
)

// testServices exposes the concrete services behind the package vars.
type testServices struct {
	Tracker   *services.TrackerService
	Store     *memory.SlotStore
	Generator *testutil.Generator
	Prompts   *file.PromptStore
}

// setupTestServices wires in-memory services seeded with jobs and
// restores the package state when the test ends.
func setupTestServices(t *testing.T, jobs ...domain.JobApplication) *testServices {
	t.Helper()

	tracker, store := testutil.NewTracker(t, jobs...)
	gen := &testutil.Generator{Text: "generated text"}
	assistant := services.NewAssistantService(tracker, gen)

	prompts, err := file.NewPromptStore(t.TempDir(), services.DefaultPrompts())
	require.NoError(t, err)
	assistant.SetPromptStore(prompts)

	SetServices(&Services{
		Tracker:   tracker,
		Assistant: assistant,
		Settings:  services.NewSettingsService(memory.NewConfigStore(), nil),
		Views:     services.NewViewSelector(),
		Extractor: extract.New(),
		Prompts:   prompts,
		Slots:     store,
		Storage:   "Memory (not persisted)",
	})
	t.Cleanup(func() { SetServices(nil) })

	return &testServices{Tracker: tracker, Store: store, Generator: gen, Prompts: prompts}
}

// resetFlags restores every flag in the command tree to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// executeCommand runs the root command with args and returns its output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeCommandWithInput(t, "", args...)
}

// executeCommandWithInput runs the root command feeding input on stdin.
func executeCommandWithInput(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "hirewire", rootCmd.Use)
	assert.Contains(t, rootCmd.Long, "hirewire tui")
}

func TestRootCmd_GlobalFlags(t *testing.T) {
	for _, name := range []string{"verbose", "config-dir", "ephemeral"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{
		"job", "contact", "reminder", "resume", "social", "stats",
		"assist", "data", "reset", "settings", "tui", "mcp", "version",
	} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestRequireTracker_NotConfigured(t *testing.T) {
	SetServices(nil)

	_, err := executeCommand(t, "job", "list")

	assert.EqualError(t, err, "tracker service not configured")
}

func TestRequireAssistant_NotConfigured(t *testing.T) {
	SetServices(nil)

	_, err := requireAssistant()

	assert.EqualError(t, err, "assistant service not configured")
}

func TestSetServices_NilClears(t *testing.T) {
	setupTestServices(t)
	require.NotNil(t, trackerService)

	SetServices(nil)

	assert.Nil(t, trackerService)
	assert.Nil(t, assistantService)
	assert.Nil(t, promptAdmin)
	assert.Empty(t, storageInfo)
	assert.False(t, servicesReady)
}

func TestInitServices_UsesBootstrapper(t *testing.T) {
	SetServices(nil)
	t.Cleanup(func() {
		SetBootstrapper(nil)
		SetServices(nil)
	})

	tracker, _ := testutil.NewTracker(t)
	var gotOpts Options
	closed := false
	SetBootstrapper(func(_ context.Context, opts Options) (*Services, func() error, error) {
		gotOpts = opts
		return &Services{Tracker: tracker, Views: services.NewViewSelector()}, func() error {
			closed = true
			return nil
		}, nil
	})

	out, err := executeCommand(t, "--ephemeral", "--config-dir", "/tmp/hw", "job", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "No applications found.")
	assert.True(t, gotOpts.Ephemeral)
	assert.Equal(t, "/tmp/hw", gotOpts.ConfigDir)
	assert.True(t, closed)
}

func TestInitServices_BootstrapError(t *testing.T) {
	SetServices(nil)
	t.Cleanup(func() { SetBootstrapper(nil) })
	SetBootstrapper(func(context.Context, Options) (*Services, func() error, error) {
		return nil, nil, errors.New("no disk")
	})

	_, err := executeCommand(t, "job", "list")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "starting hirewire: no disk")
}

func TestInitServices_SkippedForVersion(t *testing.T) {
	SetServices(nil)
	called := false
	t.Cleanup(func() { SetBootstrapper(nil) })
	SetBootstrapper(func(context.Context, Options) (*Services, func() error, error) {
		called = true
		return &Services{}, nil, nil
	})

	_, err := executeCommand(t, "version")

	require.NoError(t, err)
	assert.False(t, called)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}

func TestPrintJSON(t *testing.T) {
	buf := new(bytes.Buffer)
	cmd := &cobra.Command{}
	cmd.SetOut(buf)

	require.NoError(t, printJSON(cmd, map[string]int{"apps": 3}))

	assert.Contains(t, buf.String(), `"apps": 3`)
}

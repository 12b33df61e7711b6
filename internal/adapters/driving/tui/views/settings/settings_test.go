package settings

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driven/storage/memory"
	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/messages"
	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
	"github.com/hirewire-labs/hirewire-cli/internal/core/services"
	"github.com/hirewire-labs/hirewire-cli/internal/testutil"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newSettingsService() *services.SettingsService {
	return services.NewSettingsService(memory.NewConfigStore(), nil)
}

func TestNewView_NilParams(t *testing.T) {
	view := NewView(nil, nil, nil, "")

	require.NotNil(t, view)
	assert.Nil(t, view.Init())
	assert.Contains(t, view.View(), "Settings service not available.")
}

func TestView_LoadSettings(t *testing.T) {
	view := NewView(nil, newSettingsService(), nil, "SQLite (/tmp/hirewire.db)")

	cmd := view.Init()
	require.NotNil(t, cmd)
	msg := cmd()
	loaded, ok := msg.(messages.SettingsLoaded)
	require.True(t, ok)
	require.NoError(t, loaded.Err)

	view.Update(loaded)

	require.NotNil(t, view.Settings())
	out := view.View()
	assert.Contains(t, out, "Provider:")
	assert.Contains(t, out, "Backend:")
	assert.Contains(t, out, "Active:   SQLite (/tmp/hirewire.db)")
}

func TestView_MissingAPIKeyShowsWarning(t *testing.T) {
	view := NewView(nil, newSettingsService(), nil, "")

	view.Update(view.Init()())

	out := view.View()
	assert.Contains(t, out, "missing")
	assert.Contains(t, out, "Configuration valid")
}

func TestView_PurgeRequiresConfirmation(t *testing.T) {
	tracker, _ := testutil.NewTracker(t,
		domain.JobApplication{ID: "1", Company: "Acme", Role: "Engineer", Status: domain.StatusApplied},
	)
	view := NewView(nil, nil, tracker, "")

	_, cmd := view.Update(keyRune('p'))
	assert.Nil(t, cmd)
	assert.True(t, view.Confirming())
	assert.True(t, view.Capturing())
	assert.Contains(t, view.View(), "[y/N]")

	_, cmd = view.Update(keyRune('n'))
	assert.Nil(t, cmd)
	assert.False(t, view.Confirming())
	assert.Contains(t, view.View(), "Purge cancelled.")
	assert.Len(t, tracker.Jobs(), 1)
}

func TestView_PurgeConfirmed(t *testing.T) {
	tracker, _ := testutil.NewTracker(t,
		domain.JobApplication{ID: "1", Company: "Acme", Role: "Engineer", Status: domain.StatusApplied},
	)
	view := NewView(nil, nil, tracker, "")

	view.Update(keyRune('p'))
	_, cmd := view.Update(keyRune('y'))
	require.NotNil(t, cmd)

	msg := cmd()
	purged, ok := msg.(messages.RecordsPurged)
	require.True(t, ok)
	require.NoError(t, purged.Err)

	view.Update(purged)
	assert.Contains(t, view.View(), "All records purged.")
	assert.Empty(t, tracker.Jobs())
}

func TestView_PurgeError(t *testing.T) {
	view := NewView(nil, nil, nil, "")

	view.Update(messages.RecordsPurged{Err: errors.New("disk full")})

	assert.Contains(t, view.View(), "disk full")
}

func TestView_PurgeWithoutTracker(t *testing.T) {
	view := NewView(nil, nil, nil, "")

	view.Update(keyRune('p'))

	assert.False(t, view.Confirming())
}

func TestView_ReloadKey(t *testing.T) {
	view := NewView(nil, newSettingsService(), nil, "")

	_, cmd := view.Update(keyRune('r'))

	require.NotNil(t, cmd)
	_, ok := cmd().(messages.SettingsLoaded)
	assert.True(t, ok)
}

func TestView_WindowSize(t *testing.T) {
	view := NewView(nil, nil, nil, "")

	view.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.True(t, view.ready)
	assert.Equal(t, 80, view.width)
	assert.Equal(t, 24, view.height)
}

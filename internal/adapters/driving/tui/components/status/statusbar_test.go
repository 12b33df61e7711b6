package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/keymap"
	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 80, bar.Width())
}

func TestNewBar_NilArgs(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
}

func TestStatusBar_InitAndUpdate(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.Nil(t, bar.Init())
	updated, cmd := bar.Update(nil)
	assert.Equal(t, bar, updated)
	assert.Nil(t, cmd)
}

func TestStatusBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("boom")

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
}

func TestStatusBar_View(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		message  string
		contains string
	}{
		{"ready", StateReady, "", "Ready"},
		{"working default", StateWorking, "", "Working..."},
		{"working message", StateWorking, "Generating guide", "Generating guide..."},
		{"error", StateError, "", "Error"},
		{"error message", StateError, "write failed", "Error: write failed"},
		{"done", StateDone, "Deleted", "Deleted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewBar(nil, nil)
			bar.SetWidth(120)
			bar.SetState(tt.state)
			bar.SetMessage(tt.message)

			assert.Contains(t, bar.View(), tt.contains)
		})
	}
}

func TestStatusBar_ViewShowsStorageAndAI(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)
	bar.SetStorage("sqlite")

	view := bar.View()
	assert.Contains(t, view, "sqlite")
	assert.Contains(t, view, "AI off")

	bar.SetAIReady(true)
	assert.Contains(t, bar.View(), "AI on")
}

func TestStatusBar_ViewShowsKeybindings(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)

	view := bar.View()
	assert.Contains(t, view, "esc: menu")
	assert.Contains(t, view, "q: quit")
}

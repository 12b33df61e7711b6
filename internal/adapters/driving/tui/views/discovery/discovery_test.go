package discovery

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/messages"
	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
	"github.com/hirewire-labs/hirewire-cli/internal/core/services"
	"github.com/hirewire-labs/hirewire-cli/internal/testutil"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewView_NilAssistant(t *testing.T) {
	view := NewView(nil, nil)

	require.NotNil(t, view)
	assert.Nil(t, view.Init())
	assert.Contains(t, view.View(), "AI assistant not configured")

	_, cmd := view.Update(keyRune('g'))
	assert.Nil(t, cmd)
}

func TestView_Discover(t *testing.T) {
	tracker, _ := testutil.NewTracker(t,
		domain.JobApplication{ID: "1", Company: "Acme", Role: "Engineer", Status: domain.StatusApplied},
	)
	gen := &testutil.Generator{Text: "Platform Engineer\nSRE"}
	view := NewView(nil, services.NewAssistantService(tracker, gen))

	assert.Contains(t, view.View(), "Press g")

	_, cmd := view.Update(keyRune('g'))
	require.NotNil(t, cmd)
	assert.Contains(t, view.View(), "Looking for roles...")

	msg := cmd()
	done, ok := msg.(messages.GenerationCompleted)
	require.True(t, ok)
	assert.Equal(t, messages.GenerateDiscovery, done.Kind)

	view.Update(done)
	assert.Equal(t, "Platform Engineer\nSRE", view.Suggestions())
	assert.Contains(t, view.View(), "Platform Engineer")
	assert.Equal(t, 1, gen.Calls())
}

func TestView_IgnoresOtherGenerations(t *testing.T) {
	view := NewView(nil, nil)

	view.Update(messages.GenerationCompleted{Kind: messages.GenerateMock, Text: "nope"})

	assert.Empty(t, view.Suggestions())
}

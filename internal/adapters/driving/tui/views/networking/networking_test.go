package networking

import (
	"context"
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

func newTracker(t *testing.T) *services.TrackerService {
	t.Helper()
	tracker, _ := testutil.NewTracker(t)
	require.NoError(t, tracker.SetContacts(context.Background(), []domain.Contact{
		{ID: "c1", Name: "Ada Lovelace", Company: "Analytical", Role: "Founder", LastContact: "2026-10-01"},
		{ID: "c2", Name: "Grace Hopper", Company: "Navy", Role: "Admiral"},
	}))
	return tracker
}

func TestNewView_NilParams(t *testing.T) {
	view := NewView(nil, nil)

	require.NotNil(t, view)
	assert.Nil(t, view.Init())
	assert.Contains(t, view.View(), "No contacts found.")
}

func TestView_ListsContactsAndProfiles(t *testing.T) {
	view := NewView(nil, newTracker(t))
	view.Init()

	out := view.View()
	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "last: 2026-10-01")
	assert.Contains(t, out, "Grace Hopper")
	assert.Contains(t, out, "Social Profiles")
}

func TestView_Search(t *testing.T) {
	view := NewView(nil, newTracker(t))
	view.Init()

	view.Update(keyRune('/'))
	require.True(t, view.Capturing())
	for _, r := range "navy" {
		view.Update(keyRune(r))
	}

	require.Len(t, view.Contacts(), 1)
	assert.Equal(t, "c2", view.Contacts()[0].ID)

	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, view.Capturing())
}

func TestView_Navigate(t *testing.T) {
	view := NewView(nil, newTracker(t))
	view.Init()

	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, view.Selected())
	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, view.Selected())
	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, view.Selected())
}

func TestView_Delete(t *testing.T) {
	tracker := newTracker(t)
	view := NewView(nil, tracker)
	view.Init()

	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := view.Update(keyRune('d'))
	require.NotNil(t, cmd)

	msg := cmd()
	deleted, ok := msg.(messages.ContactDeleted)
	require.True(t, ok)
	assert.Equal(t, "c2", deleted.ID)
	require.NoError(t, deleted.Err)

	view.Update(deleted)
	require.Len(t, view.Contacts(), 1)
	assert.Equal(t, 0, view.Selected())
	assert.Len(t, tracker.Contacts(), 1)
}

func TestView_DeleteEmpty(t *testing.T) {
	tracker, _ := testutil.NewTracker(t)
	view := NewView(nil, tracker)
	view.Init()

	_, cmd := view.Update(keyRune('d'))

	assert.Nil(t, cmd)
}

package resume

import (
	"context"
	"errors"
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

func TestNewView_NilParams(t *testing.T) {
	view := NewView(nil, nil, nil)

	require.NotNil(t, view)
	assert.Nil(t, view.Init())
	assert.Contains(t, view.View(), "No summary yet.")
}

func TestView_ShowsProfile(t *testing.T) {
	tracker, _ := testutil.NewTracker(t)
	require.NoError(t, tracker.UpdateResume(context.Background(), func(r domain.ResumeProfile) domain.ResumeProfile {
		r.Experience = append(r.Experience, domain.Section{ID: "e1", Title: "Staff Engineer", Date: "2020-2024"})
		r.Projects = append(r.Projects, domain.Project{ID: "p1", Name: "HireWire", Tech: []string{"Go", "SQLite"}})
		return r
	}))
	view := NewView(nil, tracker, nil)
	view.Init()

	out := view.View()
	assert.Contains(t, out, "Alex Venture")
	assert.Contains(t, out, "US-Resume")
	assert.Contains(t, out, "Staff Engineer")
	assert.Contains(t, out, "HireWire")
	assert.Contains(t, out, "Go, SQLite")
	assert.NotContains(t, out, "[g] generate summary")
}

func TestView_GenerateSummary(t *testing.T) {
	tracker, _ := testutil.NewTracker(t)
	assistant := services.NewAssistantService(tracker, &testutil.Generator{Text: "Builder of reliable systems."})
	view := NewView(nil, tracker, assistant)
	view.Init()

	_, cmd := view.Update(keyRune('g'))
	require.NotNil(t, cmd)
	assert.Contains(t, view.View(), "Generating...")

	_, again := view.Update(keyRune('g'))
	assert.Nil(t, again)

	msg := cmd()
	done, ok := msg.(messages.GenerationCompleted)
	require.True(t, ok)
	assert.Equal(t, messages.GenerateSummary, done.Kind)

	view.Update(done)
	assert.Equal(t, "Builder of reliable systems.", view.Profile().Summary)
	assert.Contains(t, view.View(), "Builder of reliable systems.")
}

func TestView_GenerateSummaryFailureKeepsOld(t *testing.T) {
	tracker, _ := testutil.NewTracker(t)
	old := tracker.Resume().Summary
	assistant := services.NewAssistantService(tracker, &testutil.Generator{Err: errors.New("quota")})
	view := NewView(nil, tracker, assistant)
	view.Init()

	_, cmd := view.Update(keyRune('g'))
	require.NotNil(t, cmd)
	view.Update(cmd())

	assert.Equal(t, old, view.Profile().Summary)
}

func TestView_IgnoresOtherGenerations(t *testing.T) {
	tracker, _ := testutil.NewTracker(t)
	view := NewView(nil, tracker, nil)
	view.Init()
	view.generating = true

	view.Update(messages.GenerationCompleted{Kind: messages.GenerateGuide})

	assert.True(t, view.generating)
}

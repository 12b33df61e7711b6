package list

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
)

func testJobs() []domain.JobApplication {
	return []domain.JobApplication{
		{ID: "1", Company: "Acme", Role: "Engineer", Status: domain.StatusApplied, DateApplied: "2026-10-01"},
		{ID: "2", Company: "Globex", Role: "Lead", Status: domain.StatusInterview, DateApplied: "2026-10-02"},
		{ID: "3", Company: "Initech", Role: "Architect", Status: domain.StatusOffer, DateApplied: "2026-10-03"},
	}
}

func TestNewJobList(t *testing.T) {
	l := NewJobList(nil, "Nothing here")

	require.NotNil(t, l)
	assert.Equal(t, 0, l.Count())
	assert.Nil(t, l.SelectedJob())
	assert.Contains(t, l.View(), "Nothing here")
}

func TestJobList_Navigation(t *testing.T) {
	l := NewJobList(nil, "")
	l.SetJobs(testJobs())

	l.MoveUp()
	assert.Equal(t, 0, l.Selected())

	l.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, l.Selected())

	l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 2, l.Selected())

	l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, "2", l.SelectedJob().ID)
}

func TestJobList_SetJobsClampsSelection(t *testing.T) {
	l := NewJobList(nil, "")
	l.SetJobs(testJobs())
	l.SetSelected(2)

	l.SetJobs(testJobs()[:1])
	assert.Equal(t, 0, l.Selected())

	l.SetJobs(nil)
	assert.Equal(t, 0, l.Selected())
	assert.Nil(t, l.SelectedJob())
}

func TestJobList_SetSelectedOutOfRange(t *testing.T) {
	l := NewJobList(nil, "")
	l.SetJobs(testJobs())

	l.SetSelected(10)
	assert.Equal(t, 0, l.Selected())
	l.SetSelected(-1)
	assert.Equal(t, 0, l.Selected())
}

func TestJobList_View(t *testing.T) {
	l := NewJobList(nil, "")
	l.SetJobs(testJobs())

	view := l.View()
	assert.Contains(t, view, "Engineer @ Acme")
	assert.Contains(t, view, "Interview")
	assert.Contains(t, view, "2026-10-03")
}

func TestJobList_ViewScrollsToSelection(t *testing.T) {
	l := NewJobList(nil, "")
	l.SetJobs(testJobs())
	l.SetDimensions(80, 3)
	l.SetSelected(2)

	view := l.View()
	assert.Contains(t, view, "Architect")
	assert.NotContains(t, view, "Engineer @ Acme")
}

func TestClip(t *testing.T) {
	assert.Equal(t, "short", clip("short", 10))
	assert.Equal(t, "abcdefg...", clip("abcdefghijklmnop", 10))
}

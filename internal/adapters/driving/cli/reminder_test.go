package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
)

func TestReminderAdd(t *testing.T) {
	svc := setupTestServices(t, cliJobs()...)

	out, err := executeCommand(t, "reminder", "add", "--job", "1", "--type", "interview", "--date", "2026-10-20")

	require.NoError(t, err)
	assert.Contains(t, out, "Added Interview reminder for 2026-10-20 (id-1)")
	reminders := svc.Tracker.Reminders()
	require.Len(t, reminders, 1)
	assert.Equal(t, "1", reminders[0].JobID)
	assert.False(t, reminders[0].Completed)
}

func TestReminderAdd_Invalid(t *testing.T) {
	setupTestServices(t)

	_, err := executeCommand(t, "reminder", "add", "--type", "party", "--date", "2026-10-20")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = executeCommand(t, "reminder", "add", "--date", "20 Oct")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = executeCommand(t, "reminder", "add")
	assert.Error(t, err)
}

func TestReminderList(t *testing.T) {
	svc := setupTestServices(t, cliJobs()...)
	require.NoError(t, svc.Tracker.SetReminders(t.Context(), []domain.Reminder{
		{ID: "r1", JobID: "1", Type: domain.ReminderFollowUp, Date: "2026-10-16"},
		{ID: "r2", JobID: "gone", Type: domain.ReminderDeadline, Date: "2026-10-17"},
		{ID: "r3", Type: domain.ReminderInterview, Date: "2026-10-18", Completed: true},
	}))

	out, err := executeCommand(t, "reminder", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "[ ] r1")
	assert.Contains(t, out, "Engineer at Acme")
	assert.Contains(t, out, "gone (deleted)")
	assert.NotContains(t, out, "r3")

	out, err = executeCommand(t, "reminder", "list", "--all")

	require.NoError(t, err)
	assert.Contains(t, out, "[x] r3")
}

func TestReminderList_Empty(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "reminder", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "No reminders.")
}

func TestReminderDone(t *testing.T) {
	svc := setupTestServices(t)
	require.NoError(t, svc.Tracker.SetReminders(t.Context(), []domain.Reminder{
		{ID: "r1", Type: domain.ReminderFollowUp, Date: "2026-10-16"},
	}))

	out, err := executeCommand(t, "reminder", "done", "r1")

	require.NoError(t, err)
	assert.Contains(t, out, "Completed r1")
	assert.True(t, svc.Tracker.Reminders()[0].Completed)
}

func TestReminderDone_NotFound(t *testing.T) {
	setupTestServices(t)

	_, err := executeCommand(t, "reminder", "done", "nope")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
)

func cliJobs() []domain.JobApplication {
	return []domain.JobApplication{
		{ID: "1", Company: "Acme", Role: "Engineer", Status: domain.StatusApplied, DateApplied: "2026-10-01"},
		{ID: "2", Company: "Globex", Role: "Designer", Status: domain.StatusInterview, DateApplied: "2026-10-03"},
		{ID: "3", Company: "Initech", Role: "Engineer", Status: domain.StatusRejected, DateApplied: "2026-10-05"},
	}
}

func TestJobList(t *testing.T) {
	setupTestServices(t, cliJobs()...)

	out, err := executeCommand(t, "job", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "COMPANY")
	assert.Contains(t, out, "Globex")
	assert.Contains(t, out, "3 application(s)")
}

func TestJobList_Filters(t *testing.T) {
	setupTestServices(t, cliJobs()...)

	out, err := executeCommand(t, "job", "list", "--status", "rejected", "--search", "engineer")

	require.NoError(t, err)
	assert.Contains(t, out, "Initech")
	assert.NotContains(t, out, "Acme")
	assert.Contains(t, out, "1 application(s)")
}

func TestJobList_StatusAll(t *testing.T) {
	setupTestServices(t, cliJobs()...)

	out, err := executeCommand(t, "job", "list", "-s", "all")

	require.NoError(t, err)
	assert.Contains(t, out, "3 application(s)")
}

func TestJobList_UnknownStatus(t *testing.T) {
	setupTestServices(t, cliJobs()...)

	_, err := executeCommand(t, "job", "list", "--status", "Ghosted")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestJobList_Empty(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "job", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "No applications found.")
}

func TestJobList_JSON(t *testing.T) {
	setupTestServices(t, cliJobs()...)

	out, err := executeCommand(t, "job", "list", "--json", "-q", "glob")

	require.NoError(t, err)
	var jobs []domain.JobApplication
	require.NoError(t, json.Unmarshal([]byte(out), &jobs))
	require.Len(t, jobs, 1)
	assert.Equal(t, "Globex", jobs[0].Company)
}

func TestJobAdd(t *testing.T) {
	svc := setupTestServices(t)

	out, err := executeCommand(t, "job", "add", "--company", "Acme", "--role", "Engineer", "--salary", "$120k")

	require.NoError(t, err)
	assert.Contains(t, out, "Added Engineer at Acme (id-1)")

	job, ok := svc.Tracker.Job("id-1")
	require.True(t, ok)
	assert.Equal(t, domain.StatusApplied, job.Status)
	assert.Equal(t, domain.OriginApplication, job.Origin)
	assert.Equal(t, "2026-10-15", job.DateApplied)
	assert.Equal(t, "$120k", job.Salary)
	assert.Equal(t, 1, svc.Store.Saves())
}

func TestJobAdd_Offer(t *testing.T) {
	svc := setupTestServices(t)

	_, err := executeCommand(t, "job", "add", "--company", "Acme", "--role", "CTO", "--offer")

	require.NoError(t, err)
	job, ok := svc.Tracker.Job("id-1")
	require.True(t, ok)
	assert.Equal(t, domain.StatusOffer, job.Status)
	assert.Equal(t, domain.OriginOffer, job.Origin)
}

func TestJobAdd_MissingFields(t *testing.T) {
	setupTestServices(t)

	_, err := executeCommand(t, "job", "add", "--role", "Engineer")
	assert.ErrorIs(t, err, domain.ErrMissingField)

	_, err = executeCommand(t, "job", "add", "--company", "Acme")
	assert.ErrorIs(t, err, domain.ErrMissingField)
}

func TestJobAdd_InvalidDate(t *testing.T) {
	setupTestServices(t)

	_, err := executeCommand(t, "job", "add", "--company", "Acme", "--role", "Engineer", "--date", "15/10/2026")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestJobAdd_DescriptionFile(t *testing.T) {
	svc := setupTestServices(t)
	path := filepath.Join(t.TempDir(), "posting.md")
	require.NoError(t, os.WriteFile(path, []byte("# Senior Engineer\n\nBuild **great** things."), 0o600))

	_, err := executeCommand(t, "job", "add", "--company", "Acme", "--role", "Engineer", "--description-file", path)

	require.NoError(t, err)
	job, ok := svc.Tracker.Job("id-1")
	require.True(t, ok)
	assert.Contains(t, job.Description, "Build")
	assert.Contains(t, job.Description, "things")
}

func TestJobShow(t *testing.T) {
	svc := setupTestServices(t, cliJobs()...)
	_, err := svc.Tracker.UpdateJobFunc(t.Context(), "2", func(j *domain.JobApplication) {
		j.CoverLetter = "Dear Globex"
	})
	require.NoError(t, err)

	out, err := executeCommand(t, "job", "show", "2")

	require.NoError(t, err)
	assert.Contains(t, out, "Designer at Globex")
	assert.Contains(t, out, "Interview")
	assert.Contains(t, out, "[Cover Letter]")
	assert.Contains(t, out, "Dear Globex")
}

func TestJobShow_NotFound(t *testing.T) {
	setupTestServices(t)

	_, err := executeCommand(t, "job", "show", "nope")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestJobUpdate_OnlyChangedFields(t *testing.T) {
	svc := setupTestServices(t, cliJobs()...)

	out, err := executeCommand(t, "job", "update", "1", "--location", "Remote", "--status", "interview")

	require.NoError(t, err)
	assert.Contains(t, out, "Updated 1")
	job, _ := svc.Tracker.Job("1")
	assert.Equal(t, "Remote", job.Location)
	assert.Equal(t, domain.StatusInterview, job.Status)
	assert.Equal(t, "Acme", job.Company)
	assert.Equal(t, "Engineer", job.Role)
}

func TestJobUpdate_UnknownIDIsNoop(t *testing.T) {
	svc := setupTestServices(t, cliJobs()...)

	out, err := executeCommand(t, "job", "update", "zzz", "--company", "Nope")

	require.NoError(t, err)
	assert.Contains(t, out, "No job with id zzz; nothing changed.")
	assert.Equal(t, cliJobs(), svc.Tracker.Jobs())
}

func TestJobDelete(t *testing.T) {
	svc := setupTestServices(t, cliJobs()...)

	out, err := executeCommand(t, "job", "rm", "2")

	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 2")
	assert.Len(t, svc.Tracker.Jobs(), 2)
}

func TestJobInterview(t *testing.T) {
	svc := setupTestServices(t, cliJobs()...)

	out, err := executeCommand(t, "job", "interview", "1", "--date", "2026-10-20")

	require.NoError(t, err)
	assert.Contains(t, out, "Interview logged: Engineer at Acme is now Interview")
	job, _ := svc.Tracker.Job("1")
	assert.Equal(t, "2026-10-20", job.InterviewDate)
}

func TestJobInterview_RequiresDate(t *testing.T) {
	setupTestServices(t, cliJobs()...)

	_, err := executeCommand(t, "job", "interview", "1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "date")
}

func TestJobReject(t *testing.T) {
	svc := setupTestServices(t, cliJobs()...)

	out, err := executeCommand(t, "job", "reject", "2", "--reason", "Position filled")

	require.NoError(t, err)
	assert.Contains(t, out, "Rejection recorded")
	job, _ := svc.Tracker.Job("2")
	assert.Equal(t, domain.StatusRejected, job.Status)
	assert.Equal(t, "Position filled", job.RejectionReason)
}

func TestJobOffer(t *testing.T) {
	svc := setupTestServices(t, cliJobs()...)

	out, err := executeCommand(t, "job", "offer", "2", "--salary", "$140k")

	require.NoError(t, err)
	assert.Contains(t, out, "Offer recorded")
	job, _ := svc.Tracker.Job("2")
	assert.Equal(t, domain.StatusOffer, job.Status)
	assert.Equal(t, "$140k", job.Salary)
}

func TestJobOffer_UnknownID(t *testing.T) {
	setupTestServices(t, cliJobs()...)

	out, err := executeCommand(t, "job", "offer", "zzz")

	require.NoError(t, err)
	assert.Contains(t, out, "No job with id zzz; nothing changed.")
}

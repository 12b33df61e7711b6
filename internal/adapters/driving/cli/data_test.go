package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
)

func TestDataExport_Stdout(t *testing.T) {
	setupTestServices(t, cliJobs()...)

	out, err := executeCommand(t, "data", "export", "jobs")

	require.NoError(t, err)
	assert.Contains(t, out, `"company":"Acme"`)
}

func TestDataExportImport_RoundTrip(t *testing.T) {
	svc := setupTestServices(t, cliJobs()...)
	path := filepath.Join(t.TempDir(), "jobs.json")

	out, err := executeCommand(t, "data", "export", "jobs", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported jobs to "+path)

	require.NoError(t, svc.Tracker.SetJobs(t.Context(), nil))
	require.Empty(t, svc.Tracker.Jobs())

	out, err = executeCommand(t, "data", "import", "jobs", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported jobs from "+path)
	assert.Equal(t, cliJobs(), svc.Tracker.Jobs())
}

func TestDataImport_Malformed(t *testing.T) {
	svc := setupTestServices(t, cliJobs()...)
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := executeCommand(t, "data", "import", "jobs", path)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Len(t, svc.Tracker.Jobs(), 3)
}

func TestDataImport_MissingFile(t *testing.T) {
	setupTestServices(t)

	_, err := executeCommand(t, "data", "import", "jobs", filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestData_UnknownSlot(t *testing.T) {
	setupTestServices(t)

	_, err := executeCommand(t, "data", "export", "passwords")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDataStatus_ListsStoredSlots(t *testing.T) {
	setupTestServices(t, cliJobs()...)

	out, err := executeCommand(t, "data", "status")

	require.NoError(t, err)
	assert.Contains(t, out, "Storage: Memory (not persisted)")
	assert.Contains(t, out, "SLOT")
	assert.Contains(t, out, "WRITES")
	assert.Regexp(t, `jobs\s+\d+\s+1\s+`, out)
}

func TestDataStatus_NoInspectorFallsBackToExport(t *testing.T) {
	svc := setupTestServices(t, cliJobs()...)
	SetServices(&Services{Tracker: svc.Tracker})

	out, err := executeCommand(t, "data", "status")

	require.NoError(t, err)
	assert.NotContains(t, out, "Storage:")
	for _, slot := range domain.AllSlots() {
		assert.Contains(t, out, string(slot))
	}
	assert.Regexp(t, `reminders\s+\d+\s+-\s+-`, out)
}

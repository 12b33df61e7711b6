package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
)

func TestViewChanged(t *testing.T) {
	msg := ViewChanged{View: domain.ViewJobs}
	assert.Equal(t, domain.ViewJobs, msg.View)
}

func TestErrorOccurred(t *testing.T) {
	err := errors.New("boom")
	msg := ErrorOccurred{Err: err}
	assert.ErrorIs(t, msg.Err, err)
}

func TestGenerationCompleted(t *testing.T) {
	msg := GenerationCompleted{Kind: GenerateGuide, JobID: "job-1", Text: "guide"}

	assert.Equal(t, GenerateGuide, msg.Kind)
	assert.Equal(t, "job-1", msg.JobID)
	assert.Equal(t, "guide", msg.Text)
	assert.NoError(t, msg.Err)
}

func TestGenerationKinds_AreDistinct(t *testing.T) {
	kinds := []GenerationKind{GenerateGuide, GenerateMock, GenerateSummary, GenerateDiscovery}
	seen := make(map[GenerationKind]bool)
	for _, k := range kinds {
		assert.False(t, seen[k], "duplicate kind %s", k)
		seen[k] = true
	}
}

func TestMessages_CarryErrors(t *testing.T) {
	err := errors.New("write failed")

	assert.ErrorIs(t, JobDeleted{ID: "a", Err: err}.Err, err)
	assert.ErrorIs(t, ContactDeleted{ID: "b", Err: err}.Err, err)
	assert.ErrorIs(t, RecordsPurged{Err: err}.Err, err)
	assert.ErrorIs(t, SettingsLoaded{Err: err}.Err, err)
}

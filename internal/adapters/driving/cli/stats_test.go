package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
	"github.com/hirewire-labs/hirewire-cli/internal/testutil"
)

func TestStats(t *testing.T) {
	setupTestServices(t, cliJobs()...)

	out, err := executeCommand(t, "stats")

	require.NoError(t, err)
	assert.Contains(t, out, "Pipeline")
	assert.Contains(t, out, "Applications:    3")
	assert.Contains(t, out, "Interviews:      1")
	assert.Contains(t, out, "Conversion Rate: 33.3%")
	assert.Contains(t, out, "Recent")
}

func TestStats_JSON(t *testing.T) {
	setupTestServices(t, cliJobs()...)

	out, err := executeCommand(t, "stats", "--json")

	require.NoError(t, err)
	var m domain.DerivedMetrics
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, 3, m.TotalApplications)
}

func TestStats_Weekly(t *testing.T) {
	setupTestServices(t,
		domain.JobApplication{ID: "1", Company: "A", Role: "R", Status: domain.StatusApplied, DateApplied: testutil.DaysAgo(1)},
		domain.JobApplication{ID: "2", Company: "B", Role: "R", Status: domain.StatusApplied, DateApplied: testutil.DaysAgo(2)},
	)

	out, err := executeCommand(t, "stats", "--weekly")

	require.NoError(t, err)
	assert.Contains(t, out, "Weekly Activity")
	assert.Contains(t, out, "Week 1")
	assert.Contains(t, out, "Week 5")
	assert.Contains(t, out, "##")
}

func TestStats_Empty(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "stats")

	require.NoError(t, err)
	assert.Contains(t, out, "Conversion Rate: 0.0%")
	assert.NotContains(t, out, "Recent")
}

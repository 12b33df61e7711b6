package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
	"github.com/hirewire-labs/hirewire-cli/internal/testutil"
)

func sampleJobs() []domain.JobApplication {
	return []domain.JobApplication{
		{ID: "j1", Company: "Acme", Role: "Engineer", Status: domain.StatusApplied, DateApplied: testutil.DaysAgo(2)},
		{ID: "j2", Company: "Globex", Role: "Designer", Status: domain.StatusInterview, DateApplied: testutil.DaysAgo(9), InterviewDate: "2026-10-20"},
		{ID: "j3", Company: "Initech", Role: "Engineer", Status: domain.StatusOffer, DateApplied: testutil.DaysAgo(12), Salary: "$150k", CoverLetter: "Dear Initech"},
	}
}

// newTestServer returns a server over an in-memory tracker seeded with sampleJobs.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	tracker, _ := testutil.NewTracker(t, sampleJobs()...)
	server, err := NewServer(&Ports{Tracker: tracker})
	require.NoError(t, err)
	return server
}

func TestNewServer(t *testing.T) {
	t.Run("nil tracker returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingTracker)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server := newTestServer(t)
		assert.NotNil(t, server)
		assert.NotNil(t, server.server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil tracker returns error", func(t *testing.T) {
		assert.ErrorIs(t, (&Ports{}).Validate(), ErrMissingTracker)
	})

	t.Run("tracker is valid", func(t *testing.T) {
		tracker, _ := testutil.NewTracker(t)
		assert.NoError(t, (&Ports{Tracker: tracker}).Validate())
	})
}

func TestServer_Serve_InMemorySession(t *testing.T) {
	server := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	done := make(chan error, 1)
	go func() { done <- server.Serve(ctx, serverTransport) }()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	assert.Contains(t, session.InitializeResult().Instructions, "list_jobs")

	tools, err := session.ListTools(ctx, nil)
	require.NoError(t, err)
	names := make([]string, 0, len(tools.Tools))
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"list_jobs", "pipeline_metrics"}, names)

	res, err := session.ReadResource(ctx, &mcp.ReadResourceParams{URI: "hirewire://jobs/j3"})
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	assert.Contains(t, res.Contents[0].Text, "Initech")

	require.NoError(t, session.Close())
	<-done
}

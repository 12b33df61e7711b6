package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
)

var filterJobs = []domain.JobApplication{
	{ID: "1", Company: "Acme", Role: "Platform Engineer", Status: domain.StatusApplied},
	{ID: "2", Company: "Globex", Role: "SRE", Status: domain.StatusInterview},
	{ID: "3", Company: "Initech", Role: "Backend Engineer", Status: domain.StatusOffer},
	{ID: "4", Company: "Umbrella", Role: "Engineer", Status: domain.StatusRejected},
	{ID: "5", Company: "Hooli", Role: "Staff Engineer", Status: domain.StatusAccepted},
}

func ids(jobs []domain.JobApplication) []string {
	out := make([]string, len(jobs))
	for i, j := range jobs {
		out[i] = j.ID
	}
	return out
}

func TestFilterJobs(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		status   domain.JobStatus
		expected []string
	}{
		{"no filter", "", StatusAll, []string{"1", "2", "3", "4", "5"}},
		{"empty status means all", "", "", []string{"1", "2", "3", "4", "5"}},
		{"company match", "glob", StatusAll, []string{"2"}},
		{"role match case-insensitive", "ENGINEER", StatusAll, []string{"1", "3", "4", "5"}},
		{"status only", "", domain.StatusOffer, []string{"3"}},
		{"query and status", "engineer", domain.StatusApplied, []string{"1"}},
		{"no match", "zzz", StatusAll, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(FilterJobs(filterJobs, tt.query, tt.status)))
		})
	}
}

func TestInterviewPipeline(t *testing.T) {
	assert.Equal(t, []string{"2", "3", "5"}, ids(InterviewPipeline(filterJobs)))
}

func TestQuickActionCandidates(t *testing.T) {
	assert.Equal(t, []string{"1"}, ids(QuickActionCandidates(filterJobs, ActionInterview)))
	assert.Equal(t, []string{"1", "2", "3"}, ids(QuickActionCandidates(filterJobs, ActionReject)))
	assert.Equal(t, []string{"2"}, ids(QuickActionCandidates(filterJobs, ActionOffer)))
	assert.Empty(t, QuickActionCandidates(filterJobs, QuickAction("promote")))
}

func TestSearchContacts(t *testing.T) {
	contacts := []domain.Contact{
		{ID: "1", Name: "Sam Rivera", Company: "Acme"},
		{ID: "2", Name: "Priya Shah", Company: "Globex"},
	}

	assert.Len(t, SearchContacts(contacts, ""), 2)
	got := SearchContacts(contacts, "priya")
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
	assert.Len(t, SearchContacts(contacts, "acme"), 1)
	assert.Empty(t, SearchContacts(contacts, "nobody"))
}

func TestExportSocialProfiles(t *testing.T) {
	profiles := domain.DefaultSocialProfiles()

	md, err := ExportSocialProfiles(profiles, domain.ExportMarkdown)
	require.NoError(t, err)
	assert.Equal(t, "- [email](mailto:alex@venture.com)\n- [linkedin](https://linkedin.com/in/alex-venture)", md)

	text, err := ExportSocialProfiles(profiles, domain.ExportText)
	require.NoError(t, err)
	assert.Equal(t, "EMAIL: mailto:alex@venture.com\nLINKEDIN: https://linkedin.com/in/alex-venture", text)

	_, err = ExportSocialProfiles(profiles, domain.ExportFormat("pdf"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSocialContext(t *testing.T) {
	assert.Equal(t,
		"email: mailto:alex@venture.com, linkedin: https://linkedin.com/in/alex-venture",
		socialContext(domain.DefaultSocialProfiles()))
}

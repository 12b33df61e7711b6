package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
)

func jobsWithStatuses(statuses ...domain.JobStatus) []domain.JobApplication {
	jobs := make([]domain.JobApplication, len(statuses))
	for i, s := range statuses {
		jobs[i] = domain.JobApplication{ID: fmt.Sprintf("j%d", i), Role: fmt.Sprintf("Role %d", i), Status: s}
	}
	return jobs
}

func TestComputeMetrics_Empty(t *testing.T) {
	m := ComputeMetrics(nil, testNow)

	assert.Equal(t, 0, m.TotalApplications)
	assert.Equal(t, 0.0, m.ConversionRate)
	assert.Empty(t, m.RecentStatus)
	assert.Equal(t, testNow, m.LastUpdate)
}

func TestComputeMetrics_Counts(t *testing.T) {
	jobs := jobsWithStatuses(
		domain.StatusApplied,
		domain.StatusInterview,
		domain.StatusOffer,
		domain.StatusRejected,
		domain.StatusAccepted,
		domain.StatusApplied,
		domain.StatusApplied,
		domain.StatusApplied,
	)

	m := ComputeMetrics(jobs, testNow)

	assert.Equal(t, 8, m.TotalApplications)
	assert.Equal(t, 3, m.TotalInterviews)
	assert.Equal(t, 2, m.TotalOffers)
	assert.InDelta(t, 37.5, m.ConversionRate, 1e-9)
}

func TestComputeMetrics_Invariants(t *testing.T) {
	all := domain.AllJobStatuses()
	for n := 0; n < 40; n++ {
		statuses := make([]domain.JobStatus, n)
		for i := range statuses {
			statuses[i] = all[(i*7+n)%len(all)]
		}
		m := ComputeMetrics(jobsWithStatuses(statuses...), testNow)

		assert.GreaterOrEqual(t, m.ConversionRate, 0.0)
		assert.LessOrEqual(t, m.ConversionRate, 100.0)
		assert.LessOrEqual(t, m.TotalOffers, m.TotalInterviews)
		assert.LessOrEqual(t, m.TotalInterviews, m.TotalApplications)
		assert.LessOrEqual(t, len(m.RecentStatus), domain.RecentStatusLimit)
	}
}

func TestComputeMetrics_RecentStatusIsLastFive(t *testing.T) {
	jobs := jobsWithStatuses(
		domain.StatusApplied, domain.StatusApplied, domain.StatusApplied,
		domain.StatusApplied, domain.StatusApplied, domain.StatusApplied, domain.StatusOffer,
	)

	m := ComputeMetrics(jobs, testNow)

	require.Len(t, m.RecentStatus, 5)
	assert.Equal(t, "j2", m.RecentStatus[0].ID)
	assert.Equal(t, "j6", m.RecentStatus[4].ID)
}

func TestComputeMetrics_Deterministic(t *testing.T) {
	jobs := jobsWithStatuses(domain.StatusApplied, domain.StatusInterview)
	a := ComputeMetrics(jobs, testNow)
	b := ComputeMetrics(jobs, testNow.Add(time.Hour))

	a.LastUpdate, b.LastUpdate = time.Time{}, time.Time{}
	assert.Equal(t, a, b)
}

func bucketCounts(buckets []domain.WeeklyBucket) []int {
	out := make([]int, len(buckets))
	for i, b := range buckets {
		out[i] = b.Apps
	}
	return out
}

func TestWeeklyActivity_Labels(t *testing.T) {
	buckets := WeeklyActivity(nil, testNow)

	require.Len(t, buckets, 5)
	for i, b := range buckets {
		assert.Equal(t, fmt.Sprintf("Week %d", i+1), b.Name)
		assert.Equal(t, 0, b.Apps)
	}
}

func TestWeeklyActivity_Bucketing(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		expected []int
	}{
		{"today is week 5", daysAgo(0), []int{0, 0, 0, 0, 1}},
		{"six days ago is week 5", daysAgo(6), []int{0, 0, 0, 0, 1}},
		{"seven days ago is week 4", daysAgo(7), []int{0, 0, 0, 1, 0}},
		{"twenty days ago is week 3", daysAgo(20), []int{0, 0, 1, 0, 0}},
		{"thirty-four days ago is week 1", daysAgo(34), []int{1, 0, 0, 0, 0}},
		{"thirty-five calendar days ago is outside", daysAgo(35), []int{0, 0, 0, 0, 0}},
		{"exactly thirty-five days is dropped", testNow.AddDate(0, 0, -35).Format(time.RFC3339), []int{0, 0, 0, 0, 0}},
		{"just inside thirty-five days is week 1", testNow.Add(-35*24*time.Hour + time.Minute).Format(time.RFC3339), []int{1, 0, 0, 0, 0}},
		{"future date is dropped", daysAgo(-1), []int{0, 0, 0, 0, 0}},
		{"unparseable date is skipped", "sometime", []int{0, 0, 0, 0, 0}},
		{"empty date is skipped", "", []int{0, 0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs := []domain.JobApplication{{ID: "1", DateApplied: tt.date}}
			assert.Equal(t, tt.expected, bucketCounts(WeeklyActivity(jobs, testNow)))
		})
	}
}

func TestWeeklyActivity_Aggregates(t *testing.T) {
	jobs := []domain.JobApplication{
		{DateApplied: daysAgo(1)},
		{DateApplied: daysAgo(2)},
		{DateApplied: daysAgo(10)},
		{DateApplied: daysAgo(100)},
	}

	assert.Equal(t, []int{0, 0, 0, 1, 2}, bucketCounts(WeeklyActivity(jobs, testNow)))
}

func TestCoachContext(t *testing.T) {
	m := domain.DerivedMetrics{
		TotalApplications: 3,
		TotalInterviews:   1,
		TotalOffers:       0,
		ConversionRate:    100.0 / 3,
		RecentStatus: []domain.JobApplication{
			{Role: "SRE", Status: domain.StatusApplied},
			{Role: "Lead", Status: domain.StatusInterview},
		},
	}

	out := CoachContext(m, "Go, Rust")

	assert.Contains(t, out, "- Apps: 3")
	assert.Contains(t, out, "- Interviews: 1")
	assert.Contains(t, out, "- Offers: 0")
	assert.Contains(t, out, "- Rate: 33.3%")
	assert.Contains(t, out, "- Current Status: SRE (Applied), Lead (Interview)")
	assert.Contains(t, out, "- Skills: Go, Rust")
}

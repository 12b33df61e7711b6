package services

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
)

const week = 7 * 24 * time.Hour

// ComputeMetrics derives the aggregate pipeline statistics from jobs.
// The result depends only on jobs, except LastUpdate which is now.
func ComputeMetrics(jobs []domain.JobApplication, now time.Time) domain.DerivedMetrics {
	m := domain.DerivedMetrics{
		TotalApplications: len(jobs),
		LastUpdate:        now,
	}
	for i := range jobs {
		if jobs[i].Status.CountsAsInterview() {
			m.TotalInterviews++
		}
		if jobs[i].Status.CountsAsOffer() {
			m.TotalOffers++
		}
	}
	if m.TotalApplications > 0 {
		m.ConversionRate = float64(m.TotalInterviews) / float64(m.TotalApplications) * 100
	}

	start := len(jobs) - domain.RecentStatusLimit
	if start < 0 {
		start = 0
	}
	m.RecentStatus = append([]domain.JobApplication{}, jobs[start:]...)
	return m
}

// WeeklyActivity buckets applications from the last five weeks.
//
// A job dated d lands in "Week (5 - floor((now-d)/7d))". Jobs exactly 35 days
// old would be "Week 0" and future-dated jobs "Week 6" or later; both are
// dropped, as are unparseable dates. The result always holds Week 1..Week 5.
func WeeklyActivity(jobs []domain.JobApplication, now time.Time) []domain.WeeklyBucket {
	buckets := make([]domain.WeeklyBucket, domain.WeeklyWindowWeeks)
	for i := range buckets {
		buckets[i].Name = weekLabel(i + 1)
	}

	cutoff := now.Add(-domain.WeeklyWindowWeeks * week)
	for i := range jobs {
		applied, ok := jobs[i].AppliedAt()
		if !ok || applied.Before(cutoff) {
			continue
		}
		weeksDiff := int(math.Floor(float64(now.Sub(applied)) / float64(week)))
		idx := domain.WeeklyWindowWeeks - weeksDiff
		if idx < 1 || idx > domain.WeeklyWindowWeeks {
			continue
		}
		buckets[idx-1].Apps++
	}
	return buckets
}

func weekLabel(n int) string {
	return fmt.Sprintf("Week %d", n)
}

// CoachContext renders the metrics summary given to the career coach.
func CoachContext(m domain.DerivedMetrics, skills string) string {
	recent := make([]string, 0, len(m.RecentStatus))
	for _, j := range m.RecentStatus {
		recent = append(recent, fmt.Sprintf("%s (%s)", j.Role, j.Status))
	}

	var b strings.Builder
	b.WriteString("User metrics:\n")
	fmt.Fprintf(&b, "- Apps: %d\n", m.TotalApplications)
	fmt.Fprintf(&b, "- Interviews: %d\n", m.TotalInterviews)
	fmt.Fprintf(&b, "- Offers: %d\n", m.TotalOffers)
	fmt.Fprintf(&b, "- Rate: %.1f%%\n", m.ConversionRate)
	fmt.Fprintf(&b, "- Current Status: %s\n", strings.Join(recent, ", "))
	fmt.Fprintf(&b, "- Skills: %s", skills)
	return b.String()
}

package services

import (
	"fmt"
	"strings"

	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
)

// StatusAll disables the status filter in FilterJobs.
const StatusAll domain.JobStatus = "All"

// FilterJobs returns jobs whose company or role contains query
// (case-insensitive) and whose status matches. StatusAll or "" matches any status.
func FilterJobs(jobs []domain.JobApplication, query string, status domain.JobStatus) []domain.JobApplication {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.JobApplication, 0, len(jobs))
	for i := range jobs {
		j := jobs[i]
		if status != "" && status != StatusAll && j.Status != status {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(j.Company), q) &&
			!strings.Contains(strings.ToLower(j.Role), q) {
			continue
		}
		out = append(out, j)
	}
	return out
}

// InterviewPipeline returns jobs that reached the interview stage.
func InterviewPipeline(jobs []domain.JobApplication) []domain.JobApplication {
	out := make([]domain.JobApplication, 0, len(jobs))
	for i := range jobs {
		if jobs[i].Status.CountsAsInterview() {
			out = append(out, jobs[i])
		}
	}
	return out
}

// SearchContacts returns contacts whose name or company contains query.
func SearchContacts(contacts []domain.Contact, query string) []domain.Contact {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]domain.Contact{}, contacts...)
	}
	out := make([]domain.Contact, 0, len(contacts))
	for _, c := range contacts {
		if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(strings.ToLower(c.Company), q) {
			out = append(out, c)
		}
	}
	return out
}

// QuickAction is a one-step pipeline transition.
type QuickAction string

// Quick actions.
const (
	ActionInterview QuickAction = "interview"
	ActionReject    QuickAction = "reject"
	ActionOffer     QuickAction = "offer"
)

// QuickActionCandidates returns the jobs an action can apply to.
// Interviews are logged against Applied jobs, offers against Interview jobs,
// and anything not already closed can be rejected.
func QuickActionCandidates(jobs []domain.JobApplication, action QuickAction) []domain.JobApplication {
	out := make([]domain.JobApplication, 0, len(jobs))
	for i := range jobs {
		s := jobs[i].Status
		var ok bool
		switch action {
		case ActionInterview:
			ok = s == domain.StatusApplied
		case ActionReject:
			ok = s != domain.StatusRejected && s != domain.StatusAccepted
		case ActionOffer:
			ok = s == domain.StatusInterview
		}
		if ok {
			out = append(out, jobs[i])
		}
	}
	return out
}

// ExportSocialProfiles renders profiles for sharing.
func ExportSocialProfiles(profiles []domain.SocialProfile, format domain.ExportFormat) (string, error) {
	lines := make([]string, 0, len(profiles))
	for _, p := range profiles {
		switch format {
		case domain.ExportMarkdown:
			lines = append(lines, fmt.Sprintf("- [%s](%s)", p.Platform, p.URL))
		case domain.ExportText:
			lines = append(lines, fmt.Sprintf("%s: %s", strings.ToUpper(string(p.Platform)), p.URL))
		default:
			return "", fmt.Errorf("export format %q: %w", format, domain.ErrInvalidInput)
		}
	}
	return strings.Join(lines, "\n"), nil
}

// socialContext renders the profile list included in cover letters.
func socialContext(profiles []domain.SocialProfile) string {
	parts := make([]string, 0, len(profiles))
	for _, p := range profiles {
		parts = append(parts, fmt.Sprintf("%s: %s", p.Platform, p.URL))
	}
	return strings.Join(parts, ", ")
}

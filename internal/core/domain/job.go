package domain

import (
	"strings"
	"time"
)

// DateLayout is the calendar date format used for every date field.
const DateLayout = "2006-01-02"

// JobStatus is the pipeline stage of a job application.
type JobStatus string

// Pipeline stages.
const (
	StatusApplied   JobStatus = "Applied"
	StatusInterview JobStatus = "Interview"
	StatusOffer     JobStatus = "Offer"
	StatusRejected  JobStatus = "Rejected"
	StatusAccepted  JobStatus = "Accepted"
)

// AllJobStatuses returns the statuses in pipeline order.
func AllJobStatuses() []JobStatus {
	return []JobStatus{StatusApplied, StatusInterview, StatusOffer, StatusRejected, StatusAccepted}
}

// IsValid returns true if the status is one of the five pipeline stages.
func (s JobStatus) IsValid() bool {
	switch s {
	case StatusApplied, StatusInterview, StatusOffer, StatusRejected, StatusAccepted:
		return true
	default:
		return false
	}
}

// CountsAsInterview reports whether the job reached the interview stage.
func (s JobStatus) CountsAsInterview() bool {
	return s == StatusInterview || s == StatusOffer || s == StatusAccepted
}

// CountsAsOffer reports whether the job produced an offer.
func (s JobStatus) CountsAsOffer() bool {
	return s == StatusOffer || s == StatusAccepted
}

// String returns the string representation.
func (s JobStatus) String() string {
	return string(s)
}

// ParseJobStatus matches a status case-insensitively.
func ParseJobStatus(v string) (JobStatus, bool) {
	for _, s := range AllJobStatuses() {
		if strings.EqualFold(string(s), strings.TrimSpace(v)) {
			return s, true
		}
	}
	return "", false
}

// JobOrigin records whether a job was applied for or came in as an offer.
type JobOrigin string

// Job origins.
const (
	OriginApplication JobOrigin = "application"
	OriginOffer       JobOrigin = "offer"
)

// IsValid returns true if the origin is recognised.
func (o JobOrigin) IsValid() bool {
	return o == OriginApplication || o == OriginOffer
}

// JobApplication is a tracked application or received offer.
// Origin is fixed at creation.
type JobApplication struct {
	ID               string    `json:"id"`
	Company          string    `json:"company"`
	Role             string    `json:"role"`
	Status           JobStatus `json:"status"`
	Salary           string    `json:"salary"`
	Location         string    `json:"location"`
	DateApplied      string    `json:"dateApplied"`
	Description      string    `json:"description"`
	CoverLetter      string    `json:"coverLetter"`
	InterviewGuide   string    `json:"interviewGuide"`
	SkillGapAnalysis string    `json:"skillGapAnalysis"`
	Origin           JobOrigin `json:"origin"`
	RejectionReason  string    `json:"rejectionReason,omitempty"`
	InterviewDate    string    `json:"interviewDate,omitempty"`
}

// AppliedAt parses DateApplied.
// Calendar dates are read as UTC midnight; RFC 3339 timestamps are also accepted.
func (j JobApplication) AppliedAt() (time.Time, bool) {
	return ParseDate(j.DateApplied)
}

// ParseDate parses a calendar date or an RFC 3339 timestamp.
func ParseDate(v string) (time.Time, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(DateLayout, v); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// FormatDate renders t as a calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

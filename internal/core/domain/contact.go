package domain

import "strings"

// Contact is a person in the candidate's network.
type Contact struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Company     string `json:"company"`
	Role        string `json:"role"`
	Email       string `json:"email"`
	LastContact string `json:"lastContact"`
	Notes       string `json:"notes"`
}

// Validate checks required contact fields.
func (c Contact) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return MissingField("name")
	}
	return nil
}

// ReminderType classifies a reminder.
type ReminderType string

// Reminder types.
const (
	ReminderFollowUp  ReminderType = "Follow-up"
	ReminderInterview ReminderType = "Interview"
	ReminderDeadline  ReminderType = "Deadline"
)

// IsValid returns true if the reminder type is recognised.
func (t ReminderType) IsValid() bool {
	switch t {
	case ReminderFollowUp, ReminderInterview, ReminderDeadline:
		return true
	default:
		return false
	}
}

// ParseReminderType matches a reminder type case-insensitively.
func ParseReminderType(v string) (ReminderType, bool) {
	for _, t := range []ReminderType{ReminderFollowUp, ReminderInterview, ReminderDeadline} {
		if strings.EqualFold(string(t), strings.TrimSpace(v)) {
			return t, true
		}
	}
	return "", false
}

// Reminder is a dated task. JobID is a soft reference and may dangle.
type Reminder struct {
	ID        string       `json:"id"`
	JobID     string       `json:"jobId"`
	Type      ReminderType `json:"type"`
	Date      string       `json:"date"`
	Completed bool         `json:"completed"`
}

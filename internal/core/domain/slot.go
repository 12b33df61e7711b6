package domain

import "time"

// Slot names a persisted collection.
type Slot string

// Persisted slots, one JSON blob each.
const (
	SlotJobs           Slot = "jobs"
	SlotContacts       Slot = "contacts"
	SlotReminders      Slot = "reminders"
	SlotResume         Slot = "resume"
	SlotSocialProfiles Slot = "socialProfiles"
)

// AllSlots returns every slot.
func AllSlots() []Slot {
	return []Slot{SlotJobs, SlotContacts, SlotReminders, SlotResume, SlotSocialProfiles}
}

// IsValid returns true if the slot is known.
func (s Slot) IsValid() bool {
	switch s {
	case SlotJobs, SlotContacts, SlotReminders, SlotResume, SlotSocialProfiles:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s Slot) String() string {
	return string(s)
}

// SlotInfo describes what a store holds for one slot.
type SlotInfo struct {
	Slot      Slot      `json:"slot"`
	Size      int       `json:"size"`
	Writes    int       `json:"writes"`
	UpdatedAt time.Time `json:"updatedAt"`
}

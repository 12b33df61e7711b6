package driving

import (
	"context"
	"time"

	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
)

// TrackerService is the domain store: the single owner of jobs, contacts,
// reminders, social profiles and the résumé.
//
// Every mutation writes the affected collection to its slot before
// returning. A write failure is returned wrapped in domain.ErrPersistence
// and the in-memory mutation is kept.
type TrackerService interface {
	// Jobs returns the job collection in insertion order.
	Jobs() []domain.JobApplication

	// Job returns the job with the given id.
	Job(id string) (domain.JobApplication, bool)

	// AddJob appends a job, assigning an id when empty.
	AddJob(ctx context.Context, job domain.JobApplication) (domain.JobApplication, error)

	// UpdateJob replaces the job with the same id. Unknown ids are a silent no-op.
	UpdateJob(ctx context.Context, job domain.JobApplication) error

	// UpdateJobFunc applies fn to the current record under the store lock.
	// Returns false when the id is unknown.
	UpdateJobFunc(ctx context.Context, id string, fn func(*domain.JobApplication)) (bool, error)

	// DeleteJob removes every job with the given id.
	DeleteJob(ctx context.Context, id string) error

	// SetJobs replaces the whole job collection.
	SetJobs(ctx context.Context, jobs []domain.JobApplication) error

	// Contacts returns the contact collection.
	Contacts() []domain.Contact

	// AddContact validates and appends a contact.
	AddContact(ctx context.Context, contact domain.Contact) (domain.Contact, error)

	// DeleteContact removes every contact with the given id.
	DeleteContact(ctx context.Context, id string) error

	// SetContacts replaces the whole contact collection.
	SetContacts(ctx context.Context, contacts []domain.Contact) error

	// Reminders returns the reminder collection.
	Reminders() []domain.Reminder

	// AddReminder appends a reminder.
	AddReminder(ctx context.Context, reminder domain.Reminder) (domain.Reminder, error)

	// SetReminders replaces the whole reminder collection.
	SetReminders(ctx context.Context, reminders []domain.Reminder) error

	// CompleteReminder marks a reminder as done. Returns false when the id is unknown.
	CompleteReminder(ctx context.Context, id string) (bool, error)

	// SocialProfiles returns the social profile list.
	SocialProfiles() []domain.SocialProfile

	// SetSocialProfiles replaces the social profile list.
	SetSocialProfiles(ctx context.Context, profiles []domain.SocialProfile) error

	// UpsertSocialProfile replaces the profile for its platform or appends it.
	UpsertSocialProfile(ctx context.Context, profile domain.SocialProfile) error

	// Resume returns a copy of the résumé.
	Resume() domain.ResumeProfile

	// SetResume replaces the résumé.
	SetResume(ctx context.Context, resume domain.ResumeProfile) error

	// UpdateResume applies fn to the current résumé under the store lock.
	UpdateResume(ctx context.Context, fn func(domain.ResumeProfile) domain.ResumeProfile) error

	// Metrics computes the derived pipeline metrics.
	Metrics() domain.DerivedMetrics

	// WeeklyActivity computes the five-week application histogram.
	WeeklyActivity() []domain.WeeklyBucket

	// LogInterview moves a job to Interview and records the date.
	LogInterview(ctx context.Context, id, date string) (bool, error)

	// RecordRejection moves a job to Rejected and records the reason.
	RecordRejection(ctx context.Context, id, reason string) (bool, error)

	// RecordOffer moves a job to Offer and records the salary.
	RecordOffer(ctx context.Context, id, salary string) (bool, error)

	// ExportSlot returns the serialized collection for a slot.
	ExportSlot(slot domain.Slot) ([]byte, error)

	// ImportSlot replaces a collection from its serialized form.
	ImportSlot(ctx context.Context, slot domain.Slot, data []byte) error

	// Reset restores every collection to its default and writes every slot.
	Reset(ctx context.Context) error

	// Now returns the store clock's current time.
	Now() time.Time
}

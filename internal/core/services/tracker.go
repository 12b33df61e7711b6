package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
	"github.com/hirewire-labs/hirewire-cli/internal/core/ports/driven"
	"github.com/hirewire-labs/hirewire-cli/internal/core/ports/driving"
	"github.com/hirewire-labs/hirewire-cli/internal/logger"
)

// Ensure TrackerService implements the interface.
var _ driving.TrackerService = (*TrackerService)(nil)

// TrackerService owns every tracked collection and writes each one to its
// slot after a mutation. Reads return copies.
type TrackerService struct {
	mu    sync.RWMutex
	store driven.SlotStore
	ids   driven.IDGenerator
	clock driven.Clock

	jobs      []domain.JobApplication
	contacts  []domain.Contact
	reminders []domain.Reminder
	socials   []domain.SocialProfile
	resume    domain.ResumeProfile
}

// NewTrackerService creates the store and hydrates it from the slot store.
// Missing or unreadable slots fall back to their defaults.
// A nil clock uses the system time.
func NewTrackerService(
	ctx context.Context,
	store driven.SlotStore,
	ids driven.IDGenerator,
	clock driven.Clock,
) (*TrackerService, error) {
	if store == nil {
		return nil, fmt.Errorf("slot store: %w", domain.ErrInvalidInput)
	}
	if ids == nil {
		return nil, fmt.Errorf("id generator: %w", domain.ErrInvalidInput)
	}
	if clock == nil {
		clock = systemClock{}
	}

	s := &TrackerService{
		store: store,
		ids:   ids,
		clock: clock,
	}
	s.hydrate(ctx)
	return s, nil
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (s *TrackerService) hydrate(ctx context.Context) {
	logger.Section("Hydrate")
	for _, slot := range domain.AllSlots() {
		data, err := s.store.Load(ctx, slot)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				logger.Warn("load slot %s: %v", slot, err)
			}
			s.applyDefault(slot)
			continue
		}
		if err := s.decode(slot, data); err != nil {
			logger.Warn("parse slot %s, using defaults: %v", slot, err)
			s.applyDefault(slot)
			continue
		}
		logger.Debug("Loaded slot %s (%d bytes)", slot, len(data))
	}
}

func (s *TrackerService) applyDefault(slot domain.Slot) {
	switch slot {
	case domain.SlotJobs:
		s.jobs = []domain.JobApplication{}
	case domain.SlotContacts:
		s.contacts = []domain.Contact{}
	case domain.SlotReminders:
		s.reminders = []domain.Reminder{}
	case domain.SlotResume:
		s.resume = domain.DefaultResume()
	case domain.SlotSocialProfiles:
		s.socials = domain.DefaultSocialProfiles()
	}
}

// decode replaces one collection from its serialized form.
// The résumé is decoded over the defaults so omitted fields keep their default values.
func (s *TrackerService) decode(slot domain.Slot, data []byte) error {
	switch slot {
	case domain.SlotJobs:
		var jobs []domain.JobApplication
		if err := json.Unmarshal(data, &jobs); err != nil {
			return err
		}
		if err := validateJobs(jobs); err != nil {
			return err
		}
		s.jobs = nonNil(jobs)
	case domain.SlotContacts:
		var contacts []domain.Contact
		if err := json.Unmarshal(data, &contacts); err != nil {
			return err
		}
		s.contacts = nonNil(contacts)
	case domain.SlotReminders:
		var reminders []domain.Reminder
		if err := json.Unmarshal(data, &reminders); err != nil {
			return err
		}
		s.reminders = nonNil(reminders)
	case domain.SlotResume:
		resume := domain.DefaultResume()
		if err := json.Unmarshal(data, &resume); err != nil {
			return err
		}
		resume.Experience = nonNil(resume.Experience)
		resume.Education = nonNil(resume.Education)
		resume.Projects = nonNil(resume.Projects)
		s.resume = resume
	case domain.SlotSocialProfiles:
		var socials []domain.SocialProfile
		if err := json.Unmarshal(data, &socials); err != nil {
			return err
		}
		if socials == nil {
			socials = domain.DefaultSocialProfiles()
		}
		s.socials = socials
	default:
		return fmt.Errorf("slot %q: %w", slot, domain.ErrInvalidInput)
	}
	return nil
}

func (s *TrackerService) encode(slot domain.Slot) ([]byte, error) {
	switch slot {
	case domain.SlotJobs:
		return json.Marshal(s.jobs)
	case domain.SlotContacts:
		return json.Marshal(s.contacts)
	case domain.SlotReminders:
		return json.Marshal(s.reminders)
	case domain.SlotResume:
		return json.Marshal(s.resume)
	case domain.SlotSocialProfiles:
		return json.Marshal(s.socials)
	default:
		return nil, fmt.Errorf("slot %q: %w", slot, domain.ErrInvalidInput)
	}
}

// persist writes one collection. Callers hold the write lock.
func (s *TrackerService) persist(ctx context.Context, slot domain.Slot) error {
	data, err := s.encode(slot)
	if err != nil {
		return fmt.Errorf("encode %s: %w", slot, err)
	}
	if err := s.store.Save(ctx, slot, data); err != nil {
		logger.Warn("save slot %s: %v", slot, err)
		return fmt.Errorf("save %s: %w: %w", slot, domain.ErrPersistence, err)
	}
	return nil
}

func nonNil[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}

// Now returns the store clock's current time.
func (s *TrackerService) Now() time.Time {
	return s.clock.Now()
}

// Jobs returns the job collection in insertion order.
func (s *TrackerService) Jobs() []domain.JobApplication {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.JobApplication{}, s.jobs...)
}

// Job returns the first job with the given id.
func (s *TrackerService) Job(id string) (domain.JobApplication, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.jobs {
		if s.jobs[i].ID == id {
			return s.jobs[i], true
		}
	}
	return domain.JobApplication{}, false
}

// AddJob appends a job. Duplicate ids are not rejected.
func (s *TrackerService) AddJob(ctx context.Context, job domain.JobApplication) (domain.JobApplication, error) {
	if job.ID == "" {
		job.ID = s.ids.NewID()
	}
	if job.Status == "" {
		job.Status = domain.StatusApplied
	}
	if job.Origin == "" {
		job.Origin = domain.OriginApplication
	}
	if job.DateApplied == "" {
		job.DateApplied = domain.FormatDate(s.clock.Now())
	}
	if !job.Status.IsValid() {
		return domain.JobApplication{}, fmt.Errorf("status %q: %w", job.Status, domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, job)
	logger.Debug("Added job %s (%s at %s)", job.ID, job.Role, job.Company)
	return job, s.persist(ctx, domain.SlotJobs)
}

// UpdateJob replaces the job with the same id in place.
// Unknown ids are ignored without writing.
func (s *TrackerService) UpdateJob(ctx context.Context, job domain.JobApplication) error {
	if !job.Status.IsValid() {
		return fmt.Errorf("status %q: %w", job.Status, domain.ErrInvalidInput)
	}
	_, err := s.UpdateJobFunc(ctx, job.ID, func(current *domain.JobApplication) {
		*current = job
	})
	return err
}

// UpdateJobFunc applies fn to every job with the given id and writes the
// collection once. The id itself cannot be changed by fn. If fn leaves an
// invalid status nothing is changed.
func (s *TrackerService) UpdateJobFunc(
	ctx context.Context,
	id string,
	fn func(*domain.JobApplication),
) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := append([]domain.JobApplication{}, s.jobs...)
	found := false
	for i := range updated {
		if updated[i].ID != id {
			continue
		}
		fn(&updated[i])
		updated[i].ID = id
		if !updated[i].Status.IsValid() {
			return true, fmt.Errorf("job %s status %q: %w", id, updated[i].Status, domain.ErrInvalidInput)
		}
		found = true
	}
	if !found {
		logger.Debug("Update for unknown job %s ignored", id)
		return false, nil
	}
	s.jobs = updated
	return true, s.persist(ctx, domain.SlotJobs)
}

// DeleteJob removes every job with the given id.
func (s *TrackerService) DeleteJob(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.jobs[:0:0]
	for i := range s.jobs {
		if s.jobs[i].ID != id {
			kept = append(kept, s.jobs[i])
		}
	}
	s.jobs = kept
	return s.persist(ctx, domain.SlotJobs)
}

// SetJobs replaces the whole job collection.
// The collection is rejected whole if any job has an invalid status.
func (s *TrackerService) SetJobs(ctx context.Context, jobs []domain.JobApplication) error {
	if err := validateJobs(jobs); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append([]domain.JobApplication{}, jobs...)
	return s.persist(ctx, domain.SlotJobs)
}

// Contacts returns the contact collection.
func (s *TrackerService) Contacts() []domain.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Contact{}, s.contacts...)
}

// AddContact appends a contact. Blank names are rejected before any change.
// LastContact defaults to today.
func (s *TrackerService) AddContact(ctx context.Context, contact domain.Contact) (domain.Contact, error) {
	if err := contact.Validate(); err != nil {
		return domain.Contact{}, err
	}
	if contact.ID == "" {
		contact.ID = s.ids.NewID()
	}
	if contact.LastContact == "" {
		contact.LastContact = domain.FormatDate(s.clock.Now())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = append(s.contacts, contact)
	return contact, s.persist(ctx, domain.SlotContacts)
}

// DeleteContact removes every contact with the given id.
func (s *TrackerService) DeleteContact(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.contacts[:0:0]
	for _, c := range s.contacts {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.contacts = kept
	return s.persist(ctx, domain.SlotContacts)
}

// SetContacts replaces the whole contact collection.
func (s *TrackerService) SetContacts(ctx context.Context, contacts []domain.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = append([]domain.Contact{}, contacts...)
	return s.persist(ctx, domain.SlotContacts)
}

// Reminders returns the reminder collection.
func (s *TrackerService) Reminders() []domain.Reminder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Reminder{}, s.reminders...)
}

// AddReminder appends a reminder. The job reference is not checked.
func (s *TrackerService) AddReminder(ctx context.Context, reminder domain.Reminder) (domain.Reminder, error) {
	if reminder.Type == "" {
		reminder.Type = domain.ReminderFollowUp
	}
	if !reminder.Type.IsValid() {
		return domain.Reminder{}, fmt.Errorf("reminder type %q: %w", reminder.Type, domain.ErrInvalidInput)
	}
	if reminder.ID == "" {
		reminder.ID = s.ids.NewID()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reminders = append(s.reminders, reminder)
	return reminder, s.persist(ctx, domain.SlotReminders)
}

// SetReminders replaces the whole reminder collection.
func (s *TrackerService) SetReminders(ctx context.Context, reminders []domain.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reminders = append([]domain.Reminder{}, reminders...)
	return s.persist(ctx, domain.SlotReminders)
}

// CompleteReminder marks every reminder with the given id as completed.
func (s *TrackerService) CompleteReminder(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.reminders {
		if s.reminders[i].ID == id {
			s.reminders[i].Completed = true
			found = true
		}
	}
	if !found {
		return false, nil
	}
	return true, s.persist(ctx, domain.SlotReminders)
}

// SocialProfiles returns the social profile list.
func (s *TrackerService) SocialProfiles() []domain.SocialProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.SocialProfile{}, s.socials...)
}

// SetSocialProfiles replaces the social profile list.
func (s *TrackerService) SetSocialProfiles(ctx context.Context, profiles []domain.SocialProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.socials = append([]domain.SocialProfile{}, profiles...)
	return s.persist(ctx, domain.SlotSocialProfiles)
}

// UpsertSocialProfile replaces the profile for its platform or appends it.
func (s *TrackerService) UpsertSocialProfile(ctx context.Context, profile domain.SocialProfile) error {
	if !profile.Platform.IsValid() {
		return fmt.Errorf("platform %q: %w", profile.Platform, domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := false
	for i := range s.socials {
		if s.socials[i].Platform == profile.Platform {
			s.socials[i] = profile
			replaced = true
		}
	}
	if !replaced {
		s.socials = append(s.socials, profile)
	}
	return s.persist(ctx, domain.SlotSocialProfiles)
}

// Resume returns a copy of the résumé.
func (s *TrackerService) Resume() domain.ResumeProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resume.Clone()
}

// SetResume replaces the résumé.
func (s *TrackerService) SetResume(ctx context.Context, resume domain.ResumeProfile) error {
	return s.UpdateResume(ctx, func(domain.ResumeProfile) domain.ResumeProfile {
		return resume
	})
}

// UpdateResume applies fn to the current résumé under the write lock.
func (s *TrackerService) UpdateResume(
	ctx context.Context,
	fn func(domain.ResumeProfile) domain.ResumeProfile,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := fn(s.resume.Clone())
	next.Experience = nonNil(next.Experience)
	next.Education = nonNil(next.Education)
	next.Projects = nonNil(next.Projects)
	s.resume = next
	return s.persist(ctx, domain.SlotResume)
}

// Metrics computes the derived pipeline metrics.
func (s *TrackerService) Metrics() domain.DerivedMetrics {
	return ComputeMetrics(s.Jobs(), s.clock.Now())
}

// WeeklyActivity computes the five-week application histogram.
func (s *TrackerService) WeeklyActivity() []domain.WeeklyBucket {
	return WeeklyActivity(s.Jobs(), s.clock.Now())
}

// LogInterview moves a job to Interview and records the interview date.
func (s *TrackerService) LogInterview(ctx context.Context, id, date string) (bool, error) {
	if date == "" {
		return false, domain.MissingField("interview date")
	}
	return s.UpdateJobFunc(ctx, id, func(j *domain.JobApplication) {
		j.Status = domain.StatusInterview
		j.InterviewDate = date
	})
}

// RecordRejection moves a job to Rejected and records the reason.
func (s *TrackerService) RecordRejection(ctx context.Context, id, reason string) (bool, error) {
	return s.UpdateJobFunc(ctx, id, func(j *domain.JobApplication) {
		j.Status = domain.StatusRejected
		j.RejectionReason = reason
	})
}

// RecordOffer moves a job to Offer and records the salary.
func (s *TrackerService) RecordOffer(ctx context.Context, id, salary string) (bool, error) {
	return s.UpdateJobFunc(ctx, id, func(j *domain.JobApplication) {
		j.Status = domain.StatusOffer
		if salary != "" {
			j.Salary = salary
		}
	})
}

// ExportSlot returns the serialized collection for a slot.
func (s *TrackerService) ExportSlot(slot domain.Slot) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.encode(slot)
}

// ImportSlot replaces a collection from its serialized form and writes it.
// Malformed data is rejected without changing state.
func (s *TrackerService) ImportSlot(ctx context.Context, slot domain.Slot, data []byte) error {
	if !slot.IsValid() {
		return fmt.Errorf("slot %q: %w", slot, domain.ErrInvalidInput)
	}
	if !json.Valid(data) {
		return fmt.Errorf("slot %s: malformed JSON: %w", slot, domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.decode(slot, data); err != nil {
		return fmt.Errorf("slot %s: %w: %w", slot, domain.ErrInvalidInput, err)
	}
	return s.persist(ctx, slot)
}

// Reset restores every collection to its default and writes every slot.
func (s *TrackerService) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for _, slot := range domain.AllSlots() {
		s.applyDefault(slot)
		if err := s.persist(ctx, slot); err != nil {
			errs = append(errs, err)
		}
	}
	logger.Info("Reset all records")
	return errors.Join(errs...)
}

func validateJobs(jobs []domain.JobApplication) error {
	for i := range jobs {
		if !jobs[i].Status.IsValid() {
			return fmt.Errorf("job %s status %q: %w", jobs[i].ID, jobs[i].Status, domain.ErrInvalidInput)
		}
	}
	return nil
}

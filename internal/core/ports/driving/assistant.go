package driving

import (
	"context"

	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
)

// AssistantService wraps the generator with prompt rendering and fallbacks.
//
// Generator failures never surface as errors: each operation returns its
// fallback text instead. Errors are returned only for missing required
// fields (domain.ErrMissingField), unknown job ids (domain.ErrNotFound) and
// persistence failures.
type AssistantService interface {
	// Available reports whether a generator is configured.
	Available() bool

	// DraftCoverLetter drafts a cover letter for a role and company.
	DraftCoverLetter(ctx context.Context, role, company string) (string, error)

	// WriteCoverLetter drafts a cover letter and stores it on the job.
	WriteCoverLetter(ctx context.Context, jobID string) (string, error)

	// AnalyzeSkillGap compares a job description with the résumé skills.
	AnalyzeSkillGap(ctx context.Context, description string) (string, error)

	// WriteSkillGap analyzes the job's description and stores the result on the job.
	WriteSkillGap(ctx context.Context, jobID string) (string, error)

	// MockQuestions returns practice questions for a job.
	MockQuestions(ctx context.Context, jobID string) (string, error)

	// InterviewGuide prepares an interview guide for a role and company.
	InterviewGuide(ctx context.Context, role, company string) (string, error)

	// WriteInterviewGuide prepares a guide and stores it on the job.
	WriteInterviewGuide(ctx context.Context, jobID string) (string, error)

	// DiscoverRoles suggests related roles from the tracked jobs and skills.
	DiscoverRoles(ctx context.Context) (string, error)

	// GenerateResumeSummary writes a new résumé summary. The old summary is kept on failure.
	GenerateResumeSummary(ctx context.Context) (string, error)

	// ReformatResume switches the regional format and rewrites the summary for it.
	ReformatResume(ctx context.Context, format domain.RegionalFormat) (string, error)

	// Chat answers a message from the career coach persona.
	Chat(ctx context.Context, message string) (string, error)

	// GenerateAvatar creates or restyles the résumé avatar.
	// Returns the stored data URI, or "" when generation failed.
	GenerateAvatar(ctx context.Context, prompt string, base []byte) (string, error)
}

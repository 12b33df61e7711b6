package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
	"github.com/hirewire-labs/hirewire-cli/internal/core/ports/driven"
	"github.com/hirewire-labs/hirewire-cli/internal/core/ports/driving"
	"github.com/hirewire-labs/hirewire-cli/internal/logger"
)

// Ensure AssistantService implements the interfaces.
var (
	_ driving.AssistantService = (*AssistantService)(nil)
	_ driven.PromptStoreAware  = (*AssistantService)(nil)
)

// Fallback text returned when the generator answers with nothing.
const (
	emptyCoverLetter    = "Failed to generate."
	emptySkillGap       = "Analysis unavailable."
	emptyMockQuestions  = "Practice questions unavailable."
	emptyReformat       = "Reformatting failed."
	emptyDiscovery      = "No suggestions at this time."
	emptyInterviewGuide = "Failed to generate guide."
	emptyResumeSummary  = "Failed."
	emptyChat           = "I'm processing your request."
)

// Fallback text returned when the generator call fails.
const (
	failedCoverLetter    = "Failed to generate cover letter. Please check your API key and try again."
	failedSkillGap       = "Analysis failed. Please check your API key and try again."
	failedMockQuestions  = "Practice questions unavailable."
	failedDiscovery      = "Discovery failed. Please check your API key and try again."
	failedInterviewGuide = "Failed to generate guide."
	failedChat           = "System overload! Let's try that again in a sec."
)

const avatarDataURIPrefix = "data:image/png;base64,"

// AssistantService renders prompts, calls the generator, and applies
// per-operation fallbacks. Job and résumé writes go through the tracker's
// read-modify-write helpers so concurrent calls on disjoint fields do not
// overwrite each other.
type AssistantService struct {
	tracker   driving.TrackerService
	generator driven.Generator
	prompts   *promptRenderer
}

// NewAssistantService creates an assistant. A nil generator makes every
// operation return its failure fallback.
func NewAssistantService(tracker driving.TrackerService, generator driven.Generator) *AssistantService {
	return &AssistantService{
		tracker:   tracker,
		generator: generator,
		prompts:   newPromptRenderer(),
	}
}

// SetPromptStore sets the prompt store for loading customisable prompts.
func (s *AssistantService) SetPromptStore(store driven.PromptStore) {
	s.prompts.setStore(store)
}

// Available reports whether a generator is configured.
func (s *AssistantService) Available() bool {
	return s.generator != nil
}

// generateText renders a prompt and calls the generator.
// An empty answer becomes emptyFallback; failures are returned for the caller's fallback.
func (s *AssistantService) generateText(
	ctx context.Context,
	promptName string,
	data any,
	system string,
	emptyFallback string,
) (string, error) {
	if s.generator == nil {
		return "", domain.ErrGeneratorUnavailable
	}
	prompt, err := s.prompts.render(promptName, data)
	if err != nil {
		return "", err
	}

	logger.Debug("Generating %s with %s", promptName, s.generator.ModelName())
	text, err := s.generator.GenerateText(ctx, driven.TextRequest{
		Prompt:            prompt,
		SystemInstruction: system,
	})
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return emptyFallback, nil
	}
	return text, nil
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return domain.MissingField(field)
	}
	return nil
}

func (s *AssistantService) job(id string) (domain.JobApplication, error) {
	job, ok := s.tracker.Job(id)
	if !ok {
		return domain.JobApplication{}, fmt.Errorf("job %s: %w", id, domain.ErrNotFound)
	}
	return job, nil
}

// DraftCoverLetter drafts a cover letter from the résumé skills and social profiles.
func (s *AssistantService) DraftCoverLetter(ctx context.Context, role, company string) (string, error) {
	if err := required("role", role); err != nil {
		return "", err
	}
	if err := required("company", company); err != nil {
		return "", err
	}

	data := struct {
		Role, Company, Skills, Socials string
	}{role, company, s.tracker.Resume().Skills, socialContext(s.tracker.SocialProfiles())}

	text, err := s.generateText(ctx, driven.PromptCoverLetter, data, "", emptyCoverLetter)
	if err != nil {
		logger.Warn("cover letter: %v", err)
		return failedCoverLetter, nil
	}
	return text, nil
}

// WriteCoverLetter drafts a cover letter for a job and stores it, fallback included.
func (s *AssistantService) WriteCoverLetter(ctx context.Context, jobID string) (string, error) {
	job, err := s.job(jobID)
	if err != nil {
		return "", err
	}
	letter, err := s.DraftCoverLetter(ctx, job.Role, job.Company)
	if err != nil {
		return "", err
	}
	if _, err := s.tracker.UpdateJobFunc(ctx, jobID, func(j *domain.JobApplication) {
		j.CoverLetter = letter
	}); err != nil {
		return letter, err
	}
	return letter, nil
}

// AnalyzeSkillGap compares a job description with the résumé skills.
func (s *AssistantService) AnalyzeSkillGap(ctx context.Context, description string) (string, error) {
	if err := required("description", description); err != nil {
		return "", err
	}

	data := struct {
		Description, Skills string
	}{description, s.tracker.Resume().Skills}

	text, err := s.generateText(ctx, driven.PromptSkillGap, data, "", emptySkillGap)
	if err != nil {
		logger.Warn("skill gap: %v", err)
		return failedSkillGap, nil
	}
	return text, nil
}

// WriteSkillGap analyzes a job's description and stores the result.
func (s *AssistantService) WriteSkillGap(ctx context.Context, jobID string) (string, error) {
	job, err := s.job(jobID)
	if err != nil {
		return "", err
	}
	analysis, err := s.AnalyzeSkillGap(ctx, job.Description)
	if err != nil {
		return "", err
	}
	if _, err := s.tracker.UpdateJobFunc(ctx, jobID, func(j *domain.JobApplication) {
		j.SkillGapAnalysis = analysis
	}); err != nil {
		return analysis, err
	}
	return analysis, nil
}

// MockQuestions returns practice questions for a job. Nothing is stored.
func (s *AssistantService) MockQuestions(ctx context.Context, jobID string) (string, error) {
	job, err := s.job(jobID)
	if err != nil {
		return "", err
	}

	data := struct {
		Role, Company, Description string
	}{job.Role, job.Company, job.Description}

	text, err := s.generateText(ctx, driven.PromptMockQuestions, data, "", emptyMockQuestions)
	if err != nil {
		logger.Warn("mock questions: %v", err)
		return failedMockQuestions, nil
	}
	return text, nil
}

func (s *AssistantService) interviewGuide(ctx context.Context, role, company string) (string, error) {
	data := struct {
		Role, Company string
	}{role, company}
	return s.generateText(ctx, driven.PromptInterviewGuide, data, "", emptyInterviewGuide)
}

// InterviewGuide prepares an interview guide for a role and company.
func (s *AssistantService) InterviewGuide(ctx context.Context, role, company string) (string, error) {
	text, err := s.interviewGuide(ctx, role, company)
	if err != nil {
		logger.Warn("interview guide: %v", err)
		return failedInterviewGuide, nil
	}
	return text, nil
}

// WriteInterviewGuide prepares a guide for a job. The job is only updated
// when the generator answered.
func (s *AssistantService) WriteInterviewGuide(ctx context.Context, jobID string) (string, error) {
	job, err := s.job(jobID)
	if err != nil {
		return "", err
	}
	guide, err := s.interviewGuide(ctx, job.Role, job.Company)
	if err != nil {
		logger.Warn("interview guide: %v", err)
		return failedInterviewGuide, nil
	}
	if _, err := s.tracker.UpdateJobFunc(ctx, jobID, func(j *domain.JobApplication) {
		j.InterviewGuide = guide
	}); err != nil {
		return guide, err
	}
	return guide, nil
}

// DiscoverRoles suggests roles to target next from every tracked job.
func (s *AssistantService) DiscoverRoles(ctx context.Context) (string, error) {
	jobs := s.tracker.Jobs()
	parts := make([]string, 0, len(jobs))
	for i := range jobs {
		parts = append(parts, fmt.Sprintf("%s at %s", jobs[i].Role, jobs[i].Company))
	}

	data := struct {
		Jobs, Skills string
	}{strings.Join(parts, ", "), s.tracker.Resume().Skills}

	text, err := s.generateText(ctx, driven.PromptDiscoverRoles, data, "", emptyDiscovery)
	if err != nil {
		logger.Warn("discover roles: %v", err)
		return failedDiscovery, nil
	}
	return text, nil
}

// GenerateResumeSummary writes a new summary from the experience and projects.
// On failure the current summary is kept and returned.
func (s *AssistantService) GenerateResumeSummary(ctx context.Context) (string, error) {
	resume := s.tracker.Resume()

	experience := make([]string, 0, len(resume.Experience))
	for _, e := range resume.Experience {
		experience = append(experience, e.Title+": "+e.Content)
	}
	projects := make([]string, 0, len(resume.Projects))
	for _, p := range resume.Projects {
		projects = append(projects, p.Name)
	}

	data := struct {
		Skills, Experience string
	}{resume.Skills, strings.Join(experience, ", ") + ". " + strings.Join(projects, ", ")}

	summary, err := s.generateText(ctx, driven.PromptResumeSummary, data, "", emptyResumeSummary)
	if err != nil {
		logger.Warn("resume summary: %v", err)
		return resume.Summary, nil
	}
	if err := s.setSummary(ctx, summary); err != nil {
		return summary, err
	}
	return summary, nil
}

// ReformatResume switches the regional format, then rewrites the summary for it.
// The format change is kept even if the rewrite fails.
func (s *AssistantService) ReformatResume(ctx context.Context, format domain.RegionalFormat) (string, error) {
	if !format.IsValid() {
		return "", fmt.Errorf("regional format %q: %w", format, domain.ErrInvalidInput)
	}
	if err := s.tracker.UpdateResume(ctx, func(r domain.ResumeProfile) domain.ResumeProfile {
		r.RegionalFormat = format
		return r
	}); err != nil {
		return "", err
	}

	resume := s.tracker.Resume()
	experience := make([]string, 0, len(resume.Experience))
	for _, e := range resume.Experience {
		experience = append(experience, e.Title+": "+e.Content)
	}

	data := struct {
		Resume string
		Format domain.RegionalFormat
	}{resume.Summary + ". " + strings.Join(experience, ". "), format}

	summary, err := s.generateText(ctx, driven.PromptReformatResume, data, "", emptyReformat)
	if err != nil {
		logger.Warn("reformat resume: %v", err)
		return resume.Summary, nil
	}
	if err := s.setSummary(ctx, summary); err != nil {
		return summary, err
	}
	return summary, nil
}

func (s *AssistantService) setSummary(ctx context.Context, summary string) error {
	return s.tracker.UpdateResume(ctx, func(r domain.ResumeProfile) domain.ResumeProfile {
		r.Summary = summary
		return r
	})
}

// Chat answers as the career coach, grounded in the current metrics.
func (s *AssistantService) Chat(ctx context.Context, message string) (string, error) {
	if err := required("message", message); err != nil {
		return "", err
	}
	if s.generator == nil {
		logger.Warn("chat: %v", domain.ErrGeneratorUnavailable)
		return failedChat, nil
	}

	summary := CoachContext(s.tracker.Metrics(), s.tracker.Resume().Skills)
	system, err := s.prompts.render(driven.PromptCoachSystem, struct{ Context string }{summary})
	if err != nil {
		logger.Warn("chat: %v", err)
		return failedChat, nil
	}

	text, err := s.generator.GenerateText(ctx, driven.TextRequest{
		Prompt:            message,
		SystemInstruction: system,
	})
	if err != nil {
		logger.Warn("chat: %v", err)
		return failedChat, nil
	}
	if strings.TrimSpace(text) == "" {
		return emptyChat, nil
	}
	return text, nil
}

// GenerateAvatar creates an avatar, or restyles base when given, and stores it
// as a PNG data URI. A blank prompt uses the résumé skills. Returns "" and
// keeps the current avatar when generation fails.
func (s *AssistantService) GenerateAvatar(ctx context.Context, prompt string, base []byte) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		prompt = s.tracker.Resume().Skills
	}
	if s.generator == nil {
		logger.Warn("avatar: %v", domain.ErrGeneratorUnavailable)
		return "", nil
	}

	name := driven.PromptAvatar
	if len(base) > 0 {
		name = driven.PromptAvatarTransform
	}
	text, err := s.prompts.render(name, struct{ Prompt string }{prompt})
	if err != nil {
		logger.Warn("avatar: %v", err)
		return "", nil
	}

	img, err := s.generator.GenerateImage(ctx, driven.ImageRequest{
		Prompt:       text,
		BaseImage:    base,
		BaseMIMEType: "image/jpeg",
	})
	if err != nil {
		logger.Warn("avatar: %v", err)
		return "", nil
	}
	if len(img) == 0 {
		return "", nil
	}

	uri := avatarDataURIPrefix + base64.StdEncoding.EncodeToString(img)
	if err := s.tracker.UpdateResume(ctx, func(r domain.ResumeProfile) domain.ResumeProfile {
		r.Avatar = uri
		return r
	}); err != nil {
		return uri, err
	}
	return uri, nil
}

// DecodeImageData accepts raw base64 or a data URI and returns the image bytes.
func DecodeImageData(v string) ([]byte, error) {
	if i := strings.Index(v, "base64,"); i >= 0 {
		v = v[i+len("base64,"):]
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(v))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", domain.ErrInvalidInput)
	}
	return data, nil
}

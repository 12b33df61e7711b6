package driven

// PromptStore provides access to prompt templates.
// Templates use text/template syntax.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	// Unknown names return an error; known names fall back to a built-in default.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next access.
	// This is useful when prompts may have been edited on disk.
	Reload()
}

// Well-known prompt names used throughout the application.
const (
	// PromptCoverLetter drafts a cover letter.
	// Fields: .Role, .Company, .Skills, .Socials.
	PromptCoverLetter = "cover_letter"

	// PromptSkillGap compares a job description with the candidate's skills.
	// Fields: .Description, .Skills.
	PromptSkillGap = "skill_gap"

	// PromptMockQuestions lists practice interview questions.
	// Fields: .Role, .Company, .Description.
	PromptMockQuestions = "mock_questions"

	// PromptReformatResume rewrites résumé content for a regional convention.
	// Fields: .Resume, .Format.
	PromptReformatResume = "reformat_resume"

	// PromptDiscoverRoles suggests related roles.
	// Fields: .Jobs, .Skills.
	PromptDiscoverRoles = "discover_roles"

	// PromptInterviewGuide prepares a company-specific interview guide.
	// Fields: .Role, .Company.
	PromptInterviewGuide = "interview_guide"

	// PromptResumeSummary writes a professional summary.
	// Fields: .Skills, .Experience.
	PromptResumeSummary = "resume_summary"

	// PromptCoachSystem is the chat system instruction.
	// Fields: .Context.
	PromptCoachSystem = "coach_system"

	// PromptAvatar generates a new headshot from a description.
	// Fields: .Prompt.
	PromptAvatar = "avatar"

	// PromptAvatarTransform restyles an existing headshot.
	// Fields: .Prompt.
	PromptAvatarTransform = "avatar_transform"
)

// AllPromptNames returns every well-known prompt name.
func AllPromptNames() []string {
	return []string{
		PromptCoverLetter,
		PromptSkillGap,
		PromptMockQuestions,
		PromptReformatResume,
		PromptDiscoverRoles,
		PromptInterviewGuide,
		PromptResumeSummary,
		PromptCoachSystem,
		PromptAvatar,
		PromptAvatarTransform,
	}
}

// PromptStoreAware is an optional interface for services that can use custom prompts.
// Services implementing this interface can have their prompt templates customised
// by injecting a PromptStore after construction.
type PromptStoreAware interface {
	// SetPromptStore sets the prompt store for loading customisable prompts.
	// If not set, the service uses its built-in templates.
	SetPromptStore(store PromptStore)
}

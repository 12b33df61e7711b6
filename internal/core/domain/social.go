package domain

import "strings"

// Platform identifies a social profile site.
type Platform string

// Supported platforms.
const (
	PlatformLinkedIn  Platform = "linkedin"
	PlatformGitHub    Platform = "github"
	PlatformTwitter   Platform = "twitter"
	PlatformPortfolio Platform = "portfolio"
	PlatformEmail     Platform = "email"
)

// AllPlatforms returns every supported platform.
func AllPlatforms() []Platform {
	return []Platform{PlatformLinkedIn, PlatformGitHub, PlatformTwitter, PlatformPortfolio, PlatformEmail}
}

// IsValid returns true if the platform is recognised.
func (p Platform) IsValid() bool {
	switch p {
	case PlatformLinkedIn, PlatformGitHub, PlatformTwitter, PlatformPortfolio, PlatformEmail:
		return true
	default:
		return false
	}
}

// ParsePlatform matches a platform case-insensitively.
func ParsePlatform(v string) (Platform, bool) {
	p := Platform(strings.ToLower(strings.TrimSpace(v)))
	return p, p.IsValid()
}

// SocialProfile is a public profile link. One per platform is expected.
type SocialProfile struct {
	Platform Platform `json:"platform"`
	Handle   string   `json:"handle"`
	URL      string   `json:"url"`
}

// DefaultSocialProfiles returns the seed profile list used when nothing is saved.
func DefaultSocialProfiles() []SocialProfile {
	return []SocialProfile{
		{Platform: PlatformEmail, Handle: "alex@venture.com", URL: "mailto:alex@venture.com"},
		{Platform: PlatformLinkedIn, Handle: "alex-venture", URL: "https://linkedin.com/in/alex-venture"},
	}
}

// ExportFormat selects how social profiles are rendered for sharing.
type ExportFormat string

// Export formats.
const (
	ExportMarkdown ExportFormat = "markdown"
	ExportText     ExportFormat = "text"
)

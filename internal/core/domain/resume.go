package domain

import "strings"

// RegionalFormat is a résumé convention.
type RegionalFormat string

// Regional résumé formats.
const (
	FormatUSResume RegionalFormat = "US-Resume"
	FormatEUCV     RegionalFormat = "EU-CV"
	FormatUKCV     RegionalFormat = "UK-CV"
	FormatAUResume RegionalFormat = "AU-Resume"
)

// AllRegionalFormats returns every supported format.
func AllRegionalFormats() []RegionalFormat {
	return []RegionalFormat{FormatUSResume, FormatEUCV, FormatUKCV, FormatAUResume}
}

// IsValid returns true if the format is recognised.
func (f RegionalFormat) IsValid() bool {
	switch f {
	case FormatUSResume, FormatEUCV, FormatUKCV, FormatAUResume:
		return true
	default:
		return false
	}
}

// ParseRegionalFormat matches a format case-insensitively.
func ParseRegionalFormat(v string) (RegionalFormat, bool) {
	for _, f := range AllRegionalFormats() {
		if strings.EqualFold(string(f), strings.TrimSpace(v)) {
			return f, true
		}
	}
	return "", false
}

// Section is an experience or education entry.
type Section struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Date    string `json:"date"`
}

// Project is a portfolio project.
type Project struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tech        []string `json:"tech"`
}

// ResumeProfile is the candidate's résumé.
type ResumeProfile struct {
	FullName       string         `json:"fullName"`
	Summary        string         `json:"summary"`
	Experience     []Section      `json:"experience"`
	Education      []Section      `json:"education"`
	Projects       []Project      `json:"projects"`
	Skills         string         `json:"skills"`
	Avatar         string         `json:"avatar"`
	RegionalFormat RegionalFormat `json:"regionalFormat"`
}

// Clone returns a deep copy.
func (r ResumeProfile) Clone() ResumeProfile {
	out := r
	out.Experience = append([]Section{}, r.Experience...)
	out.Education = append([]Section{}, r.Education...)
	out.Projects = make([]Project, len(r.Projects))
	for i, p := range r.Projects {
		p.Tech = append([]string{}, p.Tech...)
		out.Projects[i] = p
	}
	return out
}

// DefaultResume returns the seed résumé. Saved fields are merged over it.
func DefaultResume() ResumeProfile {
	return ResumeProfile{
		FullName:       "Alex Venture",
		Summary:        "Strategic technology leader with 8+ years experience in distributed systems and AI integration.",
		Experience:     []Section{},
		Education:      []Section{},
		Projects:       []Project{},
		Skills:         "React, TypeScript, Node.js, AWS, Kubernetes, LLM Orchestration",
		Avatar:         "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?auto=format&fit=facearea&facepad=2&w=256&h=256&q=80",
		RegionalFormat: FormatUSResume,
	}
}

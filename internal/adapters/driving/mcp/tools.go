package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
	"github.com/hirewire-labs/hirewire-cli/internal/core/services"
)

// ListJobsInput is the input schema for the list_jobs tool.
type ListJobsInput struct {
	Status string `json:"status,omitempty" jsonschema:"pipeline status to filter by: Applied, Interview, Offer, Rejected or Accepted"`
	Search string `json:"search,omitempty" jsonschema:"case-insensitive text matched against company and role"`
}

// ListJobsOutput is the output schema for the list_jobs tool.
type ListJobsOutput struct {
	Jobs  []JobOutput `json:"jobs"`
	Count int         `json:"count"`
}

// JobOutput is a job summary without the long generated texts.
type JobOutput struct {
	ID            string `json:"id"`
	Company       string `json:"company"`
	Role          string `json:"role"`
	Status        string `json:"status"`
	DateApplied   string `json:"date_applied"`
	Salary        string `json:"salary,omitempty"`
	Location      string `json:"location,omitempty"`
	InterviewDate string `json:"interview_date,omitempty"`
}

// MetricsInput is the empty input schema for the pipeline_metrics tool.
type MetricsInput struct{}

// MetricsOutput is the output schema for the pipeline_metrics tool.
type MetricsOutput struct {
	TotalApplications int            `json:"total_applications"`
	TotalInterviews   int            `json:"total_interviews"`
	TotalOffers       int            `json:"total_offers"`
	ConversionRate    float64        `json:"conversion_rate"`
	Weekly            []WeeklyOutput `json:"weekly"`
	Recent            []JobOutput    `json:"recent"`
}

// WeeklyOutput is one bucket of the weekly activity chart.
type WeeklyOutput struct {
	Name string `json:"name"`
	Apps int    `json:"apps"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_jobs",
		Description: "List tracked job applications, optionally filtered by status and text",
	}, s.handleListJobs)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "pipeline_metrics",
		Description: "Totals, conversion rate and weekly activity for the job search",
	}, s.handleMetrics)
}

// handleListJobs handles the list_jobs tool invocation.
func (s *Server) handleListJobs(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ListJobsInput,
) (*mcp.CallToolResult, ListJobsOutput, error) {
	status := services.StatusAll
	if input.Status != "" {
		parsed, ok := domain.ParseJobStatus(input.Status)
		if !ok {
			return nil, ListJobsOutput{}, fmt.Errorf("unknown status %q: %w", input.Status, domain.ErrInvalidInput)
		}
		status = parsed
	}

	jobs := services.FilterJobs(s.ports.Tracker.Jobs(), input.Search, status)
	output := ListJobsOutput{
		Jobs:  make([]JobOutput, len(jobs)),
		Count: len(jobs),
	}
	for i := range jobs {
		output.Jobs[i] = toJobOutput(&jobs[i])
	}
	return nil, output, nil
}

// handleMetrics handles the pipeline_metrics tool invocation.
func (s *Server) handleMetrics(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ MetricsInput,
) (*mcp.CallToolResult, MetricsOutput, error) {
	return nil, s.metrics(), nil
}

func (s *Server) metrics() MetricsOutput {
	m := s.ports.Tracker.Metrics()
	weekly := s.ports.Tracker.WeeklyActivity()

	out := MetricsOutput{
		TotalApplications: m.TotalApplications,
		TotalInterviews:   m.TotalInterviews,
		TotalOffers:       m.TotalOffers,
		ConversionRate:    m.ConversionRate,
		Weekly:            make([]WeeklyOutput, len(weekly)),
		Recent:            make([]JobOutput, len(m.RecentStatus)),
	}
	for i, w := range weekly {
		out.Weekly[i] = WeeklyOutput{Name: w.Name, Apps: w.Apps}
	}
	for i := range m.RecentStatus {
		out.Recent[i] = toJobOutput(&m.RecentStatus[i])
	}
	return out
}

func toJobOutput(j *domain.JobApplication) JobOutput {
	return JobOutput{
		ID:            j.ID,
		Company:       j.Company,
		Role:          j.Role,
		Status:        string(j.Status),
		DateApplied:   j.DateApplied,
		Salary:        j.Salary,
		Location:      j.Location,
		InterviewDate: j.InterviewDate,
	}
}

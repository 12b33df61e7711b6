package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for HireWire resources.
	uriScheme = "hirewire://"

	mimeJSON = "application/json"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "jobs",
		Name:        "jobs",
		Description: "Every tracked job application",
		MIMEType:    mimeJSON,
	}, s.handleJobsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "jobs/{jobId}",
		Name:        "job",
		Description: "One job application including its generated texts",
		MIMEType:    mimeJSON,
	}, s.handleJobResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "contacts",
		Name:        "contacts",
		Description: "Networking contacts",
		MIMEType:    mimeJSON,
	}, s.handleContactsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "resume",
		Name:        "resume",
		Description: "The résumé profile",
		MIMEType:    mimeJSON,
	}, s.handleResumeResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "metrics",
		Name:        "metrics",
		Description: "Pipeline totals, conversion rate and weekly activity",
		MIMEType:    mimeJSON,
	}, s.handleMetricsResource)
}

// handleJobsResource returns every job.
func (s *Server) handleJobsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResult(req.Params.URI, s.ports.Tracker.Jobs())
}

// handleJobResource returns a single job by id.
func (s *Server) handleJobResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractJobID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	job, ok := s.ports.Tracker.Job(id)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return jsonResult(req.Params.URI, job)
}

// handleContactsResource returns every contact.
func (s *Server) handleContactsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResult(req.Params.URI, s.ports.Tracker.Contacts())
}

// handleResumeResource returns the résumé profile.
func (s *Server) handleResumeResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResult(req.Params.URI, s.ports.Tracker.Resume())
}

// handleMetricsResource returns the derived pipeline metrics.
func (s *Server) handleMetricsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResult(req.Params.URI, s.metrics())
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: mimeJSON,
			Text:     string(data),
		}},
	}, nil
}

// extractJobID extracts the job ID from a URI like hirewire://jobs/{jobId}.
func extractJobID(uri string) string {
	const prefix = uriScheme + "jobs/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}

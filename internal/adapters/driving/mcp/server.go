package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Version is the MCP server version.
const Version = "0.1.0"

const instructions = `HireWire exposes a job seeker's application pipeline.
Use list_jobs to find applications and pipeline_metrics for totals.
Read hirewire://jobs/{jobId} for the full record of one application.
Everything is read-only.`

// Server serves the tracker's records over MCP. It never writes.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

// NewServer creates a new MCP server with the given ports.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	s := &Server{
		ports: ports,
		server: mcp.NewServer(
			&mcp.Implementation{Name: "hirewire", Title: "HireWire", Version: Version},
			&mcp.ServerOptions{Instructions: instructions},
		),
	}
	s.registerTools()
	s.registerResources()
	return s, nil
}

// Run serves over stdio until the client disconnects or ctx is done.
func (s *Server) Run(ctx context.Context) error {
	return s.Serve(ctx, &mcp.StdioTransport{})
}

// Serve runs a single session on the given transport and waits for it to end.
func (s *Server) Serve(ctx context.Context, t mcp.Transport) error {
	session, err := s.server.Connect(ctx, t, nil)
	if err != nil {
		return fmt.Errorf("connecting session: %w", err)
	}
	return session.Wait()
}

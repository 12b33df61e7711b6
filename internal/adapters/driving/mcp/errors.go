// Package mcp provides an MCP (Model Context Protocol) server adapter for HireWire.
// It lets AI assistants read the job pipeline, contacts and résumé.
package mcp

import "errors"

// ErrMissingTracker is returned when the tracker service is not provided.
var ErrMissingTracker = errors.New("mcp: tracker service is required")

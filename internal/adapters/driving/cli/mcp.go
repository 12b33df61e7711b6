package cli

import (
	"github.com/spf13/cobra"

	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/mcp"
	"github.com/hirewire-labs/hirewire-cli/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can read your
job pipeline.

The server communicates over stdio using JSON-RPC and is read-only.

Tools:
  list_jobs         List applications, filtered by status and text
  pipeline_metrics  Totals, conversion rate and weekly activity

Resources:
  hirewire://jobs, hirewire://jobs/{jobId}, hirewire://contacts,
  hirewire://resume, hirewire://metrics

Client configuration (e.g. claude_desktop_config.json):
  {
    "mcpServers": {
      "hirewire": {
        "command": "/path/to/hirewire",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	server, err := mcp.NewServer(&mcp.Ports{Tracker: trackerService})
	if err != nil {
		return err
	}

	// stdout carries the JSON-RPC stream.
	logger.SetOutput(cmd.ErrOrStderr())
	logger.Info("MCP server running on stdio")
	return server.Run(cmd.Context())
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/zenith/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

The server exposes the natal_chart, body_position, transits and
progressed_chart tools, and the stored profiles as resources.

By default, the server communicates over stdio using JSON-RPC and can be
used with any MCP-compatible AI assistant.

Use --port to start an HTTP server instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

Examples:
  # Stdio mode (default)
  zenith mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  zenith mcp serve --port 8080

  # HTTP mode without request limiting
  zenith mcp serve --port 8080 --rate 0

Client configuration:
  {
    "mcpServers": {
      "zenith": {
        "command": "/path/to/zenith",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().Float64("rate", mcp.DefaultRateLimit.RequestsPerSecond, "HTTP requests per second (0 = unlimited)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	ports := &mcp.Ports{
		Chart:   chartService,
		Profile: profileService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port > 0 {
		rps, err := cmd.Flags().GetFloat64("rate")
		if err != nil {
			return fmt.Errorf("getting rate flag: %w", err)
		}
		server.WithRateLimit(mcp.RateLimitConfig{
			RequestsPerSecond: rps,
			BurstSize:         int(2 * rps),
		})

		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}

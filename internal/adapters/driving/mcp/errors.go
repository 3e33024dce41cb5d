// Package mcp provides an MCP (Model Context Protocol) server adapter for zenith.
// It lets AI assistants cast natal charts, query body positions, and read
// transits and progressions through the same services the CLI uses.
package mcp

import "errors"

// ErrMissingChartService is returned when the chart service is not provided.
var ErrMissingChartService = errors.New("mcp: chart service is required")

// ErrProfilesUnavailable is returned when a tool names a stored profile but
// the server was built without a profile service.
var ErrProfilesUnavailable = errors.New("mcp: profile service is not configured")

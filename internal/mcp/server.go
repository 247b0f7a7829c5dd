package mcp

import (
	"log/slog"

	"github.com/MahithChigurupati/Confluence-MCP-Server/internal/confluence"
	"github.com/MahithChigurupati/Confluence-MCP-Server/internal/state"

	"github.com/mark3labs/mcp-go/server"
)

// Dependencies bundles the services required for MCP server construction.
type Dependencies struct {
	ConfluenceService *confluence.Service
	Cache             *state.Cache
	ConfluenceBaseURL string
	Logger            *slog.Logger
}

// NewServer builds an MCP server with registered Confluence tools.
func NewServer(deps Dependencies) *server.MCPServer {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	srv := server.NewMCPServer(
		"Confluence MCP",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithInstructions("Read-only tools for browsing and searching Confluence."),
		server.WithRecovery(),
	)

	if deps.Cache == nil {
		deps.Cache = state.NewCache()
	}

	if deps.ConfluenceService != nil {
		NewConfluenceTools(srv, deps.ConfluenceService, deps.Cache, deps.ConfluenceBaseURL)
	}

	return srv
}

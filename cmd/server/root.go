package main

import (
	"fmt"
	"os"
	"strings"

	"log/slog"

	"github.com/MahithChigurupati/Confluence-MCP-Server/internal/atlassian"
	"github.com/MahithChigurupati/Confluence-MCP-Server/internal/config"
	"github.com/MahithChigurupati/Confluence-MCP-Server/internal/confluence"
	mcpserver "github.com/MahithChigurupati/Confluence-MCP-Server/internal/mcp"
	"github.com/MahithChigurupati/Confluence-MCP-Server/internal/state"
	"github.com/MahithChigurupati/Confluence-MCP-Server/pkg/logging"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the Confluence MCP server.
func NewRootCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:           "confluence-mcp-server",
		Short:         "MCP server exposing read-only Confluence tools over stdio",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(cfgPath)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "Path to configuration directory or file")

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfgPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	logger := logging.New(cfg.Server.LogLevel)

	site := ensureHTTPS(cfg.Confluence.BaseURL)
	apiBase := buildConfluenceAPIBase(site)

	client, err := atlassian.NewClient(apiBase, cfg.Confluence.Username, cfg.Confluence.APIToken, logger)
	if err != nil {
		return fmt.Errorf("initialize Confluence client: %w", err)
	}

	srv := mcpserver.NewServer(mcpserver.Dependencies{
		ConfluenceService: confluence.NewService(client),
		Cache:             state.NewCache(),
		ConfluenceBaseURL: buildConfluenceUIBase(site),
		Logger:            logger,
	})

	logger.Info("confluence mcp server starting", slog.String("api_base", apiBase))

	if err := server.ServeStdio(srv); err != nil {
		return fmt.Errorf("stdio server terminated: %w", err)
	}

	return nil
}

func ensureHTTPS(site string) string {
	trimmed := strings.TrimSpace(site)
	if trimmed == "" {
		return ""
	}

	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return strings.TrimRight(trimmed, "/")
	}

	return "https://" + strings.TrimRight(trimmed, "/")
}

func buildConfluenceAPIBase(site string) string {
	trimmed := strings.TrimRight(site, "/")
	if trimmed == "" {
		return ""
	}
	if strings.Contains(trimmed, "/rest/") {
		return trimmed
	}
	if strings.HasSuffix(trimmed, "/wiki") {
		return trimmed + "/rest/api"
	}
	return trimmed + "/wiki/rest/api"
}

func buildConfluenceUIBase(site string) string {
	trimmed := strings.TrimRight(site, "/")
	if trimmed == "" {
		return ""
	}
	trimmed = strings.TrimSuffix(trimmed, "/rest/api")
	if strings.HasSuffix(trimmed, "/wiki") {
		return trimmed
	}
	return trimmed + "/wiki"
}

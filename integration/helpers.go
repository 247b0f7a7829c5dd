package integration

import (
	"os"
	"strings"
	"testing"

	"github.com/MahithChigurupati/Confluence-MCP-Server/internal/atlassian"
	"github.com/MahithChigurupati/Confluence-MCP-Server/internal/confluence"
)

// requireIntegration skips the test if MCP_INTEGRATION environment variable is not set.
func requireIntegration(t *testing.T) {
	t.Helper()
	if os.Getenv("MCP_INTEGRATION") == "" {
		t.Skip("MCP_INTEGRATION not set; skipping integration tests")
	}
}

// ensureHTTPS adds https:// prefix to URLs if not already present.
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

// setupConfluenceService creates a Confluence service from the documented
// environment variables. Skips the test when they are not available.
func setupConfluenceService(t *testing.T) (*confluence.Service, string) {
	t.Helper()

	base := ensureHTTPS(os.Getenv("CONFLUENCE_BASE_URL"))
	if base == "" {
		t.Skip("CONFLUENCE_BASE_URL not set")
	}
	if !strings.Contains(base, "/rest/") {
		base = strings.TrimRight(base, "/") + "/wiki/rest/api"
	}

	username := os.Getenv("USERNAME")
	apiToken := os.Getenv("API_TOKEN")
	if username == "" || apiToken == "" {
		t.Skip("Confluence credentials not provided")
	}

	client, err := atlassian.NewClient(base, username, apiToken, nil)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	return confluence.NewService(client), strings.TrimRight(base, "/")
}

// skipIfEmpty skips the test if the provided slice is empty with a helpful message.
func skipIfEmpty[T any](t *testing.T, items []T, itemType string) {
	t.Helper()
	if len(items) == 0 {
		t.Skipf("no %s found; cannot proceed with test", itemType)
	}
}

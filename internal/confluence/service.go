package confluence

import (
	"strings"

	"github.com/MahithChigurupati/Confluence-MCP-Server/internal/atlassian"
)

// Service exposes the Confluence REST endpoints used by the MCP server.
// It is stateless: every operation is an independent request/response
// round trip against the configured instance.
type Service struct {
	client *atlassian.Client
}

// NewService constructs a Confluence service.
func NewService(client *atlassian.Client) *Service {
	return &Service{client: client}
}

func apiPath(parts ...string) string {
	builder := strings.Builder{}

	for _, part := range parts {
		if trimmed := strings.Trim(part, "/"); trimmed != "" {
			builder.WriteByte('/')
			builder.WriteString(trimmed)
		}
	}

	return builder.String()
}

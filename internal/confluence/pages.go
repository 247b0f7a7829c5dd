package confluence

import (
	"context"
	"strconv"
	"strings"

	"github.com/MahithChigurupati/Confluence-MCP-Server/internal/atlassian"
)

// GetPageContent retrieves a page with its storage-format body, version,
// space, and labels. A positive version is passed through as a query
// parameter; historical fetch is best-effort — the endpoint may ignore it
// and serve the latest revision, and the returned version number is
// whatever the server reports.
func (s *Service) GetPageContent(ctx context.Context, pageID string, version int) (*Page, error) {
	if strings.TrimSpace(pageID) == "" {
		return nil, atlassian.NewValidationError("page id required")
	}

	params := map[string]string{
		"expand": "body.storage,version,space,metadata.labels",
	}
	if version > 0 {
		params["version"] = strconv.Itoa(version)
	}

	var page Page
	if err := s.client.Get(ctx, apiPath("content", pageID), params, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// SpacePagesQuery pages through the pages of a single space.
type SpacePagesQuery struct {
	SpaceKey string
	Limit    int
	Start    int
}

// ListPagesInSpace lists pages belonging to a space, in the order the
// server returns them.
func (s *Service) ListPagesInSpace(ctx context.Context, q SpacePagesQuery) ([]Page, error) {
	if strings.TrimSpace(q.SpaceKey) == "" {
		return nil, atlassian.NewValidationError("space key required")
	}
	if q.Limit <= 0 {
		q.Limit = 100
	}
	if q.Start < 0 {
		q.Start = 0
	}

	params := map[string]string{
		"spaceKey": q.SpaceKey,
		"type":     "page",
		"limit":    strconv.Itoa(q.Limit),
		"start":    strconv.Itoa(q.Start),
		"expand":   "version",
	}

	var response struct {
		Results []Page `json:"results"`
	}

	if err := s.client.Get(ctx, apiPath("content"), params, &response); err != nil {
		return nil, err
	}

	return response.Results, nil
}

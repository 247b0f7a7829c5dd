package confluence

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MahithChigurupati/Confluence-MCP-Server/internal/atlassian"
)

// SearchQuery describes a content search. Query is free text, or raw CQL
// when it already contains CQL operators. SpaceKey optionally narrows the
// search to a single space.
type SearchQuery struct {
	Query    string
	SpaceKey string
	Limit    int
	Start    int
}

// SearchContent searches content via CQL. Results keep the server's
// relevance order; nothing is re-sorted locally. A CQL syntax error
// surfaces as a 400 (see atlassian.IsInvalidQuery).
func (s *Service) SearchContent(ctx context.Context, q SearchQuery) ([]Page, error) {
	if strings.TrimSpace(q.Query) == "" {
		return nil, atlassian.NewValidationError("search query required")
	}
	if q.Limit <= 0 {
		q.Limit = 50
	}
	if q.Start < 0 {
		q.Start = 0
	}

	params := map[string]string{
		"cql":    BuildCQL(q.Query, q.SpaceKey),
		"limit":  strconv.Itoa(q.Limit),
		"start":  strconv.Itoa(q.Start),
		"expand": "space,version",
	}

	var response struct {
		Results []Page `json:"results"`
	}

	if err := s.client.Get(ctx, apiPath("content/search"), params, &response); err != nil {
		return nil, err
	}

	return response.Results, nil
}

// BuildCQL wraps free text in a text match, narrowed to a space when given.
// Queries that already contain CQL operators are passed through untouched.
func BuildCQL(query, spaceKey string) string {
	cql := query
	if !strings.ContainsAny(query, "~=") {
		escaped := strings.ReplaceAll(query, `"`, `\"`)
		cql = fmt.Sprintf(`text ~ "%s"`, escaped)
	}

	if spaceKey != "" {
		cql = fmt.Sprintf(`%s AND space.key = "%s"`, cql, spaceKey)
	}

	return cql
}

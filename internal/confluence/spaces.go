package confluence

import (
	"context"
	"strconv"
	"strings"
)

// SpaceQuery narrows and pages a space listing. Query is an optional
// free-text filter on space key and name.
type SpaceQuery struct {
	Query string
	Limit int
	Start int
}

// ListSpaces retrieves global Confluence spaces. Paging is offset-based:
// pass Start += Limit to fetch the next page.
func (s *Service) ListSpaces(ctx context.Context, q SpaceQuery) ([]Space, error) {
	if q.Limit <= 0 {
		q.Limit = 25
	}
	if q.Start < 0 {
		q.Start = 0
	}

	params := map[string]string{
		"type":   "global",
		"limit":  strconv.Itoa(q.Limit),
		"start":  strconv.Itoa(q.Start),
		"expand": "description.plain,homepage",
	}

	var response struct {
		Results []Space `json:"results"`
	}

	if err := s.client.Get(ctx, apiPath("space"), params, &response); err != nil {
		return nil, err
	}

	if q.Query == "" {
		return response.Results, nil
	}

	// The v1 space endpoint has no free-text filter, so the name filter is
	// applied over the fetched page.
	needle := strings.ToLower(q.Query)
	filtered := response.Results[:0]
	for _, space := range response.Results {
		if strings.Contains(strings.ToLower(space.Key), needle) ||
			strings.Contains(strings.ToLower(space.Name), needle) {
			filtered = append(filtered, space)
		}
	}

	return filtered, nil
}

package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/MahithChigurupati/Confluence-MCP-Server/internal/atlassian"
	"github.com/MahithChigurupati/Confluence-MCP-Server/internal/confluence"
	"github.com/MahithChigurupati/Confluence-MCP-Server/internal/state"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ConfluenceTools wires the Confluence service into MCP tools.
type ConfluenceTools struct {
	service *confluence.Service
	cache   *state.Cache
	baseURL string
}

// NewConfluenceTools registers Confluence tools on the server.
func NewConfluenceTools(s *server.MCPServer, service *confluence.Service, cache *state.Cache, baseURL string) *ConfluenceTools {
	if cache == nil {
		cache = state.NewCache()
	}

	ct := &ConfluenceTools{
		service: service,
		cache:   cache,
		baseURL: strings.TrimRight(baseURL, "/"),
	}

	s.AddTool(
		mcp.NewTool(
			"confluence.list_spaces",
			mcp.WithDescription("List Confluence spaces accessible to the configured account, optionally filtered by name"),
			mcp.WithInputSchema[ConfluenceListSpacesArgs](),
			mcp.WithOutputSchema[ConfluenceSpacesResult](),
		),
		mcp.NewTypedToolHandler(ct.handleListSpaces),
	)

	s.AddTool(
		mcp.NewTool(
			"confluence.get_page_content",
			mcp.WithDescription("Get the storage-format content of a Confluence page by ID"),
			mcp.WithInputSchema[ConfluenceGetPageArgs](),
			mcp.WithOutputSchema[ConfluencePageResult](),
		),
		mcp.NewTypedToolHandler(ct.handleGetPageContent),
	)

	s.AddTool(
		mcp.NewTool(
			"confluence.search_content",
			mcp.WithDescription("Search Confluence content by free text or CQL, optionally within one space"),
			mcp.WithInputSchema[ConfluenceSearchArgs](),
			mcp.WithOutputSchema[ConfluenceSearchResult](),
		),
		mcp.NewTypedToolHandler(ct.handleSearchContent),
	)

	s.AddTool(
		mcp.NewTool(
			"confluence.list_pages_in_space",
			mcp.WithDescription("List the pages of a Confluence space"),
			mcp.WithInputSchema[ConfluenceListPagesArgs](),
			mcp.WithOutputSchema[ConfluencePagesResult](),
		),
		mcp.NewTypedToolHandler(ct.handleListPagesInSpace),
	)

	return ct
}

// ConfluenceListSpacesArgs parameters for list spaces.
type ConfluenceListSpacesArgs struct {
	Query string `json:"query,omitempty" jsonschema_description:"Filter spaces by key or name"`
	Limit int    `json:"limit,omitempty" jsonschema_description:"Maximum spaces to return (default 25)" jsonschema:"minimum=1,maximum=100"`
	Start int    `json:"start,omitempty" jsonschema_description:"Zero-based offset into the result set" jsonschema:"minimum=0"`
}

// ConfluenceSpace models the response for spaces.
type ConfluenceSpace struct {
	ID          int64  `json:"id"`
	Key         string `json:"key"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
}

// ConfluenceSpacesResult wraps the list response.
type ConfluenceSpacesResult struct {
	Spaces []ConfluenceSpace `json:"spaces"`
}

func (c *ConfluenceTools) handleListSpaces(ctx context.Context, _ mcp.CallToolRequest, args ConfluenceListSpacesArgs) (*mcp.CallToolResult, error) {
	spaces, err := c.service.ListSpaces(ctx, confluence.SpaceQuery{
		Query: args.Query,
		Limit: args.Limit,
		Start: args.Start,
	})
	if err != nil {
		return toolError("confluence list spaces failed", err), nil
	}

	result := ConfluenceSpacesResult{Spaces: make([]ConfluenceSpace, 0, len(spaces))}
	for _, space := range spaces {
		result.Spaces = append(result.Spaces, ConfluenceSpace{
			ID:          space.ID,
			Key:         space.Key,
			Name:        space.Name,
			Type:        space.Type,
			Description: strings.TrimSpace(space.Description.Plain.Value),
			URL:         fmt.Sprintf("%s/spaces/%s", c.baseURL, space.Key),
		})
	}

	fallback := fmt.Sprintf("Found %d Confluence spaces", len(result.Spaces))
	return mcp.NewToolResultStructured(result, fallback), nil
}

// ConfluenceGetPageArgs parameters for page fetch.
type ConfluenceGetPageArgs struct {
	PageID  string `json:"pageId" jsonschema:"required" jsonschema_description:"Confluence page ID"`
	Version int    `json:"version,omitempty" jsonschema_description:"Specific version to fetch (best-effort; latest when omitted)" jsonschema:"minimum=1"`
}

// ConfluencePageResult response for a page fetch.
type ConfluencePageResult struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	SpaceKey  string   `json:"spaceKey"`
	SpaceName string   `json:"spaceName,omitempty"`
	Version   int      `json:"version"`
	Labels    []string `json:"labels,omitempty"`
	Body      string   `json:"body"`
	URL       string   `json:"url"`
}

func (c *ConfluenceTools) handleGetPageContent(ctx context.Context, _ mcp.CallToolRequest, args ConfluenceGetPageArgs) (*mcp.CallToolResult, error) {
	if strings.TrimSpace(args.PageID) == "" {
		return mcp.NewToolResultError("page ID must not be empty"), nil
	}

	page, err := c.service.GetPageContent(ctx, args.PageID, args.Version)
	if err != nil {
		return toolError("confluence get page failed", err), nil
	}

	result := ConfluencePageResult{
		ID:        page.ID,
		Title:     page.Title,
		SpaceKey:  page.Space.Key,
		SpaceName: page.Space.Name,
		Version:   page.Version.Number,
		Labels:    page.Labels(),
		Body:      page.Body.Storage.Value,
		URL:       fmt.Sprintf("%s/pages/%s", c.baseURL, page.ID),
	}

	fallback := fmt.Sprintf("Page %q (version %d)", result.Title, result.Version)
	return mcp.NewToolResultStructured(result, fallback), nil
}

// ConfluenceSearchArgs parameters for content search.
type ConfluenceSearchArgs struct {
	Query    string `json:"query" jsonschema:"required" jsonschema_description:"Free text to search for, or a raw CQL expression"`
	SpaceKey string `json:"spaceKey,omitempty" jsonschema_description:"Limit the search to this space"`
	Limit    int    `json:"limit,omitempty" jsonschema_description:"Maximum results to return (default 50)" jsonschema:"minimum=1,maximum=100"`
	Start    int    `json:"start,omitempty" jsonschema_description:"Zero-based offset into the result set" jsonschema:"minimum=0"`
}

// ConfluencePageSummary summarises content results.
type ConfluencePageSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	SpaceKey    string `json:"spaceKey,omitempty"`
	Excerpt     string `json:"excerpt,omitempty"`
	LastUpdated string `json:"lastUpdated,omitempty"`
	URL         string `json:"url"`
}

// ConfluenceSearchResult search response payload. Results keep the
// server's relevance order.
type ConfluenceSearchResult struct {
	CQL     string                  `json:"cql"`
	Results []ConfluencePageSummary `json:"results"`
}

func (c *ConfluenceTools) handleSearchContent(ctx context.Context, _ mcp.CallToolRequest, args ConfluenceSearchArgs) (*mcp.CallToolResult, error) {
	if strings.TrimSpace(args.Query) == "" {
		return mcp.NewToolResultError("search query must not be empty"), nil
	}

	results, err := c.service.SearchContent(ctx, confluence.SearchQuery{
		Query:    args.Query,
		SpaceKey: args.SpaceKey,
		Limit:    args.Limit,
		Start:    args.Start,
	})
	if err != nil {
		return toolError("confluence search failed", err), nil
	}

	cql := confluence.BuildCQL(args.Query, args.SpaceKey)
	c.cache.SetLastCQL(cql)

	payload := ConfluenceSearchResult{
		CQL:     cql,
		Results: make([]ConfluencePageSummary, 0, len(results)),
	}
	for _, content := range results {
		payload.Results = append(payload.Results, c.summarize(content))
	}

	fallback := fmt.Sprintf("Found %d Confluence results", len(payload.Results))
	return mcp.NewToolResultStructured(payload, fallback), nil
}

// ConfluenceListPagesArgs parameters for listing pages of a space.
type ConfluenceListPagesArgs struct {
	SpaceKey string `json:"spaceKey" jsonschema:"required" jsonschema_description:"Space key"`
	Limit    int    `json:"limit,omitempty" jsonschema_description:"Maximum pages to return (default 100)" jsonschema:"minimum=1,maximum=250"`
	Start    int    `json:"start,omitempty" jsonschema_description:"Zero-based offset into the result set" jsonschema:"minimum=0"`
}

// ConfluencePagesResult wraps the page listing.
type ConfluencePagesResult struct {
	Pages []ConfluencePageSummary `json:"pages"`
}

func (c *ConfluenceTools) handleListPagesInSpace(ctx context.Context, _ mcp.CallToolRequest, args ConfluenceListPagesArgs) (*mcp.CallToolResult, error) {
	if strings.TrimSpace(args.SpaceKey) == "" {
		return mcp.NewToolResultError("space key must not be empty"), nil
	}

	pages, err := c.service.ListPagesInSpace(ctx, confluence.SpacePagesQuery{
		SpaceKey: args.SpaceKey,
		Limit:    args.Limit,
		Start:    args.Start,
	})
	if err != nil {
		return toolError("confluence list pages failed", err), nil
	}

	result := ConfluencePagesResult{Pages: make([]ConfluencePageSummary, 0, len(pages))}
	for _, page := range pages {
		result.Pages = append(result.Pages, c.summarize(page))
	}

	fallback := fmt.Sprintf("Found %d pages in space %s", len(result.Pages), args.SpaceKey)
	return mcp.NewToolResultStructured(result, fallback), nil
}

func (c *ConfluenceTools) summarize(page confluence.Page) ConfluencePageSummary {
	return ConfluencePageSummary{
		ID:          page.ID,
		Title:       page.Title,
		Type:        page.Type,
		SpaceKey:    page.Space.Key,
		Excerpt:     page.Excerpt,
		LastUpdated: page.Version.When,
		URL:         fmt.Sprintf("%s/pages/%s", c.baseURL, page.ID),
	}
}

// toolError formats a failed upstream call as a tool error. API errors keep
// the upstream status code in the message.
func toolError(prefix string, err error) *mcp.CallToolResult {
	if atlassian.IsValidation(err) {
		return mcp.NewToolResultError(err.Error())
	}
	return mcp.NewToolResultErrorFromErr(prefix, err)
}

// Package main provides the entry point for the Confluence MCP server.
//
// The server exposes read-only Confluence operations (list spaces, get
// page content, search content, list pages in a space) as MCP tools over
// stdio. Configuration comes from the environment (CONFLUENCE_BASE_URL,
// USERNAME, API_TOKEN), an optional .env file, or a config.yaml.
package main

func main() {
	Execute()
}

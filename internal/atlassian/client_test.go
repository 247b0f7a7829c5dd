package atlassian

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"
	"time"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := NewClient("https://example.atlassian.net/wiki/rest/api", "user@example.com", "token", nil)
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	return client
}

func TestNewClientValidation(t *testing.T) {
	t.Parallel()

	if _, err := NewClient("", "user", "token", nil); err == nil {
		t.Fatalf("expected error when base URL is empty")
	}
}

func TestNewClientDefaults(t *testing.T) {
	t.Parallel()

	client := newTestClient(t)

	if client.baseURL == nil || client.baseURL.String() != "https://example.atlassian.net/wiki/rest/api" {
		t.Fatalf("unexpected base URL: %v", client.baseURL)
	}

	if client.logger == nil {
		t.Fatalf("expected logger to default")
	}

	if client.httpClient == nil {
		t.Fatalf("expected http client to be initialised")
	}

	if client.httpClient.Timeout != 30*time.Second {
		t.Fatalf("unexpected timeout: %v", client.httpClient.Timeout)
	}

	if client.httpClient.Transport == nil {
		t.Fatalf("expected transport to be configured")
	}
}

func TestClientNewRequest(t *testing.T) {
	t.Parallel()

	client := newTestClient(t)

	req, err := client.NewRequest(
		context.Background(),
		"content/search",
		map[string]string{"cql": `text ~ "x"`, "limit": "10"},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := req.Method; got != http.MethodGet {
		t.Fatalf("unexpected method: %s", got)
	}
	if got := req.URL.Path; got != "/wiki/rest/api/content/search" {
		t.Fatalf("unexpected path: %s", got)
	}
	if got := req.URL.Query().Get("limit"); got != "10" {
		t.Fatalf("unexpected query value: %s", got)
	}
	if got := req.URL.Query().Get("cql"); got != `text ~ "x"` {
		t.Fatalf("unexpected cql value: %s", got)
	}
}

func TestClientDoDecodesBody(t *testing.T) {
	t.Parallel()

	client := newTestClient(t)
	client.SetTransport(roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewReader([]byte(`{"id":"1","title":"Page"}`))),
			Header:     make(http.Header),
		}, nil
	}))

	req, err := client.NewRequest(context.Background(), "content/1", nil)
	if err != nil {
		t.Fatalf("NewRequest error: %v", err)
	}

	var out struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	if err := client.Do(req, &out); err != nil {
		t.Fatalf("Do error: %v", err)
	}
	if out.ID != "1" || out.Title != "Page" {
		t.Fatalf("unexpected decode %#v", out)
	}
}

func TestClientDoParsesErrors(t *testing.T) {
	t.Parallel()

	client := newTestClient(t)
	client.SetTransport(roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusForbidden,
			Body:       io.NopCloser(bytes.NewReader([]byte(`{"statusCode":403,"message":"no permission"}`))),
			Header:     make(http.Header),
		}, nil
	}))

	req, err := client.NewRequest(context.Background(), "space", nil)
	if err != nil {
		t.Fatalf("NewRequest error: %v", err)
	}

	err = client.Do(req, nil)
	if !IsPermission(err) {
		t.Fatalf("expected permission error, got %v", err)
	}

	apiErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.StatusCode != http.StatusForbidden || apiErr.Message != "no permission" {
		t.Fatalf("unexpected error %#v", apiErr)
	}
}

package auth

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"sync"
)

// Transport injects the Confluence Basic authentication header into
// outbound requests. Every request leaving the gateway passes through it,
// so no request can be sent unauthenticated.
type Transport struct {
	base       http.RoundTripper
	authHeader string
	once       sync.Once
	initErr    error
	username   string
	apiToken   string
}

// NewTransport creates a new auth transport wrapping the provided RoundTripper.
func NewTransport(base http.RoundTripper, username, apiToken string) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{base: base, username: username, apiToken: apiToken}
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.initialize(); err != nil {
		return nil, err
	}

	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", t.authHeader)
	clone.Header.Set("Accept", "application/json")
	return t.base.RoundTrip(clone)
}

func (t *Transport) initialize() error {
	t.once.Do(func() {
		if t.username == "" || t.apiToken == "" {
			t.initErr = fmt.Errorf("auth: username and api token required")
			return
		}
		token := base64.StdEncoding.EncodeToString([]byte(fmt.Sprintf("%s:%s", t.username, t.apiToken)))
		t.authHeader = fmt.Sprintf("Basic %s", token)
	})
	return t.initErr
}

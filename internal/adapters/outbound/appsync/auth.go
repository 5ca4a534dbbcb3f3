package appsync

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Authorizer carries the AppSync credentials. A token takes precedence over an API key.
type Authorizer struct {
	APIKey string
	Token  string
}

// Headers returns the authorization headers AppSync expects for host.
func (a Authorizer) Headers(host string) map[string]string {
	h := map[string]string{"host": host}
	switch {
	case a.Token != "":
		h["Authorization"] = a.Token
	case a.APIKey != "":
		h["x-api-key"] = a.APIKey
	}
	return h
}

// Apply sets the authorization headers on an HTTP request.
func (a Authorizer) Apply(req *http.Request) {
	for k, v := range a.Headers(req.URL.Host) {
		if k == "host" {
			continue
		}
		req.Header.Set(k, v)
	}
}

// ConnectURL builds the realtime handshake URL. AppSync reads the
// authorization headers from the base64 encoded "header" query parameter.
func (a Authorizer) ConnectURL(realtimeURL, host string) (string, error) {
	u, err := url.Parse(realtimeURL)
	if err != nil {
		return "", fmt.Errorf("invalid realtime URL: %w", err)
	}
	header, err := json.Marshal(a.Headers(host))
	if err != nil {
		return "", fmt.Errorf("marshal authorization header: %w", err)
	}

	q := u.Query()
	q.Set("header", base64.StdEncoding.EncodeToString(header))
	q.Set("payload", base64.StdEncoding.EncodeToString([]byte("{}")))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// RealtimeURLFor derives the realtime endpoint from the GraphQL endpoint.
// Custom domains serve realtime under the "/realtime" path.
func RealtimeURLFor(graphqlURL string) (string, error) {
	u, err := url.Parse(graphqlURL)
	if err != nil {
		return "", fmt.Errorf("invalid GraphQL URL: %w", err)
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	case "http":
		u.Scheme = "ws"
	default:
		return "", fmt.Errorf("unsupported GraphQL URL scheme %q", u.Scheme)
	}

	if strings.Contains(u.Host, "appsync-api") {
		u.Host = strings.Replace(u.Host, "appsync-api", "appsync-realtime-api", 1)
	} else {
		u.Path = strings.TrimSuffix(u.Path, "/") + "/realtime"
	}
	return u.String(), nil
}

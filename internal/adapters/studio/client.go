// Package studio fetches flow definitions from a Studio-style REST API.
package studio

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// DefaultBaseURL is the production Studio API endpoint.
const DefaultBaseURL = "https://studio.twilio.com"

// Flow is the subset of the flow resource this tool consumes. Definition is
// kept raw; domain.BuildGraph gives it shape.
type Flow struct {
	SID          string         `json:"sid"`
	FriendlyName string         `json:"friendly_name"`
	Status       string         `json:"status"`
	DateCreated  string         `json:"date_created"`
	Definition   map[string]any `json:"definition"`
}

// Client fetches flow resources over HTTP basic auth.
type Client struct {
	BaseURL    string
	AccountSID string
	AuthToken  string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// NewFromEnv builds a Client authenticated from STUDIO_ACCOUNT_SID and
// STUDIO_AUTH_TOKEN.
func NewFromEnv(baseURL string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:    baseURL,
		AccountSID: os.Getenv("STUDIO_ACCOUNT_SID"),
		AuthToken:  os.Getenv("STUDIO_AUTH_TOKEN"),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		Logger:     logger,
	}
}

// Fetch retrieves a flow by SID and logs its headline details. Any
// transport, status, or decode failure aborts the invocation; there is no
// retry.
func (c *Client) Fetch(ctx context.Context, sid string) (*Flow, error) {
	endpoint := fmt.Sprintf("%s/v2/Flows/%s", strings.TrimSuffix(c.BaseURL, "/"), url.PathEscape(sid))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building flow request: %w", err)
	}
	req.SetBasicAuth(c.AccountSID, c.AuthToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching flow %s: %w", sid, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching flow %s: unexpected status %s", sid, resp.Status)
	}

	var flow Flow
	if err := json.NewDecoder(resp.Body).Decode(&flow); err != nil {
		return nil, fmt.Errorf("decoding flow %s: %w", sid, err)
	}

	c.Logger.Info("fetched flow",
		"sid", flow.SID,
		"friendly_name", flow.FriendlyName,
		"status", flow.Status,
		"date_created", flow.DateCreated,
	)
	return &flow, nil
}

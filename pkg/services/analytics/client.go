// Package analytics talks to the GA4 Data API: one authenticated runReport
// client plus the per-property fan-out that fetches the five report shapes.
package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/ga-tools/ga-lens/pkg/models/ga"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const DefaultEndpoint = "https://analyticsdata.googleapis.com"

// Client issues runReport calls against the reporting API.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

// NewClient wraps an already-authenticated http.Client. A nil client falls
// back to http.DefaultClient, which only works against unauthenticated test
// servers.
func NewClient(httpClient *http.Client, endpoint string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{httpClient: httpClient, endpoint: endpoint}
}

// NewAuthenticatedClient builds the oauth2 http.Client for the reporting
// API. A non-empty static token (from the credentials profile) wins;
// otherwise Application Default Credentials are used with the configured
// scope.
func NewAuthenticatedClient(ctx context.Context, accessToken, scope string) (*http.Client, error) {
	if accessToken != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
		return oauth2.NewClient(ctx, src), nil
	}
	src, err := google.DefaultTokenSource(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("no access token configured and default credentials unavailable: %w", err)
	}
	return oauth2.NewClient(ctx, src), nil
}

// RunReport posts one report request for the given property and decodes the
// tabular result.
func (c *Client) RunReport(
	ctx context.Context,
	propertyID string,
	req ga.RunReportRequest,
) (*ga.RunReportResponse, error) {
	req.Property = "properties/" + propertyID

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode report request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/properties/%s:runReport", c.endpoint, propertyID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build report request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("report request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, remoteError(resp)
	}

	var result ga.RunReportResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode report response: %w", err)
	}
	return &result, nil
}

func remoteError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var envelope ga.ErrorResponse
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Message() != "" {
		return fmt.Errorf("reporting API returned %d: %s", resp.StatusCode, envelope.Message())
	}
	return fmt.Errorf("reporting API returned %d", resp.StatusCode)
}

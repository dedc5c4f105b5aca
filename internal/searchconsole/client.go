package searchconsole

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultBaseURL = "https://www.googleapis.com/webmasters/v3"

	// Maximum allowed by the API
	rowLimit = 100
)

// ExternalAPIError means the Search Console call itself failed or the
// response carried no data envelope. Empty rows are NOT an error.
type ExternalAPIError struct {
	Message string
	Err     error
}

func (e *ExternalAPIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("search console: %s: %v", e.Message, e.Err)
	}
	return "search console: " + e.Message
}

func (e *ExternalAPIError) Unwrap() error { return e.Err }

// Client talks to the Google Search Console API with a caller-supplied
// access token. It holds no credentials of its own.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClientWithBaseURL is used by tests to point at a fake upstream.
func NewClientWithBaseURL(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

type queryRequest struct {
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate"`
	Dimensions []string `json:"dimensions"`
	RowLimit   int      `json:"rowLimit"`
	SearchType string   `json:"searchType"`
}

type queryResponse struct {
	Rows []struct {
		Keys        []string `json:"keys"`
		Clicks      *int64   `json:"clicks"`
		Impressions *int64   `json:"impressions"`
		CTR         *float64 `json:"ctr"`
		Position    *float64 `json:"position"`
	} `json:"rows"`
	ResponseAggregationType string `json:"responseAggregationType"`
}

// Query fetches search analytics for a site over a date range, grouped by
// the given dimensions (default ["query"]). Dates are "YYYY-MM-DD".
func (c *Client) Query(
	ctx context.Context,
	accessToken string,
	siteURL string,
	startDate string,
	endDate string,
	dimensions []string,
) (*SearchAnalytics, error) {

	if len(dimensions) == 0 {
		dimensions = []string{"query"}
	}

	body, err := json.Marshal(queryRequest{
		StartDate:  startDate,
		EndDate:    endDate,
		Dimensions: dimensions,
		RowLimit:   rowLimit,
		SearchType: "web",
	})
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf(
		"%s/sites/%s/searchAnalytics/query",
		c.baseURL,
		url.PathEscape(siteURL),
	)

	raw, err := c.do(ctx, accessToken, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, err
	}

	if len(raw) == 0 {
		return nil, &ExternalAPIError{Message: "no data returned from Search Console API"}
	}

	var result queryResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, &ExternalAPIError{Message: "malformed Search Console response", Err: err}
	}

	analytics := &SearchAnalytics{
		Rows:            make([]SearchRow, 0, len(result.Rows)),
		AggregationType: result.ResponseAggregationType,
		StartDate:       startDate,
		EndDate:         endDate,
	}

	for _, row := range result.Rows {
		analytics.Rows = append(analytics.Rows, SearchRow{
			Keys:        row.Keys,
			Clicks:      int64Value(row.Clicks),
			Impressions: int64Value(row.Impressions),
			CTR:         floatValue(row.CTR),
			Position:    floatValue(row.Position),
		})
	}

	return analytics, nil
}

// PerformanceByDate fetches daily performance for charts.
func (c *Client) PerformanceByDate(ctx context.Context, accessToken, siteURL, startDate, endDate string) (*SearchAnalytics, error) {
	return c.Query(ctx, accessToken, siteURL, startDate, endDate, []string{"date"})
}

func (c *Client) PerformanceByDevice(ctx context.Context, accessToken, siteURL, startDate, endDate string) (*SearchAnalytics, error) {
	return c.Query(ctx, accessToken, siteURL, startDate, endDate, []string{"device"})
}

func (c *Client) PerformanceByPage(ctx context.Context, accessToken, siteURL, startDate, endDate string) (*SearchAnalytics, error) {
	return c.Query(ctx, accessToken, siteURL, startDate, endDate, []string{"page"})
}

func (c *Client) PerformanceByCountry(ctx context.Context, accessToken, siteURL, startDate, endDate string) (*SearchAnalytics, error) {
	return c.Query(ctx, accessToken, siteURL, startDate, endDate, []string{"country"})
}

// Sites lists the Search Console properties the token has access to.
func (c *Client) Sites(ctx context.Context, accessToken string) ([]Site, error) {
	raw, err := c.do(ctx, accessToken, http.MethodGet, c.baseURL+"/sites", nil)
	if err != nil {
		return nil, err
	}

	var result struct {
		SiteEntry []Site `json:"siteEntry"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, &ExternalAPIError{Message: "malformed site list response", Err: err}
	}

	if result.SiteEntry == nil {
		return []Site{}, nil
	}
	return result.SiteEntry, nil
}

func (c *Client) do(ctx context.Context, accessToken, method, endpoint string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewBuffer(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ExternalAPIError{Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ExternalAPIError{Message: "reading response failed", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &ExternalAPIError{
			Message: fmt.Sprintf("upstream returned %d: %s", resp.StatusCode, string(raw)),
		}
	}

	return raw, nil
}

func int64Value(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

func floatValue(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// Package api is the client for the agricultural-data REST service.
// Each operation performs exactly one HTTP round trip and normalizes
// failures into the classified Error taxonomy in errors.go.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultLimit is applied when a list operation is called without a limit.
const DefaultLimit = 50

// Client issues authenticated requests against the remote service.
// Construct it with NewClient; the zero value is not usable.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient returns a client for the given base URL and API key.
// Timeout bounds the full round trip; zero means no timeout.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// CreateFieldRequest is the payload for CreateField.
type CreateFieldRequest struct {
	Name     string      `json:"name"`
	Acres    float64     `json:"acres,omitempty"`
	Boundary interface{} `json:"boundary,omitempty"`
}

// ListFields fetches up to limit fields.
func (c *Client) ListFields(ctx context.Context, limit int) (interface{}, error) {
	return c.get(ctx, "/v4/fields", limitQuery(limit))
}

// GetField fetches a single field by id.
func (c *Client) GetField(ctx context.Context, id string) (interface{}, error) {
	return c.get(ctx, "/v4/fields/"+url.PathEscape(id), nil)
}

// CreateField creates a new field and returns the service response.
func (c *Client) CreateField(ctx context.Context, req CreateFieldRequest) (interface{}, error) {
	return c.do(ctx, http.MethodPost, "/v4/fields", nil, req)
}

// ListFarms fetches up to limit farms.
func (c *Client) ListFarms(ctx context.Context, limit int) (interface{}, error) {
	return c.get(ctx, "/v4/farms", limitQuery(limit))
}

// GetFarm fetches a single farm by id.
func (c *Client) GetFarm(ctx context.Context, id string) (interface{}, error) {
	return c.get(ctx, "/v4/farms/"+url.PathEscape(id), nil)
}

// ListBoundaries fetches up to limit boundaries.
func (c *Client) ListBoundaries(ctx context.Context, limit int) (interface{}, error) {
	return c.get(ctx, "/v4/boundaries", limitQuery(limit))
}

// GetBoundary fetches a single boundary by id.
func (c *Client) GetBoundary(ctx context.Context, id string) (interface{}, error) {
	return c.get(ctx, "/v4/boundaries/"+url.PathEscape(id), nil)
}

// ListHarvestActivities fetches up to limit harvest activity summaries.
func (c *Client) ListHarvestActivities(ctx context.Context, limit int) (interface{}, error) {
	return c.get(ctx, "/v4/activitySummaries/harvest", limitQuery(limit))
}

// GetHarvestActivity fetches a single harvest activity summary by id.
func (c *Client) GetHarvestActivity(ctx context.Context, id string) (interface{}, error) {
	return c.get(ctx, "/v4/activitySummaries/harvest/"+url.PathEscape(id), nil)
}

// ListPlantingActivities fetches up to limit planting activity summaries.
func (c *Client) ListPlantingActivities(ctx context.Context, limit int) (interface{}, error) {
	return c.get(ctx, "/v4/activitySummaries/planting", limitQuery(limit))
}

// GetPlantingActivity fetches a single planting activity summary by id.
func (c *Client) GetPlantingActivity(ctx context.Context, id string) (interface{}, error) {
	return c.get(ctx, "/v4/activitySummaries/planting/"+url.PathEscape(id), nil)
}

func limitQuery(limit int) url.Values {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return url.Values{"limit": []string{strconv.Itoa(limit)}}
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (interface{}, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

// do performs one round trip and returns the decoded response body.
// Non-2xx statuses map to the Error taxonomy; transport failures map to
// KindNetwork. Request construction errors propagate as-is.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) (interface{}, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, networkError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errorForStatus(resp.StatusCode, bodyMessage(raw))
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	var decoded interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return decoded, nil
}

// bodyMessage extracts the server-supplied error text from a failure body:
// the "message" field, else the "error" field, else the raw body text.
func bodyMessage(raw []byte) string {
	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err == nil {
		if msg, ok := decoded["message"].(string); ok && msg != "" {
			return msg
		}
		if msg, ok := decoded["error"].(string); ok && msg != "" {
			return msg
		}
	}
	return strings.TrimSpace(string(raw))
}

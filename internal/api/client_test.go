package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSendsLimitAndAuth(t *testing.T) {
	var gotPath, gotLimit, gotAuth, gotAccept string
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		gotPath = r.URL.Path
		gotLimit = r.URL.Query().Get("limit")
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", 5*time.Second)
	_, err := client.ListFields(context.Background(), 25)
	require.NoError(t, err)

	assert.Equal(t, 1, requests)
	assert.Equal(t, "/v4/fields", gotPath)
	assert.Equal(t, "25", gotLimit)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "application/json", gotAccept)
}

func TestListDefaultLimit(t *testing.T) {
	var gotLimit string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "k", 5*time.Second)
	_, err := client.ListFarms(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, "50", gotLimit)
}

func TestOperationPaths(t *testing.T) {
	tests := map[string]struct {
		call     func(c *Client) (interface{}, error)
		wantPath string
	}{
		"list fields":       {call: func(c *Client) (interface{}, error) { return c.ListFields(context.Background(), 1) }, wantPath: "/v4/fields"},
		"get field":         {call: func(c *Client) (interface{}, error) { return c.GetField(context.Background(), "f1") }, wantPath: "/v4/fields/f1"},
		"list farms":        {call: func(c *Client) (interface{}, error) { return c.ListFarms(context.Background(), 1) }, wantPath: "/v4/farms"},
		"get farm":          {call: func(c *Client) (interface{}, error) { return c.GetFarm(context.Background(), "a1") }, wantPath: "/v4/farms/a1"},
		"list boundaries":   {call: func(c *Client) (interface{}, error) { return c.ListBoundaries(context.Background(), 1) }, wantPath: "/v4/boundaries"},
		"get boundary":      {call: func(c *Client) (interface{}, error) { return c.GetBoundary(context.Background(), "b1") }, wantPath: "/v4/boundaries/b1"},
		"list harvest":      {call: func(c *Client) (interface{}, error) { return c.ListHarvestActivities(context.Background(), 1) }, wantPath: "/v4/activitySummaries/harvest"},
		"get harvest":       {call: func(c *Client) (interface{}, error) { return c.GetHarvestActivity(context.Background(), "h1") }, wantPath: "/v4/activitySummaries/harvest/h1"},
		"list planting":     {call: func(c *Client) (interface{}, error) { return c.ListPlantingActivities(context.Background(), 1) }, wantPath: "/v4/activitySummaries/planting"},
		"get planting":      {call: func(c *Client) (interface{}, error) { return c.GetPlantingActivity(context.Background(), "p1") }, wantPath: "/v4/activitySummaries/planting/p1"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var gotPath string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				_, _ = w.Write([]byte(`{}`))
			}))
			defer server.Close()

			client := NewClient(server.URL, "k", 5*time.Second)
			_, err := tt.call(client)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, gotPath)
		})
	}
}

func TestCreateFieldPostsBody(t *testing.T) {
	var gotMethod, gotContentType string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"f1","name":"North Field"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "k", 5*time.Second)
	body, err := client.CreateField(context.Background(), CreateFieldRequest{Name: "North Field", Acres: 120.5})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "North Field", gotBody["name"])
	assert.Equal(t, 120.5, gotBody["acres"])

	resp, ok := body.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "f1", resp["id"])
}

func TestStatusCodeMapping(t *testing.T) {
	tests := map[string]struct {
		status   int
		body     string
		wantKind ErrorKind
		wantMsg  string
	}{
		"401 maps to authentication": {
			status: 401, body: `{"message":"ignored"}`,
			wantKind: KindAuthentication,
		},
		"403 maps to permission": {
			status: 403, body: `whatever`,
			wantKind: KindPermission,
		},
		"404 maps to not found": {
			status: 404, body: `{"error":"ignored"}`,
			wantKind: KindNotFound,
		},
		"429 maps to rate limit": {
			status: 429, body: ``,
			wantKind: KindRateLimit,
		},
		"500 uses body message field": {
			status: 500, body: `{"message":"upstream exploded"}`,
			wantKind: KindAPI,
			wantMsg:  "API error (500): upstream exploded",
		},
		"400 falls back to error field": {
			status: 400, body: `{"error":"bad acres"}`,
			wantKind: KindAPI,
			wantMsg:  "API error (400): bad acres",
		},
		"502 falls back to raw body": {
			status: 502, body: `bad gateway`,
			wantKind: KindAPI,
			wantMsg:  "API error (502): bad gateway",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, "k", 5*time.Second)
			_, err := client.ListFields(context.Background(), 1)
			require.Error(t, err)

			apiErr, ok := err.(*Error)
			require.True(t, ok, "expected *api.Error, got %T", err)
			assert.Equal(t, tt.wantKind, apiErr.Kind)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, apiErr.Message)
			}
		})
	}
}

func TestNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	server.Close() // nothing listening anymore

	client := NewClient(server.URL, "k", time.Second)
	_, err := client.ListFields(context.Background(), 1)
	require.Error(t, err)

	apiErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindNetwork, apiErr.Kind)
	assert.Zero(t, apiErr.StatusCode)
}

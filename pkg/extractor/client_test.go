package extractor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	viper.SetDefault("extractor.timeout", 5)
	viper.SetDefault("extractor.health_timeout", 2)
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func TestHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	assert.NoError(t, client.Health(context.Background()))
}

func TestHealthNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	err := client.Health(context.Background())
	require.Error(t, err)
	var httpErr *HTTPError
	assert.ErrorAs(t, err, &httpErr)
}

func TestHealthTransportError(t *testing.T) {
	client := newTestClient("http://127.0.0.1:1")
	assert.Error(t, client.Health(context.Background()))
}

func TestExtractRoutes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/extract-website-routes/", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "https://ex.com", body["url"])

		json.NewEncoder(w).Encode(ExtractedRoutesResponse{
			URL:             "https://ex.com",
			DiscoveredLinks: []string{"https://ex.com/a", "https://ex.com/b"},
			LinkCount:       2,
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	resp, err := client.ExtractRoutes(context.Background(), "https://ex.com")
	require.NoError(t, err)
	assert.Len(t, resp.DiscoveredLinks, 2)
}

func TestExtractRoutesEmbeddedError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ExtractedRoutesResponse{Error: "could not reach target"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.ExtractRoutes(context.Background(), "https://ex.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not reach target")
}

func TestDeepScanPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/deep-scan-page/", r.URL.Path)
		var req DeepScanRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "7", req.PageID)

		json.NewEncoder(w).Encode(DeepScanResponse{
			Status:           StatusScanned,
			PageID:           req.PageID,
			ScannedURL:       req.URL,
			RagDocumentCount: 3,
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	resp, err := client.DeepScanPage(context.Background(), DeepScanRequest{
		URL:       "https://ex.com/a",
		WebsiteID: "1",
		PageID:    "7",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusScanned, resp.Status)
	assert.Equal(t, 3, resp.RagDocumentCount)
}

func TestInitiateDeepScanAll(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/initiate-deep-scan-all-pending/", r.URL.Path)
		var req DeepScanAllRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.PendingPages, 2)

		json.NewEncoder(w).Encode(DeepScanAllResponse{
			Message:          "initiated",
			WebsiteID:        req.WebsiteID,
			InitiatedPageIDs: []string{"1", "2"},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	resp, err := client.InitiateDeepScanAll(context.Background(), DeepScanAllRequest{
		WebsiteID: "1",
		PendingPages: []PendingPage{
			{PageID: "1", URL: "https://ex.com/a"},
			{PageID: "2", URL: "https://ex.com/b"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, resp.InitiatedPageIDs)
}

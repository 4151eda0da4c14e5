package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Client talks to the external route/content extraction service over HTTP.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient builds a client from the extractor.* configuration keys.
func NewClient() *Client {
	return &Client{
		baseURL: strings.TrimRight(viper.GetString("extractor.url"), "/"),
		client: &http.Client{
			Timeout: time.Duration(viper.GetInt("extractor.timeout")) * time.Second,
		},
	}
}

// HTTPError is a non-success HTTP response from the extraction service.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("extractor returned %s", e.Status)
}

// Health probes GET /health. Any transport error or non-success status means
// the service is unavailable.
func (c *Client) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(viper.GetInt("extractor.health_timeout"))*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("url", c.baseURL).Msg("Extractor health check failed")
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		log.Warn().Int("status", resp.StatusCode).Str("body", string(body)).Msg("Extractor health check returned non-success status")
		return &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status, Body: string(body)}
	}
	return nil
}

// ExtractRoutes asks the service to enumerate URLs reachable from the target.
// A non-empty error field in a 200 response is treated as a failure.
func (c *Client) ExtractRoutes(ctx context.Context, target string) (*ExtractedRoutesResponse, error) {
	var out ExtractedRoutesResponse
	if err := c.postJSON(ctx, "/extract-website-routes/", map[string]string{"url": target}, &out); err != nil {
		return nil, err
	}
	if out.Error != "" {
		return &out, fmt.Errorf("extractor error: %s", out.Error)
	}
	return &out, nil
}

// DeepScanPage submits a single page for content extraction and indexing.
func (c *Client) DeepScanPage(ctx context.Context, request DeepScanRequest) (*DeepScanResponse, error) {
	var out DeepScanResponse
	if err := c.postJSON(ctx, "/deep-scan-page/", request, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// InitiateDeepScanAll submits one batched request naming all pending pages.
// Per-page completion happens asynchronously on the service side.
func (c *Client) InitiateDeepScanAll(ctx context.Context, request DeepScanAllRequest) (*DeepScanAllResponse, error) {
	var out DeepScanAllResponse
	if err := c.postJSON(ctx, "/initiate-deep-scan-all-pending/", request, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Extractor request failed")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		log.Error().Int("status", resp.StatusCode).Str("path", path).Str("body", string(respBody)).Msg("Extractor returned non-success status")
		return &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status, Body: string(respBody)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Error().Err(err).Str("path", path).Msg("Unable to decode extractor response")
		return err
	}
	return nil
}

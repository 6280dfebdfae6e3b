// ABOUTME: HTTP client for the AssetDex rack-space API
// ABOUTME: Wraps API calls with proper error handling for CLI usage

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/markalston/assetdex-dcim/models"
)

// Client is the API client for the AssetDex backend
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client with the given base URL
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// HealthResponse represents the /api/v1/health endpoint response
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Message    string
	Details    string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("backend error: %s: %s", e.Message, e.Details)
	}
	return fmt.Sprintf("backend error: %s", e.Message)
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Health calls GET /api/v1/health. A degraded backend answers 503 with the
// same body, which is returned alongside the error.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	err := c.do(ctx, http.MethodGet, "/api/v1/health", nil, &health)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusServiceUnavailable && health.Status != "" {
		return &health, err
	}
	if err != nil {
		return nil, err
	}
	return &health, nil
}

// ListRacks calls GET /api/v1/racks
func (c *Client) ListRacks(ctx context.Context) ([]models.RackSummary, error) {
	var racks []models.RackSummary
	if err := c.do(ctx, http.MethodGet, "/api/v1/racks", nil, &racks); err != nil {
		return nil, err
	}
	return racks, nil
}

// GetRack calls GET /api/v1/racks/{rack}
func (c *Client) GetRack(ctx context.Context, name string) (*models.RackOccupancy, error) {
	var occupancy models.RackOccupancy
	if err := c.do(ctx, http.MethodGet, "/api/v1/racks/"+url.PathEscape(name), nil, &occupancy); err != nil {
		return nil, err
	}
	return &occupancy, nil
}

// CheckRackSpace calls POST /api/v1/rack-space/check
func (c *Client) CheckRackSpace(ctx context.Context, req models.AvailabilityRequest) (*models.AvailabilityResponse, error) {
	var result models.AvailabilityResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/rack-space/check", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// do sends one JSON request and decodes the response into out. Error
// responses are decoded into out as well when they share its shape.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal input: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response from backend: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if out != nil {
			_ = json.Unmarshal(data, out)
		}
		return handleErrorResponse(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("invalid response from backend: %w", err)
	}
	return nil
}

// handleRequestError converts context errors to user-friendly messages
func (c *Client) handleRequestError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.Canceled) {
		return fmt.Errorf("request canceled")
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("request timed out")
	}
	return fmt.Errorf("cannot connect to backend at %s: %w", c.baseURL, err)
}

// handleErrorResponse parses API error responses
func handleErrorResponse(status int, data []byte) error {
	var errResp models.ErrorResponse
	if err := json.Unmarshal(data, &errResp); err != nil || errResp.Error == "" {
		return &APIError{StatusCode: status, Message: fmt.Sprintf("status %d", status)}
	}
	return &APIError{StatusCode: status, Message: errResp.Error, Details: errResp.Details}
}

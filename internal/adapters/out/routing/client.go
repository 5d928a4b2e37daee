// Package routing provides the HTTP client adapter to the routing engine.
package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"routesync/internal/core/ports"
	"routesync/internal/pkg/errs"
)

const (
	directionsPath = "/maps/directions"
	defaultTimeout = 30 * time.Second
)

// Client calls the routing engine over HTTP. Implements ports.RoutingClient.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a routing engine client for the given base URL.
// A nil httpClient selects a default client with a 30 second timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// ComputeRoute asks the routing engine for the route between the request's
// origin and destination. Transport failures are reported as
// errs.UpstreamUnavailableError; non-success answers as *ports.RoutingStatusError
// with the response body preserved for the route computation log.
func (c *Client) ComputeRoute(ctx context.Context, request ports.RouteComputationRequest) (ports.RouteComputationResult, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return ports.RouteComputationResult{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+directionsPath, bytes.NewReader(body))
	if err != nil {
		return ports.RouteComputationResult{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return ports.RouteComputationResult{}, errs.NewUpstreamUnavailableError("routing engine", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return ports.RouteComputationResult{}, errs.NewUpstreamUnavailableError("routing engine", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return ports.RouteComputationResult{}, &ports.RoutingStatusError{
			Code: resp.StatusCode,
			Body: string(respBody),
		}
	}

	var result ports.RouteComputationResult
	if err = json.Unmarshal(respBody, &result); err != nil {
		return ports.RouteComputationResult{}, fmt.Errorf("decoding routing engine response: %w", err)
	}

	return result, nil
}

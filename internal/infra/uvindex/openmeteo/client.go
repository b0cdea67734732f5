// Package openmeteo fetches the current UV index from the Open-Meteo
// forecast API.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// Client queries the Open-Meteo current-weather endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds an API client. baseURL is the full forecast endpoint;
// empty selects the public Open-Meteo host.
func NewClient(baseURL string, timeout time.Duration) *Client {
	url := strings.TrimSpace(baseURL)
	if url == "" {
		url = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(url, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// CurrentIndex retrieves the current UV index for the given coordinates.
func (c *Client) CurrentIndex(ctx context.Context, latitude, longitude float64) (float64, error) {
	endpoint := fmt.Sprintf("%s?latitude=%g&longitude=%g&current=uv_index", c.baseURL, latitude, longitude)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("build forecast request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("forecast request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return 0, fmt.Errorf("forecast request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	var raw apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return 0, fmt.Errorf("decode forecast response: %w", err)
	}
	if raw.Current.UVIndex == nil {
		return 0, fmt.Errorf("forecast response missing uv_index")
	}
	return *raw.Current.UVIndex, nil
}

type apiResponse struct {
	Current currentBlock `json:"current"`
}

type currentBlock struct {
	UVIndex *float64 `json:"uv_index"`
}

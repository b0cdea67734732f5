// Package sheets loads the curated sunscreen sheet through the Google
// Sheets values API.
package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/spfmatch/spfmatch/internal/domain/catalog"
)

const defaultBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"

// Client reads product rows from a published spreadsheet.
type Client struct {
	baseURL    string
	sheetID    string
	apiKey     string
	readRange  string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient builds a sheet-backed catalog source.
func NewClient(baseURL, sheetID, apiKey, readRange string, logger *slog.Logger) *Client {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{
		baseURL:   strings.TrimRight(base, "/"),
		sheetID:   sheetID,
		apiKey:    apiKey,
		readRange: readRange,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger: logger.With("component", "sheets.client"),
	}
}

// Load fetches the sheet and converts its rows into products. Rows that
// fail validation are logged and skipped, not fatal.
func (c *Client) Load(ctx context.Context) ([]catalog.Product, error) {
	endpoint := fmt.Sprintf("%s/%s/values/%s?key=%s",
		c.baseURL,
		url.PathEscape(c.sheetID),
		url.PathEscape(c.readRange),
		url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build sheet request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sheet request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("sheet request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	var raw valuesResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode sheet response: %w", err)
	}

	products := make([]catalog.Product, 0, len(raw.Values))
	for i, row := range raw.Values {
		product, err := catalog.ProductFromRow(row)
		if err != nil {
			c.logger.Warn("skipping sheet row", "row", i, "error", err)
			continue
		}
		products = append(products, product)
	}
	return products, nil
}

type valuesResponse struct {
	Range  string     `json:"range"`
	Values [][]string `json:"values"`
}

var _ catalog.Source = (*Client)(nil)

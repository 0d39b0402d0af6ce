package firecast

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

// The wildfire prediction service exposes a single forecast endpoint keyed
// by location name.
// Sample request: http://localhost:5000/api/predict?location=Kelowna
const (
	predictPath = "/api/predict"
)

// Sentinel errors for status-based failures; callers classify with errors.Is
var (
	ErrNotFound           = errors.New("location not found")
	ErrServiceUnavailable = errors.New("prediction service unavailable")
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		logger:     logger.With("component", "firecast-client"),
	}
}

// GetPrediction fetches the multi-day wildfire risk forecast for a named
// location. Entries are returned in response order with raw wire strings;
// mapping to domain types is the caller's concern.
func (c *Client) GetPrediction(location string) ([]DayEntry, error) {
	// Build URL with query parameters
	u, err := url.Parse(c.baseURL + predictPath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("location", location)
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching wildfire prediction data",
		"location", location,
		"url", u.String(),
	)

	// Make the HTTP request
	resp, err := c.httpClient.Get(u.String())
	if err != nil {
		c.logger.Error("failed to fetch wildfire prediction data",
			"location", location,
			"error", err,
		)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("prediction service returned error",
			"status_code", resp.StatusCode,
			"location", location,
			"response_body", string(body),
		)
		if resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, location)
		}
		return nil, fmt.Errorf("%w: status %d", ErrServiceUnavailable, resp.StatusCode)
	}

	// Parse the JSON response
	var entries []DayEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		c.logger.Error("failed to decode prediction response",
			"location", location,
			"error", err,
		)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("successfully fetched wildfire prediction data",
		"location", location,
		"entry_count", len(entries),
	)

	return entries, nil
}

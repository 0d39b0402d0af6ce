package googlemaps

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

// API Docs: https://developers.google.com/maps/documentation/geocoding/requests-geocoding
// Sample request: https://maps.googleapis.com/maps/api/geocode/json?address=Paris&key=API_KEY
const (
	defaultBaseURL = "https://maps.googleapis.com"
	geocodePath    = "/maps/api/geocode/json"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

func NewClient(baseURL, apiKey string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		apiKey:     apiKey,
		logger:     logger.With("component", "googlemaps-client"),
	}
}

// Geocode resolves a free-text address to geocoding candidates. The caller
// is responsible for interpreting the response Status field.
func (c *Client) Geocode(address string) (*GeocodeAPIResponse, error) {
	// Build URL with query parameters
	u, err := url.Parse(c.baseURL + geocodePath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("address", address)
	q.Set("key", c.apiKey)
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching Google Maps geocode data",
		"address", address,
	)

	// Make the HTTP request
	resp, err := c.httpClient.Get(u.String())
	if err != nil {
		c.logger.Error("failed to fetch Google Maps geocode data",
			"address", address,
			"error", err,
		)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Google Maps API returned error",
			"status_code", resp.StatusCode,
			"address", address,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	// Parse the JSON response
	var apiResp GeocodeAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode Google Maps response",
			"address", address,
			"error", err,
		)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("successfully fetched Google Maps geocode data",
		"address", address,
		"status", apiResp.Status,
		"result_count", len(apiResp.Results),
	)

	return &apiResp, nil
}

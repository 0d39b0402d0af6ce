package location

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"firewatch/internal/config"
	"firewatch/internal/providers/googlemaps"
	"firewatch/internal/types"
)

// Resolution errors; callers pick the user-facing treatment with errors.Is.
// Anything else returned by Resolve is a transport-level failure.
var (
	ErrEmptyQuery = errors.New("location query must not be empty")
	ErrNoMatch    = errors.New("no location matched the query")
)

// Service resolves free-text place queries to coordinates
type Service interface {
	// Resolve geocodes a place query and returns the best candidate's
	// coordinates
	Resolve(query string) (types.Coords, error)
}

// GeocodeProvider defines the interface for forward geocoding providers
type GeocodeProvider interface {
	Geocode(address string) (*googlemaps.GeocodeAPIResponse, error)
}

// locationService implements the Service interface
type locationService struct {
	geocodeProvider GeocodeProvider
	logger          *slog.Logger
}

// NewLocationService creates a new location service with the real
// Google Maps client
func NewLocationService(cfg *config.Config, logger *slog.Logger) Service {
	return NewLocationServiceWithProvider(
		googlemaps.NewClient(cfg.GoogleMaps.BaseURL, cfg.GoogleMaps.APIKey, logger),
		logger,
	)
}

// NewLocationServiceWithProvider creates a new location service with a
// custom provider. This is useful for testing with mock providers.
func NewLocationServiceWithProvider(geocodeProvider GeocodeProvider, logger *slog.Logger) Service {
	return &locationService{
		geocodeProvider: geocodeProvider,
		logger:          logger.With("component", "location-service"),
	}
}

// Resolve validates the query locally, then geocodes it. The resolved
// coordinate confirms the place exists; downstream navigation carries the
// original query text, not the coordinate.
func (s *locationService) Resolve(query string) (types.Coords, error) {
	if strings.TrimSpace(query) == "" {
		return types.Coords{}, ErrEmptyQuery
	}

	resp, err := s.geocodeProvider.Geocode(query)
	if err != nil {
		s.logger.Error("geocode request failed", "query", query, "error", err)
		return types.Coords{}, fmt.Errorf("failed to geocode %q: %w", query, err)
	}

	switch resp.Status {
	case googlemaps.StatusOK:
		if len(resp.Results) == 0 {
			// OK with no results should not happen, treat it as no match
			return types.Coords{}, fmt.Errorf("%w: %q", ErrNoMatch, query)
		}
		loc := resp.Results[0].Geometry.Location
		s.logger.Debug("resolved location query",
			"query", query,
			"latitude", loc.Lat,
			"longitude", loc.Lng,
		)
		return types.NewCoords(loc.Lat, loc.Lng), nil

	case googlemaps.StatusZeroResults:
		return types.Coords{}, fmt.Errorf("%w: %q", ErrNoMatch, query)

	default:
		// REQUEST_DENIED, OVER_QUERY_LIMIT, INVALID_REQUEST, UNKNOWN_ERROR
		s.logger.Error("geocode returned non-OK status",
			"query", query,
			"status", resp.Status,
			"error_message", resp.ErrorMessage,
		)
		return types.Coords{}, fmt.Errorf("geocode failed with status %s", resp.Status)
	}
}

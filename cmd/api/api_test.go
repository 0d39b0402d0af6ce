package main

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"firewatch/internal/config"
	"firewatch/internal/location"
	"firewatch/internal/providers/firecast"
	"firewatch/internal/types"

	"github.com/gin-gonic/gin"
)

// Mock services for testing

type mockLocationService struct {
	coords types.Coords
	err    error
}

func (m *mockLocationService) Resolve(query string) (types.Coords, error) {
	if strings.TrimSpace(query) == "" {
		return types.Coords{}, location.ErrEmptyQuery
	}
	return m.coords, m.err
}

type mockForecastProvider struct {
	entries []firecast.DayEntry
	err     error
}

func (m *mockForecastProvider) GetPrediction(loc string) ([]firecast.DayEntry, error) {
	return m.entries, m.err
}

func newTestApp(locationService location.Service, forecastProvider *mockForecastProvider) *App {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	app := &App{
		router:           router,
		logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		locationService:  locationService,
		forecastProvider: forecastProvider,
		cfg:              &config.Config{},
	}
	app.registerRoutes()
	return app
}

func doRequest(t *testing.T, app *App, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	return w
}

func TestHandleLocationConsent(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantStatus   int
		wantRedirect string
	}{
		{
			name:         "granted carries coordinates to the dashboard",
			body:         `{"outcome": "granted", "lat": 45.0, "lng": -75.0}`,
			wantStatus:   http.StatusOK,
			wantRedirect: "/dashboard?lat=45&lng=-75",
		},
		{
			name:         "denied navigates without location keys",
			body:         `{"outcome": "denied"}`,
			wantStatus:   http.StatusOK,
			wantRedirect: "/dashboard",
		},
		{
			name:         "device error navigates without location keys",
			body:         `{"outcome": "error", "error": "timeout expired"}`,
			wantStatus:   http.StatusOK,
			wantRedirect: "/dashboard",
		},
		{
			name:         "unsupported navigates without location keys",
			body:         `{"outcome": "unsupported"}`,
			wantStatus:   http.StatusOK,
			wantRedirect: "/dashboard",
		},
		{
			name:       "granted without coordinates is rejected",
			body:       `{"outcome": "granted"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown outcome is rejected",
			body:       `{"outcome": "maybe"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(&mockLocationService{}, &mockForecastProvider{})

			w := doRequest(t, app, http.MethodPost, "/location/consent", tt.body)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantRedirect == "" {
				return
			}

			var resp NavigationResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Redirect != tt.wantRedirect {
				t.Errorf("redirect = %q, want %q", resp.Redirect, tt.wantRedirect)
			}
		})
	}
}

func TestHandleDashboard(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		wantLat  float64
		wantLng  float64
		wantZoom int
	}{
		{
			name:     "with coordinates",
			target:   "/dashboard?lat=10&lng=20",
			wantLat:  10,
			wantLng:  20,
			wantZoom: 12,
		},
		{
			name:     "without coordinates",
			target:   "/dashboard",
			wantLat:  56.1304,
			wantLng:  -106.3468,
			wantZoom: 4,
		},
		{
			name:     "partial coordinates fall back to default",
			target:   "/dashboard?lat=10",
			wantLat:  56.1304,
			wantLng:  -106.3468,
			wantZoom: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(&mockLocationService{}, &mockForecastProvider{})

			w := doRequest(t, app, http.MethodGet, tt.target, "")

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
			}

			var resp DashboardResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Map.Latitude != tt.wantLat || resp.Map.Longitude != tt.wantLng {
				t.Errorf("center = {%v %v}, want {%v %v}", resp.Map.Latitude, resp.Map.Longitude, tt.wantLat, tt.wantLng)
			}
			if resp.Map.Zoom != tt.wantZoom {
				t.Errorf("zoom = %d, want %d", resp.Map.Zoom, tt.wantZoom)
			}
			wantLegend := []string{"Low", "Medium", "High", "Very High", "Extreme"}
			if len(resp.Legend) != len(wantLegend) {
				t.Fatalf("legend has %d entries, want %d", len(resp.Legend), len(wantLegend))
			}
			for i, label := range wantLegend {
				if resp.Legend[i] != label {
					t.Errorf("legend[%d] = %q, want %q", i, resp.Legend[i], label)
				}
			}
		})
	}
}

func TestHandleSearch(t *testing.T) {
	tests := []struct {
		name         string
		service      *mockLocationService
		body         string
		wantStatus   int
		wantRedirect string
	}{
		{
			name:         "match navigates with the original place text",
			service:      &mockLocationService{coords: types.NewCoords(48.85, 2.35)},
			body:         `{"location": "Paris"}`,
			wantStatus:   http.StatusOK,
			wantRedirect: "/prediction?location=Paris",
		},
		{
			name:       "empty query is a validation error",
			service:    &mockLocationService{},
			body:       `{"location": ""}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "no match does not navigate",
			service:    &mockLocationService{err: location.ErrNoMatch},
			body:       `{"location": "Nowhereville"}`,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "geocoder outage does not navigate",
			service:    &mockLocationService{err: errors.New("geocode failed with status UNKNOWN_ERROR")},
			body:       `{"location": "Paris"}`,
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(tt.service, &mockForecastProvider{})

			w := doRequest(t, app, http.MethodPost, "/search", tt.body)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.wantStatus, w.Body.String())
			}

			var resp NavigationResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Redirect != tt.wantRedirect {
				t.Errorf("redirect = %q, want %q", resp.Redirect, tt.wantRedirect)
			}
		})
	}
}

func TestHandlePrediction(t *testing.T) {
	tests := []struct {
		name       string
		provider   *mockForecastProvider
		target     string
		wantStatus int
		wantState  string
		wantDays   int
		wantReason string
	}{
		{
			name: "loaded forecast",
			provider: &mockForecastProvider{entries: []firecast.DayEntry{
				{Date: "2026-08-01", Prediction: "Low", Icon: "/icons/fire-0.png"},
				{Date: "2026-08-02", Prediction: "Very High", Icon: "/icons/fire-3.png"},
			}},
			target:     "/prediction?location=Kelowna",
			wantStatus: http.StatusOK,
			wantState:  "loaded",
			wantDays:   2,
		},
		{
			name:       "no location stays idle",
			provider:   &mockForecastProvider{},
			target:     "/prediction",
			wantStatus: http.StatusOK,
			wantState:  "idle",
		},
		{
			name:       "unknown location",
			provider:   &mockForecastProvider{err: firecast.ErrNotFound},
			target:     "/prediction?location=Nowhereville",
			wantStatus: http.StatusNotFound,
			wantState:  "failed",
			wantReason: "not_found",
		},
		{
			name:       "forecast service down",
			provider:   &mockForecastProvider{err: firecast.ErrServiceUnavailable},
			target:     "/prediction?location=Kelowna",
			wantStatus: http.StatusBadGateway,
			wantState:  "failed",
			wantReason: "network",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(&mockLocationService{}, tt.provider)

			w := doRequest(t, app, http.MethodGet, tt.target, "")

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.wantStatus, w.Body.String())
			}

			var resp PredictionResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Status != tt.wantState {
				t.Errorf("status field = %q, want %q", resp.Status, tt.wantState)
			}
			if len(resp.Days) != tt.wantDays {
				t.Errorf("got %d days, want %d", len(resp.Days), tt.wantDays)
			}
			if resp.Reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", resp.Reason, tt.wantReason)
			}
		})
	}
}

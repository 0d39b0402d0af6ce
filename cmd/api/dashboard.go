package main

import (
	"net/http"

	"firewatch/internal/mapview"
	"firewatch/internal/navstate"

	"github.com/gin-gonic/gin"
)

// MapResponse describes the map to embed on the dashboard
type MapResponse struct {
	Latitude  float64 `json:"latitude" example:"56.1304"`  // Map center latitude
	Longitude float64 `json:"longitude" example:"-106.3468"` // Map center longitude
	Zoom      int     `json:"zoom" example:"4"`            // Map zoom level
	EmbedURL  string  `json:"embedUrl"`                    // Ready-to-embed map URL
}

// DashboardResponse is the dashboard page payload
type DashboardResponse struct {
	Map    MapResponse `json:"map"`
	Legend []string    `json:"legend"` // Risk level labels, lowest to highest
}

// handleDashboard godoc
// @Summary Get the dashboard map view
// @Description Build the map view for the navigation parameters carried to the dashboard. Missing or malformed parameters fall back to the continental default view.
// @Tags pages
// @Produce json
// @Param lat query number false "Resolved latitude"
// @Param lng query number false "Resolved longitude"
// @Success 200 {object} DashboardResponse
// @Router /dashboard [get]
func (app *App) handleDashboard(c *gin.Context) {
	resolved := navstate.Decode(c.Request.URL.Query())

	request := mapview.BuildRequest(resolved)

	legend := make([]string, 0, 5)
	for _, level := range mapview.Legend() {
		legend = append(legend, level.String())
	}

	c.JSON(http.StatusOK, DashboardResponse{
		Map: MapResponse{
			Latitude:  request.Center.Latitude,
			Longitude: request.Center.Longitude,
			Zoom:      request.Zoom,
			EmbedURL:  mapview.EmbedURL(request, app.cfg.GoogleMaps.APIKey),
		},
		Legend: legend,
	})
}

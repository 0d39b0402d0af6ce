package main

import (
	"errors"
	"net/http"

	"firewatch/internal/geolocate"

	"github.com/gin-gonic/gin"
)

// LocationConsentInput reports the outcome of the device location prompt
type LocationConsentInput struct {
	Outcome   string   `json:"outcome" binding:"required,oneof=granted error denied unsupported"` // Prompt outcome
	Latitude  *float64 `json:"lat"`   // Device latitude, required when outcome is granted
	Longitude *float64 `json:"lng"`   // Device longitude, required when outcome is granted
	Error     string   `json:"error"` // Device error description when outcome is error
}

// NavigationResponse carries the page transition the client should follow
type NavigationResponse struct {
	Redirect string `json:"redirect" example:"/dashboard?lat=45&lng=-75"` // Target path with navigation parameters
}

// reportedPositioner adapts a reported prompt outcome to the device
// geolocation collaborator shape
type reportedPositioner struct {
	supported bool
	lat, lng  float64
	err       error
}

func (p reportedPositioner) Supported() bool { return p.supported }

func (p reportedPositioner) CurrentPosition() (float64, float64, error) {
	return p.lat, p.lng, p.err
}

// handleLocationConsent godoc
// @Summary Report the location prompt outcome
// @Description Converts the device geolocation prompt outcome into the dashboard navigation. A failed or declined prompt still navigates, to the default map view.
// @Tags location
// @Accept json
// @Produce json
// @Param outcome body LocationConsentInput true "Prompt outcome"
// @Success 200 {object} NavigationResponse
// @Failure 400 {object} map[string]string
// @Router /location/consent [post]
func (app *App) handleLocationConsent(c *gin.Context) {
	var input LocationConsentInput

	// Bind and validate the reported outcome
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var nav geolocate.Navigation
	gate := geolocate.NewGate(func(n geolocate.Navigation) { nav = n }, app.logger)

	switch input.Outcome {
	case "denied":
		gate.Deny()

	case "granted":
		if input.Latitude == nil || input.Longitude == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng are required when outcome is granted"})
			return
		}
		<-gate.RequestLocation(reportedPositioner{
			supported: true,
			lat:       *input.Latitude,
			lng:       *input.Longitude,
		})

	case "error":
		msg := input.Error
		if msg == "" {
			msg = "position unavailable"
		}
		<-gate.RequestLocation(reportedPositioner{
			supported: true,
			err:       errors.New(msg),
		})

	default: // unsupported
		<-gate.RequestLocation(reportedPositioner{})
	}

	redirect := nav.Path
	if query := nav.Params.Query(); query != "" {
		redirect += "?" + query
	}

	c.JSON(http.StatusOK, NavigationResponse{Redirect: redirect})
}

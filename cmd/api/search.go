package main

import (
	"errors"
	"net/http"

	"firewatch/internal/location"
	"firewatch/internal/navstate"

	"github.com/gin-gonic/gin"
)

// SearchInput is a free-text location search submission
type SearchInput struct {
	Location string `json:"location" example:"Kelowna"` // Place name to search for
}

// handleSearch godoc
// @Summary Search for a location
// @Description Geocode a place name and return the prediction page navigation for it. The navigation carries the original place text; the resolved coordinate only confirms the place exists.
// @Tags location
// @Accept json
// @Produce json
// @Param search body SearchInput true "Search query"
// @Success 200 {object} NavigationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /search [post]
func (app *App) handleSearch(c *gin.Context) {
	var input SearchInput

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Delegate to business layer
	_, err := app.locationService.Resolve(input.Location)
	if err != nil {
		switch {
		case errors.Is(err, location.ErrEmptyQuery):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a location."})
		case errors.Is(err, location.ErrNoMatch):
			c.JSON(http.StatusNotFound, gin.H{"error": "Location not found. Please try again."})
		default:
			app.logger.Error("location search failed",
				"location", input.Location,
				"error", err,
			)
			c.JSON(http.StatusBadGateway, gin.H{"error": "An error occurred while fetching the location. Please try again."})
		}
		return
	}

	params := navstate.Encode(navstate.Named(input.Location))

	c.JSON(http.StatusOK, NavigationResponse{
		Redirect: "/prediction?" + params.Query(),
	})
}

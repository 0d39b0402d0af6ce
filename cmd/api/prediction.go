package main

import (
	"net/http"

	"firewatch/internal/prediction"

	"github.com/gin-gonic/gin"
)

// ForecastDayResponse is a single rendered forecast day
type ForecastDayResponse struct {
	Date string `json:"date" example:"2026-08-31"`      // Calendar date
	Risk string `json:"risk" example:"Very High"`       // Risk level label
	Icon string `json:"icon" example:"/icons/fire.png"` // Icon reference
}

// PredictionResponse is the prediction page payload
type PredictionResponse struct {
	Status   string                `json:"status" example:"loaded"` // idle, loaded or failed
	Location string                `json:"location,omitempty"`
	Days     []ForecastDayResponse `json:"days,omitempty"`
	Reason   string                `json:"reason,omitempty"` // Failure category when status is failed
	Error    string                `json:"error,omitempty"`  // Retryable user message when status is failed
}

// handlePrediction godoc
// @Summary Get the multi-day risk forecast
// @Description Fetch the wildfire risk forecast for the location carried to the prediction page. Without a location parameter no fetch is issued and the page stays idle.
// @Tags pages
// @Produce json
// @Param location query string false "Place name carried from the search"
// @Success 200 {object} PredictionResponse
// @Failure 404 {object} PredictionResponse
// @Failure 502 {object} PredictionResponse
// @Router /prediction [get]
func (app *App) handlePrediction(c *gin.Context) {
	loc := c.Query("location")

	fetcher := prediction.NewFetcher(app.forecastProvider, app.logger)
	<-fetcher.Fetch(loc)

	state := fetcher.State()
	switch state.Kind {
	case prediction.StateLoaded:
		entries := state.Days
		if max := app.cfg.App.ForecastDays; max > 0 && len(entries) > max {
			entries = entries[:max]
		}
		days := make([]ForecastDayResponse, 0, len(entries))
		for _, day := range entries {
			days = append(days, ForecastDayResponse{
				Date: day.Date.Format("2006-01-02"),
				Risk: day.Risk.String(),
				Icon: day.Icon,
			})
		}
		c.JSON(http.StatusOK, PredictionResponse{
			Status:   "loaded",
			Location: loc,
			Days:     days,
		})

	case prediction.StateFailed:
		status := http.StatusBadGateway
		if state.Reason == prediction.ReasonNotFound {
			status = http.StatusNotFound
		}
		c.JSON(status, PredictionResponse{
			Status:   "failed",
			Location: loc,
			Reason:   state.Reason,
			Error:    "Error fetching predictions. Please try again.",
		})

	default: // no location carried, nothing to fetch
		c.JSON(http.StatusOK, PredictionResponse{Status: "idle"})
	}
}

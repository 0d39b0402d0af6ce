package types

import "time"

// ForecastDay is a single day of the wildfire risk forecast as returned by
// the prediction service. Entries are immutable once mapped from a response.
type ForecastDay struct {
	Date time.Time
	Risk RiskLevel
	Icon string
}

package firecast

// DayEntry is a single forecast entry as it appears on the wire:
// {"date": "2026-08-31", "prediction": "Very High", "icon": "/icons/fire-4.png"}
type DayEntry struct {
	Date       string `json:"date"`
	Prediction string `json:"prediction"`
	Icon       string `json:"icon"`
}

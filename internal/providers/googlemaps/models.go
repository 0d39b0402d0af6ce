package googlemaps

// Geocoding response status values the pipeline interprets
const (
	StatusOK          = "OK"
	StatusZeroResults = "ZERO_RESULTS"
)

type GeocodeAPIResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		FormattedAddress string `json:"formatted_address"`
		PlaceId          string `json:"place_id"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
			LocationType string `json:"location_type"`
		} `json:"geometry"`
		Types []string `json:"types"`
	} `json:"results"`
}

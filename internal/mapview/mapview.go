// Package mapview derives the embedded map request for the dashboard from
// whatever location the navigation carried.
package mapview

import (
	"fmt"
	"net/url"

	"firewatch/internal/navstate"
	"firewatch/internal/types"
)

// Without a resolved coordinate the dashboard shows a continental view
// centered on Canada.
const (
	DefaultLatitude  = 56.1304
	DefaultLongitude = -106.3468

	ZoomLocal       = 12
	ZoomContinental = 4
)

const embedPath = "https://www.google.com/maps/embed/v1/view"

// Request describes the map view to render
type Request struct {
	Center types.Coords
	Zoom   int
	Marked bool // marker at center, only for a resolved coordinate
}

// BuildRequest maps a resolved location to a map request. A Named location
// carries no coordinate at this stage, so it gets the continental default
// just like Unresolved.
func BuildRequest(resolved navstate.ResolvedLocation) Request {
	if coords, ok := resolved.Coords(); ok {
		return Request{
			Center: coords,
			Zoom:   ZoomLocal,
			Marked: true,
		}
	}
	return Request{
		Center: types.NewCoords(DefaultLatitude, DefaultLongitude),
		Zoom:   ZoomContinental,
	}
}

// EmbedURL renders the Google Maps embed URL for a request
func EmbedURL(r Request, apiKey string) string {
	center := fmt.Sprintf("%v,%v", r.Center.Latitude, r.Center.Longitude)

	q := url.Values{}
	q.Set("key", apiKey)
	q.Set("center", center)
	q.Set("zoom", fmt.Sprintf("%d", r.Zoom))
	if r.Marked {
		q.Set("markers", center)
	}

	return embedPath + "?" + q.Encode()
}

// Legend returns the five risk levels in ascending order for the map
// legend. Which level applies to the current view is the forecast
// service's call, never computed here.
func Legend() []types.RiskLevel {
	return types.RiskLevels()
}

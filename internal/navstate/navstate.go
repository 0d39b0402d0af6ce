// Package navstate models the location data carried across page
// transitions as query parameters. Encode and Decode are pure; every
// possible input decodes to some ResolvedLocation, never an error.
package navstate

import (
	"net/url"
	"strconv"

	"firewatch/internal/types"
)

// Recognized query parameter keys
const (
	KeyLat      = "lat"
	KeyLng      = "lng"
	KeyLocation = "location"
)

type kind int

const (
	kindUnresolved kind = iota
	kindCoordinate
	kindNamed
)

// ResolvedLocation is the outcome of the location-acquisition step: a
// precise coordinate, a place name, or nothing. Exactly one variant is
// active; construct values with Coordinate, Named, or Unresolved.
type ResolvedLocation struct {
	kind   kind
	coords types.Coords
	place  string
}

// Coordinate returns a ResolvedLocation holding a precise point
func Coordinate(latitude, longitude float64) ResolvedLocation {
	return ResolvedLocation{
		kind:   kindCoordinate,
		coords: types.NewCoords(latitude, longitude),
	}
}

// Named returns a ResolvedLocation holding a place identifier without a
// resolved coordinate
func Named(place string) ResolvedLocation {
	return ResolvedLocation{
		kind:  kindNamed,
		place: place,
	}
}

// Unresolved returns the empty ResolvedLocation
func Unresolved() ResolvedLocation {
	return ResolvedLocation{}
}

// Coords returns the coordinate and true when the Coordinate variant is
// active
func (r ResolvedLocation) Coords() (types.Coords, bool) {
	return r.coords, r.kind == kindCoordinate
}

// Place returns the place identifier and true when the Named variant is
// active
func (r ResolvedLocation) Place() (string, bool) {
	return r.place, r.kind == kindNamed
}

// IsUnresolved reports whether no location is available
func (r ResolvedLocation) IsUnresolved() bool {
	return r.kind == kindUnresolved
}

// Param is a single key/value pair attached to a navigation
type Param struct {
	Key   string
	Value string
}

// Params is an ordered sequence of navigation parameters
type Params []Param

// Query renders the parameters as a URL query string, preserving order
func (p Params) Query() string {
	var b []byte
	for i, param := range p {
		if i > 0 {
			b = append(b, '&')
		}
		b = append(b, url.QueryEscape(param.Key)...)
		b = append(b, '=')
		b = append(b, url.QueryEscape(param.Value)...)
	}
	return string(b)
}

// Values converts the parameters to url.Values
func (p Params) Values() url.Values {
	values := url.Values{}
	for _, param := range p {
		values.Add(param.Key, param.Value)
	}
	return values
}

// Encode maps a ResolvedLocation to its navigation parameters. Unresolved
// encodes to no parameters at all.
func Encode(r ResolvedLocation) Params {
	switch r.kind {
	case kindCoordinate:
		return Params{
			{Key: KeyLat, Value: strconv.FormatFloat(r.coords.Latitude, 'f', -1, 64)},
			{Key: KeyLng, Value: strconv.FormatFloat(r.coords.Longitude, 'f', -1, 64)},
		}
	case kindNamed:
		return Params{
			{Key: KeyLocation, Value: r.place},
		}
	default:
		return nil
	}
}

// Decode reconstructs a ResolvedLocation from navigation parameters.
// Decoding is total: partial or malformed input (lat without lng, an
// unparseable number, an empty location value) decodes to Unresolved.
func Decode(values url.Values) ResolvedLocation {
	latStr := values.Get(KeyLat)
	lngStr := values.Get(KeyLng)
	if latStr != "" && lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr == nil && lngErr == nil {
			return Coordinate(lat, lng)
		}
		return Unresolved()
	}

	if place := values.Get(KeyLocation); place != "" {
		return Named(place)
	}

	return Unresolved()
}

// Package geolocate turns a device geolocation outcome into a single
// dashboard navigation. Geolocation failures are logged, never surfaced;
// the user lands on the default map view instead.
package geolocate

import (
	"log/slog"
	"sync"

	"firewatch/internal/navstate"
)

// DashboardPath is the navigation target for every gate outcome
const DashboardPath = "/dashboard"

// Positioner is the device geolocation collaborator. CurrentPosition
// blocks until the device reports a position or an error; it cannot be
// cancelled, so late completions are discarded by the gate instead.
type Positioner interface {
	Supported() bool
	CurrentPosition() (lat, lng float64, err error)
}

// Navigation is a page transition carrying navigation parameters
type Navigation struct {
	Path   string
	Params navstate.Params
}

// NavigateFunc receives the single navigation a gate produces
type NavigateFunc func(Navigation)

// Gate mediates one location prompt. It invokes its NavigateFunc exactly
// once, regardless of how the prompt races against a slow device callback:
// a position arriving after Deny has already navigated is dropped.
type Gate struct {
	navigate NavigateFunc
	logger   *slog.Logger

	mu        sync.Mutex
	navigated bool
}

// NewGate creates a gate for a single location prompt
func NewGate(navigate NavigateFunc, logger *slog.Logger) *Gate {
	return &Gate{
		navigate: navigate,
		logger:   logger.With("component", "permission-gate"),
	}
}

// RequestLocation asks the device for its position and navigates with the
// outcome. An unsupported or missing positioner falls straight through to
// the default view. Returns a channel closed when the outcome has been
// processed, navigated or not.
func (g *Gate) RequestLocation(p Positioner) <-chan struct{} {
	done := make(chan struct{})

	if p == nil || !p.Supported() {
		g.logger.Debug("geolocation not supported, using default view")
		g.finish(navstate.Unresolved())
		close(done)
		return done
	}

	go func() {
		defer close(done)
		lat, lng, err := p.CurrentPosition()
		if err != nil {
			g.logger.Warn("failed to get device position", "error", err)
			g.finish(navstate.Unresolved())
			return
		}
		g.finish(navstate.Coordinate(lat, lng))
	}()

	return done
}

// Deny handles the user declining the prompt without invoking the device
// API at all
func (g *Gate) Deny() {
	g.logger.Debug("location access denied by user")
	g.finish(navstate.Unresolved())
}

// finish navigates at most once per gate
func (g *Gate) finish(resolved navstate.ResolvedLocation) {
	g.mu.Lock()
	if g.navigated {
		g.mu.Unlock()
		g.logger.Debug("discarding stale geolocation outcome")
		return
	}
	g.navigated = true
	g.mu.Unlock()

	g.navigate(Navigation{
		Path:   DashboardPath,
		Params: navstate.Encode(resolved),
	})
}

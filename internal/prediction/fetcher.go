// Package prediction owns the forecast fetch lifecycle for the prediction
// page: Idle -> Loading -> Loaded or Failed, with stale completions from a
// superseded fetch discarded.
package prediction

import (
	"errors"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"firewatch/internal/providers/firecast"
	"firewatch/internal/types"
)

// Kind identifies the active fetch state
type Kind int

const (
	StateIdle Kind = iota
	StateLoading
	StateLoaded
	StateFailed
)

// Display-safe failure categories; the underlying cause is logged only
const (
	ReasonNetwork  = "network"
	ReasonNotFound = "not_found"
	ReasonUnknown  = "unknown"
)

const wireDateLayout = "2006-01-02"

// State is a snapshot of the fetch lifecycle. Days is set only for
// StateLoaded, Reason only for StateFailed.
type State struct {
	Kind   Kind
	Days   []types.ForecastDay
	Reason string
}

// ForecastProvider defines the interface for wildfire forecast providers
type ForecastProvider interface {
	GetPrediction(location string) ([]firecast.DayEntry, error)
}

// Fetcher drives forecast requests for a prediction page. Safe for the
// usual pattern of one Fetch per page entry; a newer Fetch supersedes an
// in-flight one, whose result is dropped when it lands.
type Fetcher struct {
	provider ForecastProvider
	logger   *slog.Logger

	mu    sync.Mutex
	seq   uint64
	state State
}

// NewFetcher creates a fetcher in the Idle state
func NewFetcher(provider ForecastProvider, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		provider: provider,
		logger:   logger.With("component", "prediction-fetcher"),
		state:    State{Kind: StateIdle},
	}
}

// Fetch starts a forecast request for the given location and returns a
// channel closed when this invocation settles. An empty location issues no
// request and leaves the fetcher Idle. Starting a new fetch discards any
// prior Loaded or Failed state immediately.
func (f *Fetcher) Fetch(location string) <-chan struct{} {
	done := make(chan struct{})

	if location == "" {
		close(done)
		return done
	}

	f.mu.Lock()
	f.seq++
	seq := f.seq
	f.state = State{Kind: StateLoading}
	f.mu.Unlock()

	go func() {
		defer close(done)

		entries, err := f.provider.GetPrediction(location)

		var next State
		if err != nil {
			reason := classifyFailure(err)
			f.logger.Error("forecast fetch failed",
				"location", location,
				"reason", reason,
				"error", err,
			)
			next = State{Kind: StateFailed, Reason: reason}
		} else {
			next = State{Kind: StateLoaded, Days: f.mapDays(location, entries)}
		}

		f.mu.Lock()
		defer f.mu.Unlock()
		if seq != f.seq {
			// A newer fetch superseded this one while it was in flight
			f.logger.Debug("discarding stale forecast result", "location", location)
			return
		}
		f.state = next
	}()

	return done
}

// State returns a snapshot of the current fetch state
func (f *Fetcher) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	snapshot := f.state
	if snapshot.Days != nil {
		snapshot.Days = append([]types.ForecastDay(nil), snapshot.Days...)
	}
	return snapshot
}

// mapDays converts wire entries to domain days, preserving response order.
// An entry missing a field or carrying an unparseable date or risk label
// is dropped; the rest of the forecast still renders.
func (f *Fetcher) mapDays(location string, entries []firecast.DayEntry) []types.ForecastDay {
	days := make([]types.ForecastDay, 0, len(entries))
	for i, entry := range entries {
		date, err := time.Parse(wireDateLayout, entry.Date)
		if err != nil {
			f.logger.Debug("dropping forecast entry with bad date",
				"location", location, "index", i, "date", entry.Date,
			)
			continue
		}

		risk, err := types.ParseRiskLevel(entry.Prediction)
		if err != nil {
			f.logger.Debug("dropping forecast entry with bad risk level",
				"location", location, "index", i, "prediction", entry.Prediction,
			)
			continue
		}

		if entry.Icon == "" {
			f.logger.Debug("dropping forecast entry with missing icon",
				"location", location, "index", i,
			)
			continue
		}

		days = append(days, types.ForecastDay{
			Date: date,
			Risk: risk,
			Icon: entry.Icon,
		})
	}
	return days
}

// classifyFailure maps a provider error to a display-safe reason
func classifyFailure(err error) string {
	if errors.Is(err, firecast.ErrNotFound) {
		return ReasonNotFound
	}
	if errors.Is(err, firecast.ErrServiceUnavailable) {
		return ReasonNetwork
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return ReasonNetwork
	}
	return ReasonUnknown
}

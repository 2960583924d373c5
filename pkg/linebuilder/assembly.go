package linebuilder

import (
	"fmt"

	"github.com/travigo/gtfs-builder/pkg/gtfs"
)

// Assembly accumulates the shared feed. Merge is the only way data enters it, so it must be
// called from a single goroutine and in a reproducible order.
type Assembly struct {
	feed *gtfs.Feed

	routeFiles map[string]string
	stopFiles  map[string]string
	tripFiles  map[string]string
	shapeFiles map[string]string
}

func NewAssembly(agency gtfs.Agency) *Assembly {
	return &Assembly{
		feed: &gtfs.Feed{
			Agencies: []gtfs.Agency{agency},
		},
		routeFiles: map[string]string{},
		stopFiles:  map[string]string{},
		tripFiles:  map[string]string{},
		shapeFiles: map[string]string{},
	}
}

// Merge commits a delta. It is all or nothing: identifiers are checked against the feed first and
// a clash rejects the whole delta with ErrDuplicateIdentifier.
func (a *Assembly) Merge(delta *Delta) error {
	if file, exists := a.routeFiles[delta.Route.ID]; exists {
		return a.duplicate(delta, "route_id", "route", delta.Route.ID, file)
	}
	for _, stop := range delta.Stops {
		if file, exists := a.stopFiles[stop.ID]; exists {
			return a.duplicate(delta, "stop_id", "stop", stop.ID, file)
		}
	}
	for _, trip := range delta.Trips {
		if file, exists := a.tripFiles[trip.ID]; exists {
			return a.duplicate(delta, "route_id", "trip", trip.ID, file)
		}
	}
	for _, shape := range delta.Shapes {
		if file, exists := a.shapeFiles[shape.ID]; exists {
			return a.duplicate(delta, "route_id", "shape", shape.ID, file)
		}
	}

	a.routeFiles[delta.Route.ID] = delta.File
	for _, stop := range delta.Stops {
		a.stopFiles[stop.ID] = delta.File
	}
	for _, trip := range delta.Trips {
		a.tripFiles[trip.ID] = delta.File
	}
	for _, shape := range delta.Shapes {
		a.shapeFiles[shape.ID] = delta.File
	}

	a.feed.Routes = append(a.feed.Routes, delta.Route)
	a.feed.Stops = append(a.feed.Stops, delta.Stops...)
	a.feed.CalendarDates = append(a.feed.CalendarDates, delta.CalendarDates...)
	a.feed.Trips = append(a.feed.Trips, delta.Trips...)
	a.feed.StopTimes = append(a.feed.StopTimes, delta.StopTimes...)
	a.feed.Shapes = append(a.feed.Shapes, delta.Shapes...)

	return nil
}

func (a *Assembly) duplicate(delta *Delta, field string, kind string, id string, otherFile string) error {
	return inputError(delta.File, field, fmt.Errorf("%w: %s %s already defined by %s", ErrDuplicateIdentifier, kind, id, otherFile))
}

// SetFeedInfo describes the feed publisher and validity window
func (a *Assembly) SetFeedInfo(agency gtfs.Agency, window Calendar) {
	a.feed.FeedInfo = []gtfs.FeedInfo{
		{
			PublisherName: agency.Name,
			PublisherURL:  agency.URL,
			Language:      agency.Language,
			StartDate:     gtfs.FormatDate(window.Start),
			EndDate:       gtfs.FormatDate(window.End),
		},
	}
}

func (a *Assembly) Feed() *gtfs.Feed {
	return a.feed
}

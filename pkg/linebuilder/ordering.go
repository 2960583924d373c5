package linebuilder

import (
	"fmt"

	"github.com/travigo/gtfs-builder/pkg/geo"
	"github.com/travigo/gtfs-builder/pkg/gtfs"
	"golang.org/x/exp/slices"
)

// StopOrder decides the forward traversal order of a route's stops.
// The input is already sorted by identifier; implementations must not modify it.
type StopOrder interface {
	Name() string
	Order(stops []gtfs.Stop, path geo.Line) []gtfs.Stop
}

// IdentifierOrder keeps the ascending identifier order
type IdentifierOrder struct{}

func (IdentifierOrder) Name() string {
	return "identifier"
}

func (IdentifierOrder) Order(stops []gtfs.Stop, _ geo.Line) []gtfs.Stop {
	return slices.Clone(stops)
}

// ProjectionOrder orders stops by where they project onto the route line, from its first vertex onwards.
// Stops projecting onto the same distance keep their identifier order.
type ProjectionOrder struct{}

func (ProjectionOrder) Name() string {
	return "projection"
}

func (ProjectionOrder) Order(stops []gtfs.Stop, path geo.Line) []gtfs.Stop {
	ordered := slices.Clone(stops)

	along := make(map[string]float64, len(stops))
	for _, stop := range stops {
		along[stop.ID] = path.DistanceAlong(stopCoordinate(stop))
	}

	slices.SortStableFunc(ordered, func(a, b gtfs.Stop) int {
		switch {
		case along[a.ID] < along[b.ID]:
			return -1
		case along[a.ID] > along[b.ID]:
			return 1
		}
		return 0
	})

	return ordered
}

func ParseStopOrder(name string) (StopOrder, error) {
	switch name {
	case "", "identifier":
		return IdentifierOrder{}, nil
	case "projection":
		return ProjectionOrder{}, nil
	default:
		return nil, fmt.Errorf("unknown stop order %q", name)
	}
}

func stopCoordinate(stop gtfs.Stop) geo.Coordinate {
	return geo.Coordinate{Latitude: stop.Latitude, Longitude: stop.Longitude}
}

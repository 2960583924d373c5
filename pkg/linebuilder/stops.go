package linebuilder

import (
	"fmt"
	"strconv"

	"github.com/travigo/gtfs-builder/pkg/attributes"
	"github.com/travigo/gtfs-builder/pkg/gtfs"
	"golang.org/x/exp/slices"
)

// MaxLocalStopID keeps the three digit padding of composite stop identifiers unambiguous
const MaxLocalStopID = 999

// StopID composes the feed-wide stop identifier from the owning route and the local stop number
func StopID(routeID string, localID int) string {
	return fmt.Sprintf("%s%03d", routeID, localID)
}

// BuildStops turns the candidate points of a line into stops sorted by identifier
func BuildStops(line *Line) ([]gtfs.Stop, error) {
	if len(line.Points) == 0 {
		return nil, inputError(line.File, "stop_id", ErrNoStops)
	}

	stops := make([]gtfs.Stop, 0, len(line.Points))
	seen := map[string]bool{}

	for _, point := range line.Points {
		localID, err := localStopID(point.Properties)
		if err != nil {
			return nil, inputError(line.File, "stop_id", err)
		}

		name, _, err := attributes.String(point.Properties, "stop_name")
		if err != nil {
			return nil, inputError(line.File, "stop_name", fmt.Errorf("%w: %s", ErrInvalidAttribute, err))
		}

		coordinate, err := toCoordinate(point.Geometry.Point)
		if err != nil {
			return nil, inputError(line.File, "geometry", err)
		}

		stopID := StopID(line.Route.ID, localID)
		if seen[stopID] {
			return nil, inputError(line.File, "stop_id", fmt.Errorf("%w: stop %s", ErrDuplicateIdentifier, stopID))
		}
		seen[stopID] = true

		stops = append(stops, gtfs.Stop{
			ID:           stopID,
			Code:         strconv.Itoa(localID),
			Name:         name,
			Latitude:     coordinate.Latitude,
			Longitude:    coordinate.Longitude,
			LocationType: gtfs.LocationTypeStop,
		})
	}

	slices.SortFunc(stops, compareStopIDs)

	return stops, nil
}

func localStopID(properties map[string]interface{}) (int, error) {
	localID, found, err := attributes.Int(properties, "stop_id")
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidAttribute, err)
	}
	if !found {
		return 0, ErrMissingAttribute
	}
	if localID < 0 || localID > MaxLocalStopID {
		return 0, fmt.Errorf("%w: stop_id %d outside 0..%d", ErrInvalidAttribute, localID, MaxLocalStopID)
	}

	return localID, nil
}

func compareStopIDs(a, b gtfs.Stop) int {
	switch {
	case a.ID < b.ID:
		return -1
	case a.ID > b.ID:
		return 1
	}
	return 0
}

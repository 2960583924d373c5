package linebuilder

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/travigo/gtfs-builder/pkg/geo"
	"github.com/travigo/gtfs-builder/pkg/gtfs"
)

// ShapeID names the shape of one direction of a route. The direction id always ends the
// identifier, so two routes can never produce the same shape id.
func ShapeID(routeID string, directionID int) string {
	return fmt.Sprintf("%s_%d", routeID, directionID)
}

// BuildShapes turns the route line into a forward shape and its reverse.
// Stop distances are only attached when the forward stop order never moves backwards along the
// line, otherwise the stop times would carry decreasing shape distances.
func BuildShapes(routeID string, path geo.Line, stops []gtfs.Stop) ([]gtfs.Shape, *RouteShape) {
	shape := &RouteShape{
		ID:        ShapeID(routeID, gtfs.DirectionForward),
		ReverseID: ShapeID(routeID, gtfs.DirectionBackward),
		Length:    path.Length(),
	}

	records := shapePoints(shape.ID, path)
	records = append(records, shapePoints(shape.ReverseID, path.Reverse())...)

	along := make(map[string]float64, len(stops))
	previous := 0.0
	monotonic := true
	for _, stop := range stops {
		distance := path.DistanceAlong(stopCoordinate(stop))
		if distance < previous {
			monotonic = false
		}
		previous = distance
		along[stop.ID] = distance
	}

	if monotonic {
		shape.Along = along
	} else {
		log.Debug().Str("route", routeID).Msg("Stop order does not follow the route line, leaving out stop shape distances")
	}

	return records, shape
}

func shapePoints(shapeID string, path geo.Line) []gtfs.Shape {
	distances := path.CumulativeDistances()

	points := make([]gtfs.Shape, 0, len(path))
	for i, coordinate := range path {
		points = append(points, gtfs.Shape{
			ID:               shapeID,
			PointLatitude:    coordinate.Latitude,
			PointLongitude:   coordinate.Longitude,
			PointSequence:    i + 1,
			DistanceTraveled: distances[i],
		})
	}

	return points
}

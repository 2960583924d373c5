package linebuilder

import (
	"fmt"

	geojson "github.com/paulmach/go.geojson"
	"github.com/rs/zerolog/log"
	"github.com/travigo/gtfs-builder/pkg/attributes"
	"github.com/travigo/gtfs-builder/pkg/geo"
	"github.com/travigo/gtfs-builder/pkg/gtfs"
)

// Line is one input file classified into its route, its candidate stop points and the route path
type Line struct {
	File   string
	Route  gtfs.Route
	Points []*geojson.Feature
	Path   geo.Line
}

// Ingest classifies the features of one file. Every point is a stop candidate and exactly one
// line string (or multi line string) must describe the route, carrying the route attributes.
func Ingest(file string, collection *geojson.FeatureCollection, agencyID string) (*Line, error) {
	line := &Line{File: file}

	var routeFeature *geojson.Feature
	for _, feature := range collection.Features {
		if feature == nil || feature.Geometry == nil {
			continue
		}

		switch {
		case feature.Geometry.IsPoint():
			line.Points = append(line.Points, feature)
		case feature.Geometry.IsLineString(), feature.Geometry.IsMultiLineString():
			if routeFeature != nil {
				return nil, inputError(file, "geometry", ErrAmbiguousRouteGeometry)
			}
			routeFeature = feature
		default:
			log.Debug().Str("file", file).Str("type", string(feature.Geometry.Type)).Msg("Ignoring feature")
		}
	}

	if routeFeature == nil {
		return nil, inputError(file, "geometry", ErrMissingRouteGeometry)
	}

	path, err := linePath(routeFeature.Geometry)
	if err != nil {
		return nil, inputError(file, "geometry", err)
	}
	line.Path = path

	route, err := extractRoute(file, routeFeature.Properties)
	if err != nil {
		return nil, err
	}
	route.AgencyID = agencyID
	line.Route = route

	return line, nil
}

func extractRoute(file string, properties map[string]interface{}) (gtfs.Route, error) {
	id, err := routeID(properties)
	if err != nil {
		return gtfs.Route{}, inputError(file, "route_id", err)
	}

	route := gtfs.Route{
		ID:   id,
		Type: gtfs.RouteTypeTramService,
	}

	optionalFields := []struct {
		name        string
		destination *string
	}{
		{"route_short_name", &route.ShortName},
		{"route_long_name", &route.LongName},
		{"route_desc", &route.Description},
	}
	for _, field := range optionalFields {
		value, _, err := attributes.String(properties, field.name)
		if err != nil {
			return gtfs.Route{}, inputError(file, field.name, fmt.Errorf("%w: %s", ErrInvalidAttribute, err))
		}
		*field.destination = value
	}

	color, found, field, err := routeColor(properties)
	if err != nil {
		return gtfs.Route{}, inputError(file, field, fmt.Errorf("%w: %s", ErrInvalidAttribute, err))
	}
	if found {
		route.Colour = attributes.FormatColor(color)
	}

	return route, nil
}

func routeID(properties map[string]interface{}) (string, error) {
	id, found, err := attributes.String(properties, "route_id")
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidAttribute, err)
	}
	if !found || id == "" {
		return "", ErrMissingAttribute
	}

	return id, nil
}

// routeColor prefers the stroke styling attribute over route_color
func routeColor(properties map[string]interface{}) (int, bool, string, error) {
	for _, name := range []string{"stroke", "route_color"} {
		color, found, err := attributes.Color(properties, name)
		if err != nil {
			return 0, true, name, err
		}
		if found {
			return color, true, name, nil
		}
	}

	return 0, false, "", nil
}

func linePath(geometry *geojson.Geometry) (geo.Line, error) {
	var positions [][]float64
	if geometry.IsLineString() {
		positions = geometry.LineString
	} else {
		for _, part := range geometry.MultiLineString {
			positions = append(positions, part...)
		}
	}

	path := make(geo.Line, 0, len(positions))
	for _, position := range positions {
		coordinate, err := toCoordinate(position)
		if err != nil {
			return nil, err
		}
		path = append(path, coordinate)
	}

	if len(path) < 2 {
		return nil, fmt.Errorf("%w: route line needs at least two positions", ErrMissingRouteGeometry)
	}

	return path, nil
}

// toCoordinate reads a GeoJSON position, which is ordered longitude then latitude
func toCoordinate(position []float64) (geo.Coordinate, error) {
	if len(position) < 2 {
		return geo.Coordinate{}, fmt.Errorf("%w: position %v", ErrInvalidAttribute, position)
	}

	return geo.Coordinate{Latitude: position[1], Longitude: position[0]}, nil
}

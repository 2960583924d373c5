package linebuilder

import (
	"fmt"

	geojson "github.com/paulmach/go.geojson"
	"github.com/rs/zerolog/log"
	"github.com/travigo/gtfs-builder/pkg/attributes"
	"github.com/travigo/gtfs-builder/pkg/gtfs"
)

// Delta is everything one input file contributes to the feed.
// It is built in isolation and only becomes part of the feed through Assembly.Merge.
type Delta struct {
	File string

	Route         gtfs.Route
	Stops         []gtfs.Stop
	CalendarDates []gtfs.CalendarDate
	Trips         []gtfs.Trip
	StopTimes     []gtfs.StopTime
	Shapes        []gtfs.Shape
}

// Build runs the full pipeline for one decoded input file: ingest, stops, calendar and trips.
// Any error is an *InputError naming the file and the offending field.
func Build(file string, collection *geojson.FeatureCollection, options Options) (*Delta, error) {
	line, err := Ingest(file, collection, options.Agency.ID)
	if err != nil {
		return nil, err
	}

	if options.Transform != nil {
		if err := options.Transform.Apply(&line.Route); err != nil {
			return nil, inputError(file, "transforms", err)
		}
		if err := checkTransformedRoute(file, &line.Route, options.Agency.ID); err != nil {
			return nil, err
		}
	}

	stops, err := BuildStops(line)
	if err != nil {
		return nil, err
	}

	stopOrder := options.StopOrder
	if stopOrder == nil {
		stopOrder = IdentifierOrder{}
	}
	ordered := stopOrder.Order(stops, line.Path)

	delta := &Delta{
		File:          file,
		Route:         line.Route,
		Stops:         stops,
		CalendarDates: GenerateCalendar(line.Route.ID, options.Calendar),
	}

	var shape *RouteShape
	if options.Shapes {
		delta.Shapes, shape = BuildShapes(line.Route.ID, line.Path, ordered)
	}

	scheduler := Scheduler{Schedule: options.Schedule}
	delta.Trips, delta.StopTimes = scheduler.Generate(line.Route, ordered, shape)

	log.Debug().
		Str("file", file).
		Str("route", delta.Route.ID).
		Str("order", stopOrder.Name()).
		Int("stops", len(delta.Stops)).
		Int("trips", len(delta.Trips)).
		Int("stoptimes", len(delta.StopTimes)).
		Msg("Built route")

	return delta, nil
}

// checkTransformedRoute re-checks the fields a transform may have rewritten, normalising colours
func checkTransformedRoute(file string, route *gtfs.Route, agencyID string) error {
	if route.ID == "" {
		return inputError(file, "route_id", fmt.Errorf("%w: emptied by transform", ErrMissingAttribute))
	}
	if route.AgencyID != agencyID {
		return inputError(file, "agency_id", fmt.Errorf("%w: transform set %q, the feed agency is %q", ErrInvalidAttribute, route.AgencyID, agencyID))
	}
	if !gtfs.ValidRouteType(route.Type) {
		return inputError(file, "route_type", fmt.Errorf("%w: transform set %d", ErrInvalidAttribute, route.Type))
	}

	colours := []struct {
		field string
		value *string
	}{
		{"route_color", &route.Colour},
		{"route_text_color", &route.TextColour},
	}
	for _, colour := range colours {
		if *colour.value == "" {
			continue
		}
		parsed, err := attributes.ParseColor(*colour.value)
		if err != nil {
			return inputError(file, colour.field, fmt.Errorf("%w: %s", ErrInvalidAttribute, err))
		}
		*colour.value = attributes.FormatColor(parsed)
	}

	return nil
}

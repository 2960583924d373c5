package gtfs

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

// Validate checks the referential integrity of the feed: unique identifiers, resolvable
// references, stop sequences numbered 1..N and stop times that never go backwards within a trip.
// Every problem found is reported, joined into one error.
func Validate(feed *Feed) error {
	var problems []error
	report := func(format string, args ...interface{}) {
		problems = append(problems, fmt.Errorf(format, args...))
	}

	agencies := map[string]bool{}
	for _, agency := range feed.Agencies {
		if agencies[agency.ID] {
			report("duplicate agency_id %s", agency.ID)
		}
		agencies[agency.ID] = true
	}

	stops := map[string]bool{}
	for _, stop := range feed.Stops {
		if stops[stop.ID] {
			report("duplicate stop_id %s", stop.ID)
		}
		stops[stop.ID] = true
	}

	routes := map[string]bool{}
	for _, route := range feed.Routes {
		if routes[route.ID] {
			report("duplicate route_id %s", route.ID)
		}
		routes[route.ID] = true

		if !agencies[route.AgencyID] {
			report("route %s references unknown agency_id %s", route.ID, route.AgencyID)
		}
		if !ValidRouteType(route.Type) {
			report("route %s has invalid route_type %d", route.ID, route.Type)
		}
	}

	services := map[string]bool{}
	serviceDates := map[string]bool{}
	for _, calendarDate := range feed.CalendarDates {
		key := calendarDate.ServiceID + "/" + calendarDate.Date
		if serviceDates[key] {
			report("duplicate calendar date %s for service_id %s", calendarDate.Date, calendarDate.ServiceID)
		}
		serviceDates[key] = true
		services[calendarDate.ServiceID] = true
	}

	shapes := map[string]bool{}
	for _, shape := range feed.Shapes {
		shapes[shape.ID] = true
	}

	trips := map[string]bool{}
	for _, trip := range feed.Trips {
		if trips[trip.ID] {
			report("duplicate trip_id %s", trip.ID)
		}
		trips[trip.ID] = true

		if !routes[trip.RouteID] {
			report("trip %s references unknown route_id %s", trip.ID, trip.RouteID)
		}
		if !services[trip.ServiceID] {
			report("trip %s references unknown service_id %s", trip.ID, trip.ServiceID)
		}
		if trip.ShapeID != "" && !shapes[trip.ShapeID] {
			report("trip %s references unknown shape_id %s", trip.ID, trip.ShapeID)
		}
	}

	tripStopTimes := map[string][]StopTime{}
	for _, stopTime := range feed.StopTimes {
		if !trips[stopTime.TripID] {
			report("stop time references unknown trip_id %s", stopTime.TripID)
		}
		if !stops[stopTime.StopID] {
			report("trip %s references unknown stop_id %s", stopTime.TripID, stopTime.StopID)
		}
		if stopTime.DepartureTime < stopTime.ArrivalTime {
			report("trip %s departs stop %s before arriving", stopTime.TripID, stopTime.StopID)
		}

		tripStopTimes[stopTime.TripID] = append(tripStopTimes[stopTime.TripID], stopTime)
	}

	for _, trip := range feed.Trips {
		tripID := trip.ID
		stopTimes := tripStopTimes[tripID]
		if len(stopTimes) == 0 {
			report("trip %s has no stop times", tripID)
			continue
		}
		slices.SortFunc(stopTimes, func(a, b StopTime) int {
			return a.StopSequence - b.StopSequence
		})

		for i, stopTime := range stopTimes {
			if stopTime.StopSequence != i+1 {
				report("trip %s has stop_sequence %d at position %d", tripID, stopTime.StopSequence, i+1)
				break
			}
			if i > 0 && stopTime.ArrivalTime < stopTimes[i-1].DepartureTime {
				report("trip %s goes back in time at stop_sequence %d", tripID, stopTime.StopSequence)
			}
		}
	}

	return errors.Join(problems...)
}

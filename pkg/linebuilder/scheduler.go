package linebuilder

import (
	"fmt"
	"math"
	"time"

	"github.com/travigo/gtfs-builder/pkg/geo"
	"github.com/travigo/gtfs-builder/pkg/gtfs"
	"golang.org/x/exp/slices"
)

// Scheduler generates headway based trips over both directions of a route
type Scheduler struct {
	Schedule Schedule
}

// RouteShape links generated trips to the shapes of a route. Along holds the distance of
// every stop on the forward shape.
type RouteShape struct {
	ID        string
	ReverseID string
	Length    float64
	Along     map[string]float64
}

type direction struct {
	ID    int
	Tag   string
	Stops []gtfs.Stop

	ShapeID  string
	Distance func(stop gtfs.Stop) gtfs.OptionalFloat
}

// Departures lists the departure minutes after midnight from the first to the last departure inclusive
func (s Scheduler) Departures() []int {
	first := int(s.Schedule.FirstDeparture / time.Minute)
	last := int(s.Schedule.LastDeparture / time.Minute)
	headway := int(s.Schedule.Headway / time.Minute)

	if headway <= 0 {
		return nil
	}

	var departures []int
	for departure := first; departure <= last; departure += headway {
		departures = append(departures, departure)
	}

	return departures
}

// TravelMinutes is the whole number of minutes, rounded up, needed between two stops at the assumed speed
func (s Scheduler) TravelMinutes(from gtfs.Stop, to gtfs.Stop) int {
	distanceKM := geo.EstimateDistance(stopCoordinate(from), stopCoordinate(to)) / 1000

	return int(math.Ceil(distanceKM / s.Schedule.SpeedKMH * 60))
}

// Generate builds every trip of the route. Forward trips follow the given stop order and
// backward trips the reverse of it. Times are never clamped to 24 hours.
func (s Scheduler) Generate(route gtfs.Route, stops []gtfs.Stop, shape *RouteShape) ([]gtfs.Trip, []gtfs.StopTime) {
	reversed := slices.Clone(stops)
	slices.Reverse(reversed)

	directions := []direction{
		{ID: gtfs.DirectionForward, Tag: s.Schedule.ForwardTag, Stops: stops},
		{ID: gtfs.DirectionBackward, Tag: s.Schedule.BackwardTag, Stops: reversed},
	}

	if shape != nil {
		directions[0].ShapeID = shape.ID
		directions[1].ShapeID = shape.ReverseID
	}
	if shape != nil && shape.Along != nil {
		directions[0].Distance = func(stop gtfs.Stop) gtfs.OptionalFloat {
			return gtfs.NewOptionalFloat(shape.Along[stop.ID])
		}
		directions[1].Distance = func(stop gtfs.Stop) gtfs.OptionalFloat {
			return gtfs.NewOptionalFloat(math.Max(0, shape.Length-shape.Along[stop.ID]))
		}
	}

	departures := s.Departures()
	trips := make([]gtfs.Trip, 0, len(departures)*len(directions))
	stopTimes := make([]gtfs.StopTime, 0, len(departures)*len(directions)*len(stops))

	for _, direction := range directions {
		for _, departure := range departures {
			trip, tripStopTimes := s.scheduleTrip(route, direction, departure)

			trips = append(trips, trip)
			stopTimes = append(stopTimes, tripStopTimes...)
		}
	}

	return trips, stopTimes
}

func (s Scheduler) scheduleTrip(route gtfs.Route, direction direction, departure int) (gtfs.Trip, []gtfs.StopTime) {
	trip := gtfs.Trip{
		RouteID:              route.ID,
		ServiceID:            route.ID,
		ID:                   fmt.Sprintf("%s_%s_%d", route.ID, direction.Tag, departure),
		Headsign:             route.ShortName,
		Name:                 route.ShortName,
		DirectionID:          direction.ID,
		ShapeID:              direction.ShapeID,
		WheelchairAccessible: gtfs.WheelchairAccessibleUnknown,
	}

	dwell := int(s.Schedule.Dwell / time.Minute)
	timeCursor := departure
	stopTimes := make([]gtfs.StopTime, 0, len(direction.Stops))

	for index, stop := range direction.Stops {
		if index > 0 {
			timeCursor += s.TravelMinutes(direction.Stops[index-1], stop) + dwell
		}

		stopTime := gtfs.StopTime{
			TripID:        trip.ID,
			StopID:        stop.ID,
			StopSequence:  index + 1,
			ArrivalTime:   gtfs.Time(timeCursor * 60),
			DepartureTime: gtfs.Time(timeCursor * 60),
			PickupType:    gtfs.PickupTypeRegular,
			DropOffType:   gtfs.DropOffTypeRegular,
		}
		if direction.Distance != nil {
			stopTime.ShapeDistTraveled = direction.Distance(stop)
		}

		stopTimes = append(stopTimes, stopTime)
	}

	return trip, stopTimes
}

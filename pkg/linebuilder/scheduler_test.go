package linebuilder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/gtfs-builder/pkg/gtfs"
	"golang.org/x/exp/slices"
)

func tramStops() []gtfs.Stop {
	return []gtfs.Stop{
		{ID: "12001", Latitude: 51.00, Longitude: 3.70},
		{ID: "12002", Latitude: 51.01, Longitude: 3.70},
		{ID: "12003", Latitude: 51.02, Longitude: 3.70},
	}
}

func TestDepartures(t *testing.T) {
	scheduler := Scheduler{Schedule: DefaultSchedule()}

	departures := scheduler.Departures()
	require.Len(t, departures, 65)
	assert.Equal(t, 360, departures[0])
	assert.Equal(t, 375, departures[1])
	assert.Equal(t, 1320, departures[64])

	scheduler.Schedule.Headway = 0
	assert.Empty(t, scheduler.Departures())
}

func TestTravelMinutes(t *testing.T) {
	scheduler := Scheduler{Schedule: DefaultSchedule()}
	stops := tramStops()

	assert.Equal(t, 2, scheduler.TravelMinutes(stops[0], stops[1]))
	assert.Equal(t, 3, scheduler.TravelMinutes(stops[0], stops[2]))
	assert.Equal(t, 0, scheduler.TravelMinutes(stops[0], stops[0]))

	nearby := gtfs.Stop{Latitude: stops[0].Latitude + 0.005, Longitude: 3.70}
	assert.Equal(t, 1, scheduler.TravelMinutes(stops[0], nearby))

	// Any movement at all costs a whole minute
	crawl := gtfs.Stop{Latitude: stops[0].Latitude + 1e-7, Longitude: 3.70}
	assert.Equal(t, 1, scheduler.TravelMinutes(stops[0], crawl))

	scheduler.Schedule.SpeedKMH = 30
	assert.Equal(t, 3, scheduler.TravelMinutes(stops[0], stops[1]))
}

func TestGenerate(t *testing.T) {
	scheduler := Scheduler{Schedule: DefaultSchedule()}
	route := gtfs.Route{ID: "12", ShortName: "1"}

	trips, stopTimes := scheduler.Generate(route, tramStops(), nil)

	require.Len(t, trips, 130)
	require.Len(t, stopTimes, 390)

	assert.Equal(t, gtfs.Trip{
		RouteID:     "12",
		ServiceID:   "12",
		ID:          "12_forward_360",
		Headsign:    "1",
		Name:        "1",
		DirectionID: gtfs.DirectionForward,
	}, trips[0])
	assert.Equal(t, "12_backward_360", trips[65].ID)
	assert.Equal(t, gtfs.DirectionBackward, trips[65].DirectionID)
	assert.Equal(t, "12_backward_1320", trips[129].ID)

	first := stopTimes[:3]
	assert.Equal(t, []string{"12001", "12002", "12003"}, []string{first[0].StopID, first[1].StopID, first[2].StopID})
	assert.Equal(t, []gtfs.Time{21600, 21840, 22080}, []gtfs.Time{first[0].ArrivalTime, first[1].ArrivalTime, first[2].ArrivalTime})
	for _, stopTime := range first {
		assert.Equal(t, stopTime.ArrivalTime, stopTime.DepartureTime)
		assert.False(t, stopTime.ShapeDistTraveled.Valid)
	}

	backward := stopTimes[195:198]
	assert.Equal(t, "12_backward_360", backward[0].TripID)
	assert.Equal(t, []string{"12003", "12002", "12001"}, []string{backward[0].StopID, backward[1].StopID, backward[2].StopID})

	ids := map[string]bool{}
	for _, trip := range trips {
		assert.False(t, ids[trip.ID], "trip %s repeated", trip.ID)
		ids[trip.ID] = true
	}
}

func TestGenerateTripInvariants(t *testing.T) {
	scheduler := Scheduler{Schedule: DefaultSchedule()}
	trips, stopTimes := scheduler.Generate(gtfs.Route{ID: "12"}, tramStops(), nil)

	byTrip := map[string][]gtfs.StopTime{}
	for _, stopTime := range stopTimes {
		byTrip[stopTime.TripID] = append(byTrip[stopTime.TripID], stopTime)
	}

	for _, trip := range trips {
		tripStopTimes := byTrip[trip.ID]
		require.Len(t, tripStopTimes, 3, trip.ID)

		for i, stopTime := range tripStopTimes {
			assert.Equal(t, i+1, stopTime.StopSequence)
			if i > 0 {
				assert.Greater(t, stopTime.ArrivalTime, tripStopTimes[i-1].DepartureTime)
			}
		}
	}
}

func TestGenerateIsSymmetric(t *testing.T) {
	scheduler := Scheduler{Schedule: DefaultSchedule()}
	stops := tramStops()
	reversed := slices.Clone(stops)
	slices.Reverse(reversed)

	_, forward := scheduler.Generate(gtfs.Route{ID: "a"}, stops, nil)
	_, backward := scheduler.Generate(gtfs.Route{ID: "b"}, reversed, nil)

	half := len(forward) / 2
	for i := 0; i < half; i++ {
		assert.Equal(t, forward[i].StopID, backward[half+i].StopID)
		assert.Equal(t, forward[i].ArrivalTime, backward[half+i].ArrivalTime)
		assert.Equal(t, forward[half+i].ArrivalTime, backward[i].ArrivalTime)
	}
}

func TestGeneratePastMidnight(t *testing.T) {
	schedule := DefaultSchedule()
	schedule.FirstDeparture = 23*time.Hour + 58*time.Minute
	schedule.LastDeparture = schedule.FirstDeparture

	scheduler := Scheduler{Schedule: schedule}
	trips, stopTimes := scheduler.Generate(gtfs.Route{ID: "12"}, tramStops(), nil)

	require.Len(t, trips, 2)
	assert.Equal(t, "12_forward_1438", trips[0].ID)
	assert.Equal(t, "24:02:00", stopTimes[1].ArrivalTime.String())
	assert.Equal(t, "24:06:00", stopTimes[2].ArrivalTime.String())
}

func TestGenerateWithShape(t *testing.T) {
	line := ingestTestLine(t, tramLine)
	stops, err := BuildStops(line)
	require.NoError(t, err)

	shapes, shape := BuildShapes("12", line.Path, stops)
	require.NotNil(t, shape.Along)
	assert.Len(t, shapes, 6)

	scheduler := Scheduler{Schedule: DefaultSchedule()}
	trips, stopTimes := scheduler.Generate(line.Route, stops, shape)

	assert.Equal(t, "12_0", trips[0].ShapeID)
	assert.Equal(t, "12_1", trips[65].ShapeID)

	assert.InDelta(t, 0, stopTimes[0].ShapeDistTraveled.Value, 0.01)
	assert.InDelta(t, shape.Length, stopTimes[2].ShapeDistTraveled.Value, 0.01)
	assert.True(t, stopTimes[1].ShapeDistTraveled.Valid)

	backward := stopTimes[195]
	assert.Equal(t, "12003", backward.StopID)
	assert.InDelta(t, 0, backward.ShapeDistTraveled.Value, 0.01)
}

package linebuilder

import (
	"time"

	"github.com/travigo/gtfs-builder/pkg/gtfs"
)

// Schedule holds the timetable policy every route is generated with
type Schedule struct {
	FirstDeparture time.Duration
	LastDeparture  time.Duration
	Headway        time.Duration
	Dwell          time.Duration
	SpeedKMH       float64

	ForwardTag  string
	BackwardTag string
}

// Calendar is the inclusive service window, both ends are dates at midnight UTC
type Calendar struct {
	Start time.Time
	End   time.Time
}

// RouteTransform lets callers adjust a route before it is committed to the feed
type RouteTransform interface {
	Apply(route *gtfs.Route) error
}

type Options struct {
	Agency    gtfs.Agency
	Calendar  Calendar
	Schedule  Schedule
	StopOrder StopOrder
	Shapes    bool

	Transform RouteTransform
}

func DefaultSchedule() Schedule {
	return Schedule{
		FirstDeparture: 6 * time.Hour,
		LastDeparture:  22 * time.Hour,
		Headway:        15 * time.Minute,
		Dwell:          2 * time.Minute,
		SpeedKMH:       60,
		ForwardTag:     "forward",
		BackwardTag:    "backward",
	}
}

// DefaultCalendar covers the full 2016 calendar year
func DefaultCalendar() Calendar {
	return Calendar{
		Start: time.Date(2016, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2016, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}

func DefaultAgency() gtfs.Agency {
	return gtfs.Agency{
		ID:       "DL",
		Name:     "De Lijn",
		URL:      "https://www.delijn.be",
		Timezone: "Europe/Brussels",
		Language: "nl",
	}
}

func DefaultOptions() Options {
	return Options{
		Agency:    DefaultAgency(),
		Calendar:  DefaultCalendar(),
		Schedule:  DefaultSchedule(),
		StopOrder: IdentifierOrder{},
		Shapes:    true,
	}
}

package config

import (
	"fmt"
	"time"

	iso8601 "github.com/senseyeio/duration"
	"github.com/travigo/gtfs-builder/pkg/gtfs"
	"github.com/travigo/gtfs-builder/pkg/linebuilder"
)

// durationReference anchors ISO-8601 durations, which may contain calendar units, to a fixed instant
var durationReference = time.Date(2016, time.January, 1, 0, 0, 0, 0, time.UTC)

// BuilderOptions converts the validated configuration into the options of the line builder
func (c Config) BuilderOptions() (linebuilder.Options, error) {
	start, err := time.Parse(DateLayout, c.Calendar.Start)
	if err != nil {
		return linebuilder.Options{}, fmt.Errorf("calendar start: %w", err)
	}
	end, err := time.Parse(DateLayout, c.Calendar.End)
	if err != nil {
		return linebuilder.Options{}, fmt.Errorf("calendar end: %w", err)
	}

	schedule, err := c.Schedule.linebuilderSchedule()
	if err != nil {
		return linebuilder.Options{}, err
	}

	stopOrder, err := linebuilder.ParseStopOrder(c.StopOrder)
	if err != nil {
		return linebuilder.Options{}, err
	}

	options := linebuilder.Options{
		Agency: gtfs.Agency{
			ID:       c.Agency.ID,
			Name:     c.Agency.Name,
			URL:      c.Agency.URL,
			Timezone: c.Agency.Timezone,
			Language: c.Agency.Language,
		},
		Calendar:  linebuilder.Calendar{Start: start, End: end},
		Schedule:  schedule,
		StopOrder: stopOrder,
		Shapes:    c.Shapes == nil || *c.Shapes,
	}

	if len(c.Transforms) > 0 {
		if err := c.Transforms.Compile(); err != nil {
			return linebuilder.Options{}, err
		}
		options.Transform = c.Transforms
	}

	return options, nil
}

func (s Schedule) linebuilderSchedule() (linebuilder.Schedule, error) {
	firstDeparture, err := parseClock(s.FirstDeparture)
	if err != nil {
		return linebuilder.Schedule{}, fmt.Errorf("first_departure: %w", err)
	}
	lastDeparture, err := parseClock(s.LastDeparture)
	if err != nil {
		return linebuilder.Schedule{}, fmt.Errorf("last_departure: %w", err)
	}
	if lastDeparture < firstDeparture {
		return linebuilder.Schedule{}, fmt.Errorf("last_departure %s is before first_departure %s", s.LastDeparture, s.FirstDeparture)
	}

	headway, err := parseMinutes(s.Headway)
	if err != nil {
		return linebuilder.Schedule{}, fmt.Errorf("headway: %w", err)
	}
	if headway <= 0 {
		return linebuilder.Schedule{}, fmt.Errorf("headway %s must be at least one minute", s.Headway)
	}

	var dwell time.Duration
	if s.Dwell != "" {
		dwell, err = parseMinutes(s.Dwell)
		if err != nil {
			return linebuilder.Schedule{}, fmt.Errorf("dwell: %w", err)
		}
	}

	return linebuilder.Schedule{
		FirstDeparture: firstDeparture,
		LastDeparture:  lastDeparture,
		Headway:        headway,
		Dwell:          dwell,
		SpeedKMH:       s.SpeedKMH,
		ForwardTag:     s.DirectionTags.Forward,
		BackwardTag:    s.DirectionTags.Backward,
	}, nil
}

// parseClock reads a HH:MM time of day as the duration since midnight
func parseClock(text string) (time.Duration, error) {
	clock, err := time.Parse(ClockLayout, text)
	if err != nil {
		return 0, err
	}

	return time.Duration(clock.Hour())*time.Hour + time.Duration(clock.Minute())*time.Minute, nil
}

// parseMinutes reads an ISO-8601 duration that must be a whole number of minutes
func parseMinutes(text string) (time.Duration, error) {
	duration, err := iso8601.ParseISO8601(text)
	if err != nil {
		return 0, err
	}

	minutes := duration.Shift(durationReference).Sub(durationReference)
	if minutes%time.Minute != 0 {
		return 0, fmt.Errorf("%s is not a whole number of minutes", text)
	}
	if minutes < 0 {
		return 0, fmt.Errorf("%s is negative", text)
	}

	return minutes, nil
}

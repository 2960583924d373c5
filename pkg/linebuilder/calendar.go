package linebuilder

import (
	"time"

	"github.com/travigo/gtfs-builder/pkg/gtfs"
)

// GenerateCalendar activates the service on every date of the inclusive window through calendar exceptions.
// An inverted window yields no records.
func GenerateCalendar(serviceID string, window Calendar) []gtfs.CalendarDate {
	start := truncateDate(window.Start)
	end := truncateDate(window.End)

	if start.After(end) {
		return nil
	}

	var calendarDates []gtfs.CalendarDate
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		calendarDates = append(calendarDates, gtfs.CalendarDate{
			ServiceID:     serviceID,
			Date:          gtfs.FormatDate(date),
			ExceptionType: gtfs.ExceptionTypeAdded,
		})
	}

	return calendarDates
}

// truncateDate drops the time of day and moves to UTC so stepping a day is always 24 hours
func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

package linebuilder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/gtfs-builder/pkg/gtfs"
)

func TestGenerateCalendar(t *testing.T) {
	calendarDates := GenerateCalendar("12", DefaultCalendar())

	require.Len(t, calendarDates, 366)
	assert.Equal(t, gtfs.CalendarDate{ServiceID: "12", Date: "20160101", ExceptionType: gtfs.ExceptionTypeAdded}, calendarDates[0])
	assert.Equal(t, "20160229", calendarDates[59].Date)
	assert.Equal(t, "20161231", calendarDates[365].Date)

	seen := map[string]bool{}
	for i, calendarDate := range calendarDates {
		assert.False(t, seen[calendarDate.Date], "date %s repeated", calendarDate.Date)
		seen[calendarDate.Date] = true

		if i > 0 {
			previous, _ := time.Parse(gtfs.DateFormat, calendarDates[i-1].Date)
			current, _ := time.Parse(gtfs.DateFormat, calendarDate.Date)
			assert.Equal(t, 24*time.Hour, current.Sub(previous))
		}
	}
}

func TestGenerateCalendarWindows(t *testing.T) {
	day := func(year int, month time.Month, d int) time.Time {
		return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name   string
		window Calendar
		want   int
	}{
		{name: "single day", window: Calendar{Start: day(2017, time.March, 4), End: day(2017, time.March, 4)}, want: 1},
		{name: "non leap year", window: Calendar{Start: day(2017, time.January, 1), End: day(2017, time.December, 31)}, want: 365},
		{name: "inverted", window: Calendar{Start: day(2017, time.March, 5), End: day(2017, time.March, 4)}, want: 0},
		{
			name: "across daylight saving change",
			window: Calendar{
				Start: time.Date(2016, time.March, 26, 12, 0, 0, 0, time.FixedZone("CET", 3600)),
				End:   time.Date(2016, time.March, 28, 0, 0, 0, 0, time.FixedZone("CEST", 7200)),
			},
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, GenerateCalendar("1", tt.window), tt.want)
		})
	}
}

package gtfs

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateFormat is the GTFS service date layout
const DateFormat = "20060102"

// Time is a GTFS time of day in seconds after local midnight.
// Values past 24 hours are valid and are written as such (eg. 25:10:00).
type Time int

func NewTime(hours int, minutes int, seconds int) Time {
	return Time(hours*3600 + minutes*60 + seconds)
}

func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", int(t)/3600, (int(t)%3600)/60, int(t)%60)
}

func (t Time) MarshalCSV() (string, error) {
	if t < 0 {
		return "", fmt.Errorf("negative time %d", int(t))
	}
	return t.String(), nil
}

func (t *Time) UnmarshalCSV(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		*t = 0
		return nil
	}

	parts := strings.Split(value, ":")
	if len(parts) != 3 {
		return fmt.Errorf("invalid time %q", value)
	}

	var fields [3]int
	for i, part := range parts {
		parsed, err := strconv.Atoi(part)
		if err != nil || parsed < 0 {
			return fmt.Errorf("invalid time %q", value)
		}
		fields[i] = parsed
	}

	*t = NewTime(fields[0], fields[1], fields[2])
	return nil
}

// OptionalFloat is a numeric column that may be left empty
type OptionalFloat struct {
	Value float64
	Valid bool
}

func NewOptionalFloat(value float64) OptionalFloat {
	return OptionalFloat{Value: value, Valid: true}
}

func (f OptionalFloat) MarshalCSV() (string, error) {
	if !f.Valid {
		return "", nil
	}
	return strconv.FormatFloat(f.Value, 'f', 2, 64), nil
}

func (f *OptionalFloat) UnmarshalCSV(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		*f = OptionalFloat{}
		return nil
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return err
	}

	*f = NewOptionalFloat(parsed)
	return nil
}

// FormatDate renders a service date in the GTFS date layout
func FormatDate(date time.Time) string {
	return date.Format(DateFormat)
}

package importer

import (
	"errors"
	"fmt"

	"github.com/travigo/gtfs-builder/pkg/gtfs"
)

var ErrFailedInputs = errors.New("input files failed")

type FileFailure struct {
	File string
	Err  error
}

// Report summarises a run. Files that failed contribute nothing to the feed.
type Report struct {
	Files  []string
	Built  []string
	Failed []FileFailure

	Routes        int
	Stops         int
	Trips         int
	StopTimes     int
	CalendarDates int
	Shapes        int
}

func (r *Report) count(feed *gtfs.Feed) {
	r.Routes = len(feed.Routes)
	r.Stops = len(feed.Stops)
	r.Trips = len(feed.Trips)
	r.StopTimes = len(feed.StopTimes)
	r.CalendarDates = len(feed.CalendarDates)
	r.Shapes = len(feed.Shapes)
}

// Err joins the failures of every file, wrapped in ErrFailedInputs. It is nil for a clean run.
func (r *Report) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}

	errs := make([]error, 0, len(r.Failed))
	for _, failure := range r.Failed {
		errs = append(errs, failure.Err)
	}

	return fmt.Errorf("%w: %d of %d: %w", ErrFailedInputs, len(r.Failed), len(r.Files), errors.Join(errs...))
}

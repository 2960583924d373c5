package gtfs

// Feed is an in-memory GTFS static feed, one slice per table
type Feed struct {
	Agencies      []Agency
	Stops         []Stop
	Routes        []Route
	Trips         []Trip
	StopTimes     []StopTime
	CalendarDates []CalendarDate
	Shapes        []Shape
	FeedInfo      []FeedInfo
}

type table struct {
	FileName string
	Records  interface{}
	Length   int
	Optional bool
}

// tables lists every table in the order it is written, pointing at the feed's slices so the reader can fill them in place
func (f *Feed) tables() []table {
	return []table{
		{FileName: "agency.txt", Records: &f.Agencies, Length: len(f.Agencies)},
		{FileName: "stops.txt", Records: &f.Stops, Length: len(f.Stops)},
		{FileName: "routes.txt", Records: &f.Routes, Length: len(f.Routes)},
		{FileName: "calendar_dates.txt", Records: &f.CalendarDates, Length: len(f.CalendarDates)},
		{FileName: "trips.txt", Records: &f.Trips, Length: len(f.Trips)},
		{FileName: "stop_times.txt", Records: &f.StopTimes, Length: len(f.StopTimes)},
		{FileName: "shapes.txt", Records: &f.Shapes, Length: len(f.Shapes), Optional: true},
		{FileName: "feed_info.txt", Records: &f.FeedInfo, Length: len(f.FeedInfo), Optional: true},
	}
}

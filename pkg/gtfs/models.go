package gtfs

const (
	LocationTypeStop = 0

	// Extended GTFS route type for a tram service
	RouteTypeTramService = 900

	WheelchairAccessibleUnknown = 0

	PickupTypeRegular  = 0
	DropOffTypeRegular = 0

	ExceptionTypeAdded   = 1
	ExceptionTypeRemoved = 2

	DirectionForward  = 0
	DirectionBackward = 1
)

type Agency struct {
	ID       string `csv:"agency_id"`
	Name     string `csv:"agency_name"`
	URL      string `csv:"agency_url"`
	Timezone string `csv:"agency_timezone"`
	Language string `csv:"agency_lang"`
}

type Stop struct {
	ID           string  `csv:"stop_id"`
	Code         string  `csv:"stop_code"`
	Name         string  `csv:"stop_name"`
	Latitude     float64 `csv:"stop_lat"`
	Longitude    float64 `csv:"stop_lon"`
	LocationType int     `csv:"location_type"`
}

type Route struct {
	ID          string `csv:"route_id"`
	AgencyID    string `csv:"agency_id"`
	ShortName   string `csv:"route_short_name"`
	LongName    string `csv:"route_long_name"`
	Description string `csv:"route_desc"`
	Type        int    `csv:"route_type"`
	Colour      string `csv:"route_color"`
	TextColour  string `csv:"route_text_color"`
}

type Trip struct {
	RouteID              string `csv:"route_id"`
	ServiceID            string `csv:"service_id"`
	ID                   string `csv:"trip_id"`
	Headsign             string `csv:"trip_headsign"`
	Name                 string `csv:"trip_short_name"`
	DirectionID          int    `csv:"direction_id"`
	ShapeID              string `csv:"shape_id"`
	WheelchairAccessible int    `csv:"wheelchair_accessible"`
}

type StopTime struct {
	TripID            string        `csv:"trip_id"`
	ArrivalTime       Time          `csv:"arrival_time"`
	DepartureTime     Time          `csv:"departure_time"`
	StopID            string        `csv:"stop_id"`
	StopSequence      int           `csv:"stop_sequence"`
	PickupType        int           `csv:"pickup_type"`
	DropOffType       int           `csv:"drop_off_type"`
	ShapeDistTraveled OptionalFloat `csv:"shape_dist_traveled"`
}

type CalendarDate struct {
	ServiceID     string `csv:"service_id"`
	Date          string `csv:"date"`
	ExceptionType int    `csv:"exception_type"`
}

type Shape struct {
	ID               string  `csv:"shape_id"`
	PointLatitude    float64 `csv:"shape_pt_lat"`
	PointLongitude   float64 `csv:"shape_pt_lon"`
	PointSequence    int     `csv:"shape_pt_sequence"`
	DistanceTraveled float64 `csv:"shape_dist_traveled"`
}

type FeedInfo struct {
	PublisherName string `csv:"feed_publisher_name"`
	PublisherURL  string `csv:"feed_publisher_url"`
	Language      string `csv:"feed_lang"`
	StartDate     string `csv:"feed_start_date"`
	EndDate       string `csv:"feed_end_date"`
}

// ValidRouteType accepts the basic GTFS route types and the extended (hierarchical) ones
func ValidRouteType(routeType int) bool {
	switch {
	case routeType >= 0 && routeType <= 7, routeType == 11, routeType == 12:
		return true
	case routeType >= 100 && routeType <= 1702:
		return true
	}
	return false
}

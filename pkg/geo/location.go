package geo

import "math"

// RadiusOfEarthInMeters is the mean earth radius used by every estimate in this package
const RadiusOfEarthInMeters = 6371010.0

type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// EstimateDistance returns the distance in meters between two coordinates.
// Short hops (under ~0.2 degrees, which covers a single transit line) use the
// equirectangular approximation, anything longer falls back to the great-circle formula.
// It is an estimate and not a survey-grade geodesic.
func EstimateDistance(a Coordinate, b Coordinate) float64 {
	if a == b {
		return 0
	}

	lat1Rad := a.Latitude * (math.Pi / 180)
	lat2Rad := b.Latitude * (math.Pi / 180)

	if math.Abs(b.Latitude-a.Latitude) < 0.2 && math.Abs(b.Longitude-a.Longitude) < 0.2 {
		dLatRad := (b.Latitude - a.Latitude) * (math.Pi / 180)
		dLonRad := (b.Longitude - a.Longitude) * (math.Pi / 180)

		x := dLonRad * math.Cos((lat1Rad+lat2Rad)/2)
		y := dLatRad
		return RadiusOfEarthInMeters * math.Sqrt(x*x+y*y)
	}

	deltaLon := (b.Longitude - a.Longitude) * (math.Pi / 180)

	y := math.Sqrt(math.Pow(math.Cos(lat2Rad)*math.Sin(deltaLon), 2) +
		math.Pow(math.Cos(lat1Rad)*math.Sin(lat2Rad)-math.Sin(lat1Rad)*math.Cos(lat2Rad)*math.Cos(deltaLon), 2))
	x := math.Sin(lat1Rad)*math.Sin(lat2Rad) + math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Cos(deltaLon)

	return RadiusOfEarthInMeters * math.Atan2(y, x)
}

// projectOntoSegment returns the closest point to p on the segment a-b and the segment parameter (0..1).
// Longitudes are scaled by the cosine of the latitude so the projection is not skewed away from the equator.
// Shameless taken 'inspiration' from https://stackoverflow.com/a/6853926
func projectOntoSegment(p Coordinate, a Coordinate, b Coordinate) (Coordinate, float64) {
	scale := math.Cos(p.Latitude * math.Pi / 180)

	A := (p.Longitude - a.Longitude) * scale
	B := p.Latitude - a.Latitude
	C := (b.Longitude - a.Longitude) * scale
	D := b.Latitude - a.Latitude

	dot := A*C + B*D
	lenSq := C*C + D*D

	param := -1.0
	if lenSq != 0 {
		param = dot / lenSq
	}

	if param < 0 {
		return a, 0
	} else if param > 1 {
		return b, 1
	}

	return Coordinate{
		Latitude:  a.Latitude + param*(b.Latitude-a.Latitude),
		Longitude: a.Longitude + param*(b.Longitude-a.Longitude),
	}, param
}

package geo

// Line is an ordered path of coordinates, such as the geometry of a transit route
type Line []Coordinate

// Length is the summed estimated distance of every segment in meters
func (l Line) Length() float64 {
	var length float64
	for i := 1; i < len(l); i++ {
		length += EstimateDistance(l[i-1], l[i])
	}

	return length
}

// CumulativeDistances returns, for each vertex, the distance travelled along the line to reach it
func (l Line) CumulativeDistances() []float64 {
	distances := make([]float64, len(l))
	for i := 1; i < len(l); i++ {
		distances[i] = distances[i-1] + EstimateDistance(l[i-1], l[i])
	}

	return distances
}

func (l Line) Reverse() Line {
	reversed := make(Line, len(l))
	for i, coordinate := range l {
		reversed[len(l)-1-i] = coordinate
	}

	return reversed
}

// DistanceAlong projects the coordinate onto the nearest segment of the line and returns
// how far along the line (in meters) that projection sits.
// A line with a single vertex projects everything onto 0.
func (l Line) DistanceAlong(p Coordinate) float64 {
	if len(l) < 2 {
		return 0
	}

	bestOffset := EstimateDistance(p, l[0])
	bestAlong := 0.0
	travelled := 0.0

	for i := 1; i < len(l); i++ {
		projected, _ := projectOntoSegment(p, l[i-1], l[i])

		offset := EstimateDistance(p, projected)
		if offset < bestOffset {
			bestOffset = offset
			bestAlong = travelled + EstimateDistance(l[i-1], projected)
		}

		travelled += EstimateDistance(l[i-1], l[i])
	}

	return bestAlong
}

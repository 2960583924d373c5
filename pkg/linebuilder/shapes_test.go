package linebuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/gtfs-builder/pkg/gtfs"
)

func TestBuildShapes(t *testing.T) {
	line := ingestTestLine(t, tramLine)
	stops, err := BuildStops(line)
	require.NoError(t, err)

	shapes, shape := BuildShapes("12", line.Path, stops)

	require.Len(t, shapes, 6)
	assert.Equal(t, "12_0", shape.ID)
	assert.Equal(t, "12_1", shape.ReverseID)
	assert.InDelta(t, 2224, shape.Length, 5)

	forward, reverse := shapes[:3], shapes[3:]
	for i := range forward {
		assert.Equal(t, "12_0", forward[i].ID)
		assert.Equal(t, "12_1", reverse[i].ID)
		assert.Equal(t, i+1, forward[i].PointSequence)
		assert.Equal(t, forward[i].PointLatitude, reverse[len(reverse)-1-i].PointLatitude)
	}
	assert.Equal(t, 0.0, forward[0].DistanceTraveled)
	assert.InDelta(t, shape.Length, forward[2].DistanceTraveled, 0.001)

	require.Len(t, shape.Along, 3)
	assert.InDelta(t, 1112, shape.Along["12002"], 5)
}

func TestBuildShapesNonMonotonicStops(t *testing.T) {
	line := ingestTestLine(t, []testStop{
		{id: 1, latitude: 51.02, longitude: 3.70},
		{id: 2, latitude: 51.00, longitude: 3.70},
	})
	stops, err := BuildStops(line)
	require.NoError(t, err)

	shapes, shape := BuildShapes("12", line.Path, stops)

	assert.Len(t, shapes, 6)
	assert.Nil(t, shape.Along)
}

func TestShapeIDIsInjective(t *testing.T) {
	seen := map[string]string{}

	for _, routeID := range []string{"1", "1_0", "1_1", "12", "12_r", "12_1", "12_1_0"} {
		for _, directionID := range []int{gtfs.DirectionForward, gtfs.DirectionBackward} {
			id := ShapeID(routeID, directionID)
			previous, exists := seen[id]
			require.False(t, exists, "%s built for both %s and %s", id, previous, routeID)
			seen[id] = routeID
		}
	}
}

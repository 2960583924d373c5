package linebuilder

import (
	geojson "github.com/paulmach/go.geojson"
)

type testStop struct {
	id        interface{}
	name      string
	latitude  float64
	longitude float64
}

// tramLine is three stops roughly 1.1km apart on a straight north-south line
var tramLine = []testStop{
	{id: 1, name: "Zuid", latitude: 51.00, longitude: 3.70},
	{id: 2, name: "Centrum", latitude: 51.01, longitude: 3.70},
	{id: 3, name: "Noord", latitude: 51.02, longitude: 3.70},
}

func newCollection(routeProperties map[string]interface{}, stops []testStop) *geojson.FeatureCollection {
	collection := geojson.NewFeatureCollection()

	for _, stop := range stops {
		feature := geojson.NewPointFeature([]float64{stop.longitude, stop.latitude})
		if stop.id != nil {
			feature.SetProperty("stop_id", stop.id)
		}
		if stop.name != "" {
			feature.SetProperty("stop_name", stop.name)
		}
		collection.AddFeature(feature)
	}

	line := geojson.NewLineStringFeature([][]float64{{3.70, 51.00}, {3.70, 51.01}, {3.70, 51.02}})
	for key, value := range routeProperties {
		line.SetProperty(key, value)
	}
	collection.AddFeature(line)

	return collection
}

func routeProperties(routeID string) map[string]interface{} {
	return map[string]interface{}{
		"route_id":         routeID,
		"route_short_name": "1",
		"route_long_name":  "Zuid - Noord",
		"stroke":           "#FF0000",
	}
}

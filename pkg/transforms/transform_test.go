package transforms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/gtfs-builder/pkg/gtfs"
)

func TestTransformsApply(t *testing.T) {
	transforms := Transforms{
		{
			Match: map[string]string{"ID": "12"},
			Data:  map[string]interface{}{"Colour": "00FF00", "TextColour": "FFFFFF"},
		},
		{
			When: `ShortName startsWith "N"`,
			Data: map[string]interface{}{"Type": 3},
		},
		{
			Match: map[string]string{"ID": "99"},
			Data:  map[string]interface{}{"LongName": "never"},
		},
	}
	require.NoError(t, transforms.Compile())

	route := &gtfs.Route{ID: "12", ShortName: "N1", LongName: "Night", Type: gtfs.RouteTypeTramService}
	require.NoError(t, transforms.Apply(route))

	assert.Equal(t, "00FF00", route.Colour)
	assert.Equal(t, "FFFFFF", route.TextColour)
	assert.Equal(t, 3, route.Type)
	assert.Equal(t, "Night", route.LongName)

	other := &gtfs.Route{ID: "4", ShortName: "4", Type: gtfs.RouteTypeTramService}
	require.NoError(t, transforms.Apply(other))
	assert.Equal(t, gtfs.RouteTypeTramService, other.Type)
	assert.Empty(t, other.Colour)
}

func TestTransformsCompileErrors(t *testing.T) {
	assert.Error(t, Transforms{{Match: map[string]string{"Unknown": "x"}}}.Compile())
	assert.Error(t, Transforms{{Data: map[string]interface{}{"Unknown": "x"}}}.Compile())
	assert.Error(t, Transforms{{When: `ShortName +`}}.Compile())
	assert.Error(t, Transforms{{When: `ShortName`}}.Compile())
}

func TestTransformsTypeMismatch(t *testing.T) {
	transforms := Transforms{{Data: map[string]interface{}{"Type": "tram"}}}
	require.NoError(t, transforms.Compile())

	assert.Error(t, transforms.Apply(&gtfs.Route{ID: "1"}))
}

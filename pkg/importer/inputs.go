package importer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	geojson "github.com/paulmach/go.geojson"
	"github.com/travigo/gtfs-builder/pkg/linebuilder"
	"golang.org/x/exp/slices"
)

var ErrUndecodableInput = errors.New("undecodable GeoJSON document")

var inputExtensions = []string{".geojson", ".json"}

// DiscoverInputs lists the GeoJSON files directly inside the directory, sorted by name
func DiscoverInputs(directory string) ([]string, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		extension := strings.ToLower(filepath.Ext(entry.Name()))
		if slices.Contains(inputExtensions, extension) {
			names = append(names, entry.Name())
		}
	}

	slices.Sort(names)

	return names, nil
}

// readInput fails with a plain error when the file cannot be read, which aborts the run, and
// with an *linebuilder.InputError when the file is readable but not a feature collection
func readInput(name string, path string) (*geojson.FeatureCollection, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	collection, err := geojson.UnmarshalFeatureCollection(contents)
	if err != nil {
		return nil, &linebuilder.InputError{File: name, Err: fmt.Errorf("%w: %s", ErrUndecodableInput, err)}
	}

	return collection, nil
}

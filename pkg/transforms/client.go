package transforms

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/travigo/gtfs-builder/pkg/gtfs"
)

// Transforms is an ordered list of definitions, later definitions see the result of earlier ones
type Transforms []*TransformDefinition

// Compile checks every definition and prepares its expression. It must be called before Apply.
func (t Transforms) Compile() error {
	for i, definition := range t {
		if err := definition.compile(); err != nil {
			return fmt.Errorf("transform %d: %w", i, err)
		}
	}

	return nil
}

func (t Transforms) Apply(route *gtfs.Route) error {
	for i, definition := range t {
		matched, err := definition.Transform(route)
		if err != nil {
			return fmt.Errorf("transform %d: %w", i, err)
		}

		if matched {
			log.Debug().Str("route", route.ID).Int("transform", i).Msg("Applied transform")
		}
	}

	return nil
}

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/jinzhu/copier"
	"github.com/travigo/gtfs-builder/pkg/transforms"
	"gopkg.in/yaml.v3"

	_ "time/tzdata"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// Config is the generation policy shared by every route of a feed
type Config struct {
	Agency   Agency   `yaml:"agency"`
	Calendar Calendar `yaml:"calendar"`
	Schedule Schedule `yaml:"schedule"`

	StopOrder string `yaml:"stop_order" validate:"oneof=identifier projection"`
	Shapes    *bool  `yaml:"shapes"`
	Workers   int    `yaml:"workers" validate:"gte=1"`

	Transforms transforms.Transforms `yaml:"transforms" validate:"-"`
}

type Agency struct {
	ID       string `yaml:"id" validate:"required"`
	Name     string `yaml:"name" validate:"required"`
	URL      string `yaml:"url" validate:"required,url"`
	Timezone string `yaml:"timezone" validate:"required,timezone"`
	Language string `yaml:"lang" validate:"omitempty,bcp47_language_tag"`
}

type Calendar struct {
	Start string `yaml:"start" validate:"required,datetime=2006-01-02"`
	End   string `yaml:"end" validate:"required,datetime=2006-01-02"`
}

type Schedule struct {
	FirstDeparture string  `yaml:"first_departure" validate:"required,datetime=15:04"`
	LastDeparture  string  `yaml:"last_departure" validate:"required,datetime=15:04"`
	Headway        string  `yaml:"headway" validate:"required"`
	Dwell          string  `yaml:"dwell"`
	SpeedKMH       float64 `yaml:"speed_kmh" validate:"gt=0"`

	DirectionTags DirectionTags `yaml:"direction_tags"`
}

type DirectionTags struct {
	Forward  string `yaml:"forward" validate:"required"`
	Backward string `yaml:"backward" validate:"required,nefield=Forward"`
}

// Overrides are the command line values layered over a loaded configuration.
// Zero values leave the configuration untouched.
type Overrides struct {
	StopOrder string
	Workers   int
	Shapes    *bool
}

func Default() Config {
	shapes := true

	return Config{
		Agency: Agency{
			ID:       "DL",
			Name:     "De Lijn",
			URL:      "https://www.delijn.be",
			Timezone: "Europe/Brussels",
			Language: "nl",
		},
		Calendar: Calendar{
			Start: "2016-01-01",
			End:   "2016-12-31",
		},
		Schedule: Schedule{
			FirstDeparture: "06:00",
			LastDeparture:  "22:00",
			Headway:        "PT15M",
			Dwell:          "PT2M",
			SpeedKMH:       60,
			DirectionTags: DirectionTags{
				Forward:  "forward",
				Backward: "backward",
			},
		},
		StopOrder: "identifier",
		Shapes:    &shapes,
		Workers:   1,
	}
}

// Load reads a YAML configuration file over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	config := Default()
	if path == "" {
		return config, config.Validate()
	}

	configYaml, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(configYaml))
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decoding %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return config, nil
}

// Apply layers the non-empty overrides onto the configuration and validates the result
func (c *Config) Apply(overrides Overrides) error {
	if err := copier.CopyWithOption(c, overrides, copier.Option{IgnoreEmpty: true}); err != nil {
		return err
	}

	return c.Validate()
}

func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}

	return c.Transforms.Compile()
}

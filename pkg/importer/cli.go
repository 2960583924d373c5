package importer

import (
	"fmt"
	"time"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/travigo/gtfs-builder/pkg/config"
	"github.com/travigo/gtfs-builder/pkg/gtfs"
	"github.com/urfave/cli/v2"
)

func BuildFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "YAML file with the agency, calendar and schedule policy",
			EnvVars: []string{"GTFS_BUILDER_CONFIG"},
		},
		&cli.StringFlag{
			Name:  "stop-order",
			Usage: "Forward stop order of every route: identifier or projection",
		},
		&cli.IntFlag{
			Name:  "workers",
			Usage: "Number of input files built concurrently",
		},
		&cli.BoolFlag{
			Name:  "no-shapes",
			Usage: "Do not write shapes.txt",
		},
	}
}

// BuildAction builds the feed from <input_dir> into <output_dir|output.zip>.
// It fails after writing the feed when any input file had to be skipped.
func BuildAction(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("expected <input_dir> <output_dir|output.zip>, got %d arguments", c.NArg())
	}
	inputDir := c.Args().Get(0)
	output := c.Args().Get(1)

	builderConfig, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	overrides := config.Overrides{
		StopOrder: c.String("stop-order"),
		Workers:   c.Int("workers"),
	}
	if c.Bool("no-shapes") {
		shapes := false
		overrides.Shapes = &shapes
	}
	if err := builderConfig.Apply(overrides); err != nil {
		return err
	}

	log.Debug().Msgf("Configuration %# v", pretty.Formatter(builderConfig))

	options, err := builderConfig.BuilderOptions()
	if err != nil {
		return err
	}

	importer := &Importer{
		Options: options,
		Workers: builderConfig.Workers,
	}

	startTime := time.Now()

	report, err := importer.Run(c.Context, inputDir, output)
	if err != nil {
		return err
	}

	log.Info().
		Int("files", len(report.Files)).
		Int("built", len(report.Built)).
		Int("failed", len(report.Failed)).
		Msgf("Operation took %s", time.Since(startTime).String())

	return report.Err()
}

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:      "build",
		Usage:     "Build a GTFS feed from a directory of GeoJSON line files",
		ArgsUsage: "<input_dir> <output_dir|output.zip>",
		Flags:     BuildFlags(),
		Action:    BuildAction,
	}
}

func RegisterValidateCLI() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Check the referential integrity of a GTFS feed",
		ArgsUsage: "<feed_dir|feed.zip>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected <feed_dir|feed.zip>, got %d arguments", c.NArg())
			}
			path := c.Args().First()

			feed, err := gtfs.ParseFeed(path)
			if err != nil {
				return err
			}

			if err := gtfs.Validate(feed); err != nil {
				return err
			}

			log.Info().
				Str("feed", path).
				Int("routes", len(feed.Routes)).
				Int("stops", len(feed.Stops)).
				Int("trips", len(feed.Trips)).
				Int("stoptimes", len(feed.StopTimes)).
				Msg("Feed is valid")

			return nil
		},
	}
}

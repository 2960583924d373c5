package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/gtfs-builder/pkg/importer"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func main() {
	_ = godotenv.Load()

	if os.Getenv("GTFS_BUILDER_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if os.Getenv("GTFS_BUILDER_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "gtfs-builder",
		Usage:       "Generate a GTFS static feed from GeoJSON transit lines",
		ArgsUsage:   "<input_dir> <output_dir|output.zip>",
		Description: "Every GeoJSON file in the input directory describes one line: point features are its stops and a single line string is its route",

		Flags:  importer.BuildFlags(),
		Action: importer.BuildAction,

		Commands: []*cli.Command{
			importer.RegisterCLI(),
			importer.RegisterValidateCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}

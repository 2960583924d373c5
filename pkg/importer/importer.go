package importer

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/travigo/gtfs-builder/pkg/gtfs"
	"github.com/travigo/gtfs-builder/pkg/linebuilder"
	"golang.org/x/exp/slices"
)

// Importer turns a directory of GeoJSON line files into a single GTFS feed
type Importer struct {
	Options linebuilder.Options

	// Workers above one builds files concurrently. Merging always happens in file name order.
	Workers int
}

type fileResult struct {
	index int
	file  string

	delta *linebuilder.Delta
	err   error
}

// Assemble builds and merges every input file. Files failing on their own content are recorded
// in the report and left out of the feed, any other error aborts the run.
func (i *Importer) Assemble(ctx context.Context, inputDir string) (*gtfs.Feed, *Report, error) {
	files, err := DiscoverInputs(inputDir)
	if err != nil {
		return nil, nil, err
	}
	log.Info().Str("directory", inputDir).Int("files", len(files)).Int("workers", i.workers()).Msg("Discovered input files")

	results, err := i.buildAll(ctx, inputDir, files)
	if err != nil {
		return nil, nil, err
	}

	report := &Report{Files: files}
	assembly := linebuilder.NewAssembly(i.Options.Agency)

	for _, result := range results {
		err := result.err
		if err == nil {
			err = assembly.Merge(result.delta)
		}

		if err != nil {
			event := log.Error().Err(err).Str("file", result.file)
			var inputErr *linebuilder.InputError
			if errors.As(err, &inputErr) && inputErr.Field != "" {
				event = event.Str("field", inputErr.Field)
			}
			event.Msg("Skipping input file")

			report.Failed = append(report.Failed, FileFailure{File: result.file, Err: err})
			continue
		}

		report.Built = append(report.Built, result.file)
	}

	assembly.SetFeedInfo(i.Options.Agency, i.Options.Calendar)
	feed := assembly.Feed()

	if err := gtfs.Validate(feed); err != nil {
		return nil, nil, fmt.Errorf("assembled feed is invalid: %w", err)
	}
	report.count(feed)

	return feed, report, nil
}

// Run assembles the feed and writes it to a directory or, for a .zip path, an archive
func (i *Importer) Run(ctx context.Context, inputDir string, output string) (*Report, error) {
	feed, report, err := i.Assemble(ctx, inputDir)
	if err != nil {
		return nil, err
	}

	if err := gtfs.Write(feed, output); err != nil {
		return report, err
	}

	log.Info().
		Str("output", output).
		Int("routes", report.Routes).
		Int("stops", report.Stops).
		Int("trips", report.Trips).
		Int("stoptimes", report.StopTimes).
		Msg("Wrote GTFS feed")

	return report, nil
}

func (i *Importer) workers() int {
	if i.Workers < 1 {
		return 1
	}
	return i.Workers
}

func (i *Importer) buildAll(ctx context.Context, inputDir string, files []string) ([]fileResult, error) {
	if i.workers() == 1 {
		results := make([]fileResult, 0, len(files))
		for index, file := range files {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			result, err := i.buildFile(inputDir, index, file)
			if err != nil {
				return nil, err
			}
			results = append(results, result)
		}

		return results, nil
	}

	p := pool.NewWithResults[fileResult]().
		WithContext(ctx).
		WithMaxGoroutines(i.workers()).
		WithCancelOnError()

	for index, file := range files {
		p.Go(func(ctx context.Context) (fileResult, error) {
			if err := ctx.Err(); err != nil {
				return fileResult{}, err
			}
			return i.buildFile(inputDir, index, file)
		})
	}

	results, err := p.Wait()
	if err != nil {
		return nil, err
	}

	slices.SortFunc(results, func(a, b fileResult) int {
		return a.index - b.index
	})

	return results, nil
}

func (i *Importer) buildFile(inputDir string, index int, file string) (fileResult, error) {
	result := fileResult{index: index, file: file}

	collection, err := readInput(file, filepath.Join(inputDir, file))
	if err != nil {
		var inputErr *linebuilder.InputError
		if errors.As(err, &inputErr) {
			result.err = err
			return result, nil
		}
		return result, err
	}

	result.delta, result.err = linebuilder.Build(file, collection, i.Options)

	return result, nil
}

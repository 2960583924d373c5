package gtfs

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/klauspost/compress/zip"
	"github.com/rs/zerolog/log"
)

func init() {
	// Feeds written by other tools often leave trailing optional columns off some rows
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.FieldsPerRecord = -1
		return r
	})
}

// ParseFeed reads a feed back from a directory or a .zip archive.
// Missing optional tables are fine, a missing required table is an error.
func ParseFeed(path string) (*Feed, error) {
	if strings.EqualFold(filepath.Ext(path), ".zip") {
		return parseZip(path)
	}

	return parseDirectory(path)
}

func parseDirectory(path string) (*Feed, error) {
	feed := &Feed{}

	for _, table := range feed.tables() {
		file, err := os.Open(filepath.Join(path, table.FileName))
		if errors.Is(err, os.ErrNotExist) {
			if table.Optional {
				continue
			}
			return nil, fmt.Errorf("missing required file %s", table.FileName)
		} else if err != nil {
			return nil, err
		}

		err = readTable(file, table)
		file.Close()
		if err != nil {
			return nil, err
		}
	}

	return feed, nil
}

func parseZip(path string) (*Feed, error) {
	feed := &Feed{}

	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer archive.Close()

	fileMap := map[string]table{}
	for _, table := range feed.tables() {
		fileMap[table.FileName] = table
	}

	seen := map[string]bool{}
	for _, zipFile := range archive.File {
		table, exists := fileMap[zipFile.Name]
		if !exists {
			log.Warn().Str("file", zipFile.Name).Msg("Unknown gtfs file")
			continue
		}

		fileReader, err := zipFile.Open()
		if err != nil {
			return nil, err
		}

		err = readTable(fileReader, table)
		fileReader.Close()
		if err != nil {
			return nil, err
		}
		seen[zipFile.Name] = true
	}

	for _, table := range feed.tables() {
		if !table.Optional && !seen[table.FileName] {
			return nil, fmt.Errorf("missing required file %s", table.FileName)
		}
	}

	return feed, nil
}

func readTable(in io.Reader, table table) error {
	log.Debug().Str("file", table.FileName).Msg("Loading file")

	if err := gocsv.Unmarshal(in, table.Records); err != nil {
		return fmt.Errorf("parsing %s: %w", table.FileName, err)
	}

	return nil
}

package gtfs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/klauspost/compress/zip"
	"github.com/rs/zerolog/log"
)

// Write stores the feed at path. A path ending in .zip produces a single archive, anything else a directory of tables.
// Optional tables without records are left out.
func Write(feed *Feed, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".zip") {
		return writeZip(feed, path)
	}

	return writeDirectory(feed, path)
}

func writeDirectory(feed *Feed, path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return err
	}

	for _, table := range feed.tables() {
		if table.Optional && table.Length == 0 {
			continue
		}

		file, err := os.Create(filepath.Join(path, table.FileName))
		if err != nil {
			return err
		}

		err = writeTable(file, table)
		closeErr := file.Close()
		if err != nil {
			return err
		}
		if closeErr != nil {
			return closeErr
		}
	}

	return nil
}

func writeZip(feed *Feed, path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	archive := zip.NewWriter(file)

	for _, table := range feed.tables() {
		if table.Optional && table.Length == 0 {
			continue
		}

		entry, err := archive.CreateHeader(&zip.FileHeader{
			Name:   table.FileName,
			Method: zip.Deflate,
		})
		if err != nil {
			return err
		}

		if err := writeTable(entry, table); err != nil {
			return err
		}
	}

	if err := archive.Close(); err != nil {
		return err
	}

	return file.Close()
}

func writeTable(out io.Writer, table table) error {
	log.Debug().Str("file", table.FileName).Int("records", table.Length).Msg("Writing table")

	if err := gocsv.Marshal(table.Records, out); err != nil {
		return fmt.Errorf("writing %s: %w", table.FileName, err)
	}

	return nil
}

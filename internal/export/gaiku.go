// Package export writes the raw block point artifact as a flat CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/pacport/japanese-addresses/internal/gazetteer"
)

var gaikuHeader = []string{"pref", "city", "town", "block", "lon", "lat"}

// Writer streams block points into one CSV file, prefecture by prefecture,
// preserving the order they were emitted in.
type Writer struct {
	file  *os.File
	csv   *csv.Writer
	log   zerolog.Logger
	count int
}

// NewWriter creates the artifact file and writes the header.
func NewWriter(path string, log zerolog.Logger) (*Writer, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create export directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create export file: %w", err)
	}

	w := &Writer{file: file, csv: csv.NewWriter(file), log: log}
	if err := w.csv.Write(gaikuHeader); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to write export header: %w", err)
	}
	return w, nil
}

// WritePoints appends one prefecture's block points.
func (w *Writer) WritePoints(points []gazetteer.GaikuPoint) error {
	for _, p := range points {
		row := []string{
			p.PrefName,
			p.CityName,
			p.TownName,
			p.BlockNumber,
			strconv.FormatFloat(p.Lon, 'f', -1, 64),
			strconv.FormatFloat(p.Lat, 'f', -1, 64),
		}
		if err := w.csv.Write(row); err != nil {
			return fmt.Errorf("failed to write block point: %w", err)
		}
	}
	w.count += len(points)
	return nil
}

// Close flushes and closes the artifact.
func (w *Writer) Close() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		w.file.Close()
		return fmt.Errorf("failed to flush export: %w", err)
	}
	w.log.Info().Int("points", w.count).Str("path", w.file.Name()).Msg("block point export complete")
	return w.file.Close()
}

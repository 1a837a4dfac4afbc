// Package patch loads curated override records. Overrides are seeded into
// a prefecture's dedup map before any source row is processed, so they
// take precedence over computed output unconditionally.
package patch

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pacport/japanese-addresses/internal/gazetteer"
	"github.com/pacport/japanese-addresses/internal/normalize"
)

// Load reads every <pref-code>.csv under dir into per-prefecture override
// slices, keeping file row order. The files are UTF-8 with a header line;
// columns are matched by name. An empty dir means no overrides.
func Load(dir string, log zerolog.Logger) (map[string][]gazetteer.AddressRecord, error) {
	overrides := make(map[string][]gazetteer.AddressRecord)
	if dir == "" {
		return overrides, nil
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, fmt.Errorf("failed to list patch files: %w", err)
	}

	for _, path := range paths {
		code := strings.TrimSuffix(filepath.Base(path), ".csv")
		if _, ok := gazetteer.PrefectureName(code); !ok {
			return nil, fmt.Errorf("patch file %s: name is not a prefecture code", path)
		}

		records, err := loadFile(path, code)
		if err != nil {
			return nil, err
		}
		overrides[code] = records
		log.Info().Str("pref", code).Int("records", len(records)).Msg("loaded patch records")
	}
	return overrides, nil
}

func loadFile(path, prefCode string) ([]gazetteer.AddressRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open patch file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read patch header in %s: %w", path, err)
	}

	columnMap := make(map[string]int)
	for i, col := range header {
		columnMap[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, required := range []string{"pref_name", "city_name", "town_name", "lat", "lon"} {
		if _, ok := columnMap[required]; !ok {
			return nil, fmt.Errorf("patch file %s: missing column %s", path, required)
		}
	}

	column := func(record []string, name string) string {
		if idx, ok := columnMap[name]; ok && idx < len(record) {
			return strings.TrimSpace(record[idx])
		}
		return ""
	}

	var records []gazetteer.AddressRecord
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read patch %s line %d: %w", path, line, err)
		}

		lat, err := normalize.ParseFloat(column(record, "lat"))
		if err != nil {
			return nil, fmt.Errorf("patch %s line %d: bad lat: %w", path, line, err)
		}
		lon, err := normalize.ParseFloat(column(record, "lon"))
		if err != nil {
			return nil, fmt.Errorf("patch %s line %d: bad lon: %w", path, line, err)
		}

		records = append(records, gazetteer.AddressRecord{
			PrefCode:   prefCode,
			Zip:        column(record, "zip"),
			PrefName:   column(record, "pref_name"),
			PrefKana:   column(record, "pref_kana"),
			PrefRomaji: column(record, "pref_romaji"),
			CityCode:   column(record, "city_code"),
			CityName:   column(record, "city_name"),
			CityKana:   column(record, "city_kana"),
			CityRomaji: column(record, "city_romaji"),
			TownName:   normalize.Space(column(record, "town_name")),
			TownKana:   column(record, "town_kana"),
			TownRomaji: column(record, "town_romaji"),
			Koaza:      normalize.Space(column(record, "koaza")),
			Lat:        lat,
			Lon:        lon,
		})
	}
	return records, nil
}

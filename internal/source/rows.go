// Package source acquires the four upstream datasets and turns them into
// typed in-memory rows: the district-level (oaza) and block-level (gaiku)
// position reference archives published per prefecture, and the national
// kana and romaji postal-code dictionaries. Archives are Shift_JIS encoded
// ZIP files; everything downstream works on decoded UTF-8 values.
package source

import (
	"fmt"
	"io"

	"github.com/pacport/japanese-addresses/internal/normalize"
)

// Column layout of the district-level position reference CSV.
const (
	oazaColPrefCode = 0
	oazaColPrefName = 1
	oazaColCityCode = 2
	oazaColCityName = 3
	oazaColTownCode = 4
	oazaColTownName = 5
	oazaColLat      = 6
	oazaColLon      = 7
	oazaColumns     = 8
)

// Column layout of the block-level position reference CSV.
const (
	gaikuColPrefName    = 0
	gaikuColCityName    = 1
	gaikuColTownName    = 2
	gaikuColKoaza       = 3
	gaikuColBlock       = 4
	gaikuColLat         = 8
	gaikuColLon         = 9
	gaikuColResidential = 10
	gaikuColumns        = 11
)

// OazaRow is one district-level position reference record.
type OazaRow struct {
	PrefName string
	CityCode string
	CityName string
	TownName string
	Lat      float64
	Lon      float64
}

// GaikuRow is one block-level position reference record. Koaza keeps the
// upstream "NULL" sentinel untouched; the aggregation layer maps it to
// empty.
type GaikuRow struct {
	PrefName    string
	CityName    string
	TownName    string
	Koaza       string
	BlockNumber string
	Residential bool
	Lat         float64
	Lon         float64
}

// ParseOaza decodes one prefecture's district-level CSV from raw Shift_JIS
// bytes. The first line is the column header and is skipped.
func ParseOaza(r io.Reader) ([]OazaRow, error) {
	reader := NewShiftJISCSV(r)

	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read oaza header: %w", err)
	}

	var rows []OazaRow
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read oaza line %d: %w", line, err)
		}
		if len(record) < oazaColumns {
			return nil, fmt.Errorf("oaza line %d: got %d columns, want at least %d", line, len(record), oazaColumns)
		}

		lat, err := normalize.ParseFloat(record[oazaColLat])
		if err != nil {
			return nil, fmt.Errorf("oaza line %d: bad latitude: %w", line, err)
		}
		lon, err := normalize.ParseFloat(record[oazaColLon])
		if err != nil {
			return nil, fmt.Errorf("oaza line %d: bad longitude: %w", line, err)
		}

		rows = append(rows, OazaRow{
			PrefName: record[oazaColPrefName],
			CityCode: record[oazaColCityCode],
			CityName: record[oazaColCityName],
			TownName: record[oazaColTownName],
			Lat:      lat,
			Lon:      lon,
		})
	}
	return rows, nil
}

// ParseGaiku decodes one prefecture's block-level CSV from raw Shift_JIS
// bytes. The first line is the column header and is skipped.
func ParseGaiku(r io.Reader) ([]GaikuRow, error) {
	reader := NewShiftJISCSV(r)

	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read gaiku header: %w", err)
	}

	var rows []GaikuRow
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read gaiku line %d: %w", line, err)
		}
		if len(record) < gaikuColumns {
			return nil, fmt.Errorf("gaiku line %d: got %d columns, want at least %d", line, len(record), gaikuColumns)
		}

		lat, err := normalize.ParseFloat(record[gaikuColLat])
		if err != nil {
			return nil, fmt.Errorf("gaiku line %d: bad latitude: %w", line, err)
		}
		lon, err := normalize.ParseFloat(record[gaikuColLon])
		if err != nil {
			return nil, fmt.Errorf("gaiku line %d: bad longitude: %w", line, err)
		}

		rows = append(rows, GaikuRow{
			PrefName:    record[gaikuColPrefName],
			CityName:    record[gaikuColCityName],
			TownName:    record[gaikuColTownName],
			Koaza:       record[gaikuColKoaza],
			BlockNumber: record[gaikuColBlock],
			Residential: record[gaikuColResidential] == "1",
			Lat:         lat,
			Lon:         lon,
		})
	}
	return rows, nil
}

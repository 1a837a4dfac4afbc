package source

import (
	"fmt"
	"io"
)

// Column layout of the kana postal dictionary CSV.
const (
	kanaColCode     = 0
	kanaColZip      = 2
	kanaColPrefKana = 3
	kanaColCityKana = 4
	kanaColTownKana = 5
	kanaColPref     = 6
	kanaColCity     = 7
	kanaColTown     = 8
	kanaColumns     = 9
)

// Column layout of the romaji postal dictionary CSV.
const (
	romeColZip      = 0
	romeColPref     = 1
	romeColCity     = 2
	romeColTown     = 3
	romeColPrefRome = 4
	romeColCityRome = 5
	romeColTownRome = 6
	romeColumns     = 7
)

// KanaRow is one raw kana postal dictionary record. Readings are half-width
// katakana exactly as published.
type KanaRow struct {
	Code     string
	Zip      string
	PrefKana string
	CityKana string
	TownKana string
	Pref     string
	City     string
	Town     string
}

// RomeRow is one raw romaji postal dictionary record. Readings are
// upper-case romaji exactly as published.
type RomeRow struct {
	Zip      string
	Pref     string
	City     string
	Town     string
	PrefRome string
	CityRome string
	TownRome string
}

// ParseKana decodes the kana postal dictionary from raw Shift_JIS bytes.
// The file has no header line.
func ParseKana(r io.Reader) ([]KanaRow, error) {
	reader := NewShiftJISCSV(r)

	var rows []KanaRow
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read kana dictionary line %d: %w", line, err)
		}
		if len(record) < kanaColumns {
			return nil, fmt.Errorf("kana dictionary line %d: got %d columns, want at least %d", line, len(record), kanaColumns)
		}

		rows = append(rows, KanaRow{
			Code:     record[kanaColCode],
			Zip:      record[kanaColZip],
			PrefKana: record[kanaColPrefKana],
			CityKana: record[kanaColCityKana],
			TownKana: record[kanaColTownKana],
			Pref:     record[kanaColPref],
			City:     record[kanaColCity],
			Town:     record[kanaColTown],
		})
	}
	return rows, nil
}

// ParseRome decodes the romaji postal dictionary from raw Shift_JIS bytes.
// The file has no header line.
func ParseRome(r io.Reader) ([]RomeRow, error) {
	reader := NewShiftJISCSV(r)

	var rows []RomeRow
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read romaji dictionary line %d: %w", line, err)
		}
		if len(record) < romeColumns {
			return nil, fmt.Errorf("romaji dictionary line %d: got %d columns, want at least %d", line, len(record), romeColumns)
		}

		rows = append(rows, RomeRow{
			Zip:      record[romeColZip],
			Pref:     record[romeColPref],
			City:     record[romeColCity],
			Town:     record[romeColTown],
			PrefRome: record[romeColPrefRome],
			CityRome: record[romeColCityRome],
			TownRome: record[romeColTownRome],
		})
	}
	return rows, nil
}

// Package dict holds the postal dictionary entries and the fuzzy lookup
// the aggregators use to resolve readings and postal codes for a town.
package dict

import (
	"github.com/pacport/japanese-addresses/internal/normalize"
	"github.com/pacport/japanese-addresses/internal/source"
)

// placeholderTown marks city-level dictionary rows that carry no town. The
// published files write it out literally; blanking it at load time lets
// those rows act as city-level fallbacks during lookup.
const placeholderTown = "以下に掲載がない場合"

// Entry is one postal dictionary row. The kana and romaji variants share
// the shape: readings hold full-width katakana for kana entries and
// upper-case romaji for romaji entries. Code is the municipal code, which
// only the kana dictionary publishes.
type Entry struct {
	Code        string
	Zip         string
	Pref        string
	City        string
	Town        string
	PrefReading string
	CityReading string
	TownReading string
}

// FromKana converts raw kana dictionary rows into entries. Half-width
// readings are widened once here, town names are trimmed of incidental
// whitespace, and placeholder rows are blanked into city-level entries.
func FromKana(rows []source.KanaRow) []Entry {
	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		e := Entry{
			Code:        row.Code,
			Zip:         row.Zip,
			Pref:        row.Pref,
			City:        row.City,
			Town:        normalize.Space(row.Town),
			PrefReading: normalize.WidenKana(row.PrefKana),
			CityReading: normalize.WidenKana(row.CityKana),
			TownReading: normalize.WidenKana(row.TownKana),
		}
		if e.Town == placeholderTown {
			e.Town = ""
			e.TownReading = ""
		}
		entries = append(entries, e)
	}
	return entries
}

// FromRome converts raw romaji dictionary rows into entries, applying the
// same whitespace trim and placeholder blanking as FromKana.
func FromRome(rows []source.RomeRow) []Entry {
	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		e := Entry{
			Zip:         row.Zip,
			Pref:        row.Pref,
			City:        row.City,
			Town:        normalize.Space(row.Town),
			PrefReading: row.PrefRome,
			CityReading: row.CityRome,
			TownReading: row.TownRome,
		}
		if e.Town == placeholderTown {
			e.Town = ""
			e.TownReading = ""
		}
		entries = append(entries, e)
	}
	return entries
}

// ByPrefecture returns the entries belonging to one prefecture, preserving
// source order.
func ByPrefecture(entries []Entry, pref string) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Pref == pref {
			out = append(out, e)
		}
	}
	return out
}

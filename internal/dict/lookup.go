package dict

import (
	"github.com/pacport/japanese-addresses/internal/normalize"
)

// Lookup finds the best dictionary entry for a city and town. The entries
// must already be filtered to one prefecture. Matching descends three
// precision levels, first success wins: the town name exactly, the town
// name with any trailing chome numeral removed, and finally a city-level
// entry with no town at all. Dictionary town names are compared with their
// parenthetical annotations stripped. Within a level the first entry in
// source order wins. A nil return is a legitimate miss; callers fill the
// affected fields with empty strings.
func Lookup(entries []Entry, city, town string) *Entry {
	if e := matchTown(entries, city, town); e != nil {
		return e
	}
	if trimmed := normalize.TrimChome(town); trimmed != town {
		if e := matchTown(entries, city, trimmed); e != nil {
			return e
		}
	}
	return matchCityLevel(entries, city)
}

func matchTown(entries []Entry, city, town string) *Entry {
	for i := range entries {
		e := &entries[i]
		if e.City != city {
			continue
		}
		if normalize.TrimParen(e.Town) == town {
			return e
		}
	}
	return nil
}

func matchCityLevel(entries []Entry, city string) *Entry {
	for i := range entries {
		e := &entries[i]
		if e.City == city && e.Town == "" {
			return e
		}
	}
	return nil
}

package gazetteer

import (
	"regexp"

	"github.com/rs/zerolog"

	"github.com/pacport/japanese-addresses/internal/dict"
	"github.com/pacport/japanese-addresses/internal/normalize"
)

var reNumericZip = regexp.MustCompile(`^[0-9]+$`)

// Backfill recovers missing postal codes over the fully merged output; it
// must run after every prefecture has aggregated. A record qualifies when
// its postal code is not purely numeric. The record's romaji town reading,
// pushed through the romanization correction table, is compared against
// the romaji dictionary filtered to the record's prefecture name and city
// romaji; dictionary entries without a town act as wildcards. Exactly one
// candidate fills the code. With exactly two the second wins, a
// long-standing tie-break favoring the later, more specific dictionary
// row. Zero or more than two leave the record with an empty code and a
// diagnostic for manual review.
func Backfill(records []*AddressRecord, rome []dict.Entry, log zerolog.Logger) {
	filled := 0
	unresolved := 0

	for _, rec := range records {
		if reNumericZip.MatchString(rec.Zip) {
			continue
		}
		town := normalize.Romaji(rec.TownRomaji)

		var candidates []*dict.Entry
		for i := range rome {
			e := &rome[i]
			if e.Pref != rec.PrefName || e.CityReading != rec.CityRomaji {
				continue
			}
			if e.TownReading == "" || normalize.RemoveSpaces(e.TownReading) == town {
				candidates = append(candidates, e)
			}
		}

		switch len(candidates) {
		case 1:
			rec.Zip = candidates[0].Zip
			filled++
		case 2:
			rec.Zip = candidates[1].Zip
			filled++
		default:
			rec.Zip = ""
			unresolved++
			log.Warn().
				Str("pref", rec.PrefName).
				Str("city", rec.CityName).
				Str("town", rec.TownName).
				Str("koaza", rec.Koaza).
				Int("candidates", len(candidates)).
				Msg("postal code backfill unresolved")
		}
	}

	log.Info().Int("filled", filled).Int("unresolved", unresolved).Msg("postal code backfill complete")
}

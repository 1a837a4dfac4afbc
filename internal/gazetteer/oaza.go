package gazetteer

import (
	"github.com/pacport/japanese-addresses/internal/normalize"
	"github.com/pacport/japanese-addresses/internal/source"
)

// AddOaza folds one district-level row into the record map. The first
// writer for a key wins; later rows with the same key are skipped
// silently, which also lets seeded override records take precedence over
// computed ones. Coordinates come straight from the row, no aggregation
// happens at this level.
func (a *Aggregation) AddOaza(row source.OazaRow) {
	town := normalize.Space(row.TownName)
	key := BuildKey(row.PrefName, row.CityName, town, "")
	if _, ok := a.records[key]; ok {
		return
	}
	a.insert(key, a.newRecord(key, row.CityCode, row.Lon, row.Lat))
}

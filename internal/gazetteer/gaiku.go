package gazetteer

import (
	"github.com/pacport/japanese-addresses/internal/normalize"
	"github.com/pacport/japanese-addresses/internal/source"
)

// SampleGaiku is pass one over a block-level row. Its coordinates join the
// sample set for the row's key whether or not the row is residential, and
// residential display rows additionally emit a raw GaikuPoint in source
// order, untouched by deduplication.
func (a *Aggregation) SampleGaiku(row source.GaikuRow) error {
	key := a.gaikuKey(row)
	if err := a.addSample(key, row.Lon, row.Lat); err != nil {
		return err
	}

	if row.Residential {
		a.points = append(a.points, GaikuPoint{
			PrefName:    key.Pref,
			CityName:    key.City,
			TownName:    key.Town,
			BlockNumber: row.BlockNumber,
			Lon:         row.Lon,
			Lat:         row.Lat,
		})
	}
	return nil
}

// ResolveGaiku is pass two. Keys already produced by the district pass or
// an earlier block row are skipped under the same first-writer rule;
// anything left gets a record at the resolved representative center,
// keeping the koaza since block data exposes that finer granularity.
func (a *Aggregation) ResolveGaiku(row source.GaikuRow) error {
	key := a.gaikuKey(row)
	if _, ok := a.records[key]; ok {
		return nil
	}

	lon, lat, err := a.resolveCenter(key)
	if err != nil {
		return err
	}
	a.insert(key, a.newRecord(key, "", lon, lat))
	return nil
}

// gaikuKey builds the canonical key for a block-level row. Both passes
// must derive identical keys, so the normalization lives in one place.
func (a *Aggregation) gaikuKey(row source.GaikuRow) RecordKey {
	town := normalize.Space(row.TownName)
	koaza := normalize.Space(row.Koaza)
	return BuildKey(row.PrefName, row.CityName, town, koaza)
}

package gazetteer

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/pacport/japanese-addresses/internal/dict"
	"github.com/pacport/japanese-addresses/internal/normalize"
)

var (
	// ErrNoSamples reports a key resolved without any coordinate samples,
	// meaning the sampling pass never saw the key.
	ErrNoSamples = errors.New("no coordinate samples for key")

	// ErrSamplingOpen reports centroid resolution attempted before
	// FinishSampling.
	ErrSamplingOpen = errors.New("sampling still open")

	// ErrSamplingFinished reports a sample added after FinishSampling.
	ErrSamplingFinished = errors.New("sampling already finished")
)

// sample is one block-level coordinate observation. Duplicates are kept so
// denser clusters pull the bounding-box center toward themselves.
type sample struct {
	lon float64
	lat float64
}

// Aggregation owns all state for one prefecture's build: the dedup map and
// its insertion order, the coordinate samples, and the raw block points.
// District rows are added first, then block rows in two passes separated
// by FinishSampling, so every key has its complete sample set before any
// centroid is resolved.
type Aggregation struct {
	prefCode string
	kana     []dict.Entry
	rome     []dict.Entry

	records map[RecordKey]*AddressRecord
	order   []RecordKey
	samples map[RecordKey][]sample
	points  []GaikuPoint
	sampled bool
}

// NewAggregation creates the processing state for one prefecture. The
// dictionary slices must already be filtered to that prefecture.
func NewAggregation(prefCode string, kana, rome []dict.Entry) *Aggregation {
	return &Aggregation{
		prefCode: prefCode,
		kana:     kana,
		rome:     rome,
		records:  make(map[RecordKey]*AddressRecord),
		samples:  make(map[RecordKey][]sample),
	}
}

// Seed pre-loads curated override records before any source row is
// processed. Seeded keys win every later dedup check, so overrides beat
// computed output unconditionally. Input order is preserved.
func (a *Aggregation) Seed(overrides []AddressRecord) {
	for _, rec := range overrides {
		rec := rec
		key := BuildKey(rec.PrefName, rec.CityName, rec.TownName, rec.Koaza)
		if _, ok := a.records[key]; ok {
			continue
		}
		a.insert(key, &rec)
	}
}

func (a *Aggregation) insert(key RecordKey, rec *AddressRecord) {
	a.records[key] = rec
	a.order = append(a.order, key)
}

func (a *Aggregation) addSample(key RecordKey, lon, lat float64) error {
	if a.sampled {
		return fmt.Errorf("%w: %s %s", ErrSamplingFinished, key.City, key.Town)
	}
	a.samples[key] = append(a.samples[key], sample{lon: lon, lat: lat})
	return nil
}

// FinishSampling closes the sampling pass. From here on the sample sets
// are complete and centroid resolution becomes legal.
func (a *Aggregation) FinishSampling() {
	a.sampled = true
}

// resolveCenter picks the representative point for a key: the geometric
// center of the bounding box over all its samples, snapped to the closest
// actual sample so the result is always a real observed location and never
// an interpolated one. Distance ties keep the earliest sample.
func (a *Aggregation) resolveCenter(key RecordKey) (lon, lat float64, err error) {
	if !a.sampled {
		return 0, 0, fmt.Errorf("%w: %s %s", ErrSamplingOpen, key.City, key.Town)
	}

	samples := a.samples[key]
	if len(samples) == 0 {
		return 0, 0, fmt.Errorf("%w: %s %s %s", ErrNoSamples, key.City, key.Town, key.Koaza)
	}

	minLon, maxLon := samples[0].lon, samples[0].lon
	minLat, maxLat := samples[0].lat, samples[0].lat
	for _, s := range samples[1:] {
		if s.lon < minLon {
			minLon = s.lon
		}
		if s.lon > maxLon {
			maxLon = s.lon
		}
		if s.lat < minLat {
			minLat = s.lat
		}
		if s.lat > maxLat {
			maxLat = s.lat
		}
	}
	centerLon := (minLon + maxLon) / 2
	centerLat := (minLat + maxLat) / 2

	best := samples[0]
	bestDist := squaredDistance(best, centerLon, centerLat)
	for _, s := range samples[1:] {
		if d := squaredDistance(s, centerLon, centerLat); d < bestDist {
			best, bestDist = s, d
		}
	}
	return best.lon, best.lat, nil
}

// squaredDistance is plain Euclidean in lon/lat space, which is enough at
// block-level precision.
func squaredDistance(s sample, lon, lat float64) float64 {
	dLon := s.lon - lon
	dLat := s.lat - lat
	return dLon*dLon + dLat*dLat
}

// newRecord resolves dictionary readings for a key and builds the output
// record. cityCode may be empty, in which case the kana dictionary's
// municipal code is used; block-level rows do not carry one. Town readings
// get the chome number extracted from the source town name appended with a
// single space, so 銀座四丁目 reads ギンザ 4.
func (a *Aggregation) newRecord(key RecordKey, cityCode string, lon, lat float64) *AddressRecord {
	rec := &AddressRecord{
		PrefCode: a.prefCode,
		PrefName: key.Pref,
		CityCode: cityCode,
		CityName: key.City,
		TownName: key.Town,
		Koaza:    key.Koaza,
		Lon:      lon,
		Lat:      lat,
	}

	chome := ""
	if n, ok := normalize.ChomeNumber(key.Town); ok {
		chome = strconv.Itoa(n)
	}

	if kana := dict.Lookup(a.kana, key.City, key.Town); kana != nil {
		rec.Zip = kana.Zip
		rec.PrefKana = kana.PrefReading
		rec.CityKana = kana.CityReading
		rec.TownKana = withChome(normalize.TrimParen(kana.TownReading), chome)
		if rec.CityCode == "" {
			rec.CityCode = kana.Code
		}
	}
	if rome := dict.Lookup(a.rome, key.City, key.Town); rome != nil {
		rec.PrefRomaji = rome.PrefReading
		rec.CityRomaji = rome.CityReading
		rec.TownRomaji = withChome(normalize.TrimParen(rome.TownReading), chome)
	}
	return rec
}

// withChome appends an extracted chome number to a reading with a single
// separating space.
func withChome(reading, chome string) string {
	if chome == "" {
		return reading
	}
	return reading + " " + chome
}

// Records returns the prefecture's merged records in insertion order. The
// backfill pass mutates postal codes through the shared pointers.
func (a *Aggregation) Records() []*AddressRecord {
	out := make([]*AddressRecord, 0, len(a.order))
	for _, key := range a.order {
		out = append(out, a.records[key])
	}
	return out
}

// Points returns the raw residential-display block rows in source order.
func (a *Aggregation) Points() []GaikuPoint {
	return a.points
}

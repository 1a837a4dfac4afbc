package gazetteer

// AddressRecord is one deduplicated output row of the gazetteer. Reading
// fields hold empty strings, never nulls, when no dictionary entry
// matched. A record is immutable after creation except for Zip, which the
// postal backfill pass may fill.
type AddressRecord struct {
	PrefCode   string
	Zip        string
	PrefName   string
	PrefKana   string
	PrefRomaji string
	CityCode   string
	CityName   string
	CityKana   string
	CityRomaji string
	TownName   string
	TownKana   string
	TownRomaji string
	Koaza      string
	Lat        float64
	Lon        float64
}

// GaikuPoint is one raw block-level row carrying a residential display
// designation. Points are emitted in source order and never merged.
type GaikuPoint struct {
	PrefName    string
	CityName    string
	TownName    string
	BlockNumber string
	Lon         float64
	Lat         float64
}

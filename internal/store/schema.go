package store

// The id sequence records write order: prefectures are loaded in JIS code
// order and rows within a prefecture in aggregation order, so downstream
// consumers can rely on ORDER BY id.
const addressSchema = `
	CREATE TABLE IF NOT EXISTS addresses (
		id             bigserial PRIMARY KEY,
		pref_code      text NOT NULL,
		zip            text,
		pref_name      text NOT NULL,
		pref_kana      text NOT NULL DEFAULT '',
		pref_romaji    text NOT NULL DEFAULT '',
		city_code      text NOT NULL DEFAULT '',
		city_name      text NOT NULL,
		city_kana      text NOT NULL DEFAULT '',
		city_romaji    text NOT NULL DEFAULT '',
		town_name      text NOT NULL,
		town_kana      text NOT NULL DEFAULT '',
		town_romaji    text NOT NULL DEFAULT '',
		koaza          text NOT NULL DEFAULT '',
		lat            numeric NOT NULL,
		lon            numeric NOT NULL,
		created_at     timestamptz DEFAULT now()
	)
`

var addressIndexes = []string{
	"CREATE INDEX IF NOT EXISTS addresses_pref_code_idx ON addresses (pref_code)",
	"CREATE INDEX IF NOT EXISTS addresses_zip_idx ON addresses (zip)",
	"CREATE INDEX IF NOT EXISTS addresses_city_name_idx ON addresses (city_name)",
}

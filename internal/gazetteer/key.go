// Package gazetteer is the record-linkage core: it folds the district and
// block position reference rows and the postal dictionaries into one
// deduplicated address table per prefecture, plus the raw block points.
package gazetteer

// RecordKey identifies one address across all sources: prefecture, city,
// town, and optional koaza, in native script after normalization. It is
// comparable and used directly as a map key.
type RecordKey struct {
	Pref  string
	City  string
	Town  string
	Koaza string
}

// cityRename records a municipality that changed name between the capture
// dates of the position reference data and the postal dictionaries. The
// rename applies whenever a city name is read from a position reference
// source, never to dictionary rows.
type cityRename struct {
	pref string
	from string
	to   string
}

var cityRenames = []cityRename{
	{"兵庫県", "篠山市", "丹波篠山市"},
	{"福岡県", "筑紫郡那珂川町", "那珂川市"},
}

// RenameCity maps a position reference city name onto its current name.
// Unlisted cities pass through unchanged, so applying the mapping twice is
// a no-op.
func RenameCity(pref, city string) string {
	for _, r := range cityRenames {
		if r.pref == pref && r.from == city {
			return r.to
		}
	}
	return city
}

// BuildKey constructs the canonical key for one address. Town and koaza
// must already be whitespace normalized by the caller. The literal koaza
// sentinel "NULL" from the block data means absent.
func BuildKey(pref, city, town, koaza string) RecordKey {
	if koaza == "NULL" {
		koaza = ""
	}
	return RecordKey{
		Pref:  pref,
		City:  RenameCity(pref, city),
		Town:  town,
		Koaza: koaza,
	}
}

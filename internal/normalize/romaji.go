package normalize

import (
	"regexp"
	"strings"
)

// romajiFix is one literal substring correction applied during romaji
// comparison. The position reference data and the postal dictionary were
// romanized by different conventions, so systematic divergences have to be
// folded together before the two can be compared.
type romajiFix struct {
	from string
	to   string
}

// romajiFixes is applied in order. Syllabic-n assimilation first, then
// long-vowel collapses, then the historical spellings the position
// reference data carries.
var romajiFixes = []romajiFix{
	{"N'", "N"},
	{"NM", "MM"},
	{"NB", "MB"},
	{"NP", "MP"},
	{"AA", "A"},
	{"II", "I"},
	{"UU", "U"},
	{"EE", "E"},
	{"OU", "O"},
	{"OO", "O"},
	{"DZU", "ZU"},
	{"DJI", "JI"},
	{"WO", "O"},
	{"UYE", "UE"},
	{"YEN", "EN"},
	{"KWA", "KA"},
	{"GWA", "GA"},
	{"TYO", "CHO"},
	{"SYO", "SHO"},
	{"ZYO", "JO"},
}

var reTrailingDigits = regexp.MustCompile(`[0-9]+$`)

// RemoveSpaces drops every ASCII space. Dictionary romaji writes multi-word
// readings with embedded spaces, the comparison string does not.
func RemoveSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

// Romaji builds the comparison form of a romanized town name: any trailing
// chome digits are removed, embedded spaces dropped, and the correction
// table applied in order.
func Romaji(s string) string {
	s = reTrailingDigits.ReplaceAllString(s, "")
	s = RemoveSpaces(s)
	for _, fix := range romajiFixes {
		s = strings.ReplaceAll(s, fix.from, fix.to)
	}
	return s
}

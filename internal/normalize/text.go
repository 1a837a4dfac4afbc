// Package normalize cleans up the text quirks of the Japanese address
// sources this project reconciles: half-width katakana in the postal
// dictionaries, kanji-numeral chome suffixes in the position reference
// data, parenthetical annotations, and the ideographic space.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

// ideographicSpace is U+3000, used instead of ASCII space in parts of the
// position reference data.
const ideographicSpace = "　"

// Space removes ideographic spaces and trims surrounding ASCII whitespace.
// No other characters are altered.
func Space(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, ideographicSpace, ""))
}

// Both widths occur: full-width parens in kanji fields, ASCII parens in the
// kana and romaji reading fields.
var reParenSuffix = regexp.MustCompile(`[（(].*[）)]$`)

// TrimParen removes a trailing parenthesized annotation such as
// 「大手町（次のビルを除く）」 or "OTEMACHI(TSUGINOBIRUONOZOKU)".
// Postal dictionary town fields carry these; position reference names do not.
func TrimParen(s string) string {
	return reParenSuffix.ReplaceAllString(s, "")
}

// ParseFloat converts a coordinate string to float64, tolerating the
// surrounding whitespace found in the position reference CSVs.
func ParseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

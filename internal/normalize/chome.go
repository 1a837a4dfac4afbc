package normalize

import "regexp"

// reChomeSuffix matches a kanji chome numeral at the end of a town name,
// with or without the 丁目 counter. The position reference data writes
// 銀座四丁目 where the postal dictionary writes 銀座 with the number folded
// into the reading, so both spellings have to normalize to the same key.
var reChomeSuffix = regexp.MustCompile(`(十?[一二三四五六七八九]|十)(丁目)?$`)

var kanjiDigits = map[rune]int{
	'一': 1, '二': 2, '三': 3, '四': 4, '五': 5,
	'六': 6, '七': 7, '八': 8, '九': 9,
}

// KanjiNumber converts a kanji numeral between 1 and 19 to its arabic
// value. The second return is false for anything outside that range.
func KanjiNumber(s string) (int, bool) {
	runes := []rune(s)
	switch len(runes) {
	case 1:
		if runes[0] == '十' {
			return 10, true
		}
		if d, ok := kanjiDigits[runes[0]]; ok {
			return d, true
		}
	case 2:
		if runes[0] == '十' {
			if d, ok := kanjiDigits[runes[1]]; ok {
				return 10 + d, true
			}
		}
	}
	return 0, false
}

// ChomeNumber extracts the chome number from the end of a town name.
// 銀座四丁目 and 銀座四 both yield 4. The second return is false when the
// name carries no chome suffix.
func ChomeNumber(town string) (int, bool) {
	m := reChomeSuffix.FindStringSubmatch(town)
	if m == nil {
		return 0, false
	}
	return KanjiNumber(m[1])
}

// TrimChome removes a trailing chome numeral and its 丁目 counter from a
// town name, leaving the bare district name.
func TrimChome(town string) string {
	return reChomeSuffix.ReplaceAllString(town, "")
}

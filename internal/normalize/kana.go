package normalize

import "strings"

// kanaPair maps one half-width sequence to its full-width equivalent.
type kanaPair struct {
	half string
	full string
}

// kanaWidthTable drives WidenKana. Two-character voiced and semi-voiced
// digraphs come first and must be matched before their single-character
// prefixes (ｶﾞ is ガ, not カ゛). The postal dictionary kana fields use the
// half-width forms exclusively.
var kanaWidthTable = []kanaPair{
	// voiced digraphs
	{"ｶﾞ", "ガ"}, {"ｷﾞ", "ギ"}, {"ｸﾞ", "グ"}, {"ｹﾞ", "ゲ"}, {"ｺﾞ", "ゴ"},
	{"ｻﾞ", "ザ"}, {"ｼﾞ", "ジ"}, {"ｽﾞ", "ズ"}, {"ｾﾞ", "ゼ"}, {"ｿﾞ", "ゾ"},
	{"ﾀﾞ", "ダ"}, {"ﾁﾞ", "ヂ"}, {"ﾂﾞ", "ヅ"}, {"ﾃﾞ", "デ"}, {"ﾄﾞ", "ド"},
	{"ﾊﾞ", "バ"}, {"ﾋﾞ", "ビ"}, {"ﾌﾞ", "ブ"}, {"ﾍﾞ", "ベ"}, {"ﾎﾞ", "ボ"},
	{"ｳﾞ", "ヴ"},
	// semi-voiced digraphs
	{"ﾊﾟ", "パ"}, {"ﾋﾟ", "ピ"}, {"ﾌﾟ", "プ"}, {"ﾍﾟ", "ペ"}, {"ﾎﾟ", "ポ"},
	// plain kana
	{"ｱ", "ア"}, {"ｲ", "イ"}, {"ｳ", "ウ"}, {"ｴ", "エ"}, {"ｵ", "オ"},
	{"ｶ", "カ"}, {"ｷ", "キ"}, {"ｸ", "ク"}, {"ｹ", "ケ"}, {"ｺ", "コ"},
	{"ｻ", "サ"}, {"ｼ", "シ"}, {"ｽ", "ス"}, {"ｾ", "セ"}, {"ｿ", "ソ"},
	{"ﾀ", "タ"}, {"ﾁ", "チ"}, {"ﾂ", "ツ"}, {"ﾃ", "テ"}, {"ﾄ", "ト"},
	{"ﾅ", "ナ"}, {"ﾆ", "ニ"}, {"ﾇ", "ヌ"}, {"ﾈ", "ネ"}, {"ﾉ", "ノ"},
	{"ﾊ", "ハ"}, {"ﾋ", "ヒ"}, {"ﾌ", "フ"}, {"ﾍ", "ヘ"}, {"ﾎ", "ホ"},
	{"ﾏ", "マ"}, {"ﾐ", "ミ"}, {"ﾑ", "ム"}, {"ﾒ", "メ"}, {"ﾓ", "モ"},
	{"ﾔ", "ヤ"}, {"ﾕ", "ユ"}, {"ﾖ", "ヨ"},
	{"ﾗ", "ラ"}, {"ﾘ", "リ"}, {"ﾙ", "ル"}, {"ﾚ", "レ"}, {"ﾛ", "ロ"},
	{"ﾜ", "ワ"}, {"ｦ", "ヲ"}, {"ﾝ", "ン"},
	// small kana
	{"ｧ", "ァ"}, {"ｨ", "ィ"}, {"ｩ", "ゥ"}, {"ｪ", "ェ"}, {"ｫ", "ォ"},
	{"ｬ", "ャ"}, {"ｭ", "ュ"}, {"ｮ", "ョ"}, {"ｯ", "ッ"},
	// marks and punctuation
	{"ｰ", "ー"}, {"ﾞ", "゛"}, {"ﾟ", "゜"},
	{"｡", "。"}, {"､", "、"}, {"･", "・"}, {"｢", "「"}, {"｣", "」"},
}

var (
	kanaDigraphs = map[string]string{}
	kanaSingles  = map[rune]string{}
)

func init() {
	for _, p := range kanaWidthTable {
		if len([]rune(p.half)) == 2 {
			kanaDigraphs[p.half] = p.full
		} else {
			kanaSingles[[]rune(p.half)[0]] = p.full
		}
	}
}

// WidenKana replaces every half-width katakana and punctuation code point
// with its full-width equivalent, matching digraphs greedily before single
// characters. Characters outside the table pass through unchanged, so the
// function is idempotent.
func WidenKana(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(runes); i++ {
		if i+1 < len(runes) {
			if full, ok := kanaDigraphs[string(runes[i:i+2])]; ok {
				b.WriteString(full)
				i++
				continue
			}
		}
		if full, ok := kanaSingles[runes[i]]; ok {
			b.WriteString(full)
			continue
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}

package models

// PrefectureID identifies one of the 47 canonical prefectures independently of display language.
type PrefectureID string

// SuffixClass is the legal class of a prefecture, carried by the last kanji of its name.
type SuffixClass int

const (
	SuffixTo  SuffixClass = iota + 1 // 都, Tokyo only
	SuffixDo                         // 道, Hokkaido only
	SuffixFu                         // 府, Kyoto and Osaka
	SuffixKen                        // 県, everything else
)

// Rune returns the kanji suffix character for the class.
func (s SuffixClass) Rune() rune {
	switch s {
	case SuffixTo:
		return '都'
	case SuffixDo:
		return '道'
	case SuffixFu:
		return '府'
	case SuffixKen:
		return '県'
	}
	return 0
}

func (s SuffixClass) String() string {
	switch s {
	case SuffixTo:
		return "to"
	case SuffixDo:
		return "dō"
	case SuffixFu:
		return "fu"
	case SuffixKen:
		return "ken"
	}
	return "unknown"
}

// PrefectureEntry is one row of the prefecture registry.
type PrefectureEntry struct {
	ID            PrefectureID `json:"id"`
	Code          int          `json:"code"` // JIS X 0401
	RomanizedName string       `json:"romanized"`
	KanjiName     string       `json:"kanji"` // includes the suffix, e.g. "東京都"
	Suffix        SuffixClass  `json:"-"`
}

// KanjiStem returns the kanji name without its administrative suffix ("東京" for "東京都").
func (e PrefectureEntry) KanjiStem() string {
	r := []rune(e.KanjiName)
	if len(r) > 1 && r[len(r)-1] == e.Suffix.Rune() {
		return string(r[:len(r)-1])
	}
	return e.KanjiName
}

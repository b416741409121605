package normalizer

import (
	"testing"

	"github.com/jordanwl/covid-19-bot/internal/models"
	"github.com/jordanwl/covid-19-bot/internal/prefecture"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNormalizer(t *testing.T) *Normalizer {
	t.Helper()
	reg, err := prefecture.Default()
	require.NoError(t, err)
	return New(reg)
}

func TestNormalizer_Normalize(t *testing.T) {
	n := newTestNormalizer(t)

	tests := []struct {
		name     string
		input    string
		expected models.ResolvedIntent
	}{
		{name: "empty", input: "", expected: models.Unrecognized()},
		{name: "whitespace only", input: " \t\n", expected: models.Unrecognized()},
		{name: "help", input: "help", expected: models.Help()},
		{name: "help mixed case padded", input: "  HeLp ", expected: models.Help()},
		{name: "help japanese", input: "ヘルプ", expected: models.Help()},
		{name: "kanji exact", input: "京都府", expected: models.PrefectureQuery(prefecture.Kyoto)},
		{name: "kanji tokyo", input: "東京都", expected: models.PrefectureQuery(prefecture.Tokyo)},
		{name: "kanji hokkaido", input: "北海道", expected: models.PrefectureQuery(prefecture.Hokkaido)},
		{name: "kanji with full-width padding", input: "　大阪府　", expected: models.PrefectureQuery(prefecture.Osaka)},
		{name: "kanji bare stem", input: "京都", expected: models.PrefectureQuery(prefecture.Kyoto)},
		{name: "tokyo bare stem", input: "東京", expected: models.PrefectureQuery(prefecture.Tokyo)},
		{name: "wrong suffix stripped", input: "大阪県", expected: models.PrefectureQuery(prefecture.Osaka)},
		{name: "ken on tokyo stem", input: "東京県", expected: models.PrefectureQuery(prefecture.Tokyo)},
		{name: "fu on hokkaido stem", input: "北海府", expected: models.PrefectureQuery(prefecture.Hokkaido)},
		{name: "wrong romanized qualifier", input: "Osaka-to", expected: models.PrefectureQuery(prefecture.Osaka)},
		{name: "wrong romanized qualifier fu", input: "Hokkaido-fu", expected: models.PrefectureQuery(prefecture.Hokkaido)},
		{name: "suffix only", input: "県", expected: models.Unrecognized()},
		{name: "metropolis suffix only", input: "都", expected: models.Unrecognized()},
		{name: "romanized lower", input: "tokyo", expected: models.PrefectureQuery(prefecture.Tokyo)},
		{name: "romanized title", input: "Tokyo", expected: models.PrefectureQuery(prefecture.Tokyo)},
		{name: "romanized upper", input: "TOKYO", expected: models.PrefectureQuery(prefecture.Tokyo)},
		{name: "macron", input: "Tōkyō", expected: models.PrefectureQuery(prefecture.Tokyo)},
		{name: "circumflex", input: "Tôkyô", expected: models.PrefectureQuery(prefecture.Tokyo)},
		{name: "macron with suffix", input: "Tōkyō-to", expected: models.PrefectureQuery(prefecture.Tokyo)},
		{name: "fu suffix", input: "Kyoto-fu", expected: models.PrefectureQuery(prefecture.Kyoto)},
		{name: "ken suffix", input: "Hyōgo-ken", expected: models.PrefectureQuery(prefecture.Hyogo)},
		{name: "prefecture qualifier", input: "Osaka Prefecture", expected: models.PrefectureQuery(prefecture.Osaka)},
		{name: "hokkaido hyphenated", input: "Hokkai-dō", expected: models.PrefectureQuery(prefecture.Hokkaido)},
		{name: "full-width latin", input: "ＴＯＫＹＯ", expected: models.PrefectureQuery(prefecture.Tokyo)},
		{name: "historic romanization", input: "Gumma", expected: models.PrefectureQuery(prefecture.Gunma)},
		{name: "historic romanization with suffix", input: "Ooita-ken", expected: models.PrefectureQuery(prefecture.Oita)},
		{name: "unknown", input: "Mars", expected: models.Unrecognized()},
		{name: "partial", input: "Toky", expected: models.Unrecognized()},
		{name: "suffix word alone", input: "ken", expected: models.Unrecognized()},
		{name: "sentence", input: "how many cases in tokyo", expected: models.Unrecognized()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, n.Normalize(tt.input))
		})
	}
}

func TestNormalizer_Deterministic(t *testing.T) {
	n := newTestNormalizer(t)

	inputs := []string{"", "help", "Tōkyō", "京都府", "県", "Mars", "Kyoto-fu", "́", "ー", "🙂"}
	for _, in := range inputs {
		first := n.Normalize(in)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, n.Normalize(in), "input %q", in)
		}
		assert.Contains(t,
			[]models.IntentKind{models.IntentHelp, models.IntentPrefectureQuery, models.IntentUnrecognized},
			first.Kind)
	}
}

func TestNormalizer_DiacriticFoldingAgrees(t *testing.T) {
	n := newTestNormalizer(t)

	for _, in := range []string{"Tōkyō", "tokyo", "Tokyo", "TOKYO"} {
		assert.Equal(t, models.PrefectureQuery(prefecture.Tokyo), n.Normalize(in), in)
	}
}

func TestNormalizer_SuffixStrippingIsStable(t *testing.T) {
	reg, err := prefecture.Default()
	require.NoError(t, err)
	n := New(reg)

	for _, e := range reg.Entries() {
		want := models.PrefectureQuery(e.ID)
		assert.Equal(t, want, n.Normalize(e.KanjiName), e.KanjiName)
		assert.Equal(t, want, n.Normalize(e.KanjiStem()), e.KanjiStem())
		assert.Equal(t, want, n.Normalize(e.RomanizedName), e.RomanizedName)
	}
}

func TestNormalizer_ResolveRegionName(t *testing.T) {
	n := newTestNormalizer(t)

	tests := []struct {
		name     string
		token    string
		expected models.ResolvedIntent
	}{
		{name: "romanized", token: "Tokyo", expected: models.PrefectureQuery(prefecture.Tokyo)},
		{name: "macron", token: "Hyōgo", expected: models.PrefectureQuery(prefecture.Hyogo)},
		{name: "kanji", token: "東京都", expected: models.PrefectureQuery(prefecture.Tokyo)},
		{name: "help is not a region", token: "help", expected: models.Unrecognized()},
		{name: "empty", token: "", expected: models.Unrecognized()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, n.ResolveRegionName(tt.token))
		})
	}
}

func TestFold(t *testing.T) {
	assert.Equal(t, "tokyo", Fold("Tōkyō"))
	assert.Equal(t, "hyogo", Fold("HYŌGO"))
	assert.Equal(t, "東京都", Fold("東京都"))
}

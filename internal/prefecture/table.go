package prefecture

import "github.com/jordanwl/covid-19-bot/internal/models"

const (
	Hokkaido  models.PrefectureID = "hokkaido"
	Aomori    models.PrefectureID = "aomori"
	Iwate     models.PrefectureID = "iwate"
	Miyagi    models.PrefectureID = "miyagi"
	Akita     models.PrefectureID = "akita"
	Yamagata  models.PrefectureID = "yamagata"
	Fukushima models.PrefectureID = "fukushima"
	Ibaraki   models.PrefectureID = "ibaraki"
	Tochigi   models.PrefectureID = "tochigi"
	Gunma     models.PrefectureID = "gunma"
	Saitama   models.PrefectureID = "saitama"
	Chiba     models.PrefectureID = "chiba"
	Tokyo     models.PrefectureID = "tokyo"
	Kanagawa  models.PrefectureID = "kanagawa"
	Niigata   models.PrefectureID = "niigata"
	Toyama    models.PrefectureID = "toyama"
	Ishikawa  models.PrefectureID = "ishikawa"
	Fukui     models.PrefectureID = "fukui"
	Yamanashi models.PrefectureID = "yamanashi"
	Nagano    models.PrefectureID = "nagano"
	Gifu      models.PrefectureID = "gifu"
	Shizuoka  models.PrefectureID = "shizuoka"
	Aichi     models.PrefectureID = "aichi"
	Mie       models.PrefectureID = "mie"
	Shiga     models.PrefectureID = "shiga"
	Kyoto     models.PrefectureID = "kyoto"
	Osaka     models.PrefectureID = "osaka"
	Hyogo     models.PrefectureID = "hyogo"
	Nara      models.PrefectureID = "nara"
	Wakayama  models.PrefectureID = "wakayama"
	Tottori   models.PrefectureID = "tottori"
	Shimane   models.PrefectureID = "shimane"
	Okayama   models.PrefectureID = "okayama"
	Hiroshima models.PrefectureID = "hiroshima"
	Yamaguchi models.PrefectureID = "yamaguchi"
	Tokushima models.PrefectureID = "tokushima"
	Kagawa    models.PrefectureID = "kagawa"
	Ehime     models.PrefectureID = "ehime"
	Kochi     models.PrefectureID = "kochi"
	Fukuoka   models.PrefectureID = "fukuoka"
	Saga      models.PrefectureID = "saga"
	Nagasaki  models.PrefectureID = "nagasaki"
	Kumamoto  models.PrefectureID = "kumamoto"
	Oita      models.PrefectureID = "oita"
	Miyazaki  models.PrefectureID = "miyazaki"
	Kagoshima models.PrefectureID = "kagoshima"
	Okinawa   models.PrefectureID = "okinawa"
)

// Count is the number of canonical prefectures.
const Count = 47

// Table lists every prefecture in JIS X 0401 order.
var Table = []models.PrefectureEntry{
	{ID: Hokkaido, Code: 1, RomanizedName: "Hokkaido", KanjiName: "北海道", Suffix: models.SuffixDo},
	{ID: Aomori, Code: 2, RomanizedName: "Aomori", KanjiName: "青森県", Suffix: models.SuffixKen},
	{ID: Iwate, Code: 3, RomanizedName: "Iwate", KanjiName: "岩手県", Suffix: models.SuffixKen},
	{ID: Miyagi, Code: 4, RomanizedName: "Miyagi", KanjiName: "宮城県", Suffix: models.SuffixKen},
	{ID: Akita, Code: 5, RomanizedName: "Akita", KanjiName: "秋田県", Suffix: models.SuffixKen},
	{ID: Yamagata, Code: 6, RomanizedName: "Yamagata", KanjiName: "山形県", Suffix: models.SuffixKen},
	{ID: Fukushima, Code: 7, RomanizedName: "Fukushima", KanjiName: "福島県", Suffix: models.SuffixKen},
	{ID: Ibaraki, Code: 8, RomanizedName: "Ibaraki", KanjiName: "茨城県", Suffix: models.SuffixKen},
	{ID: Tochigi, Code: 9, RomanizedName: "Tochigi", KanjiName: "栃木県", Suffix: models.SuffixKen},
	{ID: Gunma, Code: 10, RomanizedName: "Gunma", KanjiName: "群馬県", Suffix: models.SuffixKen},
	{ID: Saitama, Code: 11, RomanizedName: "Saitama", KanjiName: "埼玉県", Suffix: models.SuffixKen},
	{ID: Chiba, Code: 12, RomanizedName: "Chiba", KanjiName: "千葉県", Suffix: models.SuffixKen},
	{ID: Tokyo, Code: 13, RomanizedName: "Tokyo", KanjiName: "東京都", Suffix: models.SuffixTo},
	{ID: Kanagawa, Code: 14, RomanizedName: "Kanagawa", KanjiName: "神奈川県", Suffix: models.SuffixKen},
	{ID: Niigata, Code: 15, RomanizedName: "Niigata", KanjiName: "新潟県", Suffix: models.SuffixKen},
	{ID: Toyama, Code: 16, RomanizedName: "Toyama", KanjiName: "富山県", Suffix: models.SuffixKen},
	{ID: Ishikawa, Code: 17, RomanizedName: "Ishikawa", KanjiName: "石川県", Suffix: models.SuffixKen},
	{ID: Fukui, Code: 18, RomanizedName: "Fukui", KanjiName: "福井県", Suffix: models.SuffixKen},
	{ID: Yamanashi, Code: 19, RomanizedName: "Yamanashi", KanjiName: "山梨県", Suffix: models.SuffixKen},
	{ID: Nagano, Code: 20, RomanizedName: "Nagano", KanjiName: "長野県", Suffix: models.SuffixKen},
	{ID: Gifu, Code: 21, RomanizedName: "Gifu", KanjiName: "岐阜県", Suffix: models.SuffixKen},
	{ID: Shizuoka, Code: 22, RomanizedName: "Shizuoka", KanjiName: "静岡県", Suffix: models.SuffixKen},
	{ID: Aichi, Code: 23, RomanizedName: "Aichi", KanjiName: "愛知県", Suffix: models.SuffixKen},
	{ID: Mie, Code: 24, RomanizedName: "Mie", KanjiName: "三重県", Suffix: models.SuffixKen},
	{ID: Shiga, Code: 25, RomanizedName: "Shiga", KanjiName: "滋賀県", Suffix: models.SuffixKen},
	{ID: Kyoto, Code: 26, RomanizedName: "Kyoto", KanjiName: "京都府", Suffix: models.SuffixFu},
	{ID: Osaka, Code: 27, RomanizedName: "Osaka", KanjiName: "大阪府", Suffix: models.SuffixFu},
	{ID: Hyogo, Code: 28, RomanizedName: "Hyogo", KanjiName: "兵庫県", Suffix: models.SuffixKen},
	{ID: Nara, Code: 29, RomanizedName: "Nara", KanjiName: "奈良県", Suffix: models.SuffixKen},
	{ID: Wakayama, Code: 30, RomanizedName: "Wakayama", KanjiName: "和歌山県", Suffix: models.SuffixKen},
	{ID: Tottori, Code: 31, RomanizedName: "Tottori", KanjiName: "鳥取県", Suffix: models.SuffixKen},
	{ID: Shimane, Code: 32, RomanizedName: "Shimane", KanjiName: "島根県", Suffix: models.SuffixKen},
	{ID: Okayama, Code: 33, RomanizedName: "Okayama", KanjiName: "岡山県", Suffix: models.SuffixKen},
	{ID: Hiroshima, Code: 34, RomanizedName: "Hiroshima", KanjiName: "広島県", Suffix: models.SuffixKen},
	{ID: Yamaguchi, Code: 35, RomanizedName: "Yamaguchi", KanjiName: "山口県", Suffix: models.SuffixKen},
	{ID: Tokushima, Code: 36, RomanizedName: "Tokushima", KanjiName: "徳島県", Suffix: models.SuffixKen},
	{ID: Kagawa, Code: 37, RomanizedName: "Kagawa", KanjiName: "香川県", Suffix: models.SuffixKen},
	{ID: Ehime, Code: 38, RomanizedName: "Ehime", KanjiName: "愛媛県", Suffix: models.SuffixKen},
	{ID: Kochi, Code: 39, RomanizedName: "Kochi", KanjiName: "高知県", Suffix: models.SuffixKen},
	{ID: Fukuoka, Code: 40, RomanizedName: "Fukuoka", KanjiName: "福岡県", Suffix: models.SuffixKen},
	{ID: Saga, Code: 41, RomanizedName: "Saga", KanjiName: "佐賀県", Suffix: models.SuffixKen},
	{ID: Nagasaki, Code: 42, RomanizedName: "Nagasaki", KanjiName: "長崎県", Suffix: models.SuffixKen},
	{ID: Kumamoto, Code: 43, RomanizedName: "Kumamoto", KanjiName: "熊本県", Suffix: models.SuffixKen},
	{ID: Oita, Code: 44, RomanizedName: "Oita", KanjiName: "大分県", Suffix: models.SuffixKen},
	{ID: Miyazaki, Code: 45, RomanizedName: "Miyazaki", KanjiName: "宮崎県", Suffix: models.SuffixKen},
	{ID: Kagoshima, Code: 46, RomanizedName: "Kagoshima", KanjiName: "鹿児島県", Suffix: models.SuffixKen},
	{ID: Okinawa, Code: 47, RomanizedName: "Okinawa", KanjiName: "沖縄県", Suffix: models.SuffixKen},
}

// HistoricRomanizations maps older or non-Hepburn spellings to a prefecture.
var HistoricRomanizations = map[string]models.PrefectureID{
	"gumma":   Gunma,
	"hyougo":  Hyogo,
	"kouchi":  Kochi,
	"ooita":   Oita,
	"toukyou": Tokyo,
	"kyouto":  Kyoto,
	"oosaka":  Osaka,
}

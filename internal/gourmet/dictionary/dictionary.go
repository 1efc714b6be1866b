// Package dictionary holds the static keyword tables for restaurant
// intent extraction. All tables are read-only after process start.
package dictionary

// Locations maps recognized area names to canonical values.
var Locations = map[string]string{
	"新宿":       "新宿",
	"渋谷":       "渋谷",
	"銀座":       "銀座",
	"池袋":       "池袋",
	"恵比寿":      "恵比寿",
	"六本木":      "六本木",
	"表参道":      "表参道",
	"吉祥寺":      "吉祥寺",
	"中目黒":      "中目黒",
	"神楽坂":      "神楽坂",
	"shinjuku": "新宿",
	"shibuya":  "渋谷",
	"ginza":    "銀座",
}

// LocationOrder fixes the scan order for area matching.
var LocationOrder = []string{
	"新宿", "渋谷", "銀座", "池袋", "恵比寿", "六本木", "表参道", "吉祥寺", "中目黒", "神楽坂",
	"shinjuku", "shibuya", "ginza",
}

// Cuisines maps recognized cuisine names to canonical values.
var Cuisines = map[string]string{
	"イタリアン":   "イタリアン",
	"イタリア料理":  "イタリアン",
	"フレンチ":    "フレンチ",
	"フランス料理":  "フレンチ",
	"和食":      "和食",
	"日本料理":    "和食",
	"中華":      "中華",
	"中国料理":    "中華",
	"焼肉":      "焼肉",
	"寿司":      "寿司",
	"鮨":       "寿司",
	"ラーメン":    "ラーメン",
	"居酒屋":     "居酒屋",
	"韓国料理":    "韓国料理",
	"タイ料理":    "タイ料理",
	"カレー":     "カレー",
	"italian": "イタリアン",
	"french":  "フレンチ",
}

// CuisineOrder fixes the scan order for cuisine matching. Longer phrases
// come before their abbreviations.
var CuisineOrder = []string{
	"イタリア料理", "イタリアン", "フランス料理", "フレンチ", "日本料理", "和食",
	"中国料理", "中華", "焼肉", "寿司", "鮨", "ラーメン", "居酒屋",
	"韓国料理", "タイ料理", "カレー", "italian", "french",
}

// Situations maps situational keywords to canonical feature tags.
var Situations = map[string]string{
	"デート":    "デート",
	"記念日":    "記念日",
	"誕生日":    "記念日",
	"接待":     "接待",
	"女子会":    "女子会",
	"家族":     "ファミリー",
	"子連れ":    "ファミリー",
	"一人":     "おひとりさま",
	"ひとり":    "おひとりさま",
	"宴会":     "宴会",
	"飲み会":    "宴会",
	"ロマンチック": "デート",
	"個室":     "個室",
	"夜景":     "夜景",
}

// SituationOrder fixes the scan order for situation matching.
var SituationOrder = []string{
	"ロマンチック", "デート", "記念日", "誕生日", "接待", "女子会",
	"子連れ", "家族", "ひとり", "一人", "飲み会", "宴会", "個室", "夜景",
}

// Budget phrase sets, bucketed low / medium / high.
var BudgetLowPhrases = []string{"安い", "格安", "リーズナブル", "コスパ", "激安", "お手頃"}
var BudgetMediumPhrases = []string{"普通", "ほどほど", "そこそこ"}
var BudgetHighPhrases = []string{"高級", "贅沢", "ラグジュアリー", "ハイエンド"}

// Time-of-day phrase sets.
var BreakfastPhrases = []string{"朝食", "モーニング", "朝ごはん"}
var LunchPhrases = []string{"ランチ", "昼食", "お昼"}
var DinnerPhrases = []string{"ディナー", "夕食", "夜ごはん", "晩ごはん"}

// CuratedRestaurant is one entry in the padding candidate table.
type CuratedRestaurant struct {
	ID          string
	Name        string
	Cuisine     string
	Location    string
	Address     string
	Phone       string
	Rating      float64
	PriceRange  string
	Description string
	Features    []string
}

// CuratedRestaurants is the static padding table scored against the
// intent when live search under-delivers.
var CuratedRestaurants = []CuratedRestaurant{
	{
		ID: "curated_0001", Name: "トラットリア・ルーチェ", Cuisine: "イタリアン", Location: "新宿",
		Address: "東京都新宿区新宿3-5-12", Phone: "03-3351-0112", Rating: 4.2,
		PriceRange: "¥4,000〜¥5,999", Description: "薪窯ピッツァと自然派ワインの店",
		Features: []string{"デート", "個室", "ワイン"},
	},
	{
		ID: "curated_0002", Name: "ビストロ・シェルシュ", Cuisine: "フレンチ", Location: "渋谷",
		Address: "東京都渋谷区神南1-8-10", Phone: "03-3464-2215", Rating: 4.4,
		PriceRange: "¥6,000〜¥7,999", Description: "カウンター主体の気軽なビストロ",
		Features: []string{"デート", "記念日", "カウンター"},
	},
	{
		ID: "curated_0003", Name: "鮨 こばやし", Cuisine: "寿司", Location: "銀座",
		Address: "東京都中央区銀座6-4-3", Phone: "03-3571-8840", Rating: 4.6,
		PriceRange: "¥15,000〜¥19,999", Description: "江戸前の仕事を守る小さな鮨店",
		Features: []string{"接待", "記念日", "カウンター"},
	},
	{
		ID: "curated_0004", Name: "炭火焼肉 うしごろ亭", Cuisine: "焼肉", Location: "恵比寿",
		Address: "東京都渋谷区恵比寿1-10-6", Phone: "03-5420-3329", Rating: 4.3,
		PriceRange: "¥8,000〜¥9,999", Description: "黒毛和牛一頭買いの焼肉店",
		Features: []string{"個室", "宴会", "接待"},
	},
	{
		ID: "curated_0005", Name: "蕎麦前 やまと", Cuisine: "和食", Location: "神楽坂",
		Address: "東京都新宿区神楽坂4-2-1", Phone: "03-3266-7708", Rating: 4.1,
		PriceRange: "¥3,000〜¥3,999", Description: "石臼挽き蕎麦と季節の肴",
		Features: []string{"おひとりさま", "個室"},
	},
	{
		ID: "curated_0006", Name: "麺処 にしん", Cuisine: "ラーメン", Location: "池袋",
		Address: "東京都豊島区南池袋2-12-5", Phone: "03-3982-1190", Rating: 3.9,
		PriceRange: "〜¥999", Description: "鶏清湯の醤油ラーメン専門店",
		Features: []string{"おひとりさま", "深夜営業"},
	},
	{
		ID: "curated_0007", Name: "チャイニーズダイニング 龍泉", Cuisine: "中華", Location: "六本木",
		Address: "東京都港区六本木7-14-3", Phone: "03-3403-6678", Rating: 4.0,
		PriceRange: "¥5,000〜¥5,999", Description: "広東料理ベースのモダンチャイニーズ",
		Features: []string{"宴会", "個室", "夜景"},
	},
	{
		ID: "curated_0008", Name: "オステリア・ジラソーレ", Cuisine: "イタリアン", Location: "中目黒",
		Address: "東京都目黒区上目黒1-19-8", Phone: "03-5722-3345", Rating: 4.5,
		PriceRange: "¥6,000〜¥7,999", Description: "南イタリア料理と自家製パスタ",
		Features: []string{"デート", "記念日", "ワイン"},
	},
	{
		ID: "curated_0009", Name: "韓国食堂 ハヌル", Cuisine: "韓国料理", Location: "新宿",
		Address: "東京都新宿区歌舞伎町2-27-8", Phone: "03-3205-5529", Rating: 3.8,
		PriceRange: "¥2,000〜¥2,999", Description: "サムギョプサルと参鶏湯の店",
		Features: []string{"女子会", "宴会"},
	},
	{
		ID: "curated_0010", Name: "ブラッスリー・オリヴィエ", Cuisine: "フレンチ", Location: "表参道",
		Address: "東京都港区北青山3-6-19", Phone: "03-3486-7741", Rating: 4.2,
		PriceRange: "¥4,000〜¥5,999", Description: "テラス席のあるカジュアルフレンチ",
		Features: []string{"女子会", "デート", "テラス"},
	},
	{
		ID: "curated_0011", Name: "居酒屋 まるはち", Cuisine: "居酒屋", Location: "吉祥寺",
		Address: "東京都武蔵野市吉祥寺本町1-10-7", Phone: "0422-21-6684", Rating: 3.7,
		PriceRange: "¥2,000〜¥2,999", Description: "地酒と炉端焼きの大衆居酒屋",
		Features: []string{"宴会", "飲み放題", "ファミリー"},
	},
	{
		ID: "curated_0012", Name: "タイ食堂 クルアタイ", Cuisine: "タイ料理", Location: "渋谷",
		Address: "東京都渋谷区道玄坂2-10-12", Phone: "03-3461-8856", Rating: 4.0,
		PriceRange: "¥1,000〜¥1,999", Description: "屋台の味を再現するタイ料理店",
		Features: []string{"女子会", "おひとりさま"},
	},
}

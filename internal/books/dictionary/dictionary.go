// Package dictionary holds the static keyword tables used by book intent
// extraction. All tables are read-only after process start.
package dictionary

// TitleEntry maps a recognized title phrase to its canonical record.
type TitleEntry struct {
	Title  string
	Author string
}

// Authors maps recognized author keys (including romanized aliases) to
// canonical author names.
var Authors = map[string]string{
	"村上春樹":      "村上春樹",
	"murakami":  "村上春樹",
	"haruki":    "村上春樹",
	"東野圭吾":      "東野圭吾",
	"higashino": "東野圭吾",
	"keigo":     "東野圭吾",
	"湊かなえ":      "湊かなえ",
	"有川浩":       "有川浩",
	"伊坂幸太郎":     "伊坂幸太郎",
	"西尾維新":      "西尾維新",
	"森見登美彦":     "森見登美彦",
	"宮部みゆき":     "宮部みゆき",
	"吾峠呼世晴":     "吾峠呼世晴",
	"新海誠":       "新海誠",
	"又吉直樹":      "又吉直樹",
	"村田沙耶香":     "村田沙耶香",
	"綿矢りさ":      "綿矢りさ",
	"川上未映子":     "川上未映子",
	"小川洋子":      "小川洋子",
	"角田光代":      "角田光代",
	"重松清":       "重松清",
	"恩田陸":       "恩田陸",
	"辻村深月":      "辻村深月",
	"吉本ばなな":     "吉本ばなな",
	"三浦しをん":     "三浦しをん",
	"奥田英朗":      "奥田英朗",
	"桐野夏生":      "桐野夏生",
	"江國香織":      "江國香織",
	"池井戸潤":      "池井戸潤",
}

// AuthorOrder fixes the iteration order for author matching so that
// extraction results are deterministic.
var AuthorOrder = []string{
	"村上春樹", "murakami", "haruki",
	"東野圭吾", "higashino", "keigo",
	"湊かなえ", "有川浩", "伊坂幸太郎", "西尾維新", "森見登美彦", "宮部みゆき",
	"吾峠呼世晴", "新海誠", "又吉直樹", "村田沙耶香", "綿矢りさ", "川上未映子",
	"小川洋子", "角田光代", "重松清", "恩田陸", "辻村深月", "吉本ばなな",
	"三浦しをん", "奥田英朗", "桐野夏生", "江國香織", "池井戸潤",
}

// Titles maps recognized title phrases (including abbreviations) to
// canonical title/author pairs.
var Titles = map[string]TitleEntry{
	"ノルウェイの森": {Title: "ノルウェイの森", Author: "村上春樹"},
	"ノルウェー":   {Title: "ノルウェイの森", Author: "村上春樹"},
	"風の歌を聴け":  {Title: "風の歌を聴け", Author: "村上春樹"},
	"風の歌":     {Title: "風の歌を聴け", Author: "村上春樹"},
	"1q84":    {Title: "1Q84", Author: "村上春樹"},
	"海辺のカフカ":  {Title: "海辺のカフカ", Author: "村上春樹"},
	"羊をめぐる":   {Title: "羊をめぐる冒険", Author: "村上春樹"},
	"羊":       {Title: "羊をめぐる冒険", Author: "村上春樹"},

	"容疑者x":   {Title: "容疑者Xの献身", Author: "東野圭吾"},
	"容疑者":    {Title: "容疑者Xの献身", Author: "東野圭吾"},
	"白夜行":    {Title: "白夜行", Author: "東野圭吾"},
	"秘密":     {Title: "秘密", Author: "東野圭吾"},
	"ガリレオ":   {Title: "ガリレオの苦悩", Author: "東野圭吾"},
	"真夏の方程式": {Title: "真夏の方程式", Author: "東野圭吾"},
	"真夏":     {Title: "真夏の方程式", Author: "東野圭吾"},

	"鬼滅の刃":   {Title: "鬼滅の刃", Author: "吾峠呼世晴"},
	"鬼滅":     {Title: "鬼滅の刃", Author: "吾峠呼世晴"},
	"君の名は":   {Title: "君の名は。", Author: "新海誠"},
	"羅生門":    {Title: "羅生門", Author: "芥川龍之介"},
	"こころ":    {Title: "こころ", Author: "夏目漱石"},
	"人間失格":   {Title: "人間失格", Author: "太宰治"},
	"キッチン":   {Title: "キッチン", Author: "吉本ばなな"},
	"コンビニ人間": {Title: "コンビニ人間", Author: "村田沙耶香"},
	"火花":     {Title: "火花", Author: "又吉直樹"},

	// Classic authors map to a representative work.
	"夏目漱石":  {Title: "こころ", Author: "夏目漱石"},
	"吉本ばなな": {Title: "キッチン", Author: "吉本ばなな"},
	"芥川龍之介": {Title: "羅生門", Author: "芥川龍之介"},
	"太宰治":   {Title: "人間失格", Author: "太宰治"},
}

// TitleOrder fixes the iteration order for title matching.
// Longer, more specific phrases come before their abbreviations.
var TitleOrder = []string{
	"ノルウェイの森", "ノルウェー", "風の歌を聴け", "風の歌", "1q84", "海辺のカフカ", "羊をめぐる", "羊",
	"容疑者x", "容疑者", "白夜行", "秘密", "ガリレオ", "真夏の方程式", "真夏",
	"鬼滅の刃", "鬼滅", "君の名は", "羅生門", "こころ", "人間失格", "キッチン", "コンビニ人間", "火花",
	"夏目漱石", "吉本ばなな", "芥川龍之介", "太宰治",
}

// TechKeywords maps technical keywords to their candidate category.
var TechKeywords = map[string]string{
	"python":     "programming",
	"julia":      "programming",
	"java":       "programming",
	"javascript": "programming",
	"c++":        "programming",
	"プログラミング":    "programming",
	"機械学習":       "tech",
	"深層学習":       "tech",
	"ai":         "tech",
	"データサイエンス":   "tech",
	"数理最適化":      "tech",
	"最適化":        "tech",
	"統計学":        "tech",
	"アルゴリズム":     "programming",
	"データ構造":      "programming",
}

// TechKeywordOrder fixes the iteration order for tech keyword matching.
var TechKeywordOrder = []string{
	"python", "julia", "java", "javascript", "c++", "プログラミング",
	"機械学習", "深層学習", "ai", "データサイエンス", "数理最適化", "最適化", "統計学",
	"アルゴリズム", "データ構造",
}

// CompoundTechTerms maps subject terms usable in compound queries to
// English translation hints for cross-language search.
var CompoundTechTerms = map[string][]string{
	"数理最適化":    {"optimization", "mathematical optimization", "operations research"},
	"最適化":      {"optimization", "mathematical programming"},
	"機械学習":     {"machine learning", "ML"},
	"深層学習":     {"deep learning", "neural networks"},
	"データサイエンス": {"data science", "analytics"},
	"統計学":      {"statistics", "statistical analysis"},
	"アルゴリズム":   {"algorithms", "algorithm"},
	"データ構造":    {"data structures"},
}

// CompoundTechOrder fixes the scan order for compound subject terms.
var CompoundTechOrder = []string{
	"数理最適化", "最適化", "機械学習", "深層学習", "データサイエンス", "統計学", "アルゴリズム", "データ構造",
}

// ProgrammingLanguages are the language qualifiers recognized in
// compound queries.
var ProgrammingLanguages = []string{
	"python", "java", "javascript", "julia", "r", "matlab", "c++", "c#",
}

// SubjectKeywords maps hobby and learning subjects to English hints.
var SubjectKeywords = map[string]string{
	"ギター":   "guitar",
	"ピアノ":   "piano",
	"ベース":   "bass",
	"ドラム":   "drums",
	"バイオリン": "violin",
	"サックス":  "saxophone",

	"テニス":  "tennis",
	"ゴルフ":  "golf",
	"釣り":   "fishing",
	"サッカー": "soccer",
	"野球":   "baseball",
	"スキー":  "skiing",
	"登山":   "mountaineering",

	"写真": "photography",
	"絵画": "painting",
	"料理": "cooking",
	"園芸": "gardening",
	"手芸": "handicraft",
	"陶芸": "pottery",

	"英語":  "english",
	"中国語": "chinese",
	"韓国語": "korean",
	"簿記":  "bookkeeping",
	"宅建":  "real estate license",
}

// SubjectOrder fixes the scan order for subject keywords.
var SubjectOrder = []string{
	"ギター", "ピアノ", "ベース", "ドラム", "バイオリン", "サックス",
	"テニス", "ゴルフ", "釣り", "サッカー", "野球", "スキー", "登山",
	"写真", "絵画", "料理", "園芸", "手芸", "陶芸",
	"英語", "中国語", "韓国語", "簿記", "宅建",
}

// IntroPatterns mark beginner intent in technical queries.
var IntroPatterns = []string{
	"入門", "基礎", "基本", "初心者", "はじめて", "beginner", "introduction", "basic",
}

// AdvancedPatterns mark practical/advanced intent in technical queries.
var AdvancedPatterns = []string{
	"実践", "応用", "活用", "実装", "practical", "advanced",
}

// BeginnerPhrases mark beginner intent in hobby/learning queries.
var BeginnerPhrases = []string{
	"はじめる", "はじめて", "初心者", "入門", "基礎", "基本",
	"最初に読む", "スタート", "始める", "初級", "超入門",
}

// MasteryPhrases mark advanced intent in hobby/learning queries.
var MasteryPhrases = []string{
	"上達", "実践", "応用", "上級", "マスター", "極める",
}

// FamousISBNs maps well-known titles to their ISBNs for catalog lookup.
var FamousISBNs = map[string]string{
	"風の歌を聴け":  "9784062764742",
	"ノルウェイの森": "9784062748780",
	"容疑者Xの献身": "9784167110062",
	"白夜行":     "9784087474428",
	"秘密":      "9784167110055",
	"ガリレオの苦悩": "9784167110079",
	"真夏の方程式":  "9784167801915",
	"沈黙のパレード": "9784167913458",
	"1Q84":    "9784103534228",
	"海辺のカフカ":  "9784103534211",
	"世界の終りとハードボイルド・ワンダーランド": "9784103534204",
	"ねじまき鳥クロニクル":            "9784103534198",
	"羊をめぐる冒険":               "9784062748766",
	"ダンス・ダンス・ダンス":           "9784062748797",
	"騎士団長殺し":                "9784103534235",
}

// FamousISBNOrder fixes the scan order over FamousISBNs.
var FamousISBNOrder = []string{
	"風の歌を聴け", "ノルウェイの森", "容疑者Xの献身", "白夜行", "秘密", "ガリレオの苦悩",
	"真夏の方程式", "沈黙のパレード", "1Q84", "海辺のカフカ",
	"世界の終りとハードボイルド・ワンダーランド", "ねじまき鳥クロニクル",
	"羊をめぐる冒険", "ダンス・ダンス・ダンス", "騎士団長殺し",
}

// MurakamiWorks and HigashinoWorks gate the author-based famous ISBN lookup.
var MurakamiWorks = []string{"風の歌", "ノルウェイ", "1Q84", "海辺", "世界の終り", "ねじまき", "羊", "ダンス", "騎士団"}
var HigashinoWorks = []string{"容疑者", "白夜行", "秘密", "ガリレオ", "真夏", "沈黙"}

// CuratedBook is one entry in the padding candidate table.
type CuratedBook struct {
	Title     string
	Author    string
	ISBN      string
	Publisher string
}

// CuratedBooks is the static padding table scored against the intent
// when live search under-delivers.
var CuratedBooks = []CuratedBook{
	{"風の歌を聴け", "村上春樹", "9784062764742", "講談社文庫"},
	{"ノルウェイの森", "村上春樹", "9784062748780", "講談社文庫"},
	{"1Q84", "村上春樹", "9784103534228", "新潮社"},
	{"海辺のカフカ", "村上春樹", "9784103534211", "新潮社"},
	{"羊をめぐる冒険", "村上春樹", "9784062748766", "講談社文庫"},
	{"ダンス・ダンス・ダンス", "村上春樹", "9784062748797", "講談社文庫"},
	{"ねじまき鳥クロニクル", "村上春樹", "9784103534198", "新潮社"},

	{"容疑者Xの献身", "東野圭吾", "9784167110062", "文藝春秋"},
	{"白夜行", "東野圭吾", "9784087474428", "集英社文庫"},
	{"秘密", "東野圭吾", "9784167110055", "文藝春秋"},
	{"ガリレオの苦悩", "東野圭吾", "9784167110079", "文藝春秋"},
	{"真夏の方程式", "東野圭吾", "9784167801915", "文藝春秋"},
	{"沈黙のパレード", "東野圭吾", "9784167913458", "文藝春秋"},
	{"マスカレード・ホテル", "東野圭吾", "9784087461352", "集英社"},

	{"みんなのPython", "柴田淳", "9784797389463", "SBクリエイティブ"},
	{"入門Python3", "Bill Lubanovic", "9784873117386", "オライリージャパン"},
	{"Effective Python", "Brett Slatkin", "9784873119175", "オライリージャパン"},
	{"Python機械学習プログラミング", "Sebastian Raschka", "9784295003915", "インプレス"},
	{"ゼロから作るDeep Learning", "斎藤康毅", "9784873117584", "オライリージャパン"},
	{"Pythonではじめる機械学習", "Andreas C. Muller", "9784873117980", "オライリージャパン"},
	{"データサイエンス教本", "橋本洋志", "9784274221957", "オーム社"},
	{"統計学入門", "東京大学出版会", "9784130420655", "東京大学出版会"},
	{"JavaScript本格入門", "山田祥寛", "9784797388640", "SBクリエイティブ"},
	{"Java言語で学ぶデザインパターン入門", "結城浩", "9784797327038", "SBクリエイティブ"},

	{"キッチン", "吉本ばなな", "9784101326016", "新潮文庫"},
	{"TUGUMI", "吉本ばなな", "9784101326023", "新潮文庫"},
	{"ムーンライト・シャドウ", "吉本ばなな", "9784101326030", "新潮文庫"},
	{"コンビニ人間", "村田沙耶香", "9784167880163", "文春文庫"},
	{"殺人出産", "村田沙耶香", "9784062770811", "講談社"},
	{"火花", "又吉直樹", "9784167903759", "文春文庫"},
	{"劇場", "又吉直樹", "9784167909332", "文春文庫"},

	{"君の名は。", "新海誠", "9784048923829", "角川文庫"},
	{"鬼滅の刃", "吾峠呼世晴", "9784088807676", "集英社"},
	{"異世界おじさん", "殆ど死んでいる", "9784040651651", "KADOKAWA"},
	{"呪術廻戦", "芥見下々", "9784088813929", "集英社"},
	{"チェンソーマン", "藤本タツキ", "9784088815961", "集英社"},
}

// CategoryMatchKeywords flag a curated entry as a technical-category match.
var CategoryMatchKeywords = []string{
	"Python", "Java", "JavaScript", "Deep Learning", "データサイエンス", "機械学習", "統計学",
}

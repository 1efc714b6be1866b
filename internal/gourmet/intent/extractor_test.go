package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"searchscout/internal/common/logger"
)

func TestExtractCompoundLocationAndCuisine(t *testing.T) {
	e := NewExtractor(logger.NewTestLogger(t))

	result := e.Extract("新宿でイタリアンが食べたい")

	assert.Equal(t, "新宿", result.Location)
	assert.Equal(t, "イタリアン", result.Cuisine)
	assert.Equal(t, QueryTypeCompound, result.QueryType)
}

func TestExtractSingleElementIsNotCompound(t *testing.T) {
	e := NewExtractor(logger.NewTestLogger(t))

	result := e.Extract("渋谷のお店")

	assert.Equal(t, "渋谷", result.Location)
	assert.Empty(t, result.QueryType)
}

func TestExtractLongCuisinePhraseBeforeAbbreviation(t *testing.T) {
	e := NewExtractor(logger.NewTestLogger(t))

	result := e.Extract("イタリア料理のレストラン")

	assert.Equal(t, "イタリアン", result.Cuisine)
}

func TestExtractPartySize(t *testing.T) {
	e := NewExtractor(logger.NewTestLogger(t))

	result := e.Extract("銀座で4人で接待")

	assert.Equal(t, "銀座", result.Location)
	assert.Equal(t, "接待", result.Category)
	assert.Equal(t, 4, result.PartySize)
	assert.Equal(t, QueryTypeCompound, result.QueryType)
}

func TestExtractPartySizeMeiCounter(t *testing.T) {
	e := NewExtractor(logger.NewTestLogger(t))

	result := e.Extract("6名で宴会")

	assert.Equal(t, 6, result.PartySize)
	assert.Equal(t, "宴会", result.Category)
}

func TestExtractBudgetBuckets(t *testing.T) {
	e := NewExtractor(logger.NewTestLogger(t))

	assert.Equal(t, BudgetLow, e.Extract("安い居酒屋").Budget)
	assert.Equal(t, BudgetHigh, e.Extract("高級フレンチ").Budget)
	assert.Equal(t, BudgetMedium, e.Extract("ほどほどの値段の店").Budget)
}

func TestExtractTimePreference(t *testing.T) {
	e := NewExtractor(logger.NewTestLogger(t))

	result := e.Extract("恵比寿でランチ")

	assert.Equal(t, "恵比寿", result.Location)
	assert.Equal(t, TimeLunch, result.TimePreference)
	assert.Equal(t, QueryTypeCompound, result.QueryType)
}

func TestExtractRomanticMapsToDate(t *testing.T) {
	e := NewExtractor(logger.NewTestLogger(t))

	result := e.Extract("ロマンチックな夜景のお店")

	assert.Equal(t, "デート", result.Category)
}

func TestExtractRomajiLocation(t *testing.T) {
	e := NewExtractor(logger.NewTestLogger(t))

	result := e.Extract("shinjuku italian")

	assert.Equal(t, "新宿", result.Location)
	assert.Equal(t, "イタリアン", result.Cuisine)
}

func TestExtractUnknownQueryIsEmpty(t *testing.T) {
	e := NewExtractor(logger.NewTestLogger(t))

	result := e.Extract("なんかいい感じのところ")

	assert.True(t, result.Empty())
}

func TestIntentUnconstrained(t *testing.T) {
	assert.True(t, Intent{Budget: BudgetLow, PartySize: 2}.Unconstrained())
	assert.False(t, Intent{Location: "新宿"}.Unconstrained())
	assert.False(t, Intent{Cuisine: "寿司"}.Unconstrained())
}

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"searchscout/internal/books/intent"
)

func TestGeneralPhrasesPreferPreciseCombinations(t *testing.T) {
	phrases := phraseVariants(intent.Intent{Title: "こころ", Author: "夏目漱石"})

	assert.Equal(t, "intitle:こころ inauthor:夏目漱石", phrases[0])
	assert.LessOrEqual(t, len(phrases), maxGeneralPhrases)
}

func TestAuthorOnlyPhrases(t *testing.T) {
	phrases := phraseVariants(intent.Intent{Author: "村上春樹"})

	assert.Equal(t, []string{"inauthor:村上春樹", "村上春樹"}, phrases)
}

func TestCompoundPhrasesLeadWithEnglishVariants(t *testing.T) {
	phrases := phraseVariants(intent.Intent{
		Title:        "数理最適化 python",
		Category:     "compound_tech",
		SearchTerms:  []string{"数理最適化", "python"},
		EnglishTerms: []string{"optimization", "mathematical optimization", "operations research"},
	})

	assert.Equal(t, "optimization python", phrases[0])
	assert.Contains(t, phrases, "python optimization")
	assert.Contains(t, phrases, "数理最適化 python")
	assert.LessOrEqual(t, len(phrases), maxCategoryPhrases)
}

func TestIntroPhrasesUseEnglishSubjectWhenKnown(t *testing.T) {
	phrases := phraseVariants(intent.Intent{
		Title:          "ギター 入門",
		Category:       "generic_intro",
		Subject:        "ギター",
		EnglishSubject: "guitar",
	})

	assert.Contains(t, phrases, "introduction to guitar")
	assert.Contains(t, phrases, "ギター 入門 初心者")
}

func TestTruncateDescription(t *testing.T) {
	long := make([]rune, 0, 250)
	for i := 0; i < 250; i++ {
		long = append(long, 'あ')
	}

	truncated := truncateDescription(string(long))

	assert.Len(t, []rune(truncated), descriptionLimit+3)
	assert.Equal(t, "...", truncated[len(truncated)-3:])

	assert.Equal(t, "short", truncateDescription("short"))
	assert.Equal(t, "", truncateDescription(""))
}

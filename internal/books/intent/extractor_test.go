package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"searchscout/internal/common/logger"
)

func TestExtractAuthorOnlyQuery(t *testing.T) {
	e := NewExtractor(logger.NewTestLogger(t))

	result := e.Extract("村上春樹")

	assert.Equal(t, "村上春樹", result.Author)
	assert.Empty(t, result.Title)
	assert.Empty(t, result.ISBN)
}

func TestExtractRomanizedAuthorAlias(t *testing.T) {
	e := NewExtractor(logger.NewTestLogger(t))

	result := e.Extract("murakami")

	assert.Equal(t, "村上春樹", result.Author)
}

func TestExtractTitlePhraseCarriesCanonicalAuthor(t *testing.T) {
	e := NewExtractor(logger.NewTestLogger(t))

	result := e.Extract("ノルウェイの森が読みたい")

	assert.Equal(t, "ノルウェイの森", result.Title)
	assert.Equal(t, "村上春樹", result.Author)
}

func TestExtractAbbreviatedTitle(t *testing.T) {
	e := NewExtractor(logger.NewTestLogger(t))

	result := e.Extract("容疑者xの本")

	assert.Equal(t, "容疑者Xの献身", result.Title)
	assert.Equal(t, "東野圭吾", result.Author)
}

func TestExtractCompoundTechQuery(t *testing.T) {
	e := NewExtractor(logger.NewTestLogger(t))

	result := e.Extract("数理最適化 Python")

	assert.Equal(t, "数理最適化 python", result.Title)
	assert.Equal(t, "compound_tech", result.Category)
	assert.Equal(t, []string{"数理最適化", "python"}, result.SearchTerms)
	assert.Contains(t, result.EnglishTerms, "optimization")
}

func TestCompoundRequiresTwoElements(t *testing.T) {
	e := NewExtractor(logger.NewTestLogger(t))

	// A lone subject term must fall through to plain keyword matching.
	result := e.Extract("機械学習の本を探している")

	assert.Equal(t, "tech", result.Category)
	assert.NotEqual(t, "compound_tech", result.Category)
}

func TestExtractBeginnerTechQuery(t *testing.T) {
	e := NewExtractor(logger.NewTestLogger(t))

	result := e.Extract("Juliaの基礎的な入門書")

	assert.Equal(t, "julia 入門", result.Title)
	assert.Equal(t, "tech_intro", result.Category)
	assert.Equal(t, "julia", result.Subject)
}

func TestExtractAdvancedTechQuery(t *testing.T) {
	e := NewExtractor(logger.NewTestLogger(t))

	result := e.Extract("pythonを実践で活用する本")

	assert.Equal(t, "python 実践", result.Title)
	assert.Equal(t, "tech_advanced", result.Category)
}

func TestExtractBeginnerHobbyQuery(t *testing.T) {
	e := NewExtractor(logger.NewTestLogger(t))

	result := e.Extract("ギターをはじめる人が最初に読む本")

	assert.Equal(t, "ギター 入門", result.Title)
	assert.Equal(t, "generic_intro", result.Category)
	assert.Equal(t, "guitar", result.EnglishSubject)
}

func TestExtractPlainTechKeyword(t *testing.T) {
	e := NewExtractor(logger.NewTestLogger(t))

	result := e.Extract("pythonについて")

	assert.Equal(t, "programming", result.Category)
	assert.Empty(t, result.Title)
}

func TestExtractUnknownQueryReturnsEmpty(t *testing.T) {
	e := NewExtractor(logger.NewTestLogger(t))

	result := e.Extract("完全に未知の検索語")

	assert.True(t, result.Empty())
}

func TestExtractStripsBracketQuotes(t *testing.T) {
	e := NewExtractor(logger.NewTestLogger(t))

	result := e.Extract("「こころ」")

	assert.Equal(t, "こころ", result.Title)
	assert.Equal(t, "夏目漱石", result.Author)
}

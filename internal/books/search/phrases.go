package search

import (
	"fmt"
	"strings"

	"searchscout/internal/books/intent"
)

const maxCategoryPhrases = 9
const maxGeneralPhrases = 6

// phraseVariants builds the ordered list of search phrases for an intent.
// Category-tagged intents get specialized variants with cross-language
// qualifiers; everything else falls back to title/author patterns.
func phraseVariants(it intent.Intent) []string {
	switch it.Category {
	case "tech_intro":
		return capPhrases(introPhrases(it.Title, englishStem(it)), maxCategoryPhrases)
	case "tech_advanced":
		return capPhrases(advancedPhrases(it.Title, englishStem(it)), maxCategoryPhrases)
	case "compound_tech":
		return capPhrases(compoundPhrases(it), maxCategoryPhrases)
	case "generic_intro":
		return capPhrases(introPhrases(it.Title, englishStem(it)), maxCategoryPhrases)
	case "generic_advanced":
		return capPhrases(advancedPhrases(it.Title, englishStem(it)), maxCategoryPhrases)
	case "programming", "tech":
		return capPhrases(keywordPhrases(it), maxCategoryPhrases)
	default:
		return capPhrases(generalPhrases(it.Title, it.Author), maxGeneralPhrases)
	}
}

// englishStem picks the token used in English phrase variants.
func englishStem(it intent.Intent) string {
	if it.EnglishSubject != "" {
		return it.EnglishSubject
	}
	if it.Subject != "" {
		return it.Subject
	}
	return firstToken(it.Title)
}

func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return s
	}
	return fields[0]
}

func introPhrases(query, stem string) []string {
	return []string{
		query,
		fmt.Sprintf("intitle:%s", query),
		fmt.Sprintf("%s 初心者", query),
		fmt.Sprintf("%s はじめて", query),
		fmt.Sprintf("%s 基礎", query),
		fmt.Sprintf("introduction to %s", stem),
		fmt.Sprintf("%s tutorial", stem),
		fmt.Sprintf("beginner %s", stem),
		fmt.Sprintf("%s fundamentals", stem),
	}
}

func advancedPhrases(query, stem string) []string {
	return []string{
		query,
		fmt.Sprintf("intitle:%s", query),
		fmt.Sprintf("%s 実装", query),
		fmt.Sprintf("%s 応用", query),
		fmt.Sprintf("practical %s", stem),
		fmt.Sprintf("advanced %s", stem),
		fmt.Sprintf("%s in action", stem),
		fmt.Sprintf("mastering %s", stem),
	}
}

// compoundPhrases pairs each English translation hint with the detected
// language qualifier, English variants first for cross-language recall,
// then the original Japanese phrase.
func compoundPhrases(it intent.Intent) []string {
	var lang string
	if len(it.SearchTerms) >= 2 {
		lang = it.SearchTerms[1]
	}

	var phrases []string
	for _, eng := range it.EnglishTerms {
		phrases = append(phrases, fmt.Sprintf("%s %s", eng, lang))
	}
	if len(it.EnglishTerms) > 0 {
		primary := it.EnglishTerms[0]
		phrases = append(phrases,
			fmt.Sprintf("%s %s", lang, primary),
			fmt.Sprintf("intitle:%s %s", primary, lang),
		)
	}
	phrases = append(phrases,
		it.Title,
		fmt.Sprintf("intitle:%s", it.Title),
	)
	return phrases
}

func keywordPhrases(it intent.Intent) []string {
	base := it.Title
	if base == "" {
		base = it.Subject
	}
	if base == "" {
		base = "プログラミング"
	}
	return []string{
		base,
		fmt.Sprintf("%s 入門", base),
		fmt.Sprintf("%s 実践", base),
		fmt.Sprintf("intitle:%s", base),
		fmt.Sprintf("%s プログラミング", base),
		fmt.Sprintf("%s アルゴリズム", base),
	}
}

func generalPhrases(title, author string) []string {
	var phrases []string
	if title != "" && author != "" {
		phrases = append(phrases,
			fmt.Sprintf("intitle:%s inauthor:%s", title, author),
			fmt.Sprintf("%s %s", title, author),
			fmt.Sprintf("%s %s", author, title),
		)
	}
	if author != "" {
		phrases = append(phrases,
			fmt.Sprintf("inauthor:%s", author),
			author,
		)
	}
	if title != "" {
		phrases = append(phrases,
			fmt.Sprintf("intitle:%s", title),
			title,
		)
	}
	return phrases
}

func capPhrases(phrases []string, limit int) []string {
	if len(phrases) > limit {
		return phrases[:limit]
	}
	return phrases
}

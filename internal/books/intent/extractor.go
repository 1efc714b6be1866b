package intent

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"searchscout/internal/books/dictionary"
	"searchscout/internal/common/logger"
)

// Extractor is the rule-based interpreter. It consults the static
// dictionaries only and never performs network calls.
type Extractor struct {
	logger logger.Logger
}

func NewExtractor(log logger.Logger) *Extractor {
	return &Extractor{logger: log}
}

// Extract parses query against the dictionaries. Compound detection runs
// first, then titles, then authors, then linguistic patterns. An empty
// result means no rule matched.
func (e *Extractor) Extract(query string) Intent {
	normalized := normalize(query)

	if compound := e.resolveCompound(normalized); compound != nil {
		e.logger.Info("Compound query detected", map[string]interface{}{
			"query": query,
			"title": compound.Title,
		})
		return *compound
	}

	for _, key := range dictionary.TitleOrder {
		if strings.Contains(normalized, key) {
			entry := dictionary.Titles[key]
			return Intent{Title: entry.Title, Author: entry.Author}
		}
	}

	trimmed := strings.TrimSpace(normalized)
	for _, key := range dictionary.AuthorOrder {
		if trimmed == key {
			e.logger.Debug("Exact author match", map[string]interface{}{"author": dictionary.Authors[key]})
			return Intent{Author: dictionary.Authors[key]}
		}
	}
	for _, key := range dictionary.AuthorOrder {
		// Substring matching needs keys longer than 2 runes to avoid
		// spurious short-token hits.
		if strings.Contains(normalized, key) && utf8.RuneCountInString(key) > 2 {
			e.logger.Debug("Partial author match", map[string]interface{}{"author": dictionary.Authors[key]})
			return Intent{Author: dictionary.Authors[key]}
		}
	}

	if result := e.parseTechPattern(normalized); result != nil {
		return *result
	}

	if result := e.parseSubjectPattern(normalized); result != nil {
		return *result
	}

	for _, key := range dictionary.TechKeywordOrder {
		if strings.Contains(normalized, key) {
			return Intent{Category: dictionary.TechKeywords[key]}
		}
	}

	e.logger.Debug("No direct match", map[string]interface{}{"query": query})
	return Intent{}
}

func normalize(query string) string {
	normalized := strings.ToLower(query)
	normalized = strings.ReplaceAll(normalized, "「", "")
	normalized = strings.ReplaceAll(normalized, "」", "")
	return normalized
}

// resolveCompound fires only when two or more independently recognized
// elements co-occur, e.g. a subject term plus a programming language.
func (e *Extractor) resolveCompound(normalized string) *Intent {
	words := strings.Fields(normalized)
	if len(words) < 2 {
		return nil
	}

	var detectedTech string
	for _, word := range words {
		for _, term := range dictionary.CompoundTechOrder {
			if strings.Contains(word, term) {
				detectedTech = term
				break
			}
		}
		if detectedTech != "" {
			break
		}
	}

	var detectedLang string
	for _, word := range words {
		for _, lang := range dictionary.ProgrammingLanguages {
			if word == lang {
				detectedLang = lang
				break
			}
		}
		if detectedLang != "" {
			break
		}
	}

	if detectedTech == "" || detectedLang == "" {
		return nil
	}

	return &Intent{
		Title:        fmt.Sprintf("%s %s", detectedTech, detectedLang),
		Category:     "compound_tech",
		SearchTerms:  []string{detectedTech, detectedLang},
		EnglishTerms: dictionary.CompoundTechTerms[detectedTech],
		Subject:      detectedTech,
	}
}

// parseTechPattern handles natural-language technical queries such as
// "Juliaの基礎的な入門書".
func (e *Extractor) parseTechPattern(normalized string) *Intent {
	var detectedTech string
	for _, key := range dictionary.TechKeywordOrder {
		if strings.Contains(normalized, key) {
			detectedTech = key
			break
		}
	}
	if detectedTech == "" {
		return nil
	}

	if containsAny(normalized, dictionary.IntroPatterns) {
		title := fmt.Sprintf("%s 入門", detectedTech)
		e.logger.Info("Beginner tech query", map[string]interface{}{"search_title": title})
		return &Intent{Title: title, Category: "tech_intro", Subject: detectedTech}
	}

	if containsAny(normalized, dictionary.AdvancedPatterns) {
		title := fmt.Sprintf("%s 実践", detectedTech)
		e.logger.Info("Advanced tech query", map[string]interface{}{"search_title": title})
		return &Intent{Title: title, Category: "tech_advanced", Subject: detectedTech}
	}

	return nil
}

// parseSubjectPattern handles hobby/learning queries such as
// "ギターをはじめる人が最初に読む本".
func (e *Extractor) parseSubjectPattern(normalized string) *Intent {
	var subject, english string
	for _, key := range dictionary.SubjectOrder {
		if strings.Contains(normalized, key) {
			subject = key
			english = dictionary.SubjectKeywords[key]
			break
		}
	}
	if subject == "" {
		return nil
	}

	if containsAny(normalized, dictionary.BeginnerPhrases) {
		title := fmt.Sprintf("%s 入門", subject)
		e.logger.Info("Beginner subject query", map[string]interface{}{"search_title": title})
		return &Intent{Title: title, Category: "generic_intro", Subject: subject, EnglishSubject: english}
	}

	if containsAny(normalized, dictionary.MasteryPhrases) {
		title := fmt.Sprintf("%s 実践", subject)
		e.logger.Info("Advanced subject query", map[string]interface{}{"search_title": title})
		return &Intent{Title: title, Category: "generic_advanced", Subject: subject, EnglishSubject: english}
	}

	return nil
}

func containsAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

package search

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"searchscout/internal/books/dictionary"
	"searchscout/internal/books/intent"
	"searchscout/internal/common/logger"
)

// Padding score weights and tier caps.
const (
	categoryWeight      = 15
	authorExactWeight   = 10
	authorReverseWeight = 5
	authorPartialWeight = 3
	titleExactWeight    = 8
	titleReverseWeight  = 4
	titlePartialWeight  = 2

	categoryTierCap = 4
	matchedTierCap  = 6
	generalTierCap  = 8

	categoryAdmission = 10
	matchedAdmission  = 3
)

// Padder supplies curated candidates when live search under-delivers.
type Padder struct {
	logger logger.Logger
}

func NewPadder(log logger.Logger) *Padder {
	return &Padder{logger: log}
}

type scoredBook struct {
	score int
	book  dictionary.CuratedBook
}

// Pad scores the curated table against the intent and assembles padding
// in three tiers: category matches first, general matches next, popular
// items last. ISBNs in seen are never re-added.
func (p *Padder) Pad(it intent.Intent, seen map[string]bool, category string) []Candidate {
	var categoryBooks, matchedBooks []scoredBook
	var generalBooks []dictionary.CuratedBook

	unconstrained := it.Title == "" && it.Author == ""

	for _, book := range dictionary.CuratedBooks {
		if seen[book.ISBN] {
			continue
		}

		score := 0
		isCategoryMatch := false

		if category == "programming" || category == "tech" {
			if containsAnyOf(book.Title, dictionary.CategoryMatchKeywords) {
				score += categoryWeight
				isCategoryMatch = true
			}
		}

		if it.Author != "" {
			switch {
			case strings.Contains(book.Author, it.Author):
				score += authorExactWeight
			case strings.Contains(it.Author, book.Author):
				score += authorReverseWeight
			case partialOverlap(it.Author, book.Author, 1):
				score += authorPartialWeight
			}
		}

		if it.Title != "" {
			switch {
			case strings.Contains(book.Title, it.Title):
				score += titleExactWeight
			case strings.Contains(it.Title, book.Title):
				score += titleReverseWeight
			case partialOverlap(it.Title, book.Title, 2):
				score += titlePartialWeight
			}
		}

		switch {
		case isCategoryMatch && score >= categoryAdmission:
			categoryBooks = append(categoryBooks, scoredBook{score, book})
		case score >= matchedAdmission:
			matchedBooks = append(matchedBooks, scoredBook{score, book})
		case score > 0 || unconstrained:
			generalBooks = append(generalBooks, book)
		}
	}

	sort.SliceStable(categoryBooks, func(i, j int) bool { return categoryBooks[i].score > categoryBooks[j].score })
	sort.SliceStable(matchedBooks, func(i, j int) bool { return matchedBooks[i].score > matchedBooks[j].score })

	var candidates []Candidate
	for _, sb := range limitScored(categoryBooks, categoryTierCap) {
		candidates = append(candidates, curatedCandidate(sb.book, fmt.Sprintf("技術書 (マッチ度: %d)", sb.score)))
		seen[sb.book.ISBN] = true
	}

	remaining := matchedTierCap - len(candidates)
	if remaining < 0 {
		remaining = 0
	}
	for _, sb := range limitScored(matchedBooks, remaining) {
		candidates = append(candidates, curatedCandidate(sb.book, fmt.Sprintf("関連作品 (マッチ度: %d)", sb.score)))
		seen[sb.book.ISBN] = true
	}

	remaining = generalTierCap - len(candidates)
	if remaining < 0 {
		remaining = 0
	}
	for _, book := range limitBooks(generalBooks, remaining) {
		candidates = append(candidates, curatedCandidate(book, "人気作品"))
		seen[book.ISBN] = true
	}

	p.logger.Info("Padding candidates added", map[string]interface{}{"count": len(candidates)})
	return candidates
}

// partialOverlap reports whether any token of a (longer than minLen
// runes) appears in b.
func partialOverlap(a, b string, minLen int) bool {
	for _, part := range strings.Fields(a) {
		if utf8.RuneCountInString(part) > minLen && strings.Contains(b, part) {
			return true
		}
	}
	return false
}

func curatedCandidate(book dictionary.CuratedBook, description string) Candidate {
	return Candidate{
		Title:       book.Title,
		Author:      book.Author,
		ISBN:        book.ISBN,
		Publisher:   book.Publisher,
		Description: description,
	}
}

func limitScored(books []scoredBook, limit int) []scoredBook {
	if len(books) > limit {
		return books[:limit]
	}
	return books
}

func limitBooks(books []dictionary.CuratedBook, limit int) []dictionary.CuratedBook {
	if len(books) > limit {
		return books[:limit]
	}
	return books
}

// Package search aggregates book candidates from the live catalog
// sources and the curated padding table.
package search

import "unicode/utf8"

// Candidate is one book search result. ISBN is the dedup key; within one
// response no two candidates share a non-empty ISBN.
type Candidate struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	ISBN        string `json:"isbn"`
	CoverImage  string `json:"cover_image"`
	Publisher   string `json:"publisher"`
	Description string `json:"description"`
	MatchScore  int    `json:"match_score,omitempty"`
}

const descriptionLimit = 200

// truncateDescription bounds descriptions to a displayable length.
func truncateDescription(s string) string {
	if s == "" {
		return ""
	}
	if utf8.RuneCountInString(s) <= descriptionLimit {
		return s
	}
	runes := []rune(s)
	return string(runes[:descriptionLimit]) + "..."
}

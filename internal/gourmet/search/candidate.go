// Package search aggregates restaurant candidates from the live
// gourmet API and the curated padding table.
package search

// Candidate is one restaurant result. ID is the dedup key and carries a
// per-source prefix so ids from different sources never collide.
type Candidate struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Cuisine     string   `json:"cuisine,omitempty"`
	Location    string   `json:"location,omitempty"`
	Address     string   `json:"address,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Rating      float64  `json:"rating,omitempty"`
	PriceRange  string   `json:"price_range,omitempty"`
	Description string   `json:"description,omitempty"`
	Features    []string `json:"features,omitempty"`
	MatchScore  int      `json:"match_score,omitempty"`
	Source      string   `json:"source,omitempty"`
}

// Seen returns the set of candidate ids, for padding exclusion.
func Seen(candidates []Candidate) map[string]bool {
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		seen[c.ID] = true
	}
	return seen
}

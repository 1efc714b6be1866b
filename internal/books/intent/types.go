// Package intent turns free-text book queries into structured search intents.
package intent

// Intent is the structured interpretation of a book query.
// Empty fields mean the signal was not present in the query.
type Intent struct {
	Title        string   `json:"title,omitempty"`
	Author       string   `json:"author,omitempty"`
	ISBN         string   `json:"isbn,omitempty"`
	Category     string   `json:"category,omitempty"`
	SearchTerms  []string `json:"search_terms,omitempty"`
	EnglishTerms []string `json:"english_terms,omitempty"`

	// Subject carries the detected technical or hobby subject for
	// category-specific phrase generation.
	Subject        string `json:"-"`
	EnglishSubject string `json:"-"`
}

// Empty reports whether no signal at all was extracted. An empty intent
// triggers the model fallback.
func (i Intent) Empty() bool {
	return i.Title == "" && i.Author == "" && i.ISBN == "" && i.Category == ""
}

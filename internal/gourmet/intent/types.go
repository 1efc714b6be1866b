// Package intent turns free-text restaurant queries into structured
// search intents.
package intent

// Budget buckets.
const (
	BudgetLow    = "low"
	BudgetMedium = "medium"
	BudgetHigh   = "high"
)

// Time-of-day preferences.
const (
	TimeBreakfast = "breakfast"
	TimeLunch     = "lunch"
	TimeDinner    = "dinner"
)

// QueryTypeCompound marks an intent assembled from two or more
// independently recognized elements.
const QueryTypeCompound = "compound"

// Intent is the structured interpretation of a restaurant query.
// Empty fields mean the signal was not present.
type Intent struct {
	Location       string `json:"location,omitempty"`
	Cuisine        string `json:"cuisine,omitempty"`
	Category       string `json:"category,omitempty"`
	Budget         string `json:"budget,omitempty"`
	PartySize      int    `json:"party_size,omitempty"`
	TimePreference string `json:"time_preference,omitempty"`
	QueryType      string `json:"query_type,omitempty"`
}

// Empty reports whether no signal at all was extracted. An empty intent
// triggers the model fallback.
func (i Intent) Empty() bool {
	return i.Location == "" && i.Cuisine == "" && i.Category == "" &&
		i.Budget == "" && i.PartySize == 0 && i.TimePreference == ""
}

// Unconstrained reports whether the intent carries none of the
// constraints used by padding admission.
func (i Intent) Unconstrained() bool {
	return i.Location == "" && i.Cuisine == "" && i.Category == ""
}

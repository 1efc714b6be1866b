package intent

import (
	"regexp"
	"strconv"
	"strings"

	"searchscout/internal/common/logger"
	"searchscout/internal/gourmet/dictionary"
)

var partySizePattern = regexp.MustCompile(`(\d+)\s*(?:人|名)`)

// Extractor is the rule-based interpreter for restaurant queries.
type Extractor struct {
	logger logger.Logger
}

func NewExtractor(log logger.Logger) *Extractor {
	return &Extractor{logger: log}
}

// Extract scans query for every recognizable element. When two or more
// independent elements co-occur, the result is tagged as a compound
// query; a single element yields a simple intent; none yields empty.
func (e *Extractor) Extract(query string) Intent {
	normalized := normalize(query)

	it := Intent{}
	elements := 0

	for _, key := range dictionary.LocationOrder {
		if strings.Contains(normalized, key) {
			it.Location = dictionary.Locations[key]
			elements++
			break
		}
	}

	for _, key := range dictionary.CuisineOrder {
		if strings.Contains(normalized, key) {
			it.Cuisine = dictionary.Cuisines[key]
			elements++
			break
		}
	}

	for _, key := range dictionary.SituationOrder {
		if strings.Contains(normalized, key) {
			it.Category = dictionary.Situations[key]
			elements++
			break
		}
	}

	if budget := detectBudget(normalized); budget != "" {
		it.Budget = budget
		elements++
	}

	if m := partySizePattern.FindStringSubmatch(normalized); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			it.PartySize = n
			elements++
		}
	}

	if pref := detectTime(normalized); pref != "" {
		it.TimePreference = pref
		elements++
	}

	if elements >= 2 {
		it.QueryType = QueryTypeCompound
		e.logger.Info("Compound restaurant query detected", map[string]interface{}{
			"query":    query,
			"elements": elements,
		})
	}

	if elements == 0 {
		e.logger.Debug("No direct match", map[string]interface{}{"query": query})
	}

	return it
}

func normalize(query string) string {
	normalized := strings.ToLower(query)
	normalized = strings.ReplaceAll(normalized, "「", "")
	normalized = strings.ReplaceAll(normalized, "」", "")
	return normalized
}

func detectBudget(normalized string) string {
	for _, p := range dictionary.BudgetLowPhrases {
		if strings.Contains(normalized, p) {
			return BudgetLow
		}
	}
	for _, p := range dictionary.BudgetHighPhrases {
		if strings.Contains(normalized, p) {
			return BudgetHigh
		}
	}
	for _, p := range dictionary.BudgetMediumPhrases {
		if strings.Contains(normalized, p) {
			return BudgetMedium
		}
	}
	return ""
}

func detectTime(normalized string) string {
	for _, p := range dictionary.BreakfastPhrases {
		if strings.Contains(normalized, p) {
			return TimeBreakfast
		}
	}
	for _, p := range dictionary.LunchPhrases {
		if strings.Contains(normalized, p) {
			return TimeLunch
		}
	}
	for _, p := range dictionary.DinnerPhrases {
		if strings.Contains(normalized, p) {
			return TimeDinner
		}
	}
	return ""
}

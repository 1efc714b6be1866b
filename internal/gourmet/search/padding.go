package search

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"searchscout/internal/common/logger"
	"searchscout/internal/gourmet/dictionary"
	"searchscout/internal/gourmet/intent"
)

// Padding score weights and the admission threshold.
const (
	locationWeight = 10
	cuisineWeight  = 10
	featureWeight  = 8
	budgetWeight   = 5

	admissionThreshold = 5
)

const curatedSource = "curated"

var priceDigitsPattern = regexp.MustCompile(`[\d,]+`)

// Padder supplies curated restaurants when live search under-delivers.
type Padder struct {
	logger logger.Logger
}

func NewPadder(log logger.Logger) *Padder {
	return &Padder{logger: log}
}

type scoredRestaurant struct {
	score      int
	restaurant dictionary.CuratedRestaurant
}

// Pad scores the curated table against the intent and returns entries
// at or above the admission threshold, highest score first. When the
// intent carries no location, cuisine, or situation constraint, every
// unseen entry is admitted. Ids in seen are never re-added.
func (p *Padder) Pad(it intent.Intent, seen map[string]bool, limit int) []Candidate {
	unconstrained := it.Unconstrained()

	var scored []scoredRestaurant
	for _, r := range dictionary.CuratedRestaurants {
		if seen[r.ID] {
			continue
		}

		score := 0
		if it.Location != "" && r.Location == it.Location {
			score += locationWeight
		}
		if it.Cuisine != "" && r.Cuisine == it.Cuisine {
			score += cuisineWeight
		}
		if it.Category != "" && hasFeature(r.Features, it.Category) {
			score += featureWeight
		}
		if it.Budget != "" && priceBucket(r.PriceRange) == it.Budget {
			score += budgetWeight
		}

		if score >= admissionThreshold || unconstrained {
			scored = append(scored, scoredRestaurant{score, r})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
	if limit >= 0 && len(scored) > limit {
		scored = scored[:limit]
	}

	candidates := make([]Candidate, 0, len(scored))
	for _, sr := range scored {
		candidates = append(candidates, curatedCandidate(sr.restaurant, sr.score))
		seen[sr.restaurant.ID] = true
	}

	p.logger.Info("Restaurant padding added", map[string]interface{}{"count": len(candidates)})
	return candidates
}

func hasFeature(features []string, wanted string) bool {
	for _, f := range features {
		if f == wanted {
			return true
		}
	}
	return false
}

// priceBucket maps a display price range to a budget bucket by its
// leading yen figure.
func priceBucket(priceRange string) string {
	m := priceDigitsPattern.FindString(priceRange)
	if m == "" {
		return ""
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m, ",", ""))
	if err != nil {
		return ""
	}
	switch {
	case n < 3000:
		return intent.BudgetLow
	case n < 8000:
		return intent.BudgetMedium
	default:
		return intent.BudgetHigh
	}
}

func curatedCandidate(r dictionary.CuratedRestaurant, score int) Candidate {
	return Candidate{
		ID:          r.ID,
		Name:        r.Name,
		Cuisine:     r.Cuisine,
		Location:    r.Location,
		Address:     r.Address,
		Phone:       r.Phone,
		Rating:      r.Rating,
		PriceRange:  r.PriceRange,
		Description: r.Description,
		Features:    r.Features,
		MatchScore:  score,
		Source:      curatedSource,
	}
}

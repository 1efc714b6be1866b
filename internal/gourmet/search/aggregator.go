package search

import (
	"context"
	"strings"
	"time"

	"searchscout/internal/clients/gourmetapi"
	"searchscout/internal/common/cache"
	"searchscout/internal/common/logger"
	"searchscout/internal/gourmet/intent"
)

const (
	genreMasterKey = "gourmet:master:genres"
	areaMasterKey  = "gourmet:master:areas"

	liveSource   = "hotpepper"
	liveIDPrefix = "hp_"
)

// budgetCodes maps budget buckets to the gourmet API's budget codes.
var budgetCodes = map[string]string{
	intent.BudgetLow:    "B010",
	intent.BudgetMedium: "B003",
	intent.BudgetHigh:   "B006",
}

// Config bounds the restaurant aggregation pipeline.
type Config struct {
	MaxRestaurants int
	MasterTTL      time.Duration
}

// Aggregator resolves intent fields to the gourmet API's area and genre
// codes through its master endpoints, runs the shop search, and maps the
// hits into deduplicated, scored candidates.
type Aggregator struct {
	gourmet *gourmetapi.Client
	cache   *cache.RedisClient
	config  Config
	logger  logger.Logger
}

func NewAggregator(gourmet *gourmetapi.Client, redis *cache.RedisClient, cfg Config, log logger.Logger) *Aggregator {
	return &Aggregator{
		gourmet: gourmet,
		cache:   redis,
		config:  cfg,
		logger:  log,
	}
}

// Aggregate returns a deduplicated, bounded candidate list for the
// intent. Master-lookup failures degrade to a plain keyword search; a
// shop-search failure yields an empty list, never an error.
func (a *Aggregator) Aggregate(ctx context.Context, it intent.Intent) []Candidate {
	params := gourmetapi.SearchParams{
		Budget:    budgetCodes[it.Budget],
		PartySize: it.PartySize,
		Count:     a.config.MaxRestaurants,
	}

	if it.Location != "" {
		if code := a.resolveCode(ctx, areaMasterKey, it.Location, a.gourmet.Areas); code != "" {
			params.AreaCode = code
		} else {
			params.Keyword = it.Location
		}
	}
	if it.Cuisine != "" {
		if code := a.resolveCode(ctx, genreMasterKey, it.Cuisine, a.gourmet.Genres); code != "" {
			params.GenreCode = code
		} else {
			params.Keyword = strings.TrimSpace(params.Keyword + " " + it.Cuisine)
		}
	}
	if it.Category != "" {
		params.Keyword = strings.TrimSpace(params.Keyword + " " + it.Category)
	}

	shops, err := a.gourmet.Search(ctx, params)
	if err != nil {
		a.logger.Warn("Shop search failed", map[string]interface{}{"error": err.Error()})
		return nil
	}

	seen := make(map[string]bool)
	var results []Candidate
	for _, shop := range shops {
		id := liveIDPrefix + shop.ID
		if shop.ID == "" || seen[id] {
			continue
		}
		seen[id] = true
		results = append(results, shopCandidate(shop, it))
		if len(results) >= a.config.MaxRestaurants {
			break
		}
	}

	a.logger.Info("Restaurant aggregation completed", map[string]interface{}{
		"hits":  len(shops),
		"total": len(results),
	})
	return results
}

// resolveCode finds the master code whose name contains the wanted
// value. The master list is cached; on any failure the empty string is
// returned and the caller falls back to keyword matching.
func (a *Aggregator) resolveCode(ctx context.Context, cacheKey, wanted string, fetch func(context.Context) ([]gourmetapi.MasterEntry, error)) string {
	var entries []gourmetapi.MasterEntry

	if a.cache != nil {
		if err := a.cache.GetJSON(ctx, cacheKey, &entries); err == nil {
			return matchCode(entries, wanted)
		}
	}

	entries, err := fetch(ctx)
	if err != nil {
		a.logger.Warn("Master lookup failed", map[string]interface{}{
			"key":   cacheKey,
			"error": err.Error(),
		})
		return ""
	}

	if a.cache != nil && len(entries) > 0 {
		if err := a.cache.SetJSON(ctx, cacheKey, entries, a.config.MasterTTL); err != nil {
			a.logger.Warn("Master cache write failed", map[string]interface{}{"error": err.Error()})
		}
	}

	return matchCode(entries, wanted)
}

func matchCode(entries []gourmetapi.MasterEntry, wanted string) string {
	for _, e := range entries {
		if strings.Contains(e.Name, wanted) || strings.Contains(wanted, e.Name) {
			return e.Code
		}
	}
	return ""
}

func shopCandidate(shop gourmetapi.Shop, it intent.Intent) Candidate {
	var features []string
	if shop.PartyCapacity > 0 {
		features = append(features, "宴会")
	}

	score := 0
	if it.Location != "" && strings.Contains(shop.Address, it.Location) {
		score += locationWeight
	}
	if it.Cuisine != "" && strings.Contains(shop.GenreName, it.Cuisine) {
		score += cuisineWeight
	}
	if it.Category != "" && strings.Contains(shop.Catch, it.Category) {
		score += featureWeight
	}

	return Candidate{
		ID:          liveIDPrefix + shop.ID,
		Name:        shop.Name,
		Cuisine:     shop.GenreName,
		Location:    shop.Access,
		Address:     shop.Address,
		Phone:       shop.Phone,
		PriceRange:  shop.BudgetName,
		Description: shop.Catch,
		Features:    features,
		MatchScore:  score,
		Source:      liveSource,
	}
}
